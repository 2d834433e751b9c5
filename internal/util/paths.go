package util

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// ReportsDir returns the per-app folder under the user's documents
// directory where generated reports belong.
func ReportsDir(app string) string {
	docs := documentsDir()
	if app == "" {
		return docs
	}
	return filepath.Join(docs, strings.ToUpper(app[:1])+app[1:])
}

// documentsDir resolves the XDG documents directory: the environment
// override wins, then ~/.config/user-dirs.dirs, then ~/Documents.
func documentsDir() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); dir != "" {
		return expandHome(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	if f, err := os.Open(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		defer f.Close()
		if dir := scanUserDirs(f, "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

// scanUserDirs pulls one KEY="value" assignment out of a user-dirs.dirs
// stream. Comments and unrelated keys are skipped.
func scanUserDirs(f *os.File, key string) string {
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		val, ok := strings.CutPrefix(line, key+"=")
		if !ok {
			continue
		}
		return strings.Trim(val, `"`)
	}
	return ""
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
