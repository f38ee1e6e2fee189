package fsutils

import (
	"os"
	"path/filepath"
	"strings"
)

var userHomeDir = os.UserHomeDir

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := userHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
}
