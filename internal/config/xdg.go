package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

func init() {
	// macOS: keep CLI config in ~/.config rather than Application Support,
	// unless XDG_CONFIG_HOME says otherwise.
	if runtime.GOOS == "darwin" && os.Getenv("XDG_CONFIG_HOME") == "" {
		xdg.ConfigHome = filepath.Join(xdg.Home, ".config")
	}
}
