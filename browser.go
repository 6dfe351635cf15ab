package azauth

import (
	"os"
	"os/exec"
	"runtime"
)

// CanLaunchBrowser reports whether the current environment can open an
// interactive browser. Windows and macOS ship a system opener; elsewhere a
// graphical session and an xdg-open binary on PATH are both required. Any
// probing failure counts as "no browser".
func CanLaunchBrowser() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return true
	default:
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return false
		}
		_, err := exec.LookPath("xdg-open")
		return err == nil
	}
}
