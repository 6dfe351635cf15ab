package azauth

import (
	"runtime"
	"testing"
)

func TestCanLaunchBrowserHeadless(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("platforms with a system opener always report true")
	}

	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")

	if CanLaunchBrowser() {
		t.Error("CanLaunchBrowser() = true in a headless session, want false")
	}
}
