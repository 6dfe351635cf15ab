package cloudshell

import "testing"

func TestInConsole(t *testing.T) {
	t.Setenv("ACC_CLOUD", "")
	if InConsole() {
		t.Error("InConsole() = true without ACC_CLOUD, want false")
	}

	t.Setenv("ACC_CLOUD", "AzureCloud")
	if !InConsole() {
		t.Error("InConsole() = false with ACC_CLOUD set, want true")
	}
}
