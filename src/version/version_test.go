package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version == "" {
		t.Error("Version should not be empty")
	}
	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", info.Arch, runtime.GOARCH)
	}
}

func TestString(t *testing.T) {
	s := Get().String()
	if !strings.Contains(s, Version) {
		t.Errorf("String() = %q, want it to contain %q", s, Version)
	}
	if !strings.Contains(s, runtime.GOOS) {
		t.Errorf("String() = %q, want it to contain %q", s, runtime.GOOS)
	}
}

func TestFull(t *testing.T) {
	full := Get().Full()
	for _, want := range []string{"courtside", "commit:", "go version:"} {
		if !strings.Contains(full, want) {
			t.Errorf("Full() missing %q:\n%s", want, full)
		}
	}
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent()
	if !strings.HasPrefix(ua, "courtside-cli/") {
		t.Errorf("UserAgent() = %q, want prefix %q", ua, "courtside-cli/")
	}
}
