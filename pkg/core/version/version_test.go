package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Version {
		t.Errorf("Version = %v, want %v", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %v, want %v", info.GoVersion, runtime.Version())
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %v", info.Platform)
	}
}

func TestInfo_String(t *testing.T) {
	info := Info{Version: "1.2.3", Commit: "abc", BuildDate: "2026-10-19", GoVersion: "go1.24", Platform: "linux/amd64"}

	want := "termio 1.2.3 (commit abc, built 2026-10-19, go1.24, linux/amd64)"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !strings.HasPrefix(Get().String(), "termio "+Version) {
		t.Errorf("Get().String() = %q", Get().String())
	}
}

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersion_Semver(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q is not semantic versioning", Version)
	}
}
