package version

import (
	"runtime/debug"
	"strings"
	"testing"
	"time"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBranch, origBuildTime := Version, GitCommit, GitBranch, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		GitBranch = origBranch
		BuildTime = origBuildTime
	}
}

func TestGetLdflags(t *testing.T) {
	defer saveAndRestore()()
	Version = "v1.0.0"
	GitCommit = "abc1234def"
	GitBranch = "main"
	BuildTime = "2024-01-15T10:30:00Z"

	info := Get()
	if info.Version != "v1.0.0" {
		t.Errorf("expected v1.0.0, got %q", info.Version)
	}
	if info.Commit != "abc1234" {
		t.Errorf("expected the commit shortened to abc1234, got %q", info.Commit)
	}
	if info.BuildTime.Year() != 2024 {
		t.Errorf("expected build year 2024, got %v", info.BuildTime)
	}
	if info.GoVersion == "" {
		t.Error("expected the Go version from build info")
	}
}

func TestGetDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version, GitCommit, GitBranch, BuildTime = "dev", "", "", ""

	info := Get()
	if info.Version == "" {
		t.Error("expected a version")
	}
	if !strings.HasPrefix(Short(), info.Version) {
		t.Errorf("Short %q should start with %q", Short(), info.Version)
	}
}

func TestFillFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Main:      debug.Module{Path: "github.com/kbukum/seqkit", Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2025-03-01T12:00:00Z"},
		},
	}

	t.Run("fills unset values", func(t *testing.T) {
		info := Info{Version: "dev"}
		fillFromBuildInfo(&info, bi)
		if info.Version != "v0.3.1" || info.Commit != "0123456789abcdef" || !info.Dirty {
			t.Errorf("unexpected info %+v", info)
		}
		if info.GoVersion != "go1.26.0" || info.BuildTime.Month() != time.March {
			t.Errorf("unexpected info %+v", info)
		}
	})

	t.Run("ldflags win", func(t *testing.T) {
		built := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		info := Info{Version: "v9.9.9", Commit: "feedbee", BuildTime: built}
		fillFromBuildInfo(&info, bi)
		if info.Version != "v9.9.9" || info.Commit != "feedbee" || !info.BuildTime.Equal(built) {
			t.Errorf("ldflags values were overridden: %+v", info)
		}
	})

	t.Run("devel main module keeps dev", func(t *testing.T) {
		info := Info{Version: "dev"}
		fillFromBuildInfo(&info, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
		if info.Version != "dev" {
			t.Errorf("expected dev, got %q", info.Version)
		}
	})
}

func TestInfoShort(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"version only", Info{Version: "dev"}, "dev"},
		{"with commit", Info{Version: "v1.0.0", Commit: "abc1234"}, "v1.0.0-abc1234"},
		{"dirty", Info{Version: "v1.0.0", Commit: "abc1234", Dirty: true}, "v1.0.0-abc1234-dirty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.Short(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestInfoFull(t *testing.T) {
	built := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	fv := Info{Version: "v1.0.0", Commit: "abc1234", Branch: "main", BuildTime: built, GoVersion: "go1.26.0"}.Full()
	if !strings.HasPrefix(fv, "v1.0.0-abc1234") {
		t.Errorf("unexpected full version %q", fv)
	}
	if strings.Contains(fv, "main") {
		t.Errorf("main branch should not appear, got %q", fv)
	}
	if !strings.Contains(fv, "built 2024-01-15T10:30:00Z") || !strings.HasSuffix(fv, "go1.26.0") {
		t.Errorf("expected build time and Go version, got %q", fv)
	}

	fv = Info{Version: "v1.0.0", Branch: "feature/new-thing"}.Full()
	if fv != "v1.0.0 feature/new-thing" {
		t.Errorf("expected the feature branch, got %q", fv)
	}
}

func TestInfoIsRelease(t *testing.T) {
	tests := []struct {
		info Info
		want bool
	}{
		{Info{Version: "dev"}, false},
		{Info{Version: "v1.0.0"}, true},
		{Info{Version: "v1.0.0", Dirty: true}, false},
		{Info{Version: "v1.0.0-dirty"}, false},
	}
	for _, tc := range tests {
		if got := tc.info.IsRelease(); got != tc.want {
			t.Errorf("%+v: expected %v, got %v", tc.info, tc.want, got)
		}
	}
}

func TestInfoFields(t *testing.T) {
	f := Info{Version: "v1.0.0", GoVersion: "go1.26.0"}.Fields()
	if f["version"] != "v1.0.0" || f["go_version"] != "go1.26.0" {
		t.Errorf("unexpected fields %v", f)
	}
	if _, ok := f["commit"]; ok {
		t.Error("empty commit should be omitted")
	}
}
