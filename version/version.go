// Package version reports the build identity of seqkit binaries.
//
// Release builds set the variables below with -ldflags, for example
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=v1.4.0"
//
// Anything left unset is filled from the VCS stamp and module version the
// Go toolchain embeds in the binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time using -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	GitBranch = ""
	BuildTime = ""
)

const shortCommit = 7

// Info is the resolved build identity.
type Info struct {
	Version   string    `json:"version"`
	Commit    string    `json:"commit,omitempty"`
	Branch    string    `json:"branch,omitempty"`
	BuildTime time.Time `json:"build_time,omitzero"`
	GoVersion string    `json:"go_version,omitempty"`
	Dirty     bool      `json:"dirty,omitempty"`
}

// IsRelease reports whether the binary was built from a clean, versioned tree.
func (i Info) IsRelease() bool {
	return i.Version != "dev" && !i.Dirty && !strings.Contains(i.Version, "dirty")
}

// Fields returns the identity as structured log fields.
func (i Info) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"version":    i.Version,
		"go_version": i.GoVersion,
	}
	if i.Commit != "" {
		fields["commit"] = i.Commit
	}
	if i.Dirty {
		fields["dirty"] = true
	}
	return fields
}

// Get resolves the build identity of the running binary.
func Get() Info {
	info := Info{
		Version: Version,
		Commit:  GitCommit,
		Branch:  GitBranch,
	}
	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildTime = t
		}
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&info, bi)
	}
	if len(info.Commit) > shortCommit {
		info.Commit = info.Commit[:shortCommit]
	}
	return info
}

// fillFromBuildInfo completes info from the toolchain's build metadata
// without overriding values set through -ldflags.
func fillFromBuildInfo(info *Info, bi *debug.BuildInfo) {
	info.GoVersion = bi.GoVersion
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		case "vcs.time":
			if info.BuildTime.IsZero() {
				if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
					info.BuildTime = t
				}
			}
		}
	}
}

// Short returns "<version>[-<commit>][-dirty]".
func Short() string {
	return Get().Short()
}

// Full returns Short plus a non-default branch and the build time.
func Full() string {
	return Get().Full()
}

func (i Info) Short() string {
	parts := []string{i.Version}
	if i.Commit != "" {
		parts = append(parts, i.Commit)
	}
	if i.Dirty {
		parts = append(parts, "dirty")
	}
	return strings.Join(parts, "-")
}

func (i Info) Full() string {
	s := i.Short()
	if i.Branch != "" && i.Branch != "main" && i.Branch != "master" {
		s += " " + i.Branch
	}
	if !i.BuildTime.IsZero() {
		s += fmt.Sprintf(" (built %s)", i.BuildTime.UTC().Format(time.RFC3339))
	}
	if i.GoVersion != "" {
		s += " " + i.GoVersion
	}
	return s
}
