// Package version resolves what build is running: release version and git commit.
package version

import (
	"context"
	"os/exec"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// Commit is set at build time with -ldflags "-X .../version.Commit=abc1234".
var Commit string

const shortCommitLen = 7

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// Display returns the canonical semver form of version, or the input
// unchanged when it is not a semantic version.
func Display(version string) string {
	v := Normalize(version)
	if !semver.IsValid(v) {
		return strings.TrimSpace(version)
	}
	return semver.Canonical(v)
}

// ResolveCommit reports the git commit of the running build. Production
// builds consult the linker value, the embedded VCS stamp and finally the
// git checkout, answering unavailable when none of them knows. Other
// profiles answer unknown unless the linker value is set.
func ResolveCommit(production bool, unknown, unavailable string) string {
	if Commit != "" {
		return shorten(Commit)
	}
	if !production {
		return unknown
	}
	if rev := buildRevision(); rev != "" {
		return shorten(rev)
	}
	if rev := gitRevision(); rev != "" {
		return rev
	}
	return unavailable
}

func buildRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

func gitRevision() string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func shorten(rev string) string {
	rev = strings.TrimSpace(rev)
	if len(rev) > shortCommitLen {
		return rev[:shortCommitLen]
	}
	return rev
}
