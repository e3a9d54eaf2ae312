package main

import (
	"runtime/debug"
	"strings"
)

// buildVersion may be set with -ldflags="-X main.buildVersion=1.0.0".
var buildVersion string

var version = resolveVersion(buildVersion, debug.ReadBuildInfo)

// resolveVersion prefers an ldflags version, then a tagged module version,
// then the short VCS revision. "dev" is used when none is known.
func resolveVersion(override string, read func() (*debug.BuildInfo, bool)) string {
	if override != "" {
		return override
	}

	info, ok := read()
	if !ok || info == nil {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	vcs := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		if name, found := strings.CutPrefix(s.Key, "vcs."); found {
			vcs[name] = s.Value
		}
	}

	rev := vcs["revision"]
	if rev == "" {
		return "dev"
	}
	rev = rev[:min(len(rev), 7)]
	if vcs["modified"] == "true" {
		rev += "-dirty"
	}
	return rev
}
