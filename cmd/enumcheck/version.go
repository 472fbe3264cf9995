package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version reports the enumcheck version: the module version for released
// installs, otherwise the VERSION file marked as a development build.
func Version() string {
	base := strings.TrimSpace(embeddedVersion)
	if info, ok := debug.ReadBuildInfo(); ok {
		return version(base, info)
	}
	return base
}

func version(base string, info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	if rev := revision(info); rev != "" {
		return "devel-" + base + "+" + rev
	}
	return "devel-" + base
}

// revision is the short VCS commit stamped into the binary, if any.
func revision(info *debug.BuildInfo) string {
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}
