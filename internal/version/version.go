// Package version reports the build revision of the commands.
package version

import "runtime/debug"

// Version is computed once from the embedded build info.
var Version = Get()

// Get returns the short VCS revision, "-dirty" suffixed for modified
// trees, or "dev" when no build info is available.
func Get() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	return fromSettings(info.Settings)
}

func fromSettings(settings []debug.BuildSetting) string {
	var revision, modified string
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}

	if revision == "" {
		return "dev"
	}

	if len(revision) > 7 {
		revision = revision[:7]
	}

	if modified == "true" {
		return revision + "-dirty"
	}
	return revision
}
