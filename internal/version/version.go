package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

const (
	defaultModule  = "pkt.systems/coinflip"
	unknownVersion = "v0.0.0-unknown"
	dirtySuffix    = "+dirty"
)

// buildVersion is set via -ldflags "-X pkt.systems/coinflip/internal/version.buildVersion=...".
var buildVersion = ""

// Info describes the running coinflip build.
type Info struct {
	Module    string
	Version   string
	GoVersion string
}

// String renders the line printed by `coinflip version`.
func (i Info) String() string {
	return fmt.Sprintf("coinflip %s (%s, %s)", i.Version, i.Module, i.GoVersion)
}

// Read reports the running build. The +dirty marker of a modified checkout
// is kept only when includeDirty is set.
func Read(includeDirty bool) Info {
	info, _ := debug.ReadBuildInfo()
	return fromBuildInfo(info, includeDirty)
}

func fromBuildInfo(info *debug.BuildInfo, includeDirty bool) Info {
	out := Info{
		Module:    defaultModule,
		Version:   unknownVersion,
		GoVersion: runtime.Version(),
	}
	if info != nil {
		if path := strings.TrimSpace(info.Main.Path); path != "" {
			out.Module = path
		}
		if info.GoVersion != "" {
			out.GoVersion = info.GoVersion
		}
	}
	out.Version = resolveVersion(info, includeDirty)
	return out
}

// resolveVersion prefers the linker-stamped version, then the module
// version, then a pseudo version built from VCS settings.
func resolveVersion(info *debug.BuildInfo, includeDirty bool) string {
	candidates := []string{buildVersion}
	if info != nil {
		if v := strings.TrimSpace(info.Main.Version); v != "(devel)" {
			candidates = append(candidates, v)
		}
		candidates = append(candidates, pseudoVersion(info))
	}
	for _, v := range candidates {
		if v = strings.TrimSpace(v); v != "" {
			if !includeDirty {
				v = strings.TrimSuffix(v, dirtySuffix)
			}
			return v
		}
	}
	return unknownVersion
}

// pseudoVersion formats vcs.time and vcs.revision like a Go pseudo version,
// with +dirty appended for modified checkouts.
func pseudoVersion(info *debug.BuildInfo) string {
	var revision, vcsTime string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" || vcsTime == "" {
		return ""
	}
	parsed, err := time.Parse(time.RFC3339, vcsTime)
	if err != nil {
		return ""
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	v := "v0.0.0-" + parsed.UTC().Format("20060102150405") + "-" + revision
	if modified {
		v += dirtySuffix
	}
	return v
}
