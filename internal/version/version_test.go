package version

import (
	"runtime/debug"
	"strings"
	"testing"
	"time"
)

func vcsInfo(modified bool) *debug.BuildInfo {
	ts := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
	value := "false"
	if modified {
		value = "true"
	}
	return &debug.BuildInfo{
		GoVersion: "go1.25.2",
		Main:      debug.Module{Path: "pkt.systems/coinflip", Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "1234567890abcdef"},
			{Key: "vcs.time", Value: ts.Format(time.RFC3339)},
			{Key: "vcs.modified", Value: value},
		},
	}
}

func TestReadPrefersBuildVersion(t *testing.T) {
	old := buildVersion
	buildVersion = "v1.2.3+dirty"
	t.Cleanup(func() { buildVersion = old })

	if got := fromBuildInfo(vcsInfo(false), false).Version; got != "v1.2.3" {
		t.Fatalf("expected build version without dirty marker, got %q", got)
	}
	if got := fromBuildInfo(vcsInfo(false), true).Version; got != "v1.2.3+dirty" {
		t.Fatalf("expected build version with dirty marker, got %q", got)
	}
}

func TestFromBuildInfoPseudoVersion(t *testing.T) {
	tests := []struct {
		name         string
		modified     bool
		includeDirty bool
		want         string
	}{
		{name: "clean", modified: false, includeDirty: true, want: "v0.0.0-20250102030405-1234567890ab"},
		{name: "dirty-kept", modified: true, includeDirty: true, want: "v0.0.0-20250102030405-1234567890ab+dirty"},
		{name: "dirty-stripped", modified: true, includeDirty: false, want: "v0.0.0-20250102030405-1234567890ab"},
	}
	for _, tc := range tests {
		got := fromBuildInfo(vcsInfo(tc.modified), tc.includeDirty)
		if got.Version != tc.want {
			t.Fatalf("%s: version = %q, want %q", tc.name, got.Version, tc.want)
		}
		if got.Module != "pkt.systems/coinflip" || got.GoVersion != "go1.25.2" {
			t.Fatalf("%s: unexpected info %+v", tc.name, got)
		}
	}
}

func TestFromBuildInfoModuleVersion(t *testing.T) {
	info := vcsInfo(true)
	info.Main.Version = "v0.4.0"
	if got := fromBuildInfo(info, false).Version; got != "v0.4.0" {
		t.Fatalf("expected module version, got %q", got)
	}
}

func TestFromBuildInfoWithoutInfo(t *testing.T) {
	got := fromBuildInfo(nil, true)
	if got.Version != unknownVersion || got.Module != defaultModule {
		t.Fatalf("unexpected info without build info: %+v", got)
	}
	if !strings.HasPrefix(got.String(), "coinflip v0.0.0-unknown (pkt.systems/coinflip, ") {
		t.Fatalf("unexpected version line %q", got.String())
	}
}
