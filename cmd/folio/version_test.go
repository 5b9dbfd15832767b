package main

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"
)

func TestReadBuildInfo(t *testing.T) {
	t.Run("no build info", func(t *testing.T) {
		info := readBuildInfo(nil)
		if info.Version != "(devel)" || info.Commit != "unknown" || info.Date != "unknown" {
			t.Errorf("unexpected defaults: %+v", info)
		}
		if info.GoVersion == "" {
			t.Error("expected the runtime Go version")
		}
	})

	t.Run("vcs settings", func(t *testing.T) {
		bi := &debug.BuildInfo{
			GoVersion: "go1.25.1",
			Main:      debug.Module{Version: "v1.2.3"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
				{Key: "vcs.modified", Value: "true"},
			},
		}
		info := readBuildInfo(bi)
		want := buildInfo{
			Version:   "v1.2.3",
			Commit:    "0123456",
			Date:      "2026-01-02T03:04:05Z",
			GoVersion: "go1.25.1",
			Modified:  true,
		}
		if info != want {
			t.Errorf("got %+v, want %+v", info, want)
		}
	})

	t.Run("ldflags win", func(t *testing.T) {
		oldVersion, oldCommit := version, commit
		t.Cleanup(func() { version, commit = oldVersion, oldCommit })
		version, commit = "v9.9.9", "feedbee"

		info := readBuildInfo(&debug.BuildInfo{
			Main:     debug.Module{Version: "v1.0.0"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789"}},
		})
		if info.Version != "v9.9.9" || info.Commit != "feedbee" {
			t.Errorf("ldflags not preferred: %+v", info)
		}
	})
}

func TestNewVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewVersionCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"folio version", "commit:", "built:", "go:"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got %q", want, output)
		}
	}
}
