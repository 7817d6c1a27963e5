package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mecjd.yaml")
	if err := os.WriteFile(path, []byte("addr: :7000\nneighbors: 9\nlog_format: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f := &rootFlags{configPath: path}
	f.overrides.Addr = ":7001"

	cfg, err := resolveConfig(f)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Addr != ":7001" {
		t.Fatalf("flag must win over file, got %q", cfg.Addr)
	}
	if cfg.Neighbors != 9 || cfg.LogFormat != "json" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.MinkowskiP != 3 || cfg.PublicPrefix != "/public" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestResolveConfig_Errors(t *testing.T) {
	if _, err := resolveConfig(&rootFlags{configPath: "/does/not/exist.yaml"}); err == nil {
		t.Fatalf("expected load error")
	}
	f := &rootFlags{}
	f.overrides.LogFormat = "xml"
	if _, err := resolveConfig(f); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRootCmd_EnvDefaults(t *testing.T) {
	t.Setenv("MECJD_ADDR", ":6000")
	t.Setenv("MECJD_CORS_ORIGINS", "https://a.test, https://b.test")
	cmd := newRootCmd()
	if got := cmd.Flags().Lookup("addr").DefValue; got != ":6000" {
		t.Fatalf("addr default=%q", got)
	}
	origins, err := cmd.Flags().GetStringSlice("cors-origins")
	if err != nil || len(origins) != 2 {
		t.Fatalf("origins=%v err=%v", origins, err)
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for positional args")
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out.String(), "mecjd "+Version) {
		t.Fatalf("output=%q", out.String())
	}
}
