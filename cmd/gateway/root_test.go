package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"brainball/api/internal/config"
)

func TestNewLogger_Level(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"nonsense", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, c := range cases {
		if got := newLogger(c.in).GetLevel(); got != c.want {
			t.Fatalf("newLogger(%q) level=%v, want %v", c.in, got, c.want)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != version {
		t.Fatalf("version output %q, want %q", got, version)
	}
}

func TestRootCmd_BadConfigPathFails(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"check", "--config", "/nonexistent/gateway.yaml"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestOverlayFlags(t *testing.T) {
	root := newRootCmd()
	for _, kv := range [][2]string{
		{"addr", ":9090"},
		{"backend", "elsewhere:50051"},
		{"deadline", "750ms"},
		{"log-level", "debug"},
	} {
		if err := root.PersistentFlags().Set(kv[0], kv[1]); err != nil {
			t.Fatalf("set --%s: %v", kv[0], err)
		}
	}
	cfg := config.Default()
	overlayFlags(root, &cfg)
	if cfg.Addr != ":9090" || cfg.BackendAddr != "elsewhere:50051" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected cfg after overlay: %+v", cfg)
	}
	if time.Duration(cfg.RequestDeadline) != 750*time.Millisecond {
		t.Fatalf("deadline=%v", cfg.RequestDeadline)
	}
}

func TestOverlayFlags_UnsetFlagsLeaveConfigAlone(t *testing.T) {
	root := newRootCmd()
	cfg := config.Default()
	overlayFlags(root, &cfg)
	def := config.Default()
	if cfg.Addr != def.Addr || cfg.BackendAddr != def.BackendAddr ||
		cfg.RequestDeadline != def.RequestDeadline || cfg.LogLevel != def.LogLevel {
		t.Fatalf("overlay without set flags changed config: %+v", cfg)
	}
}
