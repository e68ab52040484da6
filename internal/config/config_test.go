package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs([]string{"-data", "charts.yaml"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DataPath != "charts.yaml" {
		t.Fatalf("expected data path, got %q", cfg.App.DataPath)
	}
	if cfg.App.Reload != defaultReload {
		t.Fatalf("expected default reload, got %s", cfg.App.Reload)
	}
	if cfg.App.BarHeight != 0 || cfg.App.RandomColors || cfg.Logging.Trace {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
	if cfg.Flags["data"] != "charts.yaml" {
		t.Fatalf("expected data flag recorded, got %q", cfg.Flags["data"])
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	env := []string{
		envDataPath + "=env.yaml",
		envBarHeight + "=32",
		envWidth + "=100",
		envShowFooter + "=true",
		envReload + "=5s",
		envRandomColors + "=1",
		envTrace + "=true",
		envLogFile + "=trace.log",
		envHeight + "=not-a-number",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DataPath != "env.yaml" || cfg.App.BarHeight != 32 || cfg.App.Width != 100 {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
	if !cfg.App.ShowFooter || !cfg.App.RandomColors || cfg.App.Reload != 5*time.Second {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
	if cfg.App.Height != 0 {
		t.Fatalf("expected invalid height env ignored, got %d", cfg.App.Height)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "trace.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"-bar-height", "8"}, []string{envBarHeight + "=32"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.BarHeight != 8 {
		t.Fatalf("expected flag to win, got %d", cfg.App.BarHeight)
	}
}

func TestPositionalDataPath(t *testing.T) {
	cfg, err := LoadArgs([]string{"-footer", "charts.json"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DataPath != "charts.json" {
		t.Fatalf("expected positional data path, got %q", cfg.App.DataPath)
	}
}

func TestLoadArgsRejectsNegativeValues(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "-1"},
		{"-height", "-1"},
		{"-bar-height", "-4"},
		{"-reload", "0s"},
	} {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"-nope"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := LoadArgs(nil, nil)
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "data file") {
		t.Fatalf("expected missing data error, got %v", err)
	}
	cfg, _ = LoadArgs([]string{"-data", "c.yaml", "-format", "gif"}, nil)
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected bad format error")
	}
	cfg, _ = LoadArgs([]string{"-data", "c.yaml", "-format", "png"}, nil)
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
