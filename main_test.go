package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/tmux-stackbar/internal/app"
	"github.com/atomicstack/tmux-stackbar/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DataPath:   "charts.yaml",
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Reload:     time.Second,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"data":   "charts.yaml",
			"width":  "80",
			"height": "24",
			"footer": "true",
		},
		Args: []string{"-data", "charts.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["data"] != "charts.yaml" {
		t.Fatalf("expected data flag %q, got %v", "charts.yaml", flagsValue["data"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if payload["mode"] != "interactive" {
		t.Fatalf("expected interactive mode, got %v", payload["mode"])
	}
	data, ok := payload["data"].(dataFileDetails)
	if !ok || !filepath.IsAbs(data.Path) || data.Error == "" {
		t.Fatalf("expected resolved missing data file, got %#v", payload["data"])
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestStartupTracePayloadExportMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.yaml")
	if err := os.WriteFile(path, []byte("charts: []\n"), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}
	cfg := config.Config{App: app.Config{DataPath: path, ExportPath: "out.svg"}}
	payload := startupTracePayload(cfg)
	if payload["mode"] != "export" {
		t.Fatalf("expected export mode, got %v", payload["mode"])
	}
	if _, ok := payload["tty"]; ok {
		t.Fatalf("expected no tty probe in export mode")
	}
	data := payload["data"].(dataFileDetails)
	if data.Error != "" || data.Size == 0 {
		t.Fatalf("expected existing data file details, got %#v", data)
	}
}
