package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-stackbar/internal/chart"
	"github.com/atomicstack/tmux-stackbar/internal/compose"
	"github.com/atomicstack/tmux-stackbar/internal/theme"
)

func exportSeries() []chart.Series {
	return []chart.Series{
		{Title: "Disk", Segments: []chart.Segment{{Label: "used", Value: 30}, {Label: "free", Value: 70, Color: "not-a-color"}}},
		{Title: "Services", Segments: []chart.Segment{{Label: "api", Value: 1}, {Label: "db", Value: 2}, {Label: "cache", Value: 3}}},
		{Title: "Nothing"},
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": SVG, "svg": SVG, "PNG": PNG, " png ": PNG}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestFormatForPath(t *testing.T) {
	if FormatForPath("out/chart.PNG", SVG) != PNG {
		t.Fatalf("expected png from extension")
	}
	if FormatForPath("chart", PNG) != PNG {
		t.Fatalf("expected default without extension")
	}
}

func TestSurfaceRecordsGeometry(t *testing.T) {
	c := compose.New(compose.Options{Series: exportSeries()}, nil)
	s := NewSurface(232, theme.DefaultPalette())
	frame := c.Render(s)

	if frame.Registry.Len() != 5 {
		t.Fatalf("expected 5 registered segments, got %d", frame.Registry.Len())
	}
	first := s.ops[frame.Registry.Entries()[0].Element.(int)]
	second := s.ops[frame.Registry.Entries()[1].Element.(int)]
	if first.x != margin || first.w != 60 {
		t.Fatalf("expected first segment at margin with width 60, got %#v", first)
	}
	if second.x != margin+60 || second.w != 140 {
		t.Fatalf("expected second segment to follow, got %#v", second)
	}
	if second.color != theme.DefaultPalette().Neutral {
		t.Fatalf("expected invalid color replaced by neutral, got %q", second.color)
	}
	if first.h != compose.DefaultBarThickness {
		t.Fatalf("expected bar thickness %d, got %d", compose.DefaultBarThickness, first.h)
	}
	if s.Height() <= 3*compose.DefaultBarThickness {
		t.Fatalf("expected height to include headers and legend, got %d", s.Height())
	}
}

func TestWriteSVG(t *testing.T) {
	c := compose.New(compose.Options{Series: exportSeries()}, nil)
	var buf bytes.Buffer
	if err := Write(&buf, c, 400, SVG); err != nil {
		t.Fatalf("write svg: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("expected svg document, got %q", out[:min(len(out), 80)])
	}
	for _, text := range []string{"Disk", "30/100", "cache"} {
		if !strings.Contains(out, text) {
			t.Fatalf("expected %q in svg output", text)
		}
	}
}

func TestWriteFilePNG(t *testing.T) {
	c := compose.New(compose.Options{Series: exportSeries()}, nil)
	path := filepath.Join(t.TempDir(), "out", "chart.png")
	if err := WriteFile(path, c, 300, PNG); err != nil {
		t.Fatalf("write png: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read png: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatalf("expected png signature")
	}
}
