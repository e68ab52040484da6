package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-stackbar/internal/app"
	"github.com/atomicstack/tmux-stackbar/internal/render/export"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDataPath     = "STACKBAR_DATA"
	envBarHeight    = "STACKBAR_BAR_HEIGHT"
	envWidth        = "STACKBAR_WIDTH"
	envHeight       = "STACKBAR_HEIGHT"
	envShowFooter   = "STACKBAR_FOOTER"
	envReload       = "STACKBAR_RELOAD"
	envExportPath   = "STACKBAR_EXPORT"
	envExportFormat = "STACKBAR_FORMAT"
	envRandomColors = "STACKBAR_RANDOM_COLORS"
	envTrace        = "STACKBAR_TRACE"
	envLogFile      = "STACKBAR_LOG_FILE"
)

const defaultReload = 1500 * time.Millisecond

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("stackbar", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	data := fs.String("data", envOrDefault(env, envDataPath, ""), "path to the YAML or JSON chart document")
	barHeight := fs.Int("bar-height", envOrInt(env, envBarHeight, 0), "bar thickness in pixels (0 uses the document value, then 16)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "viewport width in cells, or image width in pixels when exporting (0 uses the default)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "show the key help footer")
	reload := fs.Duration("reload", envOrDuration(env, envReload, defaultReload), "interval between data file checks")
	exportPath := fs.String("export", envOrDefault(env, envExportPath, ""), "write the charts to this image file and exit")
	format := fs.String("format", envOrDefault(env, envExportFormat, ""), "export format: svg or png (defaults to the file extension)")
	randomColors := fs.Bool("random-colors", envOrBool(env, envRandomColors, false), "pick fallback colors at random instead of by position")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *barHeight < 0 {
		return Config{}, fmt.Errorf("bar-height must be >= 0 (got %d)", *barHeight)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *reload <= 0 {
		return Config{}, fmt.Errorf("reload must be > 0 (got %s)", *reload)
	}
	dataPath := *data
	if dataPath == "" && fs.NArg() > 0 {
		dataPath = fs.Arg(0)
	}

	cfg := Config{
		App: app.Config{
			DataPath:     dataPath,
			BarHeight:    *barHeight,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Reload:       *reload,
			ExportPath:   *exportPath,
			ExportFormat: *format,
			RandomColors: *randomColors,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"data":         dataPath,
			"barHeight":    strconv.Itoa(*barHeight),
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"reload":       reload.String(),
			"export":       *exportPath,
			"format":       *format,
			"randomColors": strconv.FormatBool(*randomColors),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.DataPath == "" {
		return errors.New("a data file is required (-data or " + envDataPath + ")")
	}
	if cfg.App.ExportFormat != "" {
		if _, err := export.ParseFormat(cfg.App.ExportFormat); err != nil {
			return err
		}
	}
	return nil
}
