package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/apex/log"

	"github.com/lgbarn/hexchess-go/internal/chess"
	hexerrors "github.com/lgbarn/hexchess-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != Text {
		t.Errorf("Format = %v, want %v", cfg.Format, Text)
	}
	if cfg.Glyphs != Letters {
		t.Errorf("Glyphs = %v, want %v", cfg.Glyphs, Letters)
	}
	if !cfg.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
	if cfg.ShowMoves {
		t.Error("ShowMoves should be false by default")
	}
}

// TestPerftConfig_Defaults verifies PerftConfig has sensible defaults
func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Depth != 0 {
		t.Errorf("Depth = %d, want 0", cfg.Depth)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
	if cfg.Divide || cfg.CountUnique {
		t.Error("Divide and CountUnique should be false by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

// TestPerftConfig_Validate verifies perft config validation
func TestPerftConfig_Validate(t *testing.T) {
	valid := func() PerftConfig { return *NewPerftConfig() }

	tests := []struct {
		name    string
		mutate  func(*PerftConfig)
		wantErr bool
	}{
		{"defaults", func(*PerftConfig) {}, false},
		{"max depth", func(p *PerftConfig) { p.Depth = MaxPerftDepth }, false},
		{"negative depth", func(p *PerftConfig) { p.Depth = -1 }, true},
		{"depth too large", func(p *PerftConfig) { p.Depth = MaxPerftDepth + 1 }, true},
		{"no workers", func(p *PerftConfig) { p.Workers = 0 }, true},
		{"zero cache depth", func(p *PerftConfig) { p.CacheMinDepth = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, hexerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestLogConfig verifies level parsing and handler selection
func TestLogConfig(t *testing.T) {
	tests := []struct {
		level   string
		format  LogFormat
		wantErr bool
	}{
		{"debug", LogText, false},
		{"info", LogJSON, false},
		{"warn", LogText, false},
		{"error", LogJSON, false},
		{"loud", LogText, true},
		{"info", LogFormat(7), true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := LogConfig{Level: tt.level, Format: tt.format}
			var buf bytes.Buffer
			logger, err := cfg.NewLogger(&buf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			want, _ := log.ParseLevel(tt.level)
			if logger.Level != want {
				t.Errorf("Level = %v, want %v", logger.Level, want)
			}
		})
	}
}

// TestLogConfig_JSON verifies that the JSON handler writes JSON lines
func TestLogConfig_JSON(t *testing.T) {
	cfg := LogConfig{Level: "info", Format: LogJSON}
	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	if err != nil {
		t.Fatal(err)
	}

	logger.WithField("nodes", 42).Info("perft divide")
	logger.Debug("dropped")

	out := buf.String()
	if !strings.Contains(out, `"message":"perft divide"`) || !strings.Contains(out, `"nodes":42`) {
		t.Errorf("JSON log output = %q", out)
	}
	if strings.Contains(out, "dropped") {
		t.Error("debug entry written at info level")
	}
}

// TestConfig_Defaults verifies that Config assembles the sub-configs
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Output.Format != Text {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, Text)
	}
	if cfg.Store.Enabled || cfg.Store.Persistent() {
		t.Error("Store should be disabled by default")
	}
	if cfg.Colour != chess.White {
		t.Errorf("Colour = %v, want White", cfg.Colour)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

// TestConfig_Validate verifies that each section is checked
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log", func(c *Config) { c.Log.Level = "chatty" }},
		{"perft", func(c *Config) { c.Perft.Depth = -3 }},
		{"output", func(c *Config) { c.Output.Format = OutputFormat(9) }},
		{"glyphs", func(c *Config) { c.Output.Glyphs = GlyphStyle(9) }},
		{"load without dir", func(c *Config) { c.Store.Position = "opening" }},
		{"save in memory", func(c *Config) { c.Store.Enabled = true; c.Store.SaveAs = "opening" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, hexerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestStoreConfig_Validate verifies named positions are accepted on disk
func TestStoreConfig_Validate(t *testing.T) {
	cfg := NewConfigBuilder().WithCache(t.TempDir()).Build()
	cfg.Store.Position = "opening"
	cfg.Store.SaveAs = "next"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := NewConfigBuilder().
		WithColour(chess.Black).
		WithPerft(3, true).
		WithWorkers(2).
		WithUniqueCount(true).
		WithCache("").
		WithOutputFormat(JSON).
		WithGlyphs(Symbols).
		ShowMoves(true).
		ShowBoard(false).
		WithLogLevel("debug").
		WithLogFormat(LogJSON).
		WithOutput(&out).
		WithLogOutput(&logs).
		Build()

	if cfg.Colour != chess.Black {
		t.Errorf("Colour = %v, want Black", cfg.Colour)
	}
	if cfg.Perft.Depth != 3 || !cfg.Perft.Divide || cfg.Perft.Workers != 2 || !cfg.Perft.CountUnique {
		t.Errorf("Perft = %+v", cfg.Perft)
	}
	if !cfg.Store.Enabled || cfg.Store.Persistent() {
		t.Errorf("Store = %+v, want in-memory cache", cfg.Store)
	}
	if cfg.Output.Format != JSON || cfg.Output.Glyphs != Symbols || !cfg.Output.ShowMoves || cfg.Output.ShowBoard {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != LogJSON {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.OutputFile != &out || cfg.LogFile != &logs {
		t.Error("writers not set")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
