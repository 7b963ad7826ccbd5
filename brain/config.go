package brain

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Config stores the runtime parameters of the visualization.
// The network topology is not configurable; see LayerSize and LayerCount.
type Config struct {
	Brain  BrainConfig
	Window WindowConfig
	Grid   GridConfig
	Cell   CellConfig
	Visual VisualConfig
}

// BrainConfig holds parameters for constructing and driving the network.
type BrainConfig struct {
	Seed        uint64  `ini:"seed"`        // 0 means seed from the clock
	InputValue  float64 `ini:"input_value"` // Constant fed to every input neuron each frame
	Accumulator string  `ini:"accumulator"` // "carry" or "reset"
	Activation  string  `ini:"activation"`  // Name in ActivationFunctions
}

// WindowConfig holds window and loop parameters.
type WindowConfig struct {
	Width  int    `ini:"width"`
	Height int    `ini:"height"`
	Title  string `ini:"title"`
	TPS    int    `ini:"tps"`
}

// GridConfig holds the background grid layout.
type GridConfig struct {
	Width           int     `ini:"width"`  // Cells across
	Height          int     `ini:"height"` // Cells down
	CellSize        float64 `ini:"cell_size"`
	BorderThickness float64 `ini:"border_thickness"`
	FillColor       string  `ini:"fill_color"`
	BorderColor     string  `ini:"border_color"`
}

// CellConfig holds the animated cell parameters.
type CellConfig struct {
	Radius          float64 `ini:"radius"`
	BorderThickness float64 `ini:"border_thickness"`
	FillColor       string  `ini:"fill_color"`
	BorderColor     string  `ini:"border_color"`
	FadeStep        float64 `ini:"fade_step"` // Added to each channel per frame
}

// VisualConfig holds the brain panel layout.
type VisualConfig struct {
	NeuronRadius        float64 `ini:"neuron_radius"`
	NeuronSpacing       float64 `ini:"neuron_spacing"`
	NeuronColor         string  `ini:"neuron_color"`
	NeuronBorderColor   string  `ini:"neuron_border_color"`
	NeuronBorderWidth   float64 `ini:"neuron_border_width"`
	X                   float64 `ini:"x"`
	Y                   float64 `ini:"y"`
	BackdropMargin      float64 `ini:"backdrop_margin"`
	BackdropColor       string  `ini:"backdrop_color"`
	BackdropBorderColor string  `ini:"backdrop_border_color"`
	BackdropBorderWidth float64 `ini:"backdrop_border_width"`
}

// DefaultConfig returns the configuration of the reference visualization.
func DefaultConfig() *Config {
	return &Config{
		Brain: BrainConfig{
			InputValue:  0.5,
			Accumulator: "carry",
			Activation:  DefaultActivation,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "cellbrain",
			TPS:    60,
		},
		Grid: GridConfig{
			Width:           60,
			Height:          40,
			CellSize:        40,
			BorderThickness: 1,
			FillColor:       "#808080",
			BorderColor:     "#404040",
		},
		Cell: CellConfig{
			Radius:          10,
			BorderThickness: 2,
			FillColor:       "#000000",
			BorderColor:     "#404040",
			FadeStep:        0.01,
		},
		Visual: VisualConfig{
			NeuronRadius:        10,
			NeuronSpacing:       40,
			NeuronColor:         "#cccccc",
			NeuronBorderColor:   "#000000",
			NeuronBorderWidth:   2,
			X:                   500,
			Y:                   -200,
			BackdropMargin:      30,
			BackdropColor:       "#808080",
			BackdropBorderColor: "#000000",
			BackdropBorderWidth: 2,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file.
// Keys missing from the file keep their DefaultConfig values.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return mapConfig(cfg)
}

// ParseConfig loads configuration parameters from INI-formatted bytes.
func ParseConfig(data []byte) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return mapConfig(cfg)
}

func mapConfig(cfg *ini.File) (*Config, error) {
	config := DefaultConfig()

	if err := cfg.Section("Brain").StrictMapTo(&config.Brain); err != nil {
		return nil, fmt.Errorf("failed to map [Brain] section: %w", err)
	}
	if err := cfg.Section("Window").StrictMapTo(&config.Window); err != nil {
		return nil, fmt.Errorf("failed to map [Window] section: %w", err)
	}
	if err := cfg.Section("Grid").StrictMapTo(&config.Grid); err != nil {
		return nil, fmt.Errorf("failed to map [Grid] section: %w", err)
	}
	if err := cfg.Section("Cell").StrictMapTo(&config.Cell); err != nil {
		return nil, fmt.Errorf("failed to map [Cell] section: %w", err)
	}
	if err := cfg.Section("BrainVisual").StrictMapTo(&config.Visual); err != nil {
		return nil, fmt.Errorf("failed to map [BrainVisual] section: %w", err)
	}

	config.Brain.Accumulator = strings.ToLower(cleanIniString(config.Brain.Accumulator))
	config.Brain.Activation = strings.ToLower(cleanIniString(config.Brain.Activation))
	config.Window.Title = cleanIniString(config.Window.Title)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for values the visualization cannot use.
// Color strings are validated by the scene package when they are parsed.
func (c *Config) Validate() error {
	switch c.Brain.Accumulator {
	case "carry", "reset":
	default:
		return fmt.Errorf("config error: invalid accumulator '%s', must be one of 'carry', 'reset'", c.Brain.Accumulator)
	}
	if _, err := GetActivation(c.Brain.Activation); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config error: window width and height must be positive")
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("config error: tps must be positive")
	}

	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("config error: grid width and height cannot be negative")
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("config error: grid cell_size must be positive")
	}
	if c.Grid.BorderThickness < 0 {
		return fmt.Errorf("config error: grid border_thickness cannot be negative")
	}

	if c.Cell.Radius <= 0 {
		return fmt.Errorf("config error: cell radius must be positive")
	}
	if c.Cell.BorderThickness < 0 {
		return fmt.Errorf("config error: cell border_thickness cannot be negative")
	}
	if c.Cell.FadeStep < 0 || c.Cell.FadeStep > 1 {
		return fmt.Errorf("config error: cell fade_step must be between 0 and 1")
	}

	if c.Visual.NeuronRadius <= 0 {
		return fmt.Errorf("config error: neuron_radius must be positive")
	}
	if c.Visual.NeuronSpacing <= 0 {
		return fmt.Errorf("config error: neuron_spacing must be positive")
	}
	if c.Visual.NeuronBorderWidth < 0 || c.Visual.BackdropBorderWidth < 0 {
		return fmt.Errorf("config error: border widths cannot be negative")
	}
	if c.Visual.BackdropMargin < 0 {
		return fmt.Errorf("config error: backdrop_margin cannot be negative")
	}
	return nil
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
