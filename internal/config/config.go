package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Output     OutputConfig     `mapstructure:"output"`
	Extraction ExtractionConfig `mapstructure:"extraction"`
}

// OutputConfig holds report output settings
type OutputConfig struct {
	Dir      string   `mapstructure:"dir"`       // Output directory
	FileName string   `mapstructure:"file_name"` // Output file name (without extension)
	Formats  []string `mapstructure:"formats"`   // Reporters to run: excel, html, word, json
}

// ExtractionConfig holds extraction behavior settings
type ExtractionConfig struct {
	WarnAsError  bool `mapstructure:"warn_as_error"` // Promote UnusedKey/DuplicateHeader warnings to fatal errors
	StrictBounds bool `mapstructure:"strict_bounds"` // Loaded and printed only; extraction does not read it and always aborts on RangeOutOfBounds
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses sensible defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set sensible defaults
	setDefaults(v)

	// Determine config file to use
	if configPath == "" {
		configPath = "config.yaml"
	}

	// Set config file
	v.SetConfigFile(configPath)

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		// Check if it's just a file not found error
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			// Config file not found - use defaults
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Println("  Output: ./output")
			fmt.Println("==========================================")
		} else {
			// Config file found but has some other error
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Normalize paths
	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	// Create output directory if it doesn't exist
	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	// Output defaults
	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "sdl-report")
	v.SetDefault("output.formats", []string{"excel"})

	// Extraction defaults
	v.SetDefault("extraction.warn_as_error", false)
	v.SetDefault("extraction.strict_bounds", true)
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	// Normalize output directory
	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// HasFormat reports whether the given reporter format is enabled
func (c *Config) HasFormat(format string) bool {
	for _, f := range c.Output.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// OutputPath returns the full path for a report with the given
// extension (without the leading dot), e.g. OutputPath("xlsx")
func (c *Config) OutputPath(ext string) string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+"."+ext)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Check if output filename is not empty
	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}

	// Check at least one reporter format is configured
	if len(c.Output.Formats) == 0 {
		return fmt.Errorf("output.formats must contain at least one format")
	}

	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== SDL Recon Configuration ===")
	fmt.Printf("Output Directory: %s\n", c.Output.Dir)
	fmt.Printf("Output File:      %s\n", c.Output.FileName)
	fmt.Printf("Formats:          %v\n", c.Output.Formats)
	fmt.Printf("Warn As Error:    %v\n", c.Extraction.WarnAsError)
	fmt.Printf("Strict Bounds:    %v\n", c.Extraction.StrictBounds)
	fmt.Println("================================")
}
