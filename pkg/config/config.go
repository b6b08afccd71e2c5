package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the default name of the config file
const DefaultConfigName = ".scfmerge.yml"

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Schema: SchemaConfig{
			RootClass: "com.nokia.aiosc:AIOSC",
			// Structural containers present in every plan, never
			// configuration objects.
			ExcludedLeaves: []string{"AIOSC-1", "Device-1", "INTEGRATE-1"},
			AlarmClass:     "SupportedAlarm",
		},
		Report: ReportConfig{
			IgnoreClasses: []string{},
		},
	}
}

// LoadConfig loads the configuration.
// If a specific configFilePath is provided, it is used.
// If configFilePath is empty, it looks for the default config file in dir.
func LoadConfig(dir, configFilePath string) (*Config, error) {
	config := DefaultConfig()

	var loadPath string
	explicitPathProvided := configFilePath != ""

	if explicitPathProvided {
		loadPath = configFilePath
	} else {
		loadPath = filepath.Join(dir, DefaultConfigName)
	}

	data, err := os.ReadFile(loadPath)
	if err != nil {
		if os.IsNotExist(err) {
			if explicitPathProvided {
				// User specified a file that doesn't exist. This is an error.
				return nil, fmt.Errorf("config file not found at specified path: %s", loadPath)
			}
			// Default file doesn't exist. This is fine, use defaults.
			zap.S().Debugw("no default config file found, using default configuration", "path", loadPath)
			return config, nil
		}
		// Some other file reading error.
		return nil, fmt.Errorf("failed to read config file %s: %w", loadPath, err)
	}

	// Parse config file
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", loadPath, err)
	}

	return config, nil
}

// ShouldIgnoreClass checks if a class matches any of the report ignore patterns
func (c *ReportConfig) ShouldIgnoreClass(class string) bool {
	for _, pattern := range c.IgnoreClasses {
		if matched, _ := doublestar.Match(pattern, class); matched {
			return true
		}
	}
	return false
}

// OldLeaf maps a leaf name of the newer schema to its name in the older
// schema, defaulting to the same name.
func (c *RenameConfig) OldLeaf(leaf string) string {
	if old, ok := c.Objects[leaf]; ok {
		return old
	}
	return leaf
}

// OldParam maps a parameter name of the newer schema's object leaf to its
// name in the older schema, defaulting to the same name.
func (c *RenameConfig) OldParam(leaf, param string) string {
	if old, ok := c.Parameters[leaf][param]; ok {
		return old
	}
	return param
}
