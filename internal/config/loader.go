package config

import (
	"fmt"
	"os"
	"path/filepath"

	"equipctl/internal/equipment"
	"equipctl/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/equipctl"
	projectConfigDir = ".equipctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the configuration by layering default, user and project
// settings, then explicitPath if it is not empty.
func LoadConfig(explicitPath string) (EquipctlConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else {
		config, err = mergeOptionalFile(config, userConfigPath)
		if err != nil {
			return EquipctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else {
		config, err = mergeOptionalFile(config, projectConfigPath)
		if err != nil {
			return EquipctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	// 4. Explicit configuration must exist
	if explicitPath != "" {
		explicitConfig, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return EquipctlConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, explicitConfig)
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func mergeOptionalFile(base EquipctlConfig, path string) (EquipctlConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return EquipctlConfig{}, err
	}
	logging.Debug("Config", "Merged configuration from %s", path)
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads an EquipctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (EquipctlConfig, error) {
	var config EquipctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return EquipctlConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return EquipctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay EquipctlConfig) EquipctlConfig {
	merged := base

	if overlay.GlobalSettings.LogLevel != "" {
		merged.GlobalSettings.LogLevel = overlay.GlobalSettings.LogLevel
	}
	if overlay.GlobalSettings.Color != nil {
		color := *overlay.GlobalSettings.Color
		merged.GlobalSettings.Color = &color
	}

	merged.Demo.Adapter = mergeRecord(base.Demo.Adapter, overlay.Demo.Adapter)
	merged.Demo.Observer = mergeRecord(base.Demo.Observer, overlay.Demo.Observer)
	merged.Demo.Singleton = mergeRecord(base.Demo.Singleton, overlay.Demo.Singleton)
	if overlay.Demo.ObserverNewStatus != "" {
		merged.Demo.ObserverNewStatus = overlay.Demo.ObserverNewStatus
	}

	f := overlay.Demo.Factory
	if f.Type != "" {
		merged.Demo.Factory.Type = f.Type
	}
	if f.Name != "" {
		merged.Demo.Factory.Name = f.Name
	}
	if f.RAM != "" {
		merged.Demo.Factory.RAM = f.RAM
	}
	if f.Processor != "" {
		merged.Demo.Factory.Processor = f.Processor
	}

	return merged
}

func mergeRecord(base, overlay equipment.Record) equipment.Record {
	if overlay.Name != "" {
		base.Name = overlay.Name
	}
	if overlay.Kind != "" {
		base.Kind = overlay.Kind
	}
	if overlay.Status != "" {
		base.Status = overlay.Status
	}
	return base
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
