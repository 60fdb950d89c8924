package config

import "equipctl/internal/equipment"

// EquipctlConfig is the top-level configuration structure for equipctl.
type EquipctlConfig struct {
	GlobalSettings GlobalSettings `yaml:"globalSettings"`
	Demo           DemoConfig     `yaml:"demo"`
}

// GlobalSettings holds settings that apply to every command
type GlobalSettings struct {
	LogLevel string `yaml:"logLevel,omitempty"`
	Color    *bool  `yaml:"color,omitempty"`
}

// ColorEnabled reports whether styled output is wanted. Unset means yes.
func (g GlobalSettings) ColorEnabled() bool {
	return g.Color == nil || *g.Color
}

// DemoConfig holds the sample data each demo command starts from
type DemoConfig struct {
	Adapter           equipment.Record `yaml:"adapter"`
	Observer          equipment.Record `yaml:"observer"`
	ObserverNewStatus string           `yaml:"observerNewStatus,omitempty"`
	Factory           FactorySpec      `yaml:"factory"`
	Singleton         equipment.Record `yaml:"singleton"`
}

// FactorySpec describes the variant the factory demo builds
type FactorySpec struct {
	Type      string `yaml:"type,omitempty"`
	Name      string `yaml:"name,omitempty"`
	RAM       string `yaml:"ram,omitempty"`
	Processor string `yaml:"processor,omitempty"`
}
