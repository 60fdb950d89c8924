package config

import "equipctl/internal/equipment"

// GetDefaultConfig returns the built-in configuration. The demo data matches
// the classic examples: a Dell server behind the adapter, an HP notebook
// going into repair, and a Dell XPS notebook from the factory.
func GetDefaultConfig() EquipctlConfig {
	color := true
	return EquipctlConfig{
		GlobalSettings: GlobalSettings{
			LogLevel: "info",
			Color:    &color,
		},
		Demo: DemoConfig{
			Adapter:           equipment.NewRecord("Servidor Dell", "Servidor", "disponible"),
			Observer:          equipment.NewRecord("Notebook HP", "Portátil", "disponible"),
			ObserverNewStatus: "en reparación",
			Factory: FactorySpec{
				Type:      "Notebook",
				Name:      "Dell XPS",
				RAM:       "16GB",
				Processor: "i7",
			},
			Singleton: equipment.NewRecord("Notebook HP", "Portátil", "disponible"),
		},
	}
}
