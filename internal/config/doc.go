// Package config provides configuration management for equipctl.
//
// Configuration is loaded from YAML files and merged in a fixed order, with
// later sources overriding earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (built into the binary)
//     - Reproduces the sample data of the pattern demos
//
//  2. User Configuration (~/.config/equipctl/config.yaml)
//     - Personal preferences such as log level or colors
//
//  3. Project Configuration (./.equipctl/config.yaml)
//     - Settings shared by everyone working in a directory
//
//  4. Explicit file (--config flag)
//     - Applied last; unlike the other layers it must exist
//
// # Configuration Structure
//
//	globalSettings:
//	  logLevel: info        # debug, info, warn or error
//	  color: true           # style console output
//
//	demo:
//	  adapter:
//	    name: "Servidor Dell"
//	    kind: "Servidor"
//	    status: "disponible"
//	  observer:
//	    name: "Notebook HP"
//	    kind: "Portátil"
//	    status: "disponible"
//	  observerNewStatus: "en reparación"
//	  factory:
//	    type: "Notebook"
//	    name: "Dell XPS"
//	    ram: "16GB"
//	    processor: "i7"
//	  singleton:
//	    name: "Notebook HP"
//	    kind: "Portátil"
//	    status: "disponible"
//
// # Merging
//
// Non-empty values in an overlay replace the base value field by field, so a
// file may override only the observer's new status and keep everything else.
// color is a pointer so that an explicit false wins over the default.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(cfg.Demo.Factory.Type) // Notebook
package config
