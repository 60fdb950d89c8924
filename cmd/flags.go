package cmd

import (
	"equipctl/internal/equipment"

	"github.com/spf13/cobra"
)

// recordFlags are the --name/--kind/--status flags shared by several demos
type recordFlags struct {
	name   string
	kind   string
	status string
}

func (f *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Equipment name (default: from config)")
	cmd.Flags().StringVar(&f.kind, "kind", "", "Equipment kind (default: from config)")
	cmd.Flags().StringVar(&f.status, "status", "", "Equipment status (default: from config)")
}

// apply overrides base with every flag the user actually set, even to ""
func (f *recordFlags) apply(cmd *cobra.Command, base equipment.Record) equipment.Record {
	if cmd.Flags().Changed("name") {
		base.Name = f.name
	}
	if cmd.Flags().Changed("kind") {
		base.Kind = f.kind
	}
	if cmd.Flags().Changed("status") {
		base.Status = f.status
	}
	return base
}
