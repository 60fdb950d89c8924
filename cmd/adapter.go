package cmd

import (
	"equipctl/internal/adapters"

	"github.com/spf13/cobra"
)

func newAdapterCmd(opts *rootOptions) *cobra.Command {
	flags := &recordFlags{}

	cmd := &cobra.Command{
		Use:   "adapter",
		Short: "Add equipment to the legacy inventory through the modern interface",
		Long: `Wraps a legacy inventory (AddItem/ListItems) in an adapter exposing
AddEquipment/ListEquipment, adds one record through the adapter and lists
the inventory through the adapter as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := flags.apply(cmd, opts.cfg.Demo.Adapter)

			legacy := adapters.NewLegacyInventory()
			var inv adapters.ModernInventory = adapters.NewInventoryAdapter(legacy)

			inv.AddEquipment(rec.Name, rec.Kind, rec.Status)

			opts.renderer.Title("Adapter")
			opts.renderer.Records(inv.ListEquipment())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
