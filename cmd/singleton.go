package cmd

import (
	"equipctl/internal/inventory"

	"github.com/spf13/cobra"
)

func newSingletonCmd(opts *rootOptions) *cobra.Command {
	flags := &recordFlags{}

	cmd := &cobra.Command{
		Use:   "singleton",
		Short: "Share one inventory across the whole process",
		Long: `Adds a record through one reference to the process-wide inventory and
lists it through a second, independently obtained reference. Both are the
same instance, so the record shows up in the listing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := flags.apply(cmd, opts.cfg.Demo.Singleton)

			writer := inventory.GetInstance()
			writer.AddEquipment(rec.Name, rec.Kind, rec.Status)

			reader := inventory.GetInstance()

			opts.renderer.Title("Singleton")
			opts.renderer.Line("Same inventory instance: %t", writer == reader)
			opts.renderer.Records(reader.ListEquipment())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
