package cmd

import (
	"fmt"
	"strings"

	"equipctl/internal/factory"

	"github.com/spf13/cobra"
)

// completeTypeFlag provides shell completion for the factory --type flag
func completeTypeFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var kinds []string
	for _, k := range factory.Kinds() {
		kinds = append(kinds, string(k))
	}
	return kinds, cobra.ShellCompDirectiveNoFileComp
}

func newFactoryCmd(opts *rootOptions) *cobra.Command {
	var (
		kind      string
		name      string
		ram       string
		processor string
	)

	cmd := &cobra.Command{
		Use:   "factory",
		Short: "Build a notebook, desktop or server from a type tag",
		Long: `Asks the equipment factory for a variant by type tag and prints its
description. The tag is matched exactly (case-sensitive): Notebook, Desktop
or Server. Any other tag fails with "invalid equipment type".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order := opts.cfg.Demo.Factory
			if cmd.Flags().Changed("type") {
				order.Type = kind
			}
			if cmd.Flags().Changed("name") {
				order.Name = name
			}
			if cmd.Flags().Changed("ram") {
				order.RAM = ram
			}
			if cmd.Flags().Changed("processor") {
				order.Processor = processor
			}

			opts.renderer.Title("Factory")

			variant, err := factory.CreateEquipment(order.Type, order.Name, order.RAM, order.Processor)
			if err != nil {
				return fmt.Errorf("failed to create equipment (valid types: %s): %w", validKinds(), err)
			}

			opts.renderer.Line("%s", variant.Describe())
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "Equipment type: Notebook, Desktop or Server (default: from config)")
	cmd.Flags().StringVar(&name, "name", "", "Equipment name (default: from config)")
	cmd.Flags().StringVar(&ram, "ram", "", "Installed RAM, e.g. 16GB (default: from config)")
	cmd.Flags().StringVar(&processor, "processor", "", "Processor, e.g. i7 (default: from config)")
	_ = cmd.RegisterFlagCompletionFunc("type", completeTypeFlag)

	return cmd
}

func validKinds() string {
	kinds := factory.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
