package cmd

import (
	"equipctl/internal/observer"

	"github.com/spf13/cobra"
)

func newObserverCmd(opts *rootOptions) *cobra.Command {
	flags := &recordFlags{}
	var newStatuses []string

	cmd := &cobra.Command{
		Use:   "observer",
		Short: "Notify the support department when equipment changes status",
		Long: `Creates a piece of equipment, subscribes the support department to it and
changes its status once per --to flag. Support prints a line for every
change it is notified about; repeating the current status still notifies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := flags.apply(cmd, opts.cfg.Demo.Observer)
			statuses := newStatuses
			if !cmd.Flags().Changed("to") {
				statuses = []string{opts.cfg.Demo.ObserverNewStatus}
			}

			opts.renderer.Title("Observer")

			subject := observer.NewEquipment(rec.Name, rec.Kind, rec.Status)
			subject.AddObserver(observer.NewSupport(cmd.OutOrStdout()))

			for _, status := range statuses {
				subject.ChangeStatus(status)
			}

			opts.renderer.Line("Current status of %s: %s", subject.Name(), subject.Status())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringArrayVar(&newStatuses, "to", nil, "New status to set; repeat for several changes (default: from config)")
	return cmd
}
