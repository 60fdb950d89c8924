package cmd

import (
	"fmt"
	"os"
	"strings"

	"equipctl/internal/color"
	"equipctl/internal/config"
	"equipctl/internal/render"
	"equipctl/pkg/logging"

	"github.com/spf13/cobra"
)

// For mocking in tests
var loadConfig = config.LoadConfig

// rootOptions holds the persistent flags and what PersistentPreRunE derives from them
type rootOptions struct {
	configPath string
	debug      bool
	noColor    bool
	output     string

	cfg      config.EquipctlConfig
	renderer *render.Renderer
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "equipctl",
		Short: "Explore classic design patterns on a toy equipment inventory",
		Long: `equipctl walks through four classic object-oriented design patterns,
each applied to a small in-memory equipment inventory:

  adapter    drive a legacy inventory through a modern interface
  observer   notify the support department when equipment changes status
  factory    build notebooks, desktops and servers from a type tag
  singleton  share one inventory across the whole process

Nothing is persisted; every run starts from the configured sample data.`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. an unknown equipment type)
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default layers ~/.config/equipctl/config.yaml and ./.equipctl/config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", render.FormatTable, "Output format for equipment lists (table, raw)")

	cmd.AddCommand(newAdapterCmd(opts))
	cmd.AddCommand(newObserverCmd(opts))
	cmd.AddCommand(newFactoryCmd(opts))
	cmd.AddCommand(newSingletonCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads configuration, initializes logging and builds the renderer
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	o.cfg = cfg

	level, ok := logging.ParseLevel(cfg.GlobalSettings.LogLevel)
	if o.debug {
		level = logging.LevelDebug
	}
	logging.Init(level, cmd.ErrOrStderr())
	if !ok {
		logging.Warn("CLI", "Unknown log level %q, using info", cfg.GlobalSettings.LogLevel)
	}

	switch strings.ToLower(os.Getenv("EQUIPCTL_THEME")) {
	case "dark":
		color.Initialize(true)
	case "light":
		color.Initialize(false)
	}

	styled := cfg.GlobalSettings.ColorEnabled() && !o.noColor && os.Getenv("NO_COLOR") == ""
	o.renderer = render.New(cmd.OutOrStdout(), styled, o.output)

	logging.Debug("CLI", "Running %s (styled output: %t, format: %s)", cmd.Name(), styled, o.output)
	return nil
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "equipctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
