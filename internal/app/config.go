package app

import (
	"fmt"
	"strconv"

	"github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change display settings",
		Long:  "Show the effective display settings, or persist a new value to the config file.",
	}

	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigSetCmd(),
	)

	// Make `libraryctl config` with no subcommand default to show
	cmd.RunE = newConfigShowCmd().RunE

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings and where they come from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("  %-22s %s\n", "display.time_format", cfg.Display.TimeFormat)
			fmt.Printf("  %-22s %s\n", "display.currency", cfg.Display.Currency)
			fmt.Printf("  %-22s %t\n", "display.no_color", cfg.Display.NoColor)
			fmt.Printf("  %-22s %t\n", "demo.seed", cfg.Demo.Seed)
			fmt.Printf("\nconfig file: %s\n", config.Path())
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist one setting to the config file",
		Long: `Persist one setting to the config file.

Examples:
  libraryctl config set display.time_format "15:04:05"
  libraryctl config set display.currency "€"
  libraryctl config set demo.seed false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			switch key {
			case "display.time_format":
				if value == "" {
					return fmt.Errorf("time format must not be empty")
				}
				cfg.Display.TimeFormat = value
			case "display.currency":
				if value == "" {
					return fmt.Errorf("currency must not be empty")
				}
				cfg.Display.Currency = value
			case "display.no_color":
				b, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("%q is not a boolean", value)
				}
				cfg.Display.NoColor = b
			case "demo.seed":
				b, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("%q is not a boolean", value)
				}
				cfg.Demo.Seed = b
			default:
				return fmt.Errorf("unknown key %q (display.time_format, display.currency, display.no_color, demo.seed)", key)
			}

			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			ok("%s = %s (written to %s)", key, value, config.Path())
			return nil
		},
	}
}
