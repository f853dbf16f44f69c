package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/config"
	"github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/util"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config

	flagNoColor       bool
	flagNoInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "libraryctl",
	Short: "A small library catalog, demonstrated from the console",
	Long: `libraryctl keeps an in-memory catalog of books, DVDs and magazines and
shows how borrow/return notifications flow from items to the catalog.

Every run starts from an empty catalog. Run 'demo' for a scripted tour,
'menu' for an interactive session, or 'browse' for the TUI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		util.InitColor(flagNoColor || cfg.Display.NoColor)
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newDemoCmd(),
		newMenuCmd(),
		newBrowseCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
