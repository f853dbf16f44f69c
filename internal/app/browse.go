package app

import (
	"bufio"
	"fmt"
	"os"

	"github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/library"
	"github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/tui"
	"github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/util"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ls"},
		Short:   "Browse the catalog (interactive TUI or text output)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			useSeed := seed
			if !cmd.Flags().Changed("seed") {
				useSeed = cfg.Demo.Seed
			}

			cat := library.NewCatalog(os.Stdout)
			cat.SetTimeFormat(cfg.Display.TimeFormat)
			if useSeed {
				if err := seedCatalog(cat); err != nil {
					return err
				}
			}

			// Non-TTY or --no-interactive: plain text listing.
			if !tui.ShouldUseTUI(cmd) {
				cat.ShowAllItems(os.Stdout)
				fmt.Printf("\n%d items, %d borrowed\n", cat.Len(), cat.BorrowedCount())
				return nil
			}

			if cat.Len() == 0 {
				warn("Catalog is empty — run with --seed for sample items.")
				return nil
			}

			// The browser quits to perform each action so relayed
			// notification lines land on a clean terminal.
			sc := bufio.NewScanner(os.Stdin)
			for {
				rows := make([]tui.ItemRow, 0, cat.Len())
				for _, it := range cat.Items() {
					rows = append(rows, tui.ItemRow{Item: it})
				}

				result, err := tui.RunBrowser(rows)
				if err != nil {
					return err
				}
				if result.Action == tui.ActionNone || result.Row == nil {
					return nil
				}

				it := result.Row.Item
				switch result.Action {
				case tui.ActionShowDetails:
					fmt.Println(it.Info())
					fmt.Printf("  added:     %s\n", it.DateAdded().Format(cfg.Display.TimeFormat))
					fmt.Printf("  3-day fee: %s\n", util.FormatMoney(cfg.Display.Currency, it.CalculateLateFee(3)))
					return nil

				case tui.ActionBorrow:
					name := prompt(sc, "Borrower name")
					if err := cat.BorrowItemByID(it.ID(), name); err != nil {
						warn("%v", err)
					}

				case tui.ActionReturn:
					if err := cat.ReturnItemByID(it.ID()); err != nil {
						warn("%v", err)
					}
				}
			}
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", true, "Preload sample items")
	return cmd
}
