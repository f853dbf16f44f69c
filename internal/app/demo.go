package app

import (
	"fmt"
	"os"

	"github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/library"
	"github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/util"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted tour of the catalog",
		Long: `Build a small catalog, borrow and return items by ID, show late fees,
and demonstrate which operations the catalog rejects. Notification lines
are relayed by the catalog itself whenever an item changes hands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	cat := library.NewCatalog(os.Stdout)
	cat.SetTimeFormat(cfg.Display.TimeFormat)

	header("Building the catalog")
	book, err := library.NewBook("Dune", 1965, "Frank Herbert", "9780441013593")
	if err != nil {
		return err
	}
	dvd, err := library.NewDVD("The Matrix", 1999, 136)
	if err != nil {
		return err
	}
	mag, err := library.NewMagazine("National Geographic", 2024, 256)
	if err != nil {
		return err
	}
	for _, it := range []library.Item{book, dvd, mag} {
		if err := cat.AddItem(it); err != nil {
			return err
		}
	}
	ok("%d items constructed this run", library.TotalItems())

	fmt.Println()
	header("All items")
	cat.ShowAllItems(os.Stdout)

	fmt.Println()
	header("Borrowing")
	if err := cat.BorrowItemByID(book.ID(), "Alice"); err != nil {
		return err
	}
	if err := cat.BorrowItemByID(dvd.ID(), "Bob"); err != nil {
		return err
	}
	ok("%d of %d items are out", cat.BorrowedCount(), cat.Len())

	fmt.Println()
	header("Late fees after 3 days")
	for _, it := range cat.Items() {
		fmt.Printf("  %-26s %s\n", it.Title(), util.FormatMoney(cfg.Display.Currency, it.CalculateLateFee(3)))
	}

	fmt.Println()
	header("Rejected operations")
	if err := cat.BorrowItemByID(book.ID(), "Carol"); err != nil {
		warn("borrow while borrowed: %v", err)
	}
	if err := cat.ReturnItemByID(mag.ID()); err != nil {
		warn("return while available: %v", err)
	}
	if err := cat.BorrowItemByID(mag.ID(), "x"); err != nil {
		warn("one-letter borrower: %v", err)
	}

	fmt.Println()
	header("Returning and searching")
	if err := cat.ReturnItemByID(book.ID()); err != nil {
		return err
	}
	for it := range cat.FindByTitle("dune") {
		fmt.Println(" ", it.Info())
	}

	fmt.Println()
	header("Removing the magazine")
	if cat.RemoveItem(mag.ID()) {
		ok("removed; its notifications no longer reach the catalog")
	}

	fmt.Println()
	header("Final state")
	cat.ShowAllItems(os.Stdout)
	fmt.Printf("Borrowed: %d of %d\n", cat.BorrowedCount(), cat.Len())
	return nil
}
