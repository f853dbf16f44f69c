package app

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/library"
	"github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/util"
	"github.com/spf13/cobra"
)

func newMenuCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive catalog session",
		Args:  cobra.NoArgs,
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
				ok("Seeded %d sample items", cat.Len())
			}
			return runMenu(cat)
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "Preload sample items")
	return cmd
}

func runMenu(cat *library.Catalog) error {
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println()
		header("libraryctl")
		fmt.Println("  1) add book       4) list       7) return")
		fmt.Println("  2) add dvd        5) find       8) late fee")
		fmt.Println("  3) add magazine   6) borrow     9) remove")
		fmt.Println("  0) quit")

		fmt.Print("choice: ")
		if !sc.Scan() {
			return nil
		}
		switch strings.TrimSpace(sc.Text()) {
		case "1":
			menuAddBook(sc, cat)
		case "2":
			menuAddDVD(sc, cat)
		case "3":
			menuAddMagazine(sc, cat)
		case "4":
			cat.ShowAllItems(os.Stdout)
			fmt.Printf("%d items, %d borrowed\n", cat.Len(), cat.BorrowedCount())
		case "5":
			menuFind(sc, cat)
		case "6":
			menuBorrow(sc, cat)
		case "7":
			menuReturn(sc, cat)
		case "8":
			menuLateFee(sc, cat)
		case "9":
			menuRemove(sc, cat)
		case "0", "q", "quit":
			return nil
		default:
			warn("unknown choice")
		}
	}
}

func menuAddBook(sc *bufio.Scanner, cat *library.Catalog) {
	title := prompt(sc, "title")
	year, err := promptInt(sc, "year")
	if err != nil {
		warn("%v", err)
		return
	}
	author := prompt(sc, "author")
	isbn := prompt(sc, "isbn")

	b, err := library.NewBook(title, year, author, isbn)
	if err != nil {
		warn("%v", err)
		return
	}
	if err := cat.AddItem(b); err != nil {
		warn("%v", err)
		return
	}
	ok("added %s", b.Info())
}

func menuAddDVD(sc *bufio.Scanner, cat *library.Catalog) {
	title := prompt(sc, "title")
	year, err := promptInt(sc, "year")
	if err != nil {
		warn("%v", err)
		return
	}
	minutes, err := promptInt(sc, "duration (minutes)")
	if err != nil {
		warn("%v", err)
		return
	}

	d, err := library.NewDVD(title, year, minutes)
	if err != nil {
		warn("%v", err)
		return
	}
	if err := cat.AddItem(d); err != nil {
		warn("%v", err)
		return
	}
	ok("added %s", d.Info())
}

func menuAddMagazine(sc *bufio.Scanner, cat *library.Catalog) {
	title := prompt(sc, "title")
	year, err := promptInt(sc, "year")
	if err != nil {
		warn("%v", err)
		return
	}
	issue, err := promptInt(sc, "issue number")
	if err != nil {
		warn("%v", err)
		return
	}

	m, err := library.NewMagazine(title, year, issue)
	if err != nil {
		warn("%v", err)
		return
	}
	if err := cat.AddItem(m); err != nil {
		warn("%v", err)
		return
	}
	ok("added %s", m.Info())
}

func menuFind(sc *bufio.Scanner, cat *library.Catalog) {
	query := prompt(sc, "title contains")
	n := 0
	for it := range cat.FindByTitle(query) {
		fmt.Println(" ", it.Info())
		n++
	}
	if n == 0 {
		fmt.Println("No matches.")
	}
}

func menuBorrow(sc *bufio.Scanner, cat *library.Catalog) {
	it, picked := pickItem(sc, cat)
	if !picked {
		return
	}
	name := prompt(sc, "borrower name")
	if err := cat.BorrowItemByID(it.ID(), name); err != nil {
		warn("%v", err)
	}
}

func menuReturn(sc *bufio.Scanner, cat *library.Catalog) {
	it, picked := pickItem(sc, cat)
	if !picked {
		return
	}
	if err := cat.ReturnItemByID(it.ID()); err != nil {
		warn("%v", err)
	}
}

func menuLateFee(sc *bufio.Scanner, cat *library.Catalog) {
	it, picked := pickItem(sc, cat)
	if !picked {
		return
	}
	days, err := promptInt(sc, "days late")
	if err != nil {
		warn("%v", err)
		return
	}
	fmt.Printf("Late fee for %q: %s\n", it.Title(),
		util.FormatMoney(cfg.Display.Currency, it.CalculateLateFee(days)))
}

func menuRemove(sc *bufio.Scanner, cat *library.Catalog) {
	it, picked := pickItem(sc, cat)
	if !picked {
		return
	}
	if it.IsBorrowed() {
		warn("removing while borrowed by %s", it.Borrower())
	}
	if cat.RemoveItem(it.ID()) {
		ok("removed %q", it.Title())
	}
}

// pickItem shows a numbered listing and reads the operator's choice.
func pickItem(sc *bufio.Scanner, cat *library.Catalog) (library.Item, bool) {
	items := cat.Items()
	if len(items) == 0 {
		fmt.Println("Catalog is empty.")
		return nil, false
	}
	for i, it := range items {
		fmt.Printf("  %2d) %s\n", i+1, it.Info())
	}
	n, err := promptInt(sc, "item number")
	if err != nil || n < 1 || n > len(items) {
		warn("no such item")
		return nil, false
	}
	return items[n-1], true
}

// prompt reads one trimmed line from stdin.
func prompt(sc *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}

func promptInt(sc *bufio.Scanner, label string) (int, error) {
	raw := prompt(sc, label)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	return n, nil
}
