package app

import "github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/library"

// seedCatalog fills cat with a small sample collection.
func seedCatalog(cat *library.Catalog) error {
	book1, err := library.NewBook("Dune", 1965, "Frank Herbert", "9780441013593")
	if err != nil {
		return err
	}
	book2, err := library.NewBook("The Pragmatic Programmer", 1999, "Hunt & Thomas", "978-0-201-61622-4")
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

	for _, it := range []library.Item{book1, book2, dvd, mag} {
		if err := cat.AddItem(it); err != nil {
			return err
		}
	}
	return nil
}
