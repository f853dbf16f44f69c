package main

import "github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/app"

// version is overridden via ldflags in release builds.
var version = "dev"

func main() {
	app.SetVersion(version)
	app.Execute()
}
