package main

import (
	"os"

	"treeview/internal/cli"
	"treeview/internal/ui"
)

// Same entry point as cmd/treeview so `go run .` opens the window.
func main() {
	os.Exit(cli.Execute(ui.Run))
}
