package main

import (
	"os"

	"treeview/internal/cli"
	"treeview/internal/ui"
)

func main() {
	os.Exit(cli.Execute(ui.Run))
}
