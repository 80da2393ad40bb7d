// Package store builds the contents of the two tree panes.
package store

import (
	"fmt"

	"treeview/internal/model"
	"treeview/internal/resource"
)

const (
	DefaultRoots = 10

	ChildLabel = "I'm a child node"
	IconLabel  = "I'm a child node with an image"
)

// TextRow is the single-column shape of the left pane.
type TextRow struct {
	Label string
}

// IconRow is the two-column shape of the right pane. A nil Icon means the
// icon column is left unset.
type IconRow struct {
	Icon  *resource.Image
	Label string
}

func RootLabel(i int) string {
	return fmt.Sprintf("Hello %d", i)
}

// BuildText returns n top-level rows where row i has exactly i children.
func BuildText(n int) *model.Tree[TextRow] {
	tree := model.NewTree[TextRow]()
	for i := 0; i < n; i++ {
		root := tree.Append(nil, TextRow{Label: RootLabel(i)})
		for j := 0; j < i; j++ {
			tree.Append(root, TextRow{Label: ChildLabel})
		}
	}
	return tree
}

// BuildIcon returns n top-level rows all sharing icon.
func BuildIcon(n int, icon *resource.Image) *model.Tree[IconRow] {
	tree := model.NewTree[IconRow]()
	for i := 0; i < n; i++ {
		tree.Append(nil, IconRow{Icon: icon, Label: IconLabel})
	}
	return tree
}
