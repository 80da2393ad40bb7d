package tui

import (
	"treeview/internal/model"
	"treeview/internal/selection"
	"treeview/internal/store"
)

type visibleRow struct {
	path model.Path
	row  *model.Row[store.TextRow]
}

// leftPane is the navigable text tree. cursor is -1 when nothing is
// selected.
type leftPane struct {
	tree     *model.Tree[store.TextRow]
	expanded map[string]bool
	visible  []visibleRow
	cursor   int
}

func newLeftPane(tree *model.Tree[store.TextRow]) *leftPane {
	p := &leftPane{tree: tree, expanded: map[string]bool{}, cursor: -1}
	p.refresh()
	return p
}

func (p *leftPane) refresh() {
	var selected model.Path
	if p.cursor >= 0 && p.cursor < len(p.visible) {
		selected = p.visible[p.cursor].path
	}

	p.visible = p.visible[:0]
	p.tree.Walk(func(path model.Path, row *model.Row[store.TextRow]) bool {
		if p.isVisible(path) {
			p.visible = append(p.visible, visibleRow{path: path, row: row})
		}
		return false
	})

	p.cursor = -1
	if selected != nil {
		for i, v := range p.visible {
			if v.path.Equal(selected) {
				p.cursor = i
				break
			}
		}
	}
}

func (p *leftPane) isVisible(path model.Path) bool {
	anc := path.Clone()
	for anc.Up() && anc.Depth() > 0 {
		if !p.expanded[anc.String()] {
			return false
		}
	}
	return true
}

func (p *leftPane) Selected() (model.Path, bool) {
	if p.cursor < 0 || p.cursor >= len(p.visible) {
		return nil, false
	}
	return p.visible[p.cursor].path.Clone(), true
}

func (p *leftPane) move(delta int) bool {
	if len(p.visible) == 0 {
		return false
	}
	next := p.cursor + delta
	if p.cursor < 0 {
		next = 0
	}
	if next < 0 {
		next = 0
	}
	if next >= len(p.visible) {
		next = len(p.visible) - 1
	}
	if next == p.cursor {
		return false
	}
	p.cursor = next
	return true
}

func (p *leftPane) clear() bool {
	if p.cursor < 0 {
		return false
	}
	p.cursor = -1
	return true
}

func (p *leftPane) expand() {
	path, ok := p.Selected()
	if !ok || len(p.visible[p.cursor].row.Children()) == 0 {
		return
	}
	p.expanded[path.String()] = true
	p.refresh()
}

// collapse folds the selected row, or moves to its parent when it is
// already folded. It reports whether the selection moved.
func (p *leftPane) collapse() bool {
	path, ok := p.Selected()
	if !ok {
		return false
	}
	if p.expanded[path.String()] {
		delete(p.expanded, path.String())
		p.refresh()
		return false
	}
	if path.Depth() == 1 {
		return false
	}
	path.Up()
	for i, v := range p.visible {
		if v.path.Equal(path) {
			p.cursor = i
			return true
		}
	}
	return false
}

// rightPane lists the icon rows; it follows the left pane's selection.
type rightPane struct {
	tree     *model.Tree[store.IconRow]
	selected int
}

func (p *rightPane) SelectPath(path model.Path) error {
	if _, ok := p.tree.Lookup(path); !ok || path.Depth() != 1 {
		return selection.ErrOutOfRange
	}
	p.selected = path[0]
	return nil
}
