package ui

import (
	"fmt"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"treeview/internal/model"
	"treeview/internal/selection"
	"treeview/internal/store"
)

const (
	colText = 0

	colIcon      = 0
	colIconLabel = 1
)

// treePane pairs a view with the store it displays. It is both the Source
// (left pane) and the Target (right pane) of the selection sync.
type treePane struct {
	view  *gtk.TreeView
	store *gtk.TreeStore
}

func newTextPane(tree *model.Tree[store.TextRow]) (*treePane, error) {
	ts, err := gtk.TreeStoreNew(glib.TYPE_STRING)
	if err != nil {
		return nil, err
	}
	view, err := gtk.TreeViewNewWithModel(ts)
	if err != nil {
		return nil, err
	}
	view.SetHeadersVisible(false)

	renderer, err := gtk.CellRendererTextNew()
	if err != nil {
		return nil, err
	}
	col, err := gtk.TreeViewColumnNew()
	if err != nil {
		return nil, err
	}
	col.PackStart(renderer, true)
	col.AddAttribute(renderer, "text", colText)
	view.AppendColumn(col)

	err = fill(ts, tree, func(iter *gtk.TreeIter, r store.TextRow) error {
		return ts.SetValue(iter, colText, r.Label)
	})
	if err != nil {
		return nil, err
	}
	return &treePane{view: view, store: ts}, nil
}

// newIconPane packs a pixbuf renderer and a text renderer into one column.
// A nil icon leaves the pixbuf column unset on every row.
func newIconPane(tree *model.Tree[store.IconRow], icon *gdk.Pixbuf) (*treePane, error) {
	ts, err := gtk.TreeStoreNew(gdk.PixbufGetType(), glib.TYPE_STRING)
	if err != nil {
		return nil, err
	}
	view, err := gtk.TreeViewNew()
	if err != nil {
		return nil, err
	}

	pix, err := gtk.CellRendererPixbufNew()
	if err != nil {
		return nil, err
	}
	text, err := gtk.CellRendererTextNew()
	if err != nil {
		return nil, err
	}
	col, err := gtk.TreeViewColumnNew()
	if err != nil {
		return nil, err
	}
	col.SetTitle("Picture")
	col.PackStart(pix, false)
	col.AddAttribute(pix, "pixbuf", colIcon)
	col.PackStart(text, true)
	col.AddAttribute(text, "text", colIconLabel)

	view.AppendColumn(col)
	view.SetModel(ts)
	view.SetHeadersVisible(true)

	err = fill(ts, tree, func(iter *gtk.TreeIter, r store.IconRow) error {
		if icon != nil && r.Icon != nil {
			if err := ts.SetValue(iter, colIcon, icon); err != nil {
				return err
			}
		}
		return ts.SetValue(iter, colIconLabel, r.Label)
	})
	if err != nil {
		return nil, err
	}
	return &treePane{view: view, store: ts}, nil
}

// fill mirrors tree into ts in display order.
func fill[V any](ts *gtk.TreeStore, tree *model.Tree[V], set func(*gtk.TreeIter, V) error) error {
	var add func(parent *gtk.TreeIter, rows []*model.Row[V]) error
	add = func(parent *gtk.TreeIter, rows []*model.Row[V]) error {
		for _, row := range rows {
			iter := ts.Append(parent)
			if err := set(iter, row.Value); err != nil {
				return err
			}
			if err := add(iter, row.Children()); err != nil {
				return err
			}
		}
		return nil
	}
	return add(nil, tree.Roots())
}

func (p *treePane) onSelectionChanged(fn func()) error {
	sel, err := p.view.GetSelection()
	if err != nil {
		return err
	}
	sel.Connect("changed", fn)
	return nil
}

func (p *treePane) Selected() (model.Path, bool) {
	sel, err := p.view.GetSelection()
	if err != nil {
		return nil, false
	}
	_, iter, ok := sel.GetSelected()
	if !ok {
		return nil, false
	}
	tp, err := p.store.GetPath(iter)
	if err != nil {
		return nil, false
	}
	path, err := model.ParsePath(tp.String())
	if err != nil {
		return nil, false
	}
	return path, true
}

func (p *treePane) SelectPath(path model.Path) error {
	tp, err := gtk.TreePathNewFromString(path.String())
	if err != nil {
		return fmt.Errorf("%w: %v", selection.ErrOutOfRange, err)
	}
	if _, err := p.store.GetIter(tp); err != nil {
		return selection.ErrOutOfRange
	}
	sel, err := p.view.GetSelection()
	if err != nil {
		return err
	}
	sel.SelectPath(tp)
	return nil
}
