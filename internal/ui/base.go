package ui

import (
	"log/slog"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"

	"treeview/internal/idle"
	"treeview/internal/resource"
)

// dialogReporter shows errors in a modal dialog on the next idle cycle.
type dialogReporter struct {
	parent gtk.IWindow
	sched  idle.Scheduler
	logger *slog.Logger
}

func (r *dialogReporter) ReportError(err error) {
	msg := err.Error()
	r.sched.Post(func() {
		showError(r.parent, msg)
		r.logger.Debug("error dialog shown", "msg", msg)
	})
}

func showError(parent gtk.IWindow, m string) {
	d := gtk.MessageDialogNew(parent, gtk.DIALOG_MODAL, gtk.MESSAGE_ERROR, gtk.BUTTONS_OK, "%s", m)
	d.Connect("response", func() {
		d.Destroy()
	})
	d.ShowAll()
}

// iconPixbuf decodes the loaded image for the pixbuf renderer. A failure here
// is reported like a load failure.
func iconPixbuf(img *resource.Image, r *dialogReporter, logger *slog.Logger) *gdk.Pixbuf {
	if img == nil {
		return nil
	}
	pb, err := gdk.PixbufNewFromBytesOnly(img.Data)
	if err != nil {
		loadErr := &resource.LoadError{Name: img.Name, Err: err}
		logger.Error("icon decode failed", "err", loadErr)
		r.ReportError(loadErr)
		return nil
	}
	return pb
}
