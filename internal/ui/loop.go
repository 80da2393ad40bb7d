package ui

import "github.com/gotk3/gotk3/glib"

// glibScheduler runs posted work on the next idle cycle of the GTK main loop.
type glibScheduler struct{}

func (glibScheduler) Post(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
