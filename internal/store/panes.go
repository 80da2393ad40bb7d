package store

import (
	"log/slog"

	"treeview/internal/model"
	"treeview/internal/resource"
)

// IconLoader is satisfied by *resource.Loader.
type IconLoader interface {
	Load(name string) (*resource.Image, error)
}

// Reporter shows an error to the user.
type Reporter interface {
	ReportError(err error)
}

// Panes is the data behind both tree views.
type Panes struct {
	Left  *model.Tree[TextRow]
	Right *model.Tree[IconRow]
	Icon  *resource.Image
}

// BuildPanes populates both panes with n top-level rows each. A failed icon
// load is reported once and the right pane is filled without icons.
func BuildPanes(n int, loader IconLoader, iconName string, report Reporter, logger *slog.Logger) *Panes {
	if logger == nil {
		logger = slog.Default()
	}

	left := BuildText(n)
	logger.Debug("left store built", "roots", left.Len(), "rows", left.Count())

	icon, err := loader.Load(iconName)
	if err != nil {
		logger.Error("icon load failed", "name", iconName, "err", err)
		if report != nil {
			report.ReportError(err)
		}
		icon = nil
	} else {
		logger.Debug("icon loaded", "name", icon.Name, "width", icon.Width, "height", icon.Height)
	}

	right := BuildIcon(n, icon)
	logger.Debug("right store built", "roots", right.Len(), "icon", icon != nil)

	return &Panes{Left: left, Right: right, Icon: icon}
}
