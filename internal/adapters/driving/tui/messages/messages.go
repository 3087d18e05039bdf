// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDashboard is the creative list with its filter bar.
	ViewDashboard ViewType = iota
	// ViewDetail shows a single creative.
	ViewDetail
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewDetail:
		return "detail"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// PageLoaded is sent when a fetch started by the dashboard has finished.
// Err is nil on success. The fetched creatives live in the dashboard service.
type PageLoaded struct {
	// Generation is the dashboard session the fetch belonged to.
	Generation int
	Err        error
}

// CreativeSelected signals a creative was chosen for the detail view.
type CreativeSelected struct {
	ID string
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
