package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the form's status line and the database location
type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	databaseInfo *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.databaseInfo = widget.NewLabel("Database: --")
	sb.databaseInfo.Truncation = fyne.TextTruncateEllipsis
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(nil, nil,
		sb.statusLabel,
		nil,
		sb.databaseInfo,
	)
}

// SetStatus updates the main status message. Callers are on the UI goroutine.
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetDatabaseInfo shows where entries are stored
func (sb *StatusBar) SetDatabaseInfo(path string) {
	sb.databaseInfo.SetText("Database: " + path)
}

func (sb *StatusBar) GetDatabaseInfo() string {
	return sb.databaseInfo.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.databaseInfo.SetText("Database: --")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
