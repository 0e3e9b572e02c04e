package views

import (
	"app-registry/internal/controllers"
	"app-registry/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const noSelection widget.ListItemID = -1

// MainView is the single registry form: name and path fields, the three
// action buttons and the list of stored names.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	nameEntry    *widget.Entry
	pathEntry    *widget.Entry
	addButton    *widget.Button
	removeButton *widget.Button
	updateButton *widget.Button
	list         *widget.List
	statusBar    *components.StatusBar

	names    []string
	selected widget.ListItemID

	// connected to the controller
	actionHandler func(controllers.Action)
}

// NewMainView creates the form and installs it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window:   window,
		selected: noSelection,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.nameEntry = widget.NewEntry()
	mv.nameEntry.SetPlaceHolder("Application name")

	mv.pathEntry = widget.NewEntry()
	mv.pathEntry.SetPlaceHolder("/path/to/application")

	mv.addButton = widget.NewButton("Add", nil)
	mv.removeButton = widget.NewButton("Remove", nil)
	mv.updateButton = widget.NewButton("Update", nil)

	mv.list = widget.NewList(
		func() int {
			return len(mv.names)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(mv.names) {
				return
			}
			obj.(*widget.Label).SetText(mv.names[id])
		},
	)

	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	fields := container.New(layout.NewFormLayout(),
		widget.NewLabel("Name:"), mv.nameEntry,
		widget.NewLabel("Path:"), mv.pathEntry,
	)
	buttons := container.NewHBox(
		layout.NewSpacer(),
		mv.addButton,
		mv.removeButton,
		mv.updateButton,
	)

	mv.mainContainer = container.NewBorder(
		container.NewVBox(fields, buttons), // top
		mv.statusBar.GetContainer(),        // bottom
		nil,
		nil,
		mv.list, // center
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.addButton.OnTapped = func() { mv.emit(controllers.ActionAdd) }
	mv.removeButton.OnTapped = func() { mv.emit(controllers.ActionRemove) }
	mv.updateButton.OnTapped = func() { mv.emit(controllers.ActionUpdate) }

	mv.list.OnSelected = func(id widget.ListItemID) {
		mv.selected = id
		mv.emit(controllers.ActionSelect)
	}
	mv.list.OnUnselected = func(id widget.ListItemID) {
		if mv.selected == id {
			mv.selected = noSelection
		}
	}
}

func (mv *MainView) emit(action controllers.Action) {
	if mv.actionHandler != nil {
		mv.actionHandler(action)
	}
}

// SetActionHandler connects button and list events to the controller
func (mv *MainView) SetActionHandler(handler func(controllers.Action)) {
	mv.actionHandler = handler
}

// FormState snapshots the fields and the selected list item
func (mv *MainView) FormState() controllers.FormState {
	state := controllers.FormState{
		Name: mv.nameEntry.Text,
		Path: mv.pathEntry.Text,
	}
	if mv.selected >= 0 && mv.selected < len(mv.names) {
		state.Selected = mv.names[mv.selected]
		state.HasSelection = true
	}
	return state
}

func (mv *MainView) SetFields(name, path string) {
	mv.nameEntry.SetText(name)
	mv.pathEntry.SetText(path)
}

func (mv *MainView) ClearFields() {
	mv.SetFields("", "")
}

// SetNames replaces the list contents. The previous selection is dropped
// because its row no longer exists.
func (mv *MainView) SetNames(names []string) {
	mv.list.UnselectAll()
	mv.selected = noSelection
	mv.names = append(mv.names[:0], names...)
	mv.list.Refresh()
}

// Names returns the names currently listed
func (mv *MainView) Names() []string {
	out := make([]string, len(mv.names))
	copy(out, mv.names)
	return out
}

func (mv *MainView) SetStatus(message string) {
	mv.statusBar.SetStatus(message)
}

func (mv *MainView) SetDatabaseInfo(path string) {
	mv.statusBar.SetDatabaseInfo(path)
}

// Show displays the main window
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetContainer returns the root container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}
