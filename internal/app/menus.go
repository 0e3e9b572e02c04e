package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"app-registry/internal/controllers"
)

func (a *Application) setupMenus() {
	a.window.SetMainMenu(a.buildMainMenu())
}

func (a *Application) buildMainMenu() *fyne.MainMenu {
	dispatch := func(action controllers.Action) func() {
		return func() {
			a.controller.Dispatch(context.Background(), action)
		}
	}

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Reload", func() {
			a.controller.Reload(context.Background())
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.fyneApp.Quit()
		}),
	)

	entryMenu := fyne.NewMenu("Entry",
		fyne.NewMenuItem("Add", dispatch(controllers.ActionAdd)),
		fyne.NewMenuItem("Remove", dispatch(controllers.ActionRemove)),
		fyne.NewMenuItem("Update", dispatch(controllers.ActionUpdate)),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Store Activity", func() {
			dialog.ShowInformation("Store Activity", a.activityReport(), a.window)
		}),
	)

	return fyne.NewMainMenu(fileMenu, entryMenu, helpMenu)
}

// activityReport renders the operation counters, one "op/outcome: n" per line
func (a *Application) activityReport() string {
	summary, err := a.metrics.Summary()
	if err != nil {
		return "unavailable: " + err.Error()
	}

	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "Database: %s\n", a.config.DatabasePath)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\n", k, summary[k])
	}
	return b.String()
}
