package controllers

import (
	"context"
	"errors"
	"fmt"

	"app-registry/internal/logger"
	"app-registry/internal/metrics"
	"app-registry/internal/models"
	"app-registry/internal/store"
)

// Repository is the record store as the controller sees it
type Repository interface {
	Insert(ctx context.Context, name, path string) error
	DeleteByName(ctx context.Context, name string) (int64, error)
	UpdateByOldName(ctx context.Context, oldName, newName, newPath string) (int64, error)
	SelectAll(ctx context.Context) (*store.Cursor, error)
	SelectPathByName(ctx context.Context, name string) (string, error)
}

// View is the form the controller drives
type View interface {
	FormState() FormState
	SetFields(name, path string)
	ClearFields()
	SetNames(names []string)
	SetStatus(message string)
	SetActionHandler(handler func(Action))
}

// MainController mediates between the form and the record store
type MainController struct {
	repo    Repository
	view    View
	logger  logger.Logger
	policy  models.ErrorPolicy
	metrics *metrics.Recorder

	names   []string
	errored bool
}

func NewMainController(repo Repository, log logger.Logger, policy models.ErrorPolicy, rec *metrics.Recorder) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if policy == "" {
		policy = models.PolicySilent
	}
	return &MainController{
		repo:    repo,
		logger:  log,
		policy:  policy,
		metrics: rec,
	}
}

// SetMainView associates the view and routes its actions through Dispatch
func (mc *MainController) SetMainView(view View) {
	mc.view = view
	view.SetActionHandler(func(action Action) {
		mc.Dispatch(context.Background(), action)
	})
}

// Dispatch plans the action against the current form state and runs the
// resulting ops in order. A failed op does not stop the ones after it.
func (mc *MainController) Dispatch(ctx context.Context, action Action) {
	if mc.view == nil {
		return
	}

	state := mc.view.FormState()
	ops, ok := Plan(action, state)
	if !ok {
		mc.logger.Debug("Controller", "unknown action ignored", map[string]interface{}{
			"action": string(action),
		})
		return
	}
	if len(ops) == 0 {
		mc.logger.Debug("Controller", "action is a no-op for current form", map[string]interface{}{
			"action":        string(action),
			"has_selection": state.HasSelection,
		})
		return
	}

	mc.errored = false
	for _, op := range ops {
		mc.execute(ctx, op)
	}
}

func (mc *MainController) execute(ctx context.Context, op Op) {
	switch op.Kind {
	case OpInsert:
		if err := mc.repo.Insert(ctx, op.Name, op.Path); err != nil {
			mc.handleError("add", err)
			return
		}
		mc.logger.Info("Controller", "entry added", map[string]interface{}{
			"name": op.Name,
			"path": op.Path,
		})

	case OpDelete:
		n, err := mc.repo.DeleteByName(ctx, op.OldName)
		if err != nil {
			mc.handleError("remove", err)
			return
		}
		mc.logger.Info("Controller", "entries removed", map[string]interface{}{
			"name":    op.OldName,
			"removed": n,
		})

	case OpUpdate:
		n, err := mc.repo.UpdateByOldName(ctx, op.OldName, op.Name, op.Path)
		if err != nil {
			mc.handleError("update", err)
			return
		}
		mc.logger.Info("Controller", "entries updated", map[string]interface{}{
			"old_name": op.OldName,
			"name":     op.Name,
			"updated":  n,
		})

	case OpLookup:
		path, err := mc.repo.SelectPathByName(ctx, op.OldName)
		switch models.OutcomeOf(err) {
		case models.Success:
			mc.view.SetFields(op.OldName, path)
		case models.NotFound:
			mc.logger.Debug("Controller", "selected entry not found", map[string]interface{}{
				"name": op.OldName,
			})
		default:
			mc.handleError("select", err)
		}

	case OpReload:
		mc.reload(ctx)

	case OpClearFields:
		mc.view.ClearFields()
	}
}

// Reload re-queries every name and replaces the list contents
func (mc *MainController) Reload(ctx context.Context) {
	mc.errored = false
	mc.reload(ctx)
}

// reload keeps whatever was read before a store error. The entry count
// only replaces the status line when nothing failed in this action.
func (mc *MainController) reload(ctx context.Context) {
	names := make([]string, 0, len(mc.names))

	cursor, err := mc.repo.SelectAll(ctx)
	if err != nil {
		mc.handleError("reload", err)
	} else {
		for entry, iterErr := range cursor.Entries() {
			if iterErr != nil {
				mc.handleError("reload", iterErr)
				break
			}
			names = append(names, entry.Name)
		}
	}

	mc.names = names
	mc.metrics.SetEntries(len(names))
	if mc.view == nil {
		return
	}
	mc.view.SetNames(names)
	if !mc.errored {
		mc.view.SetStatus(fmt.Sprintf("%d applications", len(names)))
	}
}

// Names returns the names shown after the last reload
func (mc *MainController) Names() []string {
	out := make([]string, len(mc.names))
	copy(out, mc.names)
	return out
}

// handleError logs a store failure and, under the status policy, shows it.
// It never interrupts the user with a dialog.
func (mc *MainController) handleError(action string, err error) {
	fields := map[string]interface{}{"action": action}
	var storeErr *store.Error
	if errors.As(err, &storeErr) {
		fields["op"] = storeErr.Op
	}
	mc.logger.Error("Controller", err, fields)
	mc.errored = true

	if mc.policy == models.PolicyStatus && mc.view != nil {
		mc.view.SetStatus(fmt.Sprintf("%s failed: %v", action, err))
	}
}
