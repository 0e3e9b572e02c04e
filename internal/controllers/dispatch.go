package controllers

// Action identifies a user intent raised by the form
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
	ActionUpdate Action = "update"
	ActionSelect Action = "select"
)

// FormState is the form as the user left it when the action fired
type FormState struct {
	Name         string
	Path         string
	Selected     string
	HasSelection bool
}

type OpKind int

const (
	OpInsert OpKind = iota
	OpDelete
	OpUpdate
	OpLookup
	OpReload
	OpClearFields
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpUpdate:
		return "update"
	case OpLookup:
		return "lookup"
	case OpReload:
		return "reload"
	case OpClearFields:
		return "clear_fields"
	default:
		return "unknown"
	}
}

// Op is one step the controller performs against the store or the form.
// OldName is the match key for OpDelete, OpUpdate and OpLookup.
type Op struct {
	Kind    OpKind
	Name    string
	Path    string
	OldName string
}

// Planner turns form state into the ops an action requires. An empty
// plan means the action is a no-op for that state.
type Planner func(state FormState) []Op

var dispatchTable = map[Action]Planner{
	ActionAdd:    planAdd,
	ActionRemove: planRemove,
	ActionUpdate: planUpdate,
	ActionSelect: planSelect,
}

// Plan looks the action up in the dispatch table
func Plan(action Action, state FormState) ([]Op, bool) {
	planner, ok := dispatchTable[action]
	if !ok {
		return nil, false
	}
	return planner(state), true
}

func planAdd(state FormState) []Op {
	if state.Name == "" || state.Path == "" {
		return nil
	}
	return []Op{
		{Kind: OpInsert, Name: state.Name, Path: state.Path},
		{Kind: OpReload},
		{Kind: OpClearFields},
	}
}

// Fields stay as they are after a remove.
func planRemove(state FormState) []Op {
	if !state.HasSelection {
		return nil
	}
	return []Op{
		{Kind: OpDelete, OldName: state.Selected},
		{Kind: OpReload},
	}
}

// Update does not check the fields: empty values are written as-is.
func planUpdate(state FormState) []Op {
	if !state.HasSelection {
		return nil
	}
	return []Op{
		{Kind: OpUpdate, OldName: state.Selected, Name: state.Name, Path: state.Path},
		{Kind: OpReload},
		{Kind: OpClearFields},
	}
}

func planSelect(state FormState) []Op {
	if !state.HasSelection {
		return nil
	}
	return []Op{{Kind: OpLookup, OldName: state.Selected}}
}
