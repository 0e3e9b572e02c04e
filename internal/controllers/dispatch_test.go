package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(ops []Op) []OpKind {
	out := make([]OpKind, 0, len(ops))
	for _, op := range ops {
		out = append(out, op.Kind)
	}
	return out
}

func TestPlanAdd(t *testing.T) {
	ops, ok := Plan(ActionAdd, FormState{Name: "Editor", Path: "/usr/bin/ed"})
	assert.True(t, ok)
	assert.Equal(t, []OpKind{OpInsert, OpReload, OpClearFields}, kinds(ops))
	assert.Equal(t, "Editor", ops[0].Name)
	assert.Equal(t, "/usr/bin/ed", ops[0].Path)

	for _, state := range []FormState{
		{Name: "", Path: "/usr/bin/ed"},
		{Name: "Editor", Path: ""},
		{},
	} {
		ops, ok := Plan(ActionAdd, state)
		assert.True(t, ok)
		assert.Empty(t, ops)
	}
}

func TestPlanRemove(t *testing.T) {
	ops, _ := Plan(ActionRemove, FormState{Name: "typed", Selected: "Editor", HasSelection: true})
	assert.Equal(t, []OpKind{OpDelete, OpReload}, kinds(ops))
	assert.Equal(t, "Editor", ops[0].OldName)

	ops, _ = Plan(ActionRemove, FormState{Name: "Editor"})
	assert.Empty(t, ops)
}

func TestPlanUpdate(t *testing.T) {
	ops, _ := Plan(ActionUpdate, FormState{Name: "Vim", Path: "/usr/bin/vim", Selected: "Editor", HasSelection: true})
	assert.Equal(t, []OpKind{OpUpdate, OpReload, OpClearFields}, kinds(ops))
	assert.Equal(t, Op{Kind: OpUpdate, OldName: "Editor", Name: "Vim", Path: "/usr/bin/vim"}, ops[0])

	ops, _ = Plan(ActionUpdate, FormState{Name: "Vim", Path: "/usr/bin/vim"})
	assert.Empty(t, ops)
}

func TestPlanSelect(t *testing.T) {
	ops, _ := Plan(ActionSelect, FormState{Selected: "Editor", HasSelection: true})
	assert.Equal(t, []Op{{Kind: OpLookup, OldName: "Editor"}}, ops)

	ops, _ = Plan(ActionSelect, FormState{})
	assert.Empty(t, ops)
}

func TestPlanUnknownAction(t *testing.T) {
	_, ok := Plan(Action("undo"), FormState{})
	assert.False(t, ok)
}

func TestOpKindString(t *testing.T) {
	assert.Equal(t, "insert", OpInsert.String())
	assert.Equal(t, "clear_fields", OpClearFields.String())
	assert.Equal(t, "unknown", OpKind(99).String())
}
