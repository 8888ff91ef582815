package qs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase_SetStateNotifiesOnChange(t *testing.T) {
	t.Parallel()

	b := NewBase("x", State{Value: StateInactive})

	var got []State
	b.Listen(func(s State) { got = append(got, s) })
	b.Listen(nil)

	b.SetState(State{Value: StateActive, Label: "on"})
	b.SetState(State{Value: StateActive, Label: "on"}) // unchanged
	b.SetState(State{Value: StateInactive, Label: "off"})

	assert.Len(t, got, 2)
	assert.Equal(t, StateActive, got[0].Value)
	assert.Equal(t, "off", b.State().Label)
	assert.Equal(t, "x", b.Spec())
}

func TestBase_ClearListeners(t *testing.T) {
	t.Parallel()

	b := NewBase("x", State{})
	calls := 0
	b.Listen(func(State) { calls++ })
	b.ClearListeners()

	b.SetState(State{Value: StateActive})
	assert.Zero(t, calls)
}

func TestStateValueString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "inactive", StateInactive.String())
	assert.Equal(t, "unavailable", StateUnavailable.String())
}
