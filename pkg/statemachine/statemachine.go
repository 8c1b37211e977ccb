package statemachine

import (
	"context"
	"sync"
)

// State represents a state in the state machine.
type State interface {
	Name() string
}

// Event represents an event that can trigger a state transition.
type Event interface {
	Name() string
}

// Guard evaluates whether a transition should be allowed based on runtime conditions.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Transition defines a state change triggered by an event, with optional guards.
type Transition struct {
	From   State
	To     State
	Event  Event
	Guards []Guard // All must pass for transition to proceed
}

// StateMachine answers which state an event leads to from a given state.
// It holds no current state of its own: the caller owns the state value and
// asks the machine whether a move is legal.
type StateMachine interface {
	AddTransition(from, to State, event Event, guards []Guard) error
	Next(ctx context.Context, from State, event Event, data any) (State, error)
	CanFire(ctx context.Context, from State, event Event, data any) bool
	Events(from State) []Event
}

// StringState provides a simple string-based state implementation for basic use cases.
type StringState string

func (s StringState) Name() string {
	return string(s)
}

// StringEvent provides a simple string-based event implementation for basic use cases.
type StringEvent string

func (e StringEvent) Name() string {
	return string(e)
}

// Table is an in-memory transition table.
// Uses a nested map structure for O(1) lookups: [fromState][event][]Transition
type Table struct {
	transitions map[string]map[string][]Transition
	order       map[string][]Event
	mu          sync.RWMutex
}

func newTable() *Table {
	return &Table{
		transitions: make(map[string]map[string][]Transition),
		order:       make(map[string][]Event),
	}
}

func (t *Table) AddTransition(from, to State, event Event, guards []Guard) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fromStateName := from.Name()
	eventName := event.Name()

	if _, ok := t.transitions[fromStateName]; !ok {
		t.transitions[fromStateName] = make(map[string][]Transition)
	}
	if _, ok := t.transitions[fromStateName][eventName]; !ok {
		t.order[fromStateName] = append(t.order[fromStateName], event)
	}

	// Multiple transitions allowed for same from/event to support guard-based branching
	t.transitions[fromStateName][eventName] = append(t.transitions[fromStateName][eventName], Transition{
		From:   from,
		To:     to,
		Event:  event,
		Guards: guards,
	})
	return nil
}

// Next returns the target state of the first transition from 'from' on
// 'event' whose guards all pass.
func (t *Table) Next(ctx context.Context, from State, event Event, data any) (State, error) {
	if from == nil {
		return nil, ErrInvalidState
	}
	if event == nil {
		return nil, ErrInvalidEvent
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	transitions := t.transitions[from.Name()][event.Name()]
	if len(transitions) == 0 {
		return nil, NewErrNoTransitionAvailable(from.Name(), event.Name())
	}

	// First transition with passing guards wins (enables priority ordering)
	for _, tr := range transitions {
		if guardsPass(ctx, tr.Guards, from, event, data) {
			return tr.To, nil
		}
	}

	return nil, NewErrTransitionRejected(from.Name(), event.Name())
}

func (t *Table) CanFire(ctx context.Context, from State, event Event, data any) bool {
	_, err := t.Next(ctx, from, event, data)
	return err == nil
}

// Events lists the events defined for a state in registration order.
func (t *Table) Events(from State) []Event {
	if from == nil {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]Event(nil), t.order[from.Name()]...)
}

func guardsPass(ctx context.Context, guards []Guard, from State, event Event, data any) bool {
	for _, guard := range guards {
		if guard != nil && !guard(ctx, from, event, data) {
			return false
		}
	}
	return true
}
