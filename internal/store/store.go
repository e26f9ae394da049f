// Package store implements the unidirectional state-update mechanism shared
// by every widget: a named action is dispatched through a reducer built from
// a handler table, the resulting state is handed to a render callback, and
// settled continuations run only after the render has been applied.
package store

// Action is a named state transition request with an optional payload.
type Action struct {
	Type  string
	Value any
}

// NewAction builds an action from a type and payload.
func NewAction(actionType string, value any) Action {
	return Action{Type: actionType, Value: value}
}

// Handler produces the next state from the current state and an action.
// Handlers must be pure: the input state is a value and is never mutated.
type Handler[S any] func(S, Action) S

// Reducer applies an action to a state.
type Reducer[S any] func(S, Action) S

// CreateReducer builds a reducer from a handler table. Handler lookup is an
// exact match on the action type; an action with no matching handler is a
// no-op returning the input state unchanged.
func CreateReducer[S any](handlers map[string]Handler[S]) Reducer[S] {
	return func(state S, action Action) S {
		if handler, ok := handlers[action.Type]; ok {
			return handler(state, action)
		}
		return state
	}
}

// MergeHandlers layers handler tables left to right; later tables override
// earlier entries for the same action type. Widgets merge their own tables
// over the shared card-lookup base table this way.
func MergeHandlers[S any](tables ...map[string]Handler[S]) map[string]Handler[S] {
	merged := make(map[string]Handler[S])
	for _, table := range tables {
		for actionType, handler := range table {
			merged[actionType] = handler
		}
	}
	return merged
}

// Store owns a widget's state and drives its render cycle. A widget instance
// processes its own dispatched actions in dispatch order; there is no
// ordering guarantee across instances.
type Store[S any] struct {
	state   S
	reducer Reducer[S]
	render  func(S)
}

// New creates a store with an initial state, a handler table, and a render
// callback invoked with every applied state. A nil render callback is
// allowed for headless use.
func New[S any](initial S, handlers map[string]Handler[S], render func(S)) *Store[S] {
	return &Store[S]{
		state:   initial,
		reducer: CreateReducer(handlers),
		render:  render,
	}
}

// State returns the current state.
func (s *Store[S]) State() S {
	return s.state
}

// Dispatch applies the action, triggers a re-render with the new state, and
// invokes the settled continuations after the render has been applied. The
// applied state is returned.
func (s *Store[S]) Dispatch(action Action, onSettled ...func(S)) S {
	s.state = s.reducer(s.state, action)

	if s.render != nil {
		s.render(s.state)
	}

	for _, settle := range onSettled {
		if settle != nil {
			settle(s.state)
		}
	}

	return s.state
}
