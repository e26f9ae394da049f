// Package widget composes the lookup cache, data fetcher, reducer core, and
// placement engine into the user-visible components: the hover-card link,
// the inline card, and the decklist.
//
// Rendering itself is an external collaborator: every widget drives a
// Renderer through its store and exposes its applied state for the host to
// re-query.
package widget

import (
	"context"
	"log"

	"github.com/im-sticky/mtg-card-seer/internal/cache"
	"github.com/im-sticky/mtg-card-seer/internal/card"
	"github.com/im-sticky/mtg-card-seer/internal/events"
	"github.com/im-sticky/mtg-card-seer/internal/fetcher"
	"github.com/im-sticky/mtg-card-seer/internal/store"
)

// Renderer is implemented by the host rendering layer. Render is invoked
// with the widget's applied state after every dispatch; returning from it
// confirms the render has been applied.
type Renderer interface {
	Render(state any)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(state any)

// Render invokes the wrapped function.
func (f RendererFunc) Render(state any) { f(state) }

// Action types of the shared card-lookup base handler table.
const (
	ActionSetCardInfo  = "SET_CARD_INFO"
	ActionSetFetched   = "SET_FETCHED"
	ActionUpdateSearch = "UPDATE_SEARCH"
)

// CardState holds the card-lookup fields every card widget carries.
type CardState struct {
	// Search is the current lookup query. Replaced wholesale on every
	// search-parameter change.
	Search card.Query

	// Info is the resolved card, or a placeholder until a fetch lands.
	Info card.Card

	// Fetched marks that a fetch has been issued for the current search.
	Fetched bool
}

// cardHolder is satisfied by widget states embedding CardState, letting the
// base handler table operate on any of them.
type cardHolder[S any] interface {
	card() CardState
	withCard(CardState) S
}

// baseHandlers is the handler table for the shared card-lookup fields:
// query update, result-received, fetch-complete. Widgets merge their own
// tables over it.
func baseHandlers[S cardHolder[S]]() map[string]store.Handler[S] {
	return map[string]store.Handler[S]{
		ActionSetCardInfo: func(s S, a store.Action) S {
			cs := s.card()
			cs.Info = a.Value.(card.Card)
			return s.withCard(cs)
		},
		ActionSetFetched: func(s S, _ store.Action) S {
			cs := s.card()
			cs.Fetched = true
			return s.withCard(cs)
		},
		ActionUpdateSearch: func(s S, a store.Action) S {
			cs := s.card()
			cs.Search = a.Value.(card.Query)
			cs.Fetched = false
			return s.withCard(cs)
		},
	}
}

// Lookup is the shared lookup behavior each card widget composes: cache
// check, fetch, and the fetch-related events.
type Lookup struct {
	Fetcher *fetcher.Fetcher
	Cache   *cache.Cache
	Events  *events.Dispatcher
}

// emit dispatches a host event from widget id. A nil dispatcher drops the
// event.
func (l Lookup) emit(eventType, id string) {
	if l.Events == nil {
		return
	}
	l.Events.Dispatch(events.Event{Type: eventType, Source: id})
}

// fetchCard runs the shared fetch flow for widget id: a no-op when already
// fetched, a straight dispatch on cache hit, otherwise a network fetch. A
// failed fetch emits fetchError and dispatches nothing, leaving the widget's
// displayed data untouched and the fetched flag clear so the next triggering
// event retries; it never propagates an error to the interaction.
func (l Lookup) fetchCard(ctx context.Context, id string, st CardState, dispatch func(store.Action)) {
	if st.Fetched {
		return
	}

	if l.Cache != nil {
		if cached, ok := l.Cache.Get(st.Search.CacheKey()); ok {
			dispatch(store.NewAction(ActionSetCardInfo, cached))
			dispatch(store.NewAction(ActionSetFetched, nil))
			return
		}
	}

	resolved, err := l.Fetcher.FetchOne(ctx, st.Search)
	if err != nil {
		log.Printf("[Widget] fetch failed for %q: %v", st.Search.Fuzzy, err)
		l.emit(events.FetchError, id)
		return
	}

	dispatch(store.NewAction(ActionSetCardInfo, resolved))
	dispatch(store.NewAction(ActionSetFetched, nil))
	l.emit(events.FetchCard, id)
}

// selectFaces applies a widget's face selector: 0 selects all faces, N
// selects only the Nth face (1-based). Out-of-range selectors fall back to
// all faces.
func selectFaces(faces []card.Face, face int) []card.Face {
	if face <= 0 || face > len(faces) {
		return faces
	}
	return faces[face-1 : face]
}
