package widget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/im-sticky/mtg-card-seer/internal/card"
	"github.com/im-sticky/mtg-card-seer/internal/events"
	"github.com/im-sticky/mtg-card-seer/internal/placement"
	"github.com/im-sticky/mtg-card-seer/internal/store"
)

// Action types specific to the hover-card link.
const (
	ActionUpdateDisplay = "UPDATE_DISPLAY"
	ActionHideCard      = "HIDE_CARD"
)

// LinkState is the full state of a hover-card link.
type LinkState struct {
	CardState

	// Display marks the preview panel open. The panel is only visible
	// when faces have resolved; see CardLink.Visible.
	Display bool

	// Pos is the panel's computed anchor and flow direction.
	Pos placement.Placement
}

func (s LinkState) card() CardState { return s.CardState }

func (s LinkState) withCard(cs CardState) LinkState {
	s.CardState = cs
	return s
}

// displayPayload carries the UPDATE_DISPLAY action value.
type displayPayload struct {
	pos placement.Placement
}

// CardLinkOptions configures a hover-card link from its host attributes.
type CardLinkOptions struct {
	Name      string // card name; falls back to the element's text content in the host
	Set       string // optional set code
	Collector string // optional collector number
	Face      int    // 1-based face selector, 0 shows all faces
	PriceInfo bool   // render the price quotes under the image
	Panel     placement.Size
	Renderer  Renderer
}

// CardLink is the hover/focus/touch card preview attached to a link. Its
// display cycle is Hidden -> Fetching -> Displayed -> Hidden; a cache hit
// skips the network round trip entirely.
type CardLink struct {
	id     string
	lookup Lookup
	store  *store.Store[LinkState]
	opts   CardLinkOptions
}

// NewCardLink creates a hover-card link widget.
func NewCardLink(opts CardLinkOptions, lookup Lookup) (*CardLink, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("card link requires a name")
	}

	initial := LinkState{
		CardState: CardState{
			Search: card.Query{Fuzzy: opts.Name, Set: opts.Set, Collector: opts.Collector},
			Info:   card.Placeholder(opts.Name),
		},
	}

	handlers := store.MergeHandlers(baseHandlers[LinkState](), map[string]store.Handler[LinkState]{
		ActionUpdateDisplay: func(s LinkState, a store.Action) LinkState {
			payload := a.Value.(displayPayload)
			s.Display = true
			s.Pos = payload.pos
			return s
		},
		ActionHideCard: func(s LinkState, _ store.Action) LinkState {
			s.Display = false
			return s
		},
	})

	var render func(LinkState)
	if opts.Renderer != nil {
		render = func(s LinkState) { opts.Renderer.Render(s) }
	}

	return &CardLink{
		id:     uuid.NewString(),
		lookup: lookup,
		store:  store.New(initial, handlers, render),
		opts:   opts,
	}, nil
}

// ID returns the widget's instance identifier, carried on emitted events.
func (w *CardLink) ID() string { return w.id }

// State returns the current widget state.
func (w *CardLink) State() LinkState { return w.store.State() }

// Visible reports whether the preview panel actually shows: the display
// flag is set and at least one face has resolved. A failed fetch never
// resolves faces, so the panel stays suppressed.
func (w *CardLink) Visible() bool {
	s := w.store.State()
	return s.Display && len(w.DisplayFaces()) > 0
}

// DisplayFaces returns the resolved faces narrowed by the face selector.
func (w *CardLink) DisplayFaces() []card.Face {
	return selectFaces(w.store.State().Info.Faces, w.opts.Face)
}

// Prices returns the card's price quotes when the price toggle is on.
func (w *CardLink) Prices() []card.PriceQuote {
	if !w.opts.PriceInfo {
		return nil
	}
	return w.store.State().Info.Prices
}

// SetName updates the search term when it changed, resetting the fetch flag.
func (w *CardLink) SetName(name string) {
	if name == "" || name == w.store.State().Search.Fuzzy {
		return
	}
	q := w.store.State().Search
	q.Fuzzy = name
	w.store.Dispatch(store.NewAction(ActionUpdateSearch, q))
}

// SetSet updates the set filter when it changed.
func (w *CardLink) SetSet(set string) {
	if set == w.store.State().Search.Set {
		return
	}
	q := w.store.State().Search
	q.Set = set
	w.store.Dispatch(store.NewAction(ActionUpdateSearch, q))
}

// SetCollector updates the collector number when it changed.
func (w *CardLink) SetCollector(collector string) {
	if collector == w.store.State().Search.Collector {
		return
	}
	q := w.store.State().Search
	q.Collector = collector
	w.store.Dispatch(store.NewAction(ActionUpdateSearch, q))
}

// PointerEnter handles a hover: fetch (or cache hit) and open the panel at
// the pointer. Re-entrant calls recompute the position.
func (w *CardLink) PointerEnter(ctx context.Context, pointer placement.Point, bounds placement.Rect, viewport placement.Size) {
	w.lookup.fetchCard(ctx, w.id, w.store.State().CardState, w.dispatch)
	w.display(placement.Compute(pointer, bounds, w.opts.Panel, viewport))
}

// PointerLeave closes the panel.
func (w *CardLink) PointerLeave() {
	w.hide()
}

// FocusIn handles keyboard focus, which has no pointer coordinate: the
// panel anchors to the trigger's own edges.
func (w *CardLink) FocusIn(ctx context.Context, bounds placement.Rect, viewport placement.Size) {
	w.lookup.fetchCard(ctx, w.id, w.store.State().CardState, w.dispatch)
	w.display(placement.ComputeFocus(bounds, w.opts.Panel, viewport))
}

// FocusOut closes the panel.
func (w *CardLink) FocusOut() {
	w.hide()
}

// Touch handles a tap: mobile toggles rather than hover-tracks, so an open
// panel closes and a closed one fetches and opens anchored to the trigger's
// edges, away from the finger.
func (w *CardLink) Touch(ctx context.Context, touch placement.Point, bounds placement.Rect, viewport placement.Size) {
	w.lookup.emit(events.TouchCard, w.id)

	if w.store.State().Display {
		w.hide()
		return
	}

	w.lookup.fetchCard(ctx, w.id, w.store.State().CardState, w.dispatch)
	w.display(placement.ComputeTouch(touch, bounds, w.opts.Panel, viewport))
}

func (w *CardLink) dispatch(a store.Action) {
	w.store.Dispatch(a)
}

func (w *CardLink) display(pos placement.Placement) {
	w.store.Dispatch(store.NewAction(ActionUpdateDisplay, displayPayload{pos: pos}), func(LinkState) {
		w.lookup.emit(events.DisplayCard, w.id)
	})
}

func (w *CardLink) hide() {
	w.store.Dispatch(store.NewAction(ActionHideCard, nil), func(LinkState) {
		w.lookup.emit(events.HideCard, w.id)
	})
}
