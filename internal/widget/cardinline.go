package widget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/im-sticky/mtg-card-seer/internal/card"
	"github.com/im-sticky/mtg-card-seer/internal/store"
)

// InlineState is the state of an inline card.
type InlineState struct {
	CardState
}

func (s InlineState) card() CardState { return s.CardState }

func (s InlineState) withCard(cs CardState) InlineState {
	s.CardState = cs
	return s
}

// CardInlineOptions configures an inline card from its host attributes.
type CardInlineOptions struct {
	Name      string
	Set       string
	Collector string
	Face      int // 1-based face selector, 0 shows all faces
	PriceInfo bool
	Static    bool // render without the link to the canonical page
	Renderer  Renderer
}

// CardInline displays a card image in place. Unlike the hover link it
// fetches on creation rather than on interaction.
type CardInline struct {
	id     string
	lookup Lookup
	store  *store.Store[InlineState]
	opts   CardInlineOptions
}

// NewCardInline creates an inline card widget and issues its fetch.
func NewCardInline(ctx context.Context, opts CardInlineOptions, lookup Lookup) (*CardInline, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("inline card requires a name")
	}

	initial := InlineState{
		CardState: CardState{
			Search: card.Query{Fuzzy: opts.Name, Set: opts.Set, Collector: opts.Collector},
			Info:   card.Placeholder(opts.Name),
		},
	}

	var render func(InlineState)
	if opts.Renderer != nil {
		render = func(s InlineState) { opts.Renderer.Render(s) }
	}

	w := &CardInline{
		id:     uuid.NewString(),
		lookup: lookup,
		store:  store.New(initial, baseHandlers[InlineState](), render),
		opts:   opts,
	}

	w.lookup.fetchCard(ctx, w.id, w.store.State().CardState, w.dispatch)

	return w, nil
}

// ID returns the widget's instance identifier.
func (w *CardInline) ID() string { return w.id }

// State returns the current widget state.
func (w *CardInline) State() InlineState { return w.store.State() }

// Static reports whether the card renders without its canonical page link.
func (w *CardInline) Static() bool { return w.opts.Static }

// DisplayFaces returns the resolved faces narrowed by the face selector.
func (w *CardInline) DisplayFaces() []card.Face {
	return selectFaces(w.store.State().Info.Faces, w.opts.Face)
}

// Prices returns the card's price quotes when the price toggle is on.
func (w *CardInline) Prices() []card.PriceQuote {
	if !w.opts.PriceInfo {
		return nil
	}
	return w.store.State().Info.Prices
}

// SetName updates the search term when it changed and refetches.
func (w *CardInline) SetName(ctx context.Context, name string) {
	if name == "" || name == w.store.State().Search.Fuzzy {
		return
	}
	q := w.store.State().Search
	q.Fuzzy = name
	w.store.Dispatch(store.NewAction(ActionUpdateSearch, q))
	w.lookup.fetchCard(ctx, w.id, w.store.State().CardState, w.dispatch)
}

func (w *CardInline) dispatch(a store.Action) {
	w.store.Dispatch(a)
}
