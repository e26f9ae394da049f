package widget

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/im-sticky/mtg-card-seer/internal/card"
	"github.com/im-sticky/mtg-card-seer/internal/deck"
	"github.com/im-sticky/mtg-card-seer/internal/decklist"
	"github.com/im-sticky/mtg-card-seer/internal/events"
	"github.com/im-sticky/mtg-card-seer/internal/export"
	"github.com/im-sticky/mtg-card-seer/internal/fetcher"
	"github.com/im-sticky/mtg-card-seer/internal/source"
	"github.com/im-sticky/mtg-card-seer/internal/store"
)

// Action types specific to the decklist widget.
const (
	ActionSetDecklist    = "SET_DECKLIST"
	ActionSetSource      = "SET_SOURCE"
	ActionSetListFetched = "SET_LIST_FETCHED"
	ActionSetPreview     = "SET_PREVIEW"
)

// DeckState is the full state of a decklist widget.
type DeckState struct {
	// Fetched marks the list resolved and renderable. A failed fetch
	// leaves it false, keeping the widget in its loading state.
	Fetched bool

	// Source is the external URL the list was loaded from, if any.
	Source string

	// List is the parsed decklist the deck was built from.
	List *decklist.List

	// Deck is the sectioned, resolved deck model.
	Deck deck.Deck

	// Preview is the card shown in the preview pane, nil when empty.
	Preview *card.Card
}

// decklistPayload carries the SET_DECKLIST action value.
type decklistPayload struct {
	deck deck.Deck
	list *decklist.List
}

// DeckListOptions configures a decklist widget from its host attributes.
type DeckListOptions struct {
	Heading         string // heading label rendered above the list
	FormatLabel     string // format label rendered beside the heading
	HidePreview     bool   // suppress the preview pane
	HideExport      bool   // suppress the export control
	InlineSideboard bool   // render the sideboard inline with the maindeck
	Renderer        Renderer
}

// DeckListDeps are the collaborators a decklist widget composes. Parser and
// Source fall back to defaults when nil.
type DeckListDeps struct {
	Fetcher *fetcher.Fetcher
	Events  *events.Dispatcher
	Parser  decklist.Parser
	Source  *source.Client
}

// DeckList renders a full decklist with an optional hover preview pane and
// export control. The list comes either from inline text or an external
// source URL.
type DeckList struct {
	id      string
	store   *store.Store[DeckState]
	fetcher *fetcher.Fetcher
	emitter *events.Dispatcher
	parser  decklist.Parser
	source  *source.Client
	opts    DeckListOptions
}

// NewDeckList creates a decklist widget. Load the list afterwards with
// LoadText or LoadSource.
func NewDeckList(opts DeckListOptions, deps DeckListDeps) *DeckList {
	if deps.Parser == nil {
		deps.Parser = decklist.Default
	}
	if deps.Source == nil {
		deps.Source = source.NewClient(0)
	}

	handlers := map[string]store.Handler[DeckState]{
		ActionSetDecklist: func(s DeckState, a store.Action) DeckState {
			payload := a.Value.(decklistPayload)
			s.Deck = payload.deck
			s.List = payload.list
			return s
		},
		ActionSetSource: func(s DeckState, a store.Action) DeckState {
			s.Source = a.Value.(string)
			return s
		},
		ActionSetListFetched: func(s DeckState, a store.Action) DeckState {
			s.Fetched = a.Value.(bool)
			return s
		},
		ActionSetPreview: func(s DeckState, a store.Action) DeckState {
			if a.Value == nil {
				s.Preview = nil
			} else {
				c := a.Value.(card.Card)
				s.Preview = &c
			}
			return s
		},
	}

	var render func(DeckState)
	if opts.Renderer != nil {
		render = func(s DeckState) { opts.Renderer.Render(s) }
	}

	return &DeckList{
		id:      uuid.NewString(),
		store:   store.New(DeckState{}, handlers, render),
		fetcher: deps.Fetcher,
		emitter: deps.Events,
		parser:  deps.Parser,
		source:  deps.Source,
		opts:    opts,
	}
}

// ID returns the widget's instance identifier.
func (w *DeckList) ID() string { return w.id }

// State returns the current widget state.
func (w *DeckList) State() DeckState { return w.store.State() }

// Options returns the widget's layout toggles and labels.
func (w *DeckList) Options() DeckListOptions { return w.opts }

// LoadText parses raw decklist text, resolves its cards through batched
// lookups, and applies the resulting deck model. A request-level batch
// failure emits fetchError once and leaves the widget in its loading state;
// individual unmatched cards are logged and the rest still render.
func (w *DeckList) LoadText(ctx context.Context, raw string) error {
	list := w.parser.Parse(raw)
	if list == nil || len(list.Deck) == 0 {
		return nil
	}

	entries := list.AllEntries()
	queries := make([]card.Query, 0, len(entries))
	for _, e := range entries {
		queries = append(queries, card.Query{Fuzzy: e.Name, Set: e.Set, Collector: e.Collector})
	}

	result, err := w.fetcher.FetchMany(ctx, queries)
	if err != nil {
		log.Printf("[DeckList] batch fetch failed: %v", err)
		w.emit(events.FetchError)
		return err
	}

	built := deck.Build(result.Cards, list)
	w.store.Dispatch(store.NewAction(ActionSetDecklist, decklistPayload{deck: built, list: list}))
	w.store.Dispatch(store.NewAction(ActionSetListFetched, true), func(DeckState) {
		w.emit(events.FetchList)
	})

	return nil
}

// LoadSource fetches an external decklist source and loads its text.
func (w *DeckList) LoadSource(ctx context.Context, src string) error {
	if src == w.store.State().Source {
		return nil
	}

	raw, err := w.source.FetchList(ctx, src)
	if err != nil {
		log.Printf("[DeckList] source fetch failed: %v", err)
		w.emit(events.FetchError)
		return err
	}

	var loadErr error
	w.store.Dispatch(store.NewAction(ActionSetSource, src), func(DeckState) {
		loadErr = w.LoadText(ctx, raw)
	})
	return loadErr
}

// Preview sets the preview pane to the given card.
func (w *DeckList) Preview(c card.Card) {
	if w.opts.HidePreview {
		return
	}
	w.store.Dispatch(store.NewAction(ActionSetPreview, c), func(DeckState) {
		w.emit(events.PreviewChange)
	})
}

// HoverEntry previews the hovered entry's card.
func (w *DeckList) HoverEntry(e deck.Entry) {
	w.Preview(e.Card)
}

// TouchEntry previews the tapped entry's card; tapping the entry already in
// the preview leaves it in place so the second tap follows the link.
func (w *DeckList) TouchEntry(e deck.Entry) {
	w.emit(events.TouchCard)

	current := w.store.State().Preview
	if current != nil && current.Name == e.Card.Name {
		return
	}
	w.Preview(e.Card)
}

// FocusEntry previews the keyboard-focused entry's card.
func (w *DeckList) FocusEntry(e deck.Entry) {
	w.Preview(e.Card)
}

// Export renders the loaded list in the requested format and emits
// deckExported.
func (w *DeckList) Export(format export.Format) (string, error) {
	if w.opts.HideExport {
		return "", fmt.Errorf("export is disabled for this decklist")
	}

	st := w.store.State()
	if !st.Fetched || st.List == nil {
		return "", fmt.Errorf("decklist is not loaded")
	}

	text, err := export.Text(st.List, format)
	if err != nil {
		return "", err
	}

	w.emit(events.DeckExported)
	return text, nil
}

func (w *DeckList) emit(eventType string) {
	if w.emitter == nil {
		return
	}
	w.emitter.Dispatch(events.Event{Type: eventType, Source: w.id})
}
