package widget

import (
	"context"
	"testing"

	"github.com/im-sticky/mtg-card-seer/internal/events"
)

func TestCardInline_FetchesOnCreation(t *testing.T) {
	lookup, recorder, requests := testLookup(t, serveJSON(boltJSON))

	w, err := NewCardInline(context.Background(), CardInlineOptions{Name: "Lightning Bolt", PriceInfo: true}, lookup)
	if err != nil {
		t.Fatalf("NewCardInline() error = %v", err)
	}

	if requests() != 1 {
		t.Errorf("request count = %d, want 1 at creation", requests())
	}
	st := w.State()
	if !st.Fetched {
		t.Error("Fetched = false after creation")
	}
	if st.Info.Name != "Lightning Bolt" {
		t.Errorf("Info.Name = %q", st.Info.Name)
	}
	if len(w.DisplayFaces()) != 1 {
		t.Errorf("face count = %d, want 1", len(w.DisplayFaces()))
	}
	if len(w.Prices()) != 3 {
		t.Errorf("price quote count = %d, want 3", len(w.Prices()))
	}
	if !recorder.has(events.FetchCard) {
		t.Error("fetchCard event not emitted")
	}
}

func TestCardInline_FailedFetchKeepsPlaceholder(t *testing.T) {
	lookup, recorder, _ := testLookup(t, serveNotFound())

	w, err := NewCardInline(context.Background(), CardInlineOptions{Name: "No Such Card"}, lookup)
	if err != nil {
		t.Fatal(err)
	}

	st := w.State()
	if st.Fetched {
		t.Error("Fetched = true after a failed fetch")
	}
	if st.Info.URL == "" {
		t.Error("placeholder URL lost")
	}
	if !recorder.has(events.FetchError) {
		t.Error("fetchError event not emitted")
	}
}

func TestCardInline_SetNameRefetches(t *testing.T) {
	lookup, _, requests := testLookup(t, serveJSON(boltJSON))

	w, err := NewCardInline(context.Background(), CardInlineOptions{Name: "Lightning Bolt"}, lookup)
	if err != nil {
		t.Fatal(err)
	}

	// Same name: no new request.
	w.SetName(context.Background(), "Lightning Bolt")
	if requests() != 1 {
		t.Errorf("request count = %d, want 1 after a no-op name set", requests())
	}

	w.SetName(context.Background(), "Shock")
	if requests() != 2 {
		t.Errorf("request count = %d, want 2 after a name change", requests())
	}
	if w.State().Search.Fuzzy != "Shock" {
		t.Errorf("Search.Fuzzy = %q", w.State().Search.Fuzzy)
	}
}

func TestCardInline_Static(t *testing.T) {
	lookup, _, _ := testLookup(t, serveJSON(boltJSON))

	w, err := NewCardInline(context.Background(), CardInlineOptions{Name: "Lightning Bolt", Static: true}, lookup)
	if err != nil {
		t.Fatal(err)
	}
	if !w.Static() {
		t.Error("Static() = false")
	}
}

func TestNewCardInline_RequiresName(t *testing.T) {
	if _, err := NewCardInline(context.Background(), CardInlineOptions{}, Lookup{}); err == nil {
		t.Error("NewCardInline() = nil error without a name")
	}
}
