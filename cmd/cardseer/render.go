package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/im-sticky/mtg-card-seer/internal/card"
	"github.com/im-sticky/mtg-card-seer/internal/deck"
	"github.com/im-sticky/mtg-card-seer/internal/widget"
)

// printCard writes a resolved inline card as text.
func printCard(out io.Writer, w *widget.CardInline) {
	info := w.State().Info

	fmt.Fprintln(out, info.Name)
	if info.TypeLine != "" {
		fmt.Fprintln(out, info.TypeLine)
	}

	for _, face := range w.DisplayFaces() {
		if face.ImageURL == "" {
			continue
		}
		fmt.Fprintf(out, "  %s: %s\n", face.Name, face.ImageURL)
	}

	printPrices(out, w.Prices())

	if info.URL != "" {
		fmt.Fprintf(out, "  %s\n", info.URL)
	}
}

func printPrices(out io.Writer, prices []card.PriceQuote) {
	if len(prices) == 0 {
		return
	}

	parts := make([]string, 0, len(prices))
	for _, p := range prices {
		if p.Amount == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s%.2f", p.Symbol, *p.Amount))
	}
	if len(parts) > 0 {
		fmt.Fprintf(out, "  %s\n", strings.Join(parts, " / "))
	}
}

// printDeck writes a resolved decklist as text, section by section.
func printDeck(out io.Writer, w *widget.DeckList) {
	st := w.State()
	if !st.Fetched {
		fmt.Fprintln(out, "(loading)")
		return
	}

	opts := w.Options()
	if opts.Heading != "" {
		title := opts.Heading
		if opts.FormatLabel != "" {
			title += " — " + opts.FormatLabel
		}
		fmt.Fprintf(out, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
	}

	printSection(out, st.Deck.Commander, false)
	printSection(out, st.Deck.Companion, false)

	for _, section := range st.Deck.TypeSections() {
		printSection(out, section, true)
	}

	if st.Deck.Sideboard != nil {
		if !opts.InlineSideboard {
			fmt.Fprintln(out, strings.Repeat("-", 24))
		}
		printSection(out, st.Deck.Sideboard, false)
	}
}

func printSection(out io.Writer, section *deck.Section, withCount bool) {
	if section == nil {
		return
	}

	if withCount {
		fmt.Fprintf(out, "%s (%d)\n", section.Title, section.Count())
	} else {
		fmt.Fprintf(out, "%s\n", section.Title)
	}

	for _, entry := range section.Cards {
		fmt.Fprintf(out, "  %dx %s\n", entry.Amount, entry.Card.Name)
	}
	fmt.Fprintln(out)
}
