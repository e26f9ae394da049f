// Package export renders a parsed decklist back to shareable text.
package export

import (
	"fmt"
	"strings"

	"github.com/im-sticky/mtg-card-seer/internal/decklist"
)

// Format identifies a decklist text format.
type Format string

const (
	// FormatMTGA is the Arena export format with named sections and
	// set/collector annotations.
	FormatMTGA Format = "mtga"

	// FormatMTGO is the bare "amount name" format with a blank-line
	// separated sideboard.
	FormatMTGO Format = "mtgo"
)

// Text renders the list in the requested format.
func Text(list *decklist.List, format Format) (string, error) {
	if list == nil {
		return "", fmt.Errorf("nil decklist")
	}

	switch format {
	case FormatMTGA:
		return mtgaText(list), nil
	case FormatMTGO:
		return mtgoText(list), nil
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
}

func mtgaText(list *decklist.List) string {
	var b strings.Builder

	if list.Commander != nil {
		b.WriteString("Commander\n")
		writeEntry(&b, *list.Commander, true)
		b.WriteString("\n")
	}

	if list.Companion != nil {
		b.WriteString("Companion\n")
		writeEntry(&b, *list.Companion, true)
		b.WriteString("\n")
	}

	b.WriteString("Deck\n")
	for _, e := range list.Deck {
		writeEntry(&b, e, true)
	}

	if len(list.Sideboard) > 0 {
		b.WriteString("\nSideboard\n")
		for _, e := range list.Sideboard {
			writeEntry(&b, e, true)
		}
	}

	return b.String()
}

func mtgoText(list *decklist.List) string {
	var b strings.Builder

	for _, e := range list.Deck {
		writeEntry(&b, e, false)
	}
	if list.Commander != nil {
		writeEntry(&b, *list.Commander, false)
	}

	sideboard := list.Sideboard
	if list.Companion != nil {
		sideboard = append([]decklist.Entry{*list.Companion}, sideboard...)
	}

	if len(sideboard) > 0 {
		b.WriteString("\n")
		for _, e := range sideboard {
			writeEntry(&b, e, false)
		}
	}

	return b.String()
}

// writeEntry writes one decklist line, including the printing annotation in
// MTGA form when the entry carries one.
func writeEntry(b *strings.Builder, e decklist.Entry, withPrinting bool) {
	fmt.Fprintf(b, "%d %s", e.Amount, e.Name)
	if withPrinting && e.Set != "" {
		fmt.Fprintf(b, " (%s)", strings.ToUpper(e.Set))
		if e.Collector != "" {
			fmt.Fprintf(b, " %s", e.Collector)
		}
	}
	b.WriteString("\n")
}
