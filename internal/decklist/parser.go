// Package decklist parses raw decklist text into card/amount/set/collector
// tuples. The rest of the system consumes it as a black box through the
// Parser interface; this default implementation understands the MTGA and
// MTGO export formats.
package decklist

import (
	"regexp"
	"strconv"
	"strings"
)

// Entry is one parsed decklist line.
type Entry struct {
	Name      string
	Amount    int
	Set       string
	Collector string
}

// List is a parsed decklist split into its sections.
type List struct {
	Deck      []Entry
	Sideboard []Entry
	Commander *Entry
	Companion *Entry
}

// AllEntries returns every entry across all sections, in deck order.
func (l *List) AllEntries() []Entry {
	entries := make([]Entry, 0, len(l.Deck)+len(l.Sideboard)+2)
	entries = append(entries, l.Deck...)
	entries = append(entries, l.Sideboard...)
	if l.Commander != nil {
		entries = append(entries, *l.Commander)
	}
	if l.Companion != nil {
		entries = append(entries, *l.Companion)
	}
	return entries
}

// Parser produces a List from raw decklist text.
type Parser interface {
	Parse(raw string) *List
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(raw string) *List

// Parse invokes the wrapped function.
func (f ParserFunc) Parse(raw string) *List { return f(raw) }

// Default is the auto-detecting parser.
var Default Parser = ParserFunc(Parse)

// entryRe matches "4 Lightning Bolt", "4x Lightning Bolt", and the MTGA form
// "4 Lightning Bolt (M10) 146" with an optional collector number.
var entryRe = regexp.MustCompile(`^(\d+)x?\s+(.+?)(?:\s+\(([0-9A-Za-z]{2,6})\)(?:\s+([0-9A-Za-z★†-]+))?)?\s*$`)

// Parse auto-detects the decklist format and parses it. Text containing MTGA
// section headers or set annotations is parsed as an MTGA export, everything
// else as MTGO.
func Parse(raw string) *List {
	if looksLikeMTGA(raw) {
		return ParseMTGA(raw)
	}
	return ParseMTGO(raw)
}

// looksLikeMTGA reports whether the text carries MTGA export markers.
func looksLikeMTGA(raw string) bool {
	for _, line := range strings.Split(raw, "\n") {
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "deck", "commander", "companion":
			return true
		}
		if m := entryRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil && m[3] != "" {
			return true
		}
	}
	return false
}

// ParseMTGA parses an MTGA-format export: named sections ("Deck",
// "Sideboard", "Commander", "Companion") with entries carrying set codes and
// collector numbers.
func ParseMTGA(raw string) *List {
	list := &List{}
	section := "deck"

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "deck":
			section = "deck"
			continue
		case "sideboard":
			section = "sideboard"
			continue
		case "commander":
			section = "commander"
			continue
		case "companion":
			section = "companion"
			continue
		}

		entry, ok := parseEntry(line)
		if !ok {
			continue
		}

		switch section {
		case "sideboard":
			list.Sideboard = append(list.Sideboard, entry)
		case "commander":
			e := entry
			list.Commander = &e
		case "companion":
			e := entry
			list.Companion = &e
		default:
			list.Deck = append(list.Deck, entry)
		}
	}

	return list
}

// ParseMTGO parses an MTGO-format export: bare "amount name" lines with the
// sideboard separated by a blank line or a "Sideboard" marker.
func ParseMTGO(raw string) *List {
	list := &List{}
	inSideboard := false
	started := false

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if started {
				inSideboard = true
			}
			continue
		}
		if strings.EqualFold(strings.TrimSuffix(line, ":"), "sideboard") {
			inSideboard = true
			continue
		}

		entry, ok := parseEntry(line)
		if !ok {
			continue
		}
		started = true

		if inSideboard {
			list.Sideboard = append(list.Sideboard, entry)
		} else {
			list.Deck = append(list.Deck, entry)
		}
	}

	return list
}

// parseEntry parses a single decklist line.
func parseEntry(line string) (Entry, bool) {
	m := entryRe.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}

	amount, err := strconv.Atoi(m[1])
	if err != nil || amount <= 0 {
		return Entry{}, false
	}

	return Entry{
		Name:      m[2],
		Amount:    amount,
		Set:       m[3],
		Collector: m[4],
	}, true
}
