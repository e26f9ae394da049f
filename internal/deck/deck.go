// Package deck aggregates resolved cards into the sectioned model a decklist
// widget renders.
package deck

import (
	"log"
	"strings"

	"github.com/im-sticky/mtg-card-seer/internal/card"
	"github.com/im-sticky/mtg-card-seer/internal/decklist"
)

// Entry is a resolved card annotated with its per-deck amount.
type Entry struct {
	Card   card.Card
	Amount int
}

// Section is a titled group of deck entries.
type Section struct {
	Title string
	Cards []Entry
}

// Count returns the total card count in the section, amounts included.
func (s *Section) Count() int {
	if s == nil {
		return 0
	}
	total := 0
	for _, e := range s.Cards {
		total += e.Amount
	}
	return total
}

// Deck is a decklist grouped into type sections plus the optional
// commander, companion, and sideboard sections.
type Deck struct {
	types     map[string]*Section
	Commander *Section
	Companion *Section
	Sideboard *Section
}

// TypeSection returns the section for a card type, or nil when the deck has
// no cards of that type.
func (d Deck) TypeSection(cardType string) *Section {
	return d.types[cardType]
}

// TypeSections returns the non-empty type sections in display order.
func (d Deck) TypeSections() []*Section {
	sections := make([]*Section, 0, len(card.TypeOrder))
	for _, t := range card.TypeOrder {
		if s, ok := d.types[t]; ok {
			sections = append(sections, s)
		}
	}
	return sections
}

// Size returns the total maindeck card count.
func (d Deck) Size() int {
	total := 0
	for _, s := range d.types {
		total += s.Count()
	}
	return total
}

// Empty reports whether the deck holds no entries at all.
func (d Deck) Empty() bool {
	return len(d.types) == 0 && d.Commander == nil && d.Companion == nil && d.Sideboard == nil
}

// Build matches parsed decklist entries to resolved cards and groups the
// maindeck into type sections. A card lands in exactly one section: the
// first type in the precedence order found in its front face's type line.
// Entries with no resolved card or no recognized type are logged and
// dropped, never fatal.
func Build(cards []card.Card, list *decklist.List) Deck {
	d := Deck{types: make(map[string]*Section)}
	if list == nil {
		return d
	}

	for _, item := range list.Deck {
		resolved, ok := findCard(cards, item.Name)
		if !ok {
			log.Printf("[Deck] no resolved card for %q, dropping", item.Name)
			continue
		}

		cardType, ok := sectionType(resolved)
		if !ok {
			log.Printf("[Deck] no recognized type in %q for %q, dropping", resolved.FrontFace().TypeLine, item.Name)
			continue
		}

		section, exists := d.types[cardType]
		if !exists {
			section = &Section{Title: cardType}
			d.types[cardType] = section
		}
		section.Cards = append(section.Cards, Entry{Card: resolved, Amount: item.Amount})
	}

	d.Sideboard = buildSection("Sideboard", list.Sideboard, cards)
	d.Commander = buildSingleton("Commander", list.Commander, cards)
	d.Companion = buildSingleton("Companion", list.Companion, cards)

	return d
}

// buildSection resolves a flat section without type grouping.
func buildSection(title string, items []decklist.Entry, cards []card.Card) *Section {
	if len(items) == 0 {
		return nil
	}

	section := &Section{Title: title}
	for _, item := range items {
		resolved, ok := findCard(cards, item.Name)
		if !ok {
			log.Printf("[Deck] no resolved card for %q, dropping", item.Name)
			continue
		}
		section.Cards = append(section.Cards, Entry{Card: resolved, Amount: item.Amount})
	}

	if len(section.Cards) == 0 {
		return nil
	}
	return section
}

// buildSingleton resolves a one-card section like Commander or Companion.
func buildSingleton(title string, item *decklist.Entry, cards []card.Card) *Section {
	if item == nil {
		return nil
	}
	return buildSection(title, []decklist.Entry{*item}, cards)
}

// sectionType finds the first precedence-order type named in the card's
// front-face type line.
func sectionType(c card.Card) (string, bool) {
	typeLine := strings.ToLower(c.FrontFace().TypeLine)
	for _, t := range card.TypePrecedence {
		if strings.Contains(typeLine, strings.ToLower(t)) {
			return t, true
		}
	}
	return "", false
}

// findCard matches a decklist name to a resolved card. Prefix matching
// covers double-faced cards, whose resolved name is "Front // Back" while
// the decklist names only the front face.
func findCard(cards []card.Card, name string) (card.Card, bool) {
	for _, c := range cards {
		if len(name) <= len(c.Name) && strings.EqualFold(c.Name[:len(name)], name) {
			return c, true
		}
	}
	return card.Card{}, false
}
