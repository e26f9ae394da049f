package card

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/im-sticky/mtg-card-seer/internal/scryfall"
)

// Face is one displayable face of a card.
type Face struct {
	Name     string
	ImageURL string
	TypeLine string
}

// PriceQuote is one market price for a card. Amount is nil when the price is
// unavailable; the quote itself is always present.
type PriceQuote struct {
	Symbol      string
	Amount      *float64
	PurchaseURL string
}

// Card is the resolved result of a lookup: the canonical Scryfall page, one
// or two faces, and exactly three price quotes (USD, EUR, MTGO tix) in that
// order. Instances are immutable and replaced wholesale on re-fetch.
type Card struct {
	Name     string
	URL      string
	Layout   string
	TypeLine string
	Faces    []Face
	Prices   []PriceQuote
}

// FrontFace returns the card's first face.
func (c Card) FrontFace() Face {
	if len(c.Faces) == 0 {
		return Face{}
	}
	return c.Faces[0]
}

// Placeholder builds a Card pointing at a Scryfall search for the term,
// used as the pre-fetch state so the link is never dead.
func Placeholder(searchTerm string) Card {
	return Card{
		Name: searchTerm,
		URL:  fmt.Sprintf(`https://scryfall.com/search?q=%s`, url.QueryEscape(`"`+searchTerm+`"`)),
	}
}

// FromScryfall maps an API card onto the widget-facing model. Layouts in the
// double-sided set produce one Face per sub-face; every other layout produces
// a single synthetic face from the top-level card.
func FromScryfall(sc *scryfall.Card) Card {
	var faces []Face
	if IsDoubleSided(sc.Layout) && len(sc.CardFaces) > 0 {
		faces = make([]Face, 0, len(sc.CardFaces))
		for _, f := range sc.CardFaces {
			faces = append(faces, Face{
				Name:     f.Name,
				ImageURL: imageNormal(f.ImageURIs),
				TypeLine: f.TypeLine,
			})
		}
	} else {
		faces = []Face{{
			Name:     sc.Name,
			ImageURL: imageNormal(sc.ImageURIs),
			TypeLine: sc.TypeLine,
		}}
	}

	typeLine := sc.TypeLine
	if typeLine == "" {
		typeLine = faces[0].TypeLine
	}

	return Card{
		Name:     sc.Name,
		URL:      sc.ScryfallURI,
		Layout:   sc.Layout,
		TypeLine: typeLine,
		Faces:    faces,
		Prices: []PriceQuote{
			{Symbol: "$", Amount: parsePrice(sc.Prices.USD), PurchaseURL: sc.PurchaseURIs["tcgplayer"]},
			{Symbol: "€", Amount: parsePrice(sc.Prices.EUR), PurchaseURL: sc.PurchaseURIs["cardmarket"]},
			{Symbol: "TIX ", Amount: parsePrice(sc.Prices.TIX), PurchaseURL: sc.PurchaseURIs["cardhoarder"]},
		},
	}
}

// imageNormal picks the normal-size image URL, tolerating absent image sets.
func imageNormal(uris *scryfall.ImageURIs) string {
	if uris == nil {
		return ""
	}
	return uris.Normal
}

// parsePrice converts Scryfall's decimal price strings to amounts. Absent or
// unparseable prices become nil, never zero.
func parsePrice(s *string) *float64 {
	if s == nil || *s == "" {
		return nil
	}
	amount, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil
	}
	return &amount
}
