package card

import (
	"testing"

	"github.com/im-sticky/mtg-card-seer/internal/scryfall"
)

func strptr(s string) *string { return &s }

func TestFromScryfall_SingleFace(t *testing.T) {
	sc := &scryfall.Card{
		Name:        "Mana Leak",
		Layout:      LayoutNormal,
		ScryfallURI: "https://scryfall.com/card/m12/65/mana-leak",
		TypeLine:    "Instant",
		ImageURIs:   &scryfall.ImageURIs{Normal: "https://cards.scryfall.io/normal/front/mana-leak.jpg"},
		Prices:      scryfall.Prices{USD: strptr("0.25"), EUR: strptr("0.10")},
		PurchaseURIs: map[string]string{
			"tcgplayer":   "https://tcgplayer.com/mana-leak",
			"cardmarket":  "https://cardmarket.com/mana-leak",
			"cardhoarder": "https://cardhoarder.com/mana-leak",
		},
	}

	c := FromScryfall(sc)

	if len(c.Faces) != 1 {
		t.Fatalf("expected 1 face, got %d", len(c.Faces))
	}
	if c.Faces[0].Name != "Mana Leak" {
		t.Errorf("face name = %q, want %q", c.Faces[0].Name, "Mana Leak")
	}
	if c.Faces[0].ImageURL != sc.ImageURIs.Normal {
		t.Errorf("face image = %q, want %q", c.Faces[0].ImageURL, sc.ImageURIs.Normal)
	}
	if c.URL != sc.ScryfallURI {
		t.Errorf("URL = %q, want %q", c.URL, sc.ScryfallURI)
	}
	if len(c.Prices) != 3 {
		t.Fatalf("expected 3 price quotes, got %d", len(c.Prices))
	}
	if c.Prices[0].Symbol != "$" || c.Prices[0].Amount == nil || *c.Prices[0].Amount != 0.25 {
		t.Errorf("USD quote = %+v, want $0.25", c.Prices[0])
	}
	if c.Prices[1].Symbol != "€" || c.Prices[1].Amount == nil || *c.Prices[1].Amount != 0.10 {
		t.Errorf("EUR quote = %+v, want €0.10", c.Prices[1])
	}
	if c.Prices[2].Amount != nil {
		t.Errorf("TIX amount = %v, want nil for absent price", *c.Prices[2].Amount)
	}
	if c.Prices[0].PurchaseURL != "https://tcgplayer.com/mana-leak" {
		t.Errorf("USD purchase URL = %q", c.Prices[0].PurchaseURL)
	}
}

func TestFromScryfall_DoubleSided(t *testing.T) {
	sc := &scryfall.Card{
		Name:   "Delver of Secrets // Insectile Aberration",
		Layout: LayoutTransform,
		CardFaces: []scryfall.CardFace{
			{
				Name:      "Delver of Secrets",
				TypeLine:  "Creature — Human Wizard",
				ImageURIs: &scryfall.ImageURIs{Normal: "https://cards.scryfall.io/normal/front/delver.jpg"},
			},
			{
				Name:      "Insectile Aberration",
				TypeLine:  "Creature — Human Insect",
				ImageURIs: &scryfall.ImageURIs{Normal: "https://cards.scryfall.io/normal/back/delver.jpg"},
			},
		},
	}

	c := FromScryfall(sc)

	if len(c.Faces) != 2 {
		t.Fatalf("expected 2 faces, got %d", len(c.Faces))
	}
	if c.Faces[0].Name != "Delver of Secrets" {
		t.Errorf("front face name = %q", c.Faces[0].Name)
	}
	if c.Faces[1].ImageURL != "https://cards.scryfall.io/normal/back/delver.jpg" {
		t.Errorf("back face image = %q", c.Faces[1].ImageURL)
	}
	if c.TypeLine != "Creature — Human Wizard" {
		t.Errorf("type line = %q, want front face type line", c.TypeLine)
	}
}

func TestFromScryfall_FaceCountByLayout(t *testing.T) {
	twoFaces := []scryfall.CardFace{{Name: "Front"}, {Name: "Back"}}

	tests := []struct {
		layout string
		faces  int
	}{
		{LayoutTransform, 2},
		{LayoutModalDFC, 2},
		{LayoutMeld, 2},
		{LayoutDoubleFacedToken, 2},
		{LayoutArtSeries, 2},
		{LayoutDoubleSided, 2},
		{LayoutNormal, 1},
		{LayoutSplit, 1},
		{LayoutFlip, 1},
		{LayoutAdventure, 1},
		{LayoutSaga, 1},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			c := FromScryfall(&scryfall.Card{Name: "Test", Layout: tt.layout, CardFaces: twoFaces})
			if len(c.Faces) != tt.faces {
				t.Errorf("layout %q: got %d faces, want %d", tt.layout, len(c.Faces), tt.faces)
			}
		})
	}
}

func TestFromScryfall_BadPrice(t *testing.T) {
	c := FromScryfall(&scryfall.Card{
		Name:   "Test",
		Layout: LayoutNormal,
		Prices: scryfall.Prices{USD: strptr("not-a-number")},
	})
	if c.Prices[0].Amount != nil {
		t.Errorf("unparseable price should yield nil amount, got %v", *c.Prices[0].Amount)
	}
}

func TestPlaceholder(t *testing.T) {
	c := Placeholder("Lightning Bolt")
	if c.Name != "Lightning Bolt" {
		t.Errorf("name = %q", c.Name)
	}
	want := "https://scryfall.com/search?q=%22Lightning+Bolt%22"
	if c.URL != want {
		t.Errorf("URL = %q, want %q", c.URL, want)
	}
}
