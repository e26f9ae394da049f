package card

// Card layouts as reported by the Scryfall API.
const (
	LayoutNormal           = "normal"
	LayoutSplit            = "split"
	LayoutFlip             = "flip"
	LayoutTransform        = "transform"
	LayoutModalDFC         = "modal_dfc"
	LayoutMeld             = "meld"
	LayoutLeveler          = "leveler"
	LayoutClass            = "class"
	LayoutSaga             = "saga"
	LayoutAdventure        = "adventure"
	LayoutPlanar           = "planar"
	LayoutScheme           = "scheme"
	LayoutVanguard         = "vanguard"
	LayoutToken            = "token"
	LayoutDoubleFacedToken = "double_faced_token"
	LayoutEmblem           = "emblem"
	LayoutAugment          = "augment"
	LayoutHost             = "host"
	LayoutArtSeries        = "art_series"
	LayoutDoubleSided      = "double_sided"
)

// doubleSidedLayouts is the fixed set of layouts whose cards carry two
// independently meaningful faces.
var doubleSidedLayouts = map[string]bool{
	LayoutTransform:        true,
	LayoutModalDFC:         true,
	LayoutMeld:             true,
	LayoutDoubleFacedToken: true,
	LayoutArtSeries:        true,
	LayoutDoubleSided:      true,
}

// IsDoubleSided reports whether the layout carries two faces.
func IsDoubleSided(layout string) bool {
	return doubleSidedLayouts[layout]
}

// Card types recognized by decklist sectioning.
const (
	TypeInstant      = "Instant"
	TypeSorcery      = "Sorcery"
	TypeArtifact     = "Artifact"
	TypeCreature     = "Creature"
	TypeEnchantment  = "Enchantment"
	TypeLand         = "Land"
	TypePlaneswalker = "Planeswalker"
)

// TypeOrder is the reading order of type sections in a rendered decklist.
var TypeOrder = []string{
	TypeCreature,
	TypePlaneswalker,
	TypeSorcery,
	TypeInstant,
	TypeArtifact,
	TypeEnchantment,
	TypeLand,
}

// TypePrecedence is the order used to assign a card to exactly one type
// section: the first type in this list found in the card's front-face type
// line wins.
var TypePrecedence = []string{
	TypePlaneswalker,
	TypeCreature,
	TypeLand,
	TypeSorcery,
	TypeInstant,
	TypeArtifact,
	TypeEnchantment,
}
