package scryfall

import "fmt"

// Card represents a Magic card returned by the Scryfall API.
// Only the fields the widgets consume are mapped.
type Card struct {
	Name        string     `json:"name"`
	Layout      string     `json:"layout"`
	ScryfallURI string     `json:"scryfall_uri"`
	TypeLine    string     `json:"type_line"`
	ImageURIs   *ImageURIs `json:"image_uris,omitempty"`

	// Card faces (for DFCs, MDFCs, meld cards)
	CardFaces []CardFace `json:"card_faces,omitempty"`

	Prices       Prices            `json:"prices"`
	PurchaseURIs map[string]string `json:"purchase_uris,omitempty"`

	SetCode         string `json:"set"`
	CollectorNumber string `json:"collector_number"`
}

// CardFace represents one face of a multi-faced card.
type CardFace struct {
	Name      string     `json:"name"`
	TypeLine  string     `json:"type_line"`
	ImageURIs *ImageURIs `json:"image_uris,omitempty"`
}

// ImageURIs contains URLs for card images in various sizes.
type ImageURIs struct {
	Small      string `json:"small"`
	Normal     string `json:"normal"`
	Large      string `json:"large"`
	PNG        string `json:"png"`
	ArtCrop    string `json:"art_crop"`
	BorderCrop string `json:"border_crop"`
}

// Prices represents the prices of a card in various currencies.
// Scryfall reports prices as decimal strings and omits unavailable ones.
type Prices struct {
	USD *string `json:"usd,omitempty"`
	EUR *string `json:"eur,omitempty"`
	TIX *string `json:"tix,omitempty"`
}

// CardIdentifier represents a card identifier for the /cards/collection endpoint.
type CardIdentifier struct {
	Name            string `json:"name,omitempty"`
	Set             string `json:"set,omitempty"`              // Set code (requires collector_number or name)
	CollectorNumber string `json:"collector_number,omitempty"` // Collector number (requires set)
}

// String formats the identifier for log output.
func (id CardIdentifier) String() string {
	if id.Name != "" && id.Set != "" {
		return fmt.Sprintf("%s (%s)", id.Name, id.Set)
	}
	if id.Name != "" {
		return id.Name
	}
	return fmt.Sprintf("%s#%s", id.Set, id.CollectorNumber)
}

// CollectionRequest is the request body for /cards/collection.
type CollectionRequest struct {
	Identifiers []CardIdentifier `json:"identifiers"`
}

// CollectionResponse is the response from /cards/collection.
type CollectionResponse struct {
	Object   string           `json:"object"`
	NotFound []CardIdentifier `json:"not_found"`
	Data     []Card           `json:"data"`
}

// APIError represents an error response from the Scryfall API.
type APIError struct {
	Object  string `json:"object"`
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Details string `json:"details"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("Scryfall API error (HTTP %d): %s", e.Status, e.Details)
	}
	return fmt.Sprintf("Scryfall API error (HTTP %d): %s", e.Status, e.Code)
}

// NotFoundError represents a 404 error from the API.
type NotFoundError struct {
	URL string
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.URL)
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}
