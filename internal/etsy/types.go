package etsy

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Envelope is the top-level payload returned by the public catalog service.
type Envelope struct {
	Success  bool      `json:"success"`
	Listings []Listing `json:"listings"`
	LastSync string    `json:"lastSync,omitempty"`
	// Undecodable holds per-listing decode failures. A listing that does
	// not decode rejects itself, never its siblings.
	Undecodable []error `json:"-"`
}

// Listing is a raw marketplace listing. Every field is optional on the wire;
// nothing here is trusted until it passes through catalog normalization.
type Listing struct {
	ListingID          ListingID      `json:"listing_id"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Price              *Money         `json:"price"`
	Quantity           int            `json:"quantity"`
	State              string         `json:"state"`
	URL                string         `json:"url"`
	Images             []ListingImage `json:"images"`
	Materials          []string       `json:"materials"`
	Tags               []string       `json:"tags"`
	ItemDimensionsUnit string         `json:"item_dimensions_unit"`
	ItemLength         string         `json:"item_length"`
	ItemWidth          string         `json:"item_width"`
	ItemHeight         string         `json:"item_height"`
}

// Money is Etsy's fixed-point price representation. The actual price is
// Amount / Divisor.
type Money struct {
	Amount  float64 `json:"amount"`
	Divisor float64 `json:"divisor"`
}

// ListingImage carries the resolution variants we care about for display.
type ListingImage struct {
	URL570xN     string `json:"url_570xN"`
	URLFullxfull string `json:"url_fullxfull"`
}

// ListingID accepts the id as either a JSON string or a JSON number, since
// the upstream feed has shipped both over time.
type ListingID string

func (id *ListingID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ListingID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("unmarshal listing_id: %w", err)
	}
	*id = ListingID(n.String())
	return nil
}

func (id ListingID) String() string {
	return string(id)
}

// IsZero reports whether the id is missing or carries no upstream identity.
func (id ListingID) IsZero() bool {
	return id == "" || id == "0"
}

// Int parses the id as a base-10 integer.
func (id ListingID) Int() (int, error) {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return 0, fmt.Errorf("parse listing_id %q: %w", string(id), err)
	}
	return n, nil
}

// ParseEnvelope unmarshals a catalog payload and validates its shape. A
// missing success flag or listings sequence fails the whole payload; no
// partial catalog is ever recovered from a bad envelope. Listings decode
// one at a time, so a single listing with off-type fields (a string
// quantity, an object id) lands in Undecodable without failing the batch.
func ParseEnvelope(data []byte) (*Envelope, error) {
	var payload struct {
		Success  bool               `json:"success"`
		Listings *[]json.RawMessage `json:"listings"`
		LastSync string             `json:"lastSync"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal catalog envelope: %w", err)
	}
	if !payload.Success {
		return nil, fmt.Errorf("catalog envelope reported success=false")
	}
	if payload.Listings == nil {
		return nil, fmt.Errorf("catalog envelope missing listings")
	}

	envelope := &Envelope{
		Success:  true,
		Listings: make([]Listing, 0, len(*payload.Listings)),
		LastSync: payload.LastSync,
	}
	for i, raw := range *payload.Listings {
		var listing Listing
		if err := json.Unmarshal(raw, &listing); err != nil {
			envelope.Undecodable = append(envelope.Undecodable,
				fmt.Errorf("decode listing %d: %w", i, err))
			continue
		}
		envelope.Listings = append(envelope.Listings, listing)
	}
	return envelope, nil
}
