package assistant

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// ErrLocationInvalid means the request did not contain exactly one of
// an address or a coordinate pair.
var ErrLocationInvalid = errors.New("either an address or both latitude and longitude must be set, but not both")

// Location is the place to search sales information for. Exactly one
// of Address or the Latitude and Longitude pair must be set.
type Location struct {
	Address   string   `json:"address,omitempty" example:"東京都渋谷区"`
	Latitude  *float64 `json:"latitude,omitempty" example:"35.6581"`
	Longitude *float64 `json:"longitude,omitempty" example:"139.7017"`
}

// Validate checks that exactly one way of locating the user is set.
func (l Location) Validate() error {
	hasAddress := l.Address != ""
	hasCoordinates := l.Latitude != nil && l.Longitude != nil

	if hasAddress == hasCoordinates {
		return ErrLocationInvalid
	}

	if !hasCoordinates && (l.Latitude != nil || l.Longitude != nil) {
		return ErrLocationInvalid
	}

	return nil
}

// Source is a web page the sales information was grounded on.
type Source struct {
	Title string `json:"title" example:"マルエツ 今週のチラシ"`
	URI   string `json:"uri" example:"https://example.com/flyer"`
}

// SalesInfo is supermarket sales information for one location together
// with the web sources it was grounded on.
type SalesInfo struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// SalesInfo searches for current supermarket sales around a location.
// The request runs with the Google Search tool so the answer can cite
// its sources.
func (c *Client) SalesInfo(ctx context.Context, location Location) (SalesInfo, error) {
	if err := location.Validate(); err != nil {
		return SalesInfo{}, err
	}

	if !c.Enabled() {
		return SalesInfo{}, ErrNotConfigured
	}

	resp, err := c.generate(ctx, genai.Text(salesInfoPrompt(location)), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	})
	if err != nil {
		return SalesInfo{}, err
	}

	info := SalesInfo{
		Text:    resp.Text(),
		Sources: []Source{},
	}

	if metadata := resp.Candidates[0].GroundingMetadata; metadata != nil {
		for _, chunk := range metadata.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}

			info.Sources = append(info.Sources, Source{
				Title: chunk.Web.Title,
				URI:   chunk.Web.URI,
			})
		}
	}

	return info, nil
}
