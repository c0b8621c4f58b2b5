package resource

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/mindhaven/core/internal/models"
)

type CreateResourceDTO struct {
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	URL          string   `json:"url"`
	Source       string   `json:"source"`
	ResourceType string   `json:"resource_type"`
	Tags         FlexTags `json:"tags"`
	PublishedAt  string   `json:"published_at"`
	Verified     bool     `json:"verified"`
}

// FetchDTO is the bulk import request. MaxItems is a pointer so an explicit
// zero (process nothing) stays distinguishable from an absent field (cap at
// the default).
type FetchDTO struct {
	URL      string `json:"url"`
	MaxItems *int   `json:"max_items"`
}

type resourceResponse struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	URL          string   `json:"url"`
	Source       string   `json:"source"`
	ResourceType string   `json:"resource_type"`
	Tags         []string `json:"tags"`
	PublishedAt  *string  `json:"published_at"`
	Verified     bool     `json:"verified"`
}

// ImportResult is the created/skipped breakdown of one bulk import run.
type ImportResult struct {
	Message      string        `json:"message"`
	Processed    int           `json:"processed"`
	CreatedCount int           `json:"created_count"`
	Created      []CreatedItem `json:"created"`
	Skipped      []SkippedItem `json:"skipped"`
}

type CreatedItem struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}

type SkippedItem struct {
	URL    string `json:"url,omitempty"`
	Reason string `json:"reason"`
}

var (
	errFetchFailed   = errors.New("failed to fetch external resources")
	errUpstreamState = errors.New("external API returned non-200")
	errUpstreamJSON  = errors.New("invalid JSON from external API")
	errUpstreamShape = errors.New("external API did not return a list of resources")
)

// FlexTags accepts tags either as a JSON list (joined with the trim/drop-empty
// convention) or as a raw string (stored as-is).
type FlexTags string

func (t *FlexTags) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = FlexTags(models.JoinTags(list))
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*t = FlexTags(raw)
		return nil
	}
	return errors.New("tags must be a string or a list of strings")
}

// parsePublishedAt accepts common ISO-8601 layouts. Unparsable or empty input
// yields nil without error; a bad date drops the field silently rather than
// failing the item.
func parsePublishedAt(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return &ts
		}
	}
	return nil
}

func toResponse(r *models.ResourceModel) resourceResponse {
	var published *string
	if r.PublishedAt != nil {
		iso := r.PublishedAt.Format(time.RFC3339)
		published = &iso
	}
	return resourceResponse{
		ID:           r.ID,
		Title:        r.Title,
		Summary:      r.Summary,
		URL:          r.URL,
		Source:       r.Source,
		ResourceType: r.ResourceType,
		Tags:         models.SplitTags(r.Tags),
		PublishedAt:  published,
		Verified:     r.Verified,
	}
}
