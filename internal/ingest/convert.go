// Package ingest is the boundary between untyped scraper payloads and the
// typed postings the rest of the engine works on. Conversion happens once,
// here; nothing downstream touches raw maps.
package ingest

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"jobtrack-engine/internal/domain"
)

// FromPayload converts one raw posting record. Unknown keys are ignored;
// missing identity fields come through empty and get rejected later by the
// dedup validation pass, not here.
func FromPayload(raw map[string]any, userID, source string) domain.JobPosting {
	p := domain.JobPosting{
		UserID:      userID,
		Source:      source,
		Title:       stringField(raw, "title"),
		Company:     stringField(raw, "company"),
		Location:    stringField(raw, "location"),
		URL:         stringField(raw, "url"),
		SourceID:    stringField(raw, "source_id"),
		Description: FlattenDescription(stringField(raw, "description")),
		TechStack:   stringList(raw, "tech_stack"),
		CreatedAt:   time.Now().UTC(),
	}

	// Stable identity for the store's insert-if-new: prefer the scraper's
	// own ID, fall back to the URL, else mint one.
	if p.SourceID == "" {
		if p.URL != "" {
			p.SourceID = p.URL
		} else {
			p.SourceID = uuid.NewString()
		}
	}
	return p
}

func FromPayloads(raws []map[string]any, userID, source string) []domain.JobPosting {
	out := make([]domain.JobPosting, 0, len(raws))
	for _, raw := range raws {
		out = append(out, FromPayload(raw, userID, source))
	}
	return out
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func stringList(raw map[string]any, key string) []string {
	var out []string
	switch v := raw[key].(type) {
	case []string:
		for _, s := range v {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, e := range v {
			if s, ok := e.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
