package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPayload(t *testing.T) {
	raw := map[string]any{
		"title":       "  Software Engineer ",
		"company":     "Google",
		"location":    "San Francisco, CA",
		"url":         "https://g.co/jobs/1",
		"source_id":   "gh-123",
		"description": "Build things",
		"tech_stack":  []any{"go", " sqlite ", ""},
		"salary":      120000, // unknown keys ignored
	}

	p := FromPayload(raw, "user-1", "greenhouse")
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "greenhouse", p.Source)
	assert.Equal(t, "Software Engineer", p.Title)
	assert.Equal(t, "Google", p.Company)
	assert.Equal(t, "San Francisco, CA", p.Location)
	assert.Equal(t, "gh-123", p.SourceID)
	assert.Equal(t, []string{"go", "sqlite"}, p.TechStack)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestFromPayloadSourceIDFallback(t *testing.T) {
	// URL present: URL becomes the stable identity
	p := FromPayload(map[string]any{
		"title": "SE", "company": "G", "url": "https://g.co/1",
	}, "u", "s")
	assert.Equal(t, "https://g.co/1", p.SourceID)

	// nothing stable at all: a fresh ID is minted
	p = FromPayload(map[string]any{"title": "SE", "company": "G"}, "u", "s")
	assert.NotEmpty(t, p.SourceID)

	q := FromPayload(map[string]any{"title": "SE", "company": "G"}, "u", "s")
	assert.NotEqual(t, p.SourceID, q.SourceID)
}

func TestFromPayloadMissingFields(t *testing.T) {
	// conversion never rejects; validation happens downstream
	p := FromPayload(map[string]any{}, "u", "s")
	assert.Empty(t, p.Title)
	assert.Empty(t, p.Company)
	assert.NotEmpty(t, p.SourceID)
}

func TestFromPayloads(t *testing.T) {
	out := FromPayloads([]map[string]any{
		{"title": "A", "company": "X"},
		{"title": "B", "company": "Y"},
	}, "u", "s")
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Title)
	assert.Equal(t, "B", out[1].Title)
}

func TestFlattenDescription(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"plain  text\nhere", "plain text here"},
		{"<p>Build <b>things</b> at scale</p>", "Build things at scale"},
		{"<div><script>alert(1)</script>Real content</div>", "Real content"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FlattenDescription(c.in), "FlattenDescription(%q)", c.in)
	}
}
