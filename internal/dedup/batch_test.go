package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/domain"
)

func TestBatchFilterExactDuplicate(t *testing.T) {
	d := NewBatchDeduplicator(config.Default())

	in := []domain.JobPosting{
		posting("Software Engineer", "Google", "San Francisco", ""),
		posting("Software Engineer", "Google", "San Francisco", ""),
		posting("Data Scientist", "Microsoft", "Seattle", ""),
	}

	unique, report := d.Filter(in)
	require.Len(t, unique, 2)
	assert.Equal(t, 3, report.TotalInput)
	assert.Equal(t, 2, report.UniqueOutput)
	assert.Equal(t, 1, report.DuplicatesRemoved)
	assert.Equal(t, 1, report.DuplicatesByFingerprint)
	assert.Equal(t, "Software Engineer", unique[0].Title)
	assert.Equal(t, "Data Scientist", unique[1].Title)
}

func TestBatchFilterKeepsFirstInInputOrder(t *testing.T) {
	d := NewBatchDeduplicator(config.Default())

	in := []domain.JobPosting{
		{Title: "Backend Engineer", Company: "Acme", URL: "https://acme.io/j/1?utm_source=a"},
		{Title: "Backend Engineer (Remote)", Company: "Acme Corp", URL: "https://acme.io/j/1"},
	}

	unique, report := d.Filter(in)
	require.Len(t, unique, 1)
	assert.Equal(t, "https://acme.io/j/1?utm_source=a", unique[0].URL, "first occurrence wins")
	assert.Equal(t, 1, report.DuplicatesByURL)
}

func TestBatchFilterCountsByReason(t *testing.T) {
	d := NewBatchDeduplicator(config.Default())

	in := []domain.JobPosting{
		posting("Software Engineer", "Google", "SF", "https://g.co/1"),
		// url dup
		posting("Software Engineer", "Google", "SF", "https://g.co/1?ref=x"),
		// fingerprint dup, no URL
		posting("Software Engineer (Remote)", "Google Inc.", "SF", ""),
		// fuzzy dup
		posting("Software Engineers", "Google", "SF", "https://g.co/other"),
		// unique
		posting("Product Manager", "Google", "SF", ""),
	}

	unique, report := d.Filter(in)
	assert.Len(t, unique, 2)
	assert.Equal(t, 1, report.DuplicatesByURL)
	assert.Equal(t, 1, report.DuplicatesByFingerprint)
	assert.Equal(t, 1, report.DuplicatesByFuzzy)
	assert.Equal(t, 3, report.DuplicatesRemoved)
}

func TestBatchFilterSkipsInvalid(t *testing.T) {
	d := NewBatchDeduplicator(config.Default())

	in := []domain.JobPosting{
		posting("", "Google", "SF", ""),            // no title
		posting("Software Engineer", "", "SF", ""), // no company
		posting("Software Engineer", "Google", "SF", ""),
	}

	unique, report := d.Filter(in)
	assert.Len(t, unique, 1)
	assert.Equal(t, 2, report.SkippedInvalid)
	assert.Equal(t, 0, report.DuplicatesRemoved)
	assert.Equal(t, 1, report.UniqueOutput)
}

func TestBatchFilterEmptyInput(t *testing.T) {
	d := NewBatchDeduplicator(config.Default())

	unique, report := d.Filter(nil)
	assert.Empty(t, unique)
	assert.Equal(t, domain.BatchReport{}, report)
}
