package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/domain"
)

func posting(title, company, location, url string) domain.JobPosting {
	return domain.JobPosting{Title: title, Company: company, Location: location, URL: url}
}

func TestCompareURLWinsOverFingerprint(t *testing.T) {
	c := NewClassifier(config.Default())

	// same URL but completely different roles: URL check still decides first
	a := posting("Software Engineer", "Google", "SF", "https://g.co/jobs/1?utm_source=x")
	b := posting("Data Scientist", "Google", "SF", "https://g.co/jobs/1")

	v := c.Compare(a, b)
	assert.True(t, v.IsDuplicate)
	assert.Equal(t, domain.ReasonURL, v.Reason)
}

func TestCompareTrackingParamsIgnored(t *testing.T) {
	c := NewClassifier(config.Default())

	a := posting("Software Engineer", "Google", "San Francisco", "https://g.co/jobs/1?ref=abc")
	b := posting("Software Engineer", "Google", "San Francisco", "https://g.co/jobs/1")

	v := c.Compare(a, b)
	assert.True(t, v.IsDuplicate)
	assert.Equal(t, domain.ReasonURL, v.Reason)
}

func TestCompareFingerprintWhenURLMissing(t *testing.T) {
	c := NewClassifier(config.Default())

	a := posting("Software Engineer (Remote)", "Google Inc.", "San Francisco, CA", "")
	b := posting("Software Engineer", "Google", "San Francisco", "https://g.co/jobs/1")

	v := c.Compare(a, b)
	assert.True(t, v.IsDuplicate)
	assert.Equal(t, domain.ReasonFingerprint, v.Reason, "missing URL on one side must not report reason url")
}

func TestCompareFuzzy(t *testing.T) {
	c := NewClassifier(config.Default())

	a := posting("Software Engineer III", "Stripe", "New York, NY", "https://x.co/1")
	b := posting("Software Engineer II", "Stripe, LLC", "New York, NY", "https://y.co/2")

	v := c.Compare(a, b)
	assert.True(t, v.IsDuplicate)
	assert.Equal(t, domain.ReasonFuzzy, v.Reason)
}

func TestCompareStrictModeDisablesFuzzy(t *testing.T) {
	cfg := config.Default()
	a := posting("Software Engineer III", "Stripe", "New York, NY", "https://x.co/1")
	b := posting("Software Engineer II", "Stripe", "New York, NY", "https://y.co/2")

	v := NewClassifier(cfg).Compare(a, b)
	assert.True(t, v.IsDuplicate, "sanity: fuzzy match expected with strict off")

	cfg.Dedup.StrictMode = true
	v = NewClassifier(cfg).Compare(a, b)
	assert.False(t, v.IsDuplicate)
	assert.Equal(t, domain.ReasonNone, v.Reason)
}

func TestCompareContradictoryLocationBlocksFuzzy(t *testing.T) {
	c := NewClassifier(config.Default())

	a := posting("Software Engineer III", "Stripe", "New York, NY", "")
	b := posting("Software Engineer II", "Stripe", "Singapore", "")

	v := c.Compare(a, b)
	assert.False(t, v.IsDuplicate)
}

func TestCompareEmptyLocationDoesNotBlockFuzzy(t *testing.T) {
	c := NewClassifier(config.Default())

	a := posting("Software Engineer III", "Stripe", "", "")
	b := posting("Software Engineer II", "Stripe", "Singapore", "")

	v := c.Compare(a, b)
	assert.True(t, v.IsDuplicate)
	assert.Equal(t, domain.ReasonFuzzy, v.Reason)
}

func TestCompareDifferentCompaniesNotFuzzy(t *testing.T) {
	c := NewClassifier(config.Default())

	a := posting("Software Engineer", "Stripe", "NYC", "")
	b := posting("Software Engineer", "Square", "NYC", "")

	v := c.Compare(a, b)
	assert.False(t, v.IsDuplicate)
}

func TestCompareInvalidPostingNeverMatches(t *testing.T) {
	c := NewClassifier(config.Default())

	a := posting("", "", "", "https://g.co/jobs/1")
	b := posting("Software Engineer", "Google", "", "https://g.co/jobs/1")

	v := c.Compare(a, b)
	assert.False(t, v.IsDuplicate, "unclassifiable postings are rejected upstream, never matched")
}
