package dedup

import (
	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/domain"
)

// Classifier turns a pair of postings into a DuplicateVerdict. Checks run
// in strict order: URL exact, fingerprint exact, then fuzzy. Strict mode
// drops the fuzzy tier entirely.
type Classifier struct {
	norm                  Normalizer
	strictMode            bool
	titleMin              float64
	companyMin            float64
	locationContradiction float64
}

func NewClassifier(cfg config.Config) Classifier {
	return Classifier{
		norm:                  NewNormalizer(cfg),
		strictMode:            cfg.Dedup.StrictMode,
		titleMin:              cfg.Dedup.TitleSimilarity,
		companyMin:            cfg.Dedup.CompanySimilarity,
		locationContradiction: cfg.Dedup.LocationContradiction,
	}
}

func (c Classifier) Normalizer() Normalizer { return c.norm }

// normPosting caches the normalized view of one posting so batch passes
// don't re-normalize per comparison. ord is the caller's slice position.
type normPosting struct {
	ord      int
	url      string
	fp       string
	title    string
	company  string
	location string
}

// normalize returns ok=false for postings that cannot be classified
// meaningfully (empty normalized title or company).
func (c Classifier) normalize(p domain.JobPosting, ord int) (normPosting, bool) {
	np := normPosting{
		ord:      ord,
		url:      NormalizeURL(p.URL),
		title:    c.norm.Title(p.Title),
		company:  c.norm.Company(p.Company),
		location: c.norm.Location(p.Location),
	}
	if np.title == "" || np.company == "" {
		return np, false
	}
	np.fp = fingerprintKey(np.title, np.company, c.norm.Locality(p.Location))
	return np, true
}

// Compare classifies candidate a against known posting b. First matching
// check wins; a pair matching on both URL and fingerprint reports url.
func (c Classifier) Compare(a, b domain.JobPosting) domain.DuplicateVerdict {
	na, aok := c.normalize(a, 0)
	nb, bok := c.normalize(b, 0)
	if !aok || !bok {
		return domain.DuplicateVerdict{Reason: domain.ReasonNone}
	}

	if na.url != "" && na.url == nb.url {
		return domain.DuplicateVerdict{IsDuplicate: true, Reason: domain.ReasonURL, MatchedID: b.ID}
	}
	if na.fp == nb.fp {
		return domain.DuplicateVerdict{IsDuplicate: true, Reason: domain.ReasonFingerprint, MatchedID: b.ID}
	}
	if !c.strictMode && c.fuzzyMatch(na, nb) {
		return domain.DuplicateVerdict{IsDuplicate: true, Reason: domain.ReasonFuzzy, MatchedID: b.ID}
	}
	return domain.DuplicateVerdict{Reason: domain.ReasonNone}
}

// fuzzyMatch: near-identical titles, same (or near-same) company, and
// locations that don't actively disagree. Empty locations never block a
// match; postings often omit them.
func (c Classifier) fuzzyMatch(a, b normPosting) bool {
	if Similarity(a.title, b.title) < c.titleMin {
		return false
	}
	if a.company != b.company && Similarity(a.company, b.company) < c.companyMin {
		return false
	}
	if a.location != "" && b.location != "" && Similarity(a.location, b.location) < c.locationContradiction {
		return false
	}
	return true
}
