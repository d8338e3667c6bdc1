package dedup

import "jobtrack-engine/internal/domain"

// matchIndex holds the accepted/known postings of one dedup pass, keyed for
// O(1) URL and fingerprint hits. Fuzzy checks only scan the candidate's
// normalized-company bucket, never the whole set.
type matchIndex struct {
	cls       Classifier
	byURL     map[string]*normPosting
	byFP      map[string]*normPosting
	byCompany map[string][]*normPosting
}

func newMatchIndex(cls Classifier) *matchIndex {
	return &matchIndex{
		cls:       cls,
		byURL:     make(map[string]*normPosting),
		byFP:      make(map[string]*normPosting),
		byCompany: make(map[string][]*normPosting),
	}
}

// Lookup classifies np against the indexed postings, same check order as
// Classifier.Compare. Returns the matched posting, or nil when unique.
func (ix *matchIndex) Lookup(np normPosting) (*normPosting, domain.DuplicateReason) {
	if np.url != "" {
		if m, ok := ix.byURL[np.url]; ok {
			return m, domain.ReasonURL
		}
	}
	if m, ok := ix.byFP[np.fp]; ok {
		return m, domain.ReasonFingerprint
	}
	if !ix.cls.strictMode {
		for _, m := range ix.byCompany[np.company] {
			if ix.cls.fuzzyMatch(np, *m) {
				return m, domain.ReasonFuzzy
			}
		}
	}
	return nil, domain.ReasonNone
}

// Add indexes np. First posting wins on key collision, matching the
// one-pass keep-first semantics of the callers.
func (ix *matchIndex) Add(np normPosting) {
	p := &np
	if np.url != "" {
		if _, ok := ix.byURL[np.url]; !ok {
			ix.byURL[np.url] = p
		}
	}
	if _, ok := ix.byFP[np.fp]; !ok {
		ix.byFP[np.fp] = p
	}
	ix.byCompany[np.company] = append(ix.byCompany[np.company], p)
}
