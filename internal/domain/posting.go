package domain

import "time"

// JobPosting is one scraped or stored job posting. Identity for dedup
// purposes comes from Title/Company/Location/URL only; everything else is
// payload carried through untouched.
type JobPosting struct {
	ID          int64
	UserID      string
	Title       string
	Company     string
	Location    string // optional
	URL         string // optional
	Description string
	TechStack   []string
	Source      string // email/greenhouse/etc.
	SourceID    string
	CreatedAt   time.Time
}

type DuplicateReason string

const (
	ReasonNone        DuplicateReason = "none"
	ReasonURL         DuplicateReason = "url"
	ReasonFingerprint DuplicateReason = "fingerprint"
	ReasonFuzzy       DuplicateReason = "fuzzy"
)

// DuplicateVerdict is the outcome of comparing one posting against another.
// MatchedID is the store ID of the matched posting when known, 0 otherwise.
type DuplicateVerdict struct {
	IsDuplicate bool
	Reason      DuplicateReason
	MatchedID   int64
}
