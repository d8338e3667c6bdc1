package domain

// BatchReport summarizes one dedup pass. Flat counters only, safe to log or
// serialize as-is.
type BatchReport struct {
	TotalInput              int `json:"total_input"`
	UniqueOutput            int `json:"unique_output"`
	DuplicatesRemoved       int `json:"duplicates_removed"`
	DuplicatesByURL         int `json:"duplicates_by_url"`
	DuplicatesByFingerprint int `json:"duplicates_by_fingerprint"`
	DuplicatesByFuzzy       int `json:"duplicates_by_fuzzy"`
	SkippedInvalid          int `json:"skipped_invalid"`
}

// CountDuplicate records one removed duplicate under its reason.
func (r *BatchReport) CountDuplicate(reason DuplicateReason) {
	r.DuplicatesRemoved++
	switch reason {
	case ReasonURL:
		r.DuplicatesByURL++
	case ReasonFingerprint:
		r.DuplicatesByFingerprint++
	case ReasonFuzzy:
		r.DuplicatesByFuzzy++
	}
}

// DuplicateCluster groups store IDs that the auditor found to be the same
// posting. The first ID is the earliest-seen member.
type DuplicateCluster struct {
	PostingIDs []int64 `json:"posting_ids"`
}

// AuditReport is the read-only result of a whole-store duplicate scan.
type AuditReport struct {
	UserID                  string             `json:"user_id"`
	TotalPostings           int                `json:"total_postings"`
	Duplicates              int                `json:"duplicates"`
	DuplicatesByURL         int                `json:"duplicates_by_url"`
	DuplicatesByFingerprint int                `json:"duplicates_by_fingerprint"`
	DuplicatesByFuzzy       int                `json:"duplicates_by_fuzzy"`
	SkippedInvalid          int                `json:"skipped_invalid"`
	Clusters                []DuplicateCluster `json:"clusters"`
}
