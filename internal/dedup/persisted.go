package dedup

import (
	"context"
	"fmt"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/domain"
)

// CandidateSource is the engine's only interface to storage. Implementations
// must scope results to the given user; FetchCandidates additionally bounds
// them to postings created within the lookback window.
type CandidateSource interface {
	FetchCandidates(ctx context.Context, userID string, daysLookback int) ([]domain.JobPosting, error)
	FetchAll(ctx context.Context, userID string) ([]domain.JobPosting, error)
}

// PersistedDeduplicator filters a new batch against the user's stored
// postings from the lookback window. The batch is deduplicated against
// itself first; survivors are then checked against the fetched candidates.
type PersistedDeduplicator struct {
	batch        BatchDeduplicator
	cls          Classifier
	source       CandidateSource
	daysLookback int
}

func NewPersistedDeduplicator(cfg config.Config, source CandidateSource) PersistedDeduplicator {
	return PersistedDeduplicator{
		batch:        NewBatchDeduplicator(cfg),
		cls:          NewClassifier(cfg),
		source:       source,
		daysLookback: cfg.Dedup.DaysLookback,
	}
}

// FilterRecent runs Filter with the configured lookback window. Ingestion
// pipelines call this; Filter stays available for callers that pick the
// window per invocation.
func (d PersistedDeduplicator) FilterRecent(ctx context.Context, postings []domain.JobPosting, userID string) ([]domain.JobPosting, domain.BatchReport, error) {
	return d.Filter(ctx, postings, userID, d.daysLookback)
}

// Filter returns the postings not already present in the window. A storage
// error aborts the whole call: deduplicating against a partial candidate
// set would silently re-admit known postings.
func (d PersistedDeduplicator) Filter(ctx context.Context, postings []domain.JobPosting, userID string, daysLookback int) ([]domain.JobPosting, domain.BatchReport, error) {
	unique, report := d.batch.Filter(postings)

	candidates, err := d.source.FetchCandidates(ctx, userID, daysLookback)
	if err != nil {
		return nil, domain.BatchReport{}, fmt.Errorf("fetch candidates: %w", err)
	}

	idx := newMatchIndex(d.cls)
	for i, c := range candidates {
		if nc, ok := d.cls.normalize(c, i); ok {
			idx.Add(nc)
		}
	}

	out := unique[:0]
	for _, p := range unique {
		np, _ := d.cls.normalize(p, 0)
		if _, reason := idx.Lookup(np); reason != domain.ReasonNone {
			report.CountDuplicate(reason)
			continue
		}
		out = append(out, p)
	}

	report.UniqueOutput = len(out)
	return out, report, nil
}
