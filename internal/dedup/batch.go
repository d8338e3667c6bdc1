package dedup

import (
	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/domain"
)

// BatchDeduplicator filters duplicates within one newly-fetched batch.
// One pass in input order: each posting is compared only against postings
// already accepted, so output is deterministic for a fixed input order.
type BatchDeduplicator struct {
	cls Classifier
}

func NewBatchDeduplicator(cfg config.Config) BatchDeduplicator {
	return BatchDeduplicator{cls: NewClassifier(cfg)}
}

func (d BatchDeduplicator) Filter(postings []domain.JobPosting) ([]domain.JobPosting, domain.BatchReport) {
	report := domain.BatchReport{TotalInput: len(postings)}
	idx := newMatchIndex(d.cls)

	unique := make([]domain.JobPosting, 0, len(postings))
	for i, p := range postings {
		np, ok := d.cls.normalize(p, i)
		if !ok {
			report.SkippedInvalid++
			continue
		}
		if _, reason := idx.Lookup(np); reason != domain.ReasonNone {
			report.CountDuplicate(reason)
			continue
		}
		idx.Add(np)
		unique = append(unique, p)
	}

	report.UniqueOutput = len(unique)
	return unique, report
}
