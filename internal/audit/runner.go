// Package audit fans a whole-store duplicate scan out across users.
// Per-user audits share no state, so running them concurrently is safe;
// the limiter keeps a big user list from hammering the store.
package audit

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/dedup"
	"jobtrack-engine/internal/domain"
)

type Runner struct {
	auditor dedup.BulkAuditor
	limit   int
	pace    *rate.Limiter
}

func NewRunner(cfg config.Config, source dedup.CandidateSource) *Runner {
	return &Runner{
		auditor: dedup.NewBulkAuditor(cfg, source),
		limit:   cfg.Audit.MaxConcurrentUsers,
		pace:    rate.NewLimiter(rate.Limit(cfg.Audit.AuditsPerSecond), 1),
	}
}

// Run audits each user and returns reports in userIDs order. Any failed
// audit fails the whole run; partial results from an operator tool would
// be misleading.
func (r *Runner) Run(ctx context.Context, userIDs []string) ([]domain.AuditReport, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)

	reports := make([]domain.AuditReport, len(userIDs))
	for i, uid := range userIDs {
		g.Go(func() error {
			if err := r.pace.Wait(ctx); err != nil {
				return err
			}
			rep, err := r.auditor.Audit(ctx, uid)
			if err != nil {
				return fmt.Errorf("audit user %s: %w", uid, err)
			}
			log.Printf("[audit] user=%s postings=%d duplicates=%d clusters=%d",
				uid, rep.TotalPostings, rep.Duplicates, len(rep.Clusters))
			reports[i] = rep
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
