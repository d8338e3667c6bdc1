package dedup

import (
	"context"
	"fmt"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/domain"
)

// BulkAuditor scans everything a user has stored and reports duplicate
// clusters. Read-only: cleanup stays an explicit, external operation.
//
// Cost stays near-linear for realistic company-name cardinality: exact
// matches resolve through the URL/fingerprint maps, and fuzzy comparison
// never leaves a company bucket.
type BulkAuditor struct {
	cls    Classifier
	source CandidateSource
}

func NewBulkAuditor(cfg config.Config, source CandidateSource) BulkAuditor {
	return BulkAuditor{cls: NewClassifier(cfg), source: source}
}

func (a BulkAuditor) Audit(ctx context.Context, userID string) (domain.AuditReport, error) {
	postings, err := a.source.FetchAll(ctx, userID)
	if err != nil {
		return domain.AuditReport{}, fmt.Errorf("fetch all postings: %w", err)
	}

	report := domain.AuditReport{UserID: userID, TotalPostings: len(postings)}
	idx := newMatchIndex(a.cls)
	uf := newUnionFind(len(postings))

	for i, p := range postings {
		np, ok := a.cls.normalize(p, i)
		if !ok {
			report.SkippedInvalid++
			continue
		}
		m, reason := idx.Lookup(np)
		if m == nil {
			idx.Add(np)
			continue
		}
		report.Duplicates++
		switch reason {
		case domain.ReasonURL:
			report.DuplicatesByURL++
		case domain.ReasonFingerprint:
			report.DuplicatesByFingerprint++
		case domain.ReasonFuzzy:
			report.DuplicatesByFuzzy++
		}
		uf.union(m.ord, i)
		// duplicates go into the buckets too: a later posting may only
		// resemble a duplicate, not the cluster representative
		idx.Add(np)
	}

	report.Clusters = collectClusters(uf, postings)
	return report, nil
}

// collectClusters pools pairwise matches into groups, ordered by the
// earliest member of each.
func collectClusters(uf *unionFind, postings []domain.JobPosting) []domain.DuplicateCluster {
	members := make(map[int][]int64)
	var order []int
	for i := range postings {
		root := uf.find(i)
		if _, seen := members[root]; !seen && uf.size(root) > 1 {
			order = append(order, root)
		}
		if uf.size(root) > 1 {
			members[root] = append(members[root], postings[i].ID)
		}
	}

	clusters := make([]domain.DuplicateCluster, 0, len(order))
	for _, root := range order {
		clusters = append(clusters, domain.DuplicateCluster{PostingIDs: members[root]})
	}
	return clusters
}

type unionFind struct {
	parent []int
	sz     []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), sz: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.sz[i] = 1
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	// keep the earlier ordinal as root so cluster order follows input order
	if rb < ra {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.sz[ra] += uf.sz[rb]
}

func (uf *unionFind) size(x int) int { return uf.sz[uf.find(x)] }
