package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a cleaned copy of cfg plus any findings.
// Word lists are trimmed, lowercased, and de-duplicated so the normalizer
// never has to re-clean them per posting.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.ToLower(strings.TrimSpace(x))
			if x == "" || seen[x] {
				continue
			}
			seen[x] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Dedup.CompanySuffixes = trimList(out.Dedup.CompanySuffixes)
	out.Dedup.TitleNoiseWords = trimList(out.Dedup.TitleNoiseWords)

	checkRatio := func(name string, v float64) {
		if v <= 0 || v > 1 {
			res.addErr("dedup.%s must be in (0, 1], got %v", name, v)
		}
	}
	checkRatio("title_similarity", out.Dedup.TitleSimilarity)
	checkRatio("company_similarity", out.Dedup.CompanySimilarity)
	checkRatio("location_contradiction", out.Dedup.LocationContradiction)

	if out.Dedup.DaysLookback <= 0 {
		res.addErr("dedup.days_lookback must be > 0")
	}
	if out.Audit.MaxConcurrentUsers < 1 {
		res.addErr("audit.max_concurrent_users must be >= 1")
	}
	if out.Audit.AuditsPerSecond <= 0 {
		res.addErr("audit.audits_per_second must be > 0")
	}

	if len(out.Dedup.CompanySuffixes) == 0 {
		res.addWarn("dedup.company_suffixes is empty: company names like \"Google Inc\" and \"Google\" will not match")
	}

	return out, res
}
