// Package dedup decides whether two job postings are the same posting,
// despite formatting noise, legal-entity suffixes, or tracking params in
// URLs. It owns comparison logic only; storage belongs to the caller.
package dedup

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"jobtrack-engine/internal/config"
)

var parenRe = regexp.MustCompile(`\([^)]*\)`)

// CleanText lowercases, trims, replaces punctuation with spaces, and
// collapses runs of whitespace. Idempotent; empty in, empty out.
func CleanText(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Normalizer produces the canonical comparable form of each identity field.
// Word lists come from config so operators can tune them.
type Normalizer struct {
	suffixes map[string]bool
	noise    map[string]bool
}

func NewNormalizer(cfg config.Config) Normalizer {
	n := Normalizer{
		suffixes: make(map[string]bool, len(cfg.Dedup.CompanySuffixes)),
		noise:    make(map[string]bool, len(cfg.Dedup.TitleNoiseWords)),
	}
	for _, s := range cfg.Dedup.CompanySuffixes {
		n.suffixes[strings.ToLower(strings.TrimSpace(s))] = true
	}
	for _, w := range cfg.Dedup.TitleNoiseWords {
		n.noise[strings.ToLower(strings.TrimSpace(w))] = true
	}
	return n
}

// Company strips trailing legal/generic suffix tokens after the generic
// pass: "Tech-Company, Inc." -> "tech company inc" -> "tech". Never strips
// the final remaining token, so "Co" stays "co".
func (n Normalizer) Company(s string) string {
	toks := strings.Fields(CleanText(s))
	for len(toks) > 1 && n.suffixes[toks[len(toks)-1]] {
		toks = toks[:len(toks)-1]
	}
	return strings.Join(toks, " ")
}

// Title drops parenthetical content ("(Remote)", "(ML)"), then noise tokens
// like "urgent" or "hiring": "Urgent - Software Engineer" -> "software engineer".
func (n Normalizer) Title(s string) string {
	s = parenRe.ReplaceAllString(s, " ")
	toks := strings.Fields(CleanText(s))
	kept := toks[:0]
	for _, t := range toks {
		if n.noise[t] {
			continue
		}
		kept = append(kept, t)
	}
	return strings.Join(kept, " ")
}

// Location gets the generic pass only: "San Francisco, CA" -> "san francisco ca".
func (n Normalizer) Location(s string) string {
	return CleanText(s)
}

// NormalizeURL canonicalizes to lowercase scheme://host/path with query
// string and fragment dropped and a single trailing slash stripped, so URLs
// differing only in tracking params or case compare equal. Unparseable
// input degrades to the lowercased raw string rather than failing.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return strings.ToLower(raw)
	}
	s := strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host) + strings.ToLower(u.Path)
	return strings.TrimSuffix(s, "/")
}
