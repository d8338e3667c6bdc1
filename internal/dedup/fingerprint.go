package dedup

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Fingerprint hashes the normalized identity key. Two postings that
// normalize to the same title/company/locality always share a fingerprint,
// regardless of process, platform, or locale.
//
// The location component is the locality only, so "San Francisco" and
// "San Francisco, CA" land on the same digest.
func (n Normalizer) Fingerprint(title, company, location string) string {
	return fingerprintKey(n.Title(title), n.Company(company), n.Locality(location))
}

// Locality keeps the part before the first comma:
// "San Francisco, CA" -> "san francisco".
//
// The split runs on the raw string, so a comma-less "San Francisco CA"
// keeps its state token and hashes differently from "San Francisco, CA"
// even though both normalize to the same location.
func (n Normalizer) Locality(s string) string {
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	return CleanText(s)
}

// fingerprintKey expects already-normalized fields.
func fingerprintKey(title, company, locality string) string {
	sum := md5.Sum([]byte(title + "|" + company + "|" + locality))
	return hex.EncodeToString(sum[:])
}
