package ingest

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FlattenDescription reduces a description to plain text. Scrapers hand us
// anything from clean text to full HTML job pages; markup gets flattened so
// stored descriptions stay comparable and displayable.
func FlattenDescription(desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return ""
	}
	if !strings.ContainsAny(desc, "<>") {
		return collapse(desc)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(desc))
	if err != nil {
		return collapse(desc)
	}
	doc.Find("script, style").Remove()
	return collapse(doc.Text())
}

func collapse(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}
