// Package extract implements the three source extractors of the build
// pipeline. Each extractor is a pure function from raw text (or an fs.FS)
// to partial records, so it is testable without touching the filesystem.
//
// The sources are fixed-shape personal files, not general formats, and are
// scraped with pattern matching on purpose: extract what matches, ignore
// the rest. A record missing its required fields is skipped silently;
// extraction itself never fails.
package extract

import (
	"regexp"
	"strings"

	"github.com/dooosp/agent-showcase/pkg/catalog"
)

// Catalog source shape (Source 1): repeated JS object literals with
// single-quoted scalar fields and bracketed string arrays, e.g.
//
//	{
//	    id: 'mail-sorter',
//	    name: 'Mail Sorter',
//	    category: 'Productivity',
//	    desc: 'Sorts incoming mail by sender rules',
//	    deploy: 'lambda',
//	    keywords: ['email', 'imap'],
//	    usage: ['sort &lt;folder&gt;']
//	}
//
// Blocks never nest braces; arrays use brackets, which keeps the block
// regex honest.
var (
	catalogBlockRe = regexp.MustCompile(`\{[^{}]*\}`)
	stringItemRe   = regexp.MustCompile(`['"]([^'"]*)['"]`)

	catalogFieldRes = map[string]*regexp.Regexp{
		"id":       regexp.MustCompile(`\bid\s*:\s*['"]([^'"]+)['"]`),
		"name":     regexp.MustCompile(`\bname\s*:\s*['"]([^'"]+)['"]`),
		"category": regexp.MustCompile(`\bcategory\s*:\s*['"]([^'"]+)['"]`),
		"desc":     regexp.MustCompile(`\bdesc\s*:\s*['"]([^'"]*)['"]`),
		"deploy":   regexp.MustCompile(`\bdeploy\s*:\s*['"]([^'"]+)['"]`),
		"keywords": regexp.MustCompile(`(?s)\bkeywords\s*:\s*\[([^\]]*)\]`),
		"usage":    regexp.MustCompile(`(?s)\busage\s*:\s*\[([^\]]*)\]`),
	}

	// The catalog stores placeholder syntax like <folder> entity-escaped
	// so it survives being pasted into HTML.
	entityUnescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")
)

// ExtractAgents scans the raw catalog text and returns every
// well-formed agent record in source order. Blocks missing id, name, or
// category are skipped. Deploy defaults to catalog.DefaultDeploy;
// keywords and usage default to empty. Duplicate ids are preserved in
// scan order for the reconciler to resolve.
func ExtractAgents(src string) []catalog.AgentRecord {
	blocks := catalogBlockRe.FindAllString(src, -1)
	records := make([]catalog.AgentRecord, 0, len(blocks))

	for _, block := range blocks {
		id := catalogField(block, "id")
		name := catalogField(block, "name")
		category := catalogField(block, "category")
		if id == "" || name == "" || category == "" {
			continue
		}

		deploy := catalogField(block, "deploy")
		if deploy == "" {
			deploy = catalog.DefaultDeploy
		}

		records = append(records, catalog.AgentRecord{
			ID:            id,
			Name:          name,
			Category:      category,
			Description:   catalogField(block, "desc"),
			Deploy:        deploy,
			UsageExamples: catalogArray(block, "usage", true),
			Keywords:      catalogArray(block, "keywords", false),
		})
	}

	return records
}

// catalogField returns the first match for a scalar field, or "".
func catalogField(block, key string) string {
	m := catalogFieldRes[key].FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	return m[1]
}

// catalogArray returns the quoted items of a bracketed array field.
// Absent or unparsable fields yield an empty slice, never nil.
func catalogArray(block, key string, unescape bool) []string {
	items := []string{}
	m := catalogFieldRes[key].FindStringSubmatch(block)
	if m == nil {
		return items
	}
	for _, item := range stringItemRe.FindAllStringSubmatch(m[1], -1) {
		value := item[1]
		if unescape {
			value = entityUnescaper.Replace(value)
		}
		items = append(items, value)
	}
	return items
}
