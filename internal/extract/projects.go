package extract

import (
	"regexp"
	"strings"

	"github.com/dooosp/agent-showcase/pkg/catalog"
)

// Project catalog shape (Source 3): an informal YAML document with
// repeated blocks, each opened by an `- id:` marker line, e.g.
//
//	- id: mail-sorter
//	  title: 메일 자동 분류기
//	  oneliner: Rule-based mail triage
//	  in_master: true
//	  highlights:
//	    - Cut inbox triage time by 80%
//	    - Zero-touch scheduling
//	  기술: [Go, IMAP, Lambda]
//
// The document is scraped, not YAML-parsed: the format is hand-written
// and informal (the featured flag in particular is detected by literal
// substring, not as a structured field).
var (
	projectIDRe       = regexp.MustCompile(`(?m)^\s*-\s*id:\s*(\S+)\s*$`)
	projectTitleRe    = regexp.MustCompile(`(?m)^\s*title:\s*(.+?)\s*$`)
	projectOnelinerRe = regexp.MustCompile(`(?m)^\s*oneliner:\s*(.+?)\s*$`)
	highlightListRe   = regexp.MustCompile(`(?s)highlights:\s*\n((?:[ \t]+-[^\n]*\n?)+)`)
	highlightItemRe   = regexp.MustCompile(`(?m)^[ \t]+-\s*(.+?)\s*$`)
	tagsRe            = regexp.MustCompile(`기술:\s*\[([^\]]*)\]`)
)

// featuredMarker promotes a project to the featured set when it appears
// anywhere in the block.
const featuredMarker = "in_master: true"

// ExtractProjects scrapes the project catalog text and returns
// highlights keyed by project id. Blocks without an extractable id are
// skipped; highlights and tags default to empty.
func ExtractProjects(src string) map[string]catalog.ProjectHighlight {
	projects := make(map[string]catalog.ProjectHighlight)

	markers := projectIDRe.FindAllStringSubmatchIndex(src, -1)
	for i, marker := range markers {
		// Block runs from this id marker to the next one (or EOF).
		end := len(src)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		block := src[marker[0]:end]
		id := src[marker[2]:marker[3]]

		projects[id] = catalog.ProjectHighlight{
			ID:         id,
			Title:      firstMatch(projectTitleRe, block),
			Oneliner:   firstMatch(projectOnelinerRe, block),
			Highlights: projectHighlights(block),
			Tags:       projectTags(block),
			Featured:   strings.Contains(block, featuredMarker),
		}
	}

	return projects
}

// firstMatch returns the first capture group of re in block, or "".
func firstMatch(re *regexp.Regexp, block string) string {
	if m := re.FindStringSubmatch(block); m != nil {
		return m[1]
	}
	return ""
}

// projectHighlights returns the bulleted list under the highlights
// heading, empty when the list is absent.
func projectHighlights(block string) []string {
	items := []string{}
	list := highlightListRe.FindStringSubmatch(block)
	if list == nil {
		return items
	}
	for _, item := range highlightItemRe.FindAllStringSubmatch(list[1], -1) {
		items = append(items, item[1])
	}
	return items
}

// projectTags returns the bracketed comma-separated tag list, empty
// when absent.
func projectTags(block string) []string {
	tags := []string{}
	m := tagsRe.FindStringSubmatch(block)
	if m == nil {
		return tags
	}
	for _, tag := range strings.Split(m[1], ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
