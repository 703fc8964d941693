package gating

import (
	"regexp"
	"strings"
)

// rewrite is one text-rewriting pass applied before splitting, typically
// inserting a canonical delimiter before an un-delimited marker mention.
type rewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

// Dialect describes how one family of projects delimits gates in reported
// text. Exactly one of Extract and Split is set: Extract pulls gate tokens
// out of undelimited text, Split breaks the text on a delimiter expression.
type Dialect struct {
	// Name identifies the dialect in logs.
	Name string

	// Keywords are tested against the project name by substring
	// containment; any hit selects this dialect.
	Keywords []string

	rewrites []rewrite
	extract  *regexp.Regexp
	split    *regexp.Regexp
}

// Matches reports whether the project name contains any dialect keyword.
func (d *Dialect) Matches(project string) bool {
	for _, kwd := range d.Keywords {
		if strings.Contains(project, kwd) {
			return true
		}
	}
	return false
}

// apply runs the dialect's rewrites and returns the raw gate tokens.
func (d *Dialect) apply(reported string) []string {
	for _, rw := range d.rewrites {
		reported = rw.pattern.ReplaceAllString(reported, rw.replacement)
	}
	if d.extract != nil {
		return d.extract.FindAllString(reported, -1)
	}
	return d.split.Split(reported, -1)
}

// defaultDialect splits on a forward slash, a comma with optional
// whitespace, or AND/and surrounded by whitespace.
var defaultDialect = &Dialect{
	Name:  "default",
	split: regexp.MustCompile(`/|,\s*|\s+AND\s+|\s+and\s+`),
}

// dialects is the priority-ordered dialect table. Selection is by substring
// containment, so a project name matching several keyword sets resolves to
// the first row listed here.
var dialects = []*Dialect{
	{
		// These projects use no delimiters between gates.
		Name:     "run-of-text",
		Keywords: []string{"LaJolla", "ARA06", "Center for Human Immunology", "Wistar"},
		extract:  regexp.MustCompile(`\w+[\-\+]*`),
	},
	{
		Name:     "slash",
		Keywords: []string{"IPIRC", "Watson", "Ltest", "Seattle Biomed"},
		split:    regexp.MustCompile(`/`),
	},
	{
		Name:     "comma",
		Keywords: []string{"Emory"},
		split:    regexp.MustCompile(`,\s+`),
	},
	{
		Name:     "upper-and",
		Keywords: []string{"VRC"},
		split:    regexp.MustCompile(`\s+AND\s+`),
	},
	{
		Name:     "lower-and",
		Keywords: []string{"Ertl"},
		split:    regexp.MustCompile(`\s+and\s+`),
	},
	{
		Name:     "stanford",
		Keywords: []string{"Stanford"},
		rewrites: []rewrite{
			{regexp.MustCompile(`([\-\+])(CD\d+|CX\w+\d+|CCR\d)`), "$1/$2"},
		},
		split: regexp.MustCompile(`/|,\s+`),
	},
	{
		// Duplicate commas collapse first; "granulocyte" is a gate in its
		// own right and gets delimited explicitly.
		Name:     "baylor",
		Keywords: []string{"Baylor"},
		rewrites: []rewrite{
			{regexp.MustCompile(`,,+`), ","},
			{regexp.MustCompile(` granulocyte`), ", granulocyte"},
			{regexp.MustCompile(`([\-\+])CD(\d)`), "$1/CD$2"},
		},
		split: regexp.MustCompile(`/|,\s*`),
	},
	{
		Name:     "rochester",
		Keywords: []string{"Rochester"},
		split:    regexp.MustCompile(`;+\s*|/`),
	},
	{
		Name:     "mayo",
		Keywords: []string{"Mayo"},
		rewrites: []rewrite{
			{regexp.MustCompile(` CD(\d)`), " /CD$1"},
		},
		split: regexp.MustCompile(`/`),
	},
	{
		Name:     "improving-kidney",
		Keywords: []string{"Improving Kidney"},
		rewrites: []rewrite{
			{regexp.MustCompile(`([\-\+])CD(\d)`), "$1/CD$2"},
		},
		split: regexp.MustCompile(`/`),
	},
	{
		Name:     "ny-influenza",
		Keywords: []string{"New York Influenza"},
		rewrites: []rewrite{
			{regexp.MustCompile(`high`), "high "},
			{regexp.MustCompile(`([\-\+ ])(CD\d+|CXCR\d|BCL\d|IF\w+|PD\d+|IL\d+|TNFa)`), "$1/$2"},
		},
		split: regexp.MustCompile(`/|,`),
	},
	{
		Name:     "modeling-viral",
		Keywords: []string{"Modeling Viral"},
		split:    regexp.MustCompile(`\s+AND\s+|_AND_|\s+\+\s+`),
	},
	{
		Name:     "aging",
		Keywords: []string{"Immunobiology of Aging"},
		rewrites: []rewrite{
			{regexp.MustCompile(`([\-\+])(CD\d+|Ig\w+)`), "$1/$2"},
		},
		split: regexp.MustCompile(`/`),
	},
	{
		Name:     "flow-cytometry-analysis",
		Keywords: []string{"Flow Cytometry Analysis"},
		rewrites: []rewrite{
			{regexp.MustCompile(`(\+|\-)(CD\d+|Ig\w+|IL\d+|IF\w+|TNF\w+|Per\w+)`), "$1/$2"},
		},
		split: regexp.MustCompile(`/`),
	},
	{
		// Trailing "AND R<n>..." region annotations are noise; remaining
		// ANDs collapse to spaces and gates split on whitespace.
		Name:     "itn019ad",
		Keywords: []string{"ITN019AD"},
		rewrites: []rewrite{
			{regexp.MustCompile(`(\s+AND)?\s+R\d+.*$`), ""},
			{regexp.MustCompile(`\s+AND\s+`), " "},
		},
		split: regexp.MustCompile(`\s+`),
	},
}

// selectDialect returns the first dialect matching the project name, falling
// back to the default dialect. Selection is deterministic for a given name.
func selectDialect(project string) *Dialect {
	for _, d := range dialects {
		if d.Matches(project) {
			return d
		}
	}
	return defaultDialect
}
