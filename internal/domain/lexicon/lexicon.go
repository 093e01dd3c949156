package lexicon

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
)

// Lexicon maps canonical skill tags to compiled matching patterns, partitioned
// by job sector. The IT and Engineering vocabularies are disjoint by
// construction: a title is only ever matched against its own sector's table,
// or against the union when no sector is known.
//
// Extraction is pure and deterministic; rules are kept sorted by tag key so
// dictionary iteration order can never leak into results.
type Lexicon struct {
	tables map[job.Category][]rule
}

type rule struct {
	tag job.SkillTag
	re  *regexp.Regexp
}

// New compiles a lexicon from per-category pattern tables. Patterns are
// matched case-insensitively with word-boundary semantics; "java" must not
// fire inside "javascript".
func New(tables map[job.Category]map[job.SkillTag]string) (*Lexicon, error) {
	l := &Lexicon{tables: make(map[job.Category][]rule, len(tables))}
	for cat, patterns := range tables {
		rules := make([]rule, 0, len(patterns))
		for tag, pattern := range patterns {
			re, err := regexp.Compile(`(?i)` + pattern)
			if err != nil {
				return nil, fmt.Errorf("lexicon: compile %q for tag %q: %w", pattern, tag, err)
			}
			rules = append(rules, rule{tag: tag, re: re})
		}
		sort.Slice(rules, func(i, j int) bool { return rules[i].tag.Key() < rules[j].tag.Key() })
		l.tables[cat] = rules
	}
	return l, nil
}

// Extract returns every skill tag whose pattern matches text. With no
// categories given, all pattern tables are consulted and the results unioned.
// There is no fallback tag: text matching nothing yields an empty set.
func (l *Lexicon) Extract(text string, categories ...job.Category) job.SkillSet {
	out := job.NewSkillSet()
	if l == nil || text == "" {
		return out
	}
	for _, rules := range l.scopedTables(categories) {
		for _, r := range rules {
			if r.re.MatchString(text) {
				out.Add(r.tag)
			}
		}
	}
	return out
}

// Tags enumerates the vocabulary for the given scope, sorted by tag key.
func (l *Lexicon) Tags(categories ...job.Category) []job.SkillTag {
	if l == nil {
		return nil
	}
	set := job.NewSkillSet()
	for _, rules := range l.scopedTables(categories) {
		for _, r := range rules {
			set.Add(r.tag)
		}
	}
	return set.Tags()
}

func (l *Lexicon) scopedTables(categories []job.Category) [][]rule {
	if len(categories) == 0 {
		out := make([][]rule, 0, len(l.tables))
		for _, cat := range job.Categories() {
			if rules, ok := l.tables[cat]; ok {
				out = append(out, rules)
			}
		}
		return out
	}
	out := make([][]rule, 0, len(categories))
	for _, cat := range categories {
		if rules, ok := l.tables[cat]; ok {
			out = append(out, rules)
		}
	}
	return out
}
