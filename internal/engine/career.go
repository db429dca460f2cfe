package engine

import (
	"strings"

	"github.com/yap1co/coursefit/pkg/textx"
)

// CareerDecision classifies a course against declared career interests.
type CareerDecision int

const (
	// CareerNeutral: the course neither matches nor conflicts.
	CareerNeutral CareerDecision = iota
	// CareerMatch: the course matches a declared interest and receives the
	// career bonus.
	CareerMatch
	// CareerConflict: the course belongs to an interest that conflicts with a
	// declared one and is excluded outright.
	CareerConflict
)

// InterestRule is the declarative filtering rule for one interest category:
// keywords that identify it, interests it conflicts with, and allow-list
// tokens that rescue compound course names containing a conflicting term
// (e.g. "Business Information Systems" survives a Business & Finance filter).
type InterestRule struct {
	Keywords  []string
	Conflicts []string
	Allow     []string
}

// CareerRuleSet evaluates courses against declared interests through a single
// predicate. One rule per interest; no special cases outside the table.
type CareerRuleSet struct {
	rules map[string]InterestRule
}

// NewCareerRuleSet builds a rule set from externally supplied keyword and
// conflict maps. Interests present in only one map still get a rule. Allow
// tokens default to the interest's own keywords.
func NewCareerRuleSet(keywords, conflicts map[string][]string) *CareerRuleSet {
	rules := make(map[string]InterestRule)
	for interest, kws := range keywords {
		k := textx.Normalize(interest)
		r := rules[k]
		r.Keywords = normalizeTerms(kws)
		r.Allow = r.Keywords
		rules[k] = r
	}
	for interest, cs := range conflicts {
		k := textx.Normalize(interest)
		r := rules[k]
		r.Conflicts = normalizeTerms(cs)
		if r.Allow == nil {
			r.Allow = r.Keywords
		}
		rules[k] = r
	}
	return &CareerRuleSet{rules: rules}
}

// DefaultCareerRules returns the compiled-in fallback table used when the
// settings store cannot serve keyword/conflict maps.
func DefaultCareerRules() *CareerRuleSet {
	rules := map[string]InterestRule{
		"business & finance": {
			Keywords:  []string{"business", "finance", "accounting", "management", "marketing", "economics", "banking", "investment", "commerce"},
			Conflicts: []string{"computer science & it", "engineering", "sciences"},
			Allow:     []string{"business", "finance", "management", "accounting", "commerce", "banking"},
		},
		"computer science & it": {
			Keywords:  []string{"computer", "computing", "software", "information systems", "data science", "cyber", "artificial intelligence", "informatics", "it"},
			Conflicts: []string{"medicine & health", "law", "arts & design"},
			Allow:     []string{"computing", "computer", "software", "information"},
		},
		"engineering": {
			Keywords:  []string{"engineering", "mechanical", "electrical", "civil", "aerospace", "mechatronics", "robotics"},
			Conflicts: []string{"law", "arts & design", "business & finance"},
			Allow:     []string{"engineering"},
		},
		"medicine & health": {
			Keywords:  []string{"medicine", "medical", "nursing", "health", "pharmacy", "dentistry", "biomedical", "midwifery", "physiotherapy"},
			Conflicts: []string{"computer science & it", "business & finance", "engineering"},
			Allow:     []string{"medical", "health", "biomedical"},
		},
		"law": {
			Keywords:  []string{"law", "legal", "criminology", "justice", "jurisprudence"},
			Conflicts: []string{"engineering", "sciences", "computer science & it"},
			Allow:     []string{"law", "legal"},
		},
		"arts & design": {
			Keywords:  []string{"art", "design", "music", "drama", "creative", "media", "fashion", "film", "photography"},
			Conflicts: []string{"sciences", "engineering", "computer science & it"},
			Allow:     []string{"design", "creative", "media"},
		},
		"sciences": {
			Keywords:  []string{"physics", "chemistry", "biology", "science", "mathematics", "environmental", "geology", "astronomy"},
			Conflicts: []string{"arts & design", "law", "business & finance"},
			Allow:     []string{"science", "physics", "chemistry", "biology"},
		},
	}
	return &CareerRuleSet{rules: rules}
}

// InterestKeywords exposes the interest → keyword table, used by the
// preference scorer's weaker career signal.
func (rs *CareerRuleSet) InterestKeywords() map[string][]string {
	out := make(map[string][]string, len(rs.rules))
	for interest, rule := range rs.rules {
		out[interest] = rule.Keywords
	}
	return out
}

// Evaluate classifies a course name against the declared interests.
//
// A course matching a declared interest's keyword is a match. A course whose
// name carries a keyword of a conflicting interest is excluded, unless an
// allow token of the declared interest co-occurs in the name. With interests
// declared, everything else is neutral and the engine excludes it too: the
// declared-interest mode is exhaustive.
func (rs *CareerRuleSet) Evaluate(courseName string, interests []string) CareerDecision {
	name := textx.Normalize(courseName)
	if name == "" || len(interests) == 0 {
		return CareerNeutral
	}

	matched := false
	conflicted := false
	allowed := false
	for _, interest := range interests {
		rule, ok := rs.rules[textx.Normalize(interest)]
		if !ok {
			continue
		}
		if containsAnyTerm(name, rule.Keywords) {
			matched = true
		}
		if containsAnyTerm(name, rule.Allow) {
			allowed = true
		}
		for _, conflictInterest := range rule.Conflicts {
			conflict, ok := rs.rules[conflictInterest]
			if !ok {
				continue
			}
			if containsAnyTerm(name, conflict.Keywords) {
				conflicted = true
			}
		}
	}

	switch {
	case conflicted && !allowed:
		return CareerConflict
	case matched:
		return CareerMatch
	default:
		return CareerNeutral
	}
}

func containsAnyTerm(name string, terms []string) bool {
	for _, t := range terms {
		t = textx.Normalize(t)
		if t == "" {
			continue
		}
		// short tokens like "it" or "art" need word boundaries; longer terms
		// may legitimately match inside compounds
		if len(t) <= 3 {
			if textx.ContainsWholeWord(name, t) {
				return true
			}
			continue
		}
		if strings.Contains(name, t) {
			return true
		}
	}
	return false
}

func normalizeTerms(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if n := textx.Normalize(t); n != "" {
			out = append(out, n)
		}
	}
	return out
}
