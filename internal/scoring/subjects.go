package scoring

import (
	"strings"

	"github.com/yap1co/coursefit/pkg/textx"
)

// relatedTerms links an A-level subject to course-name terms it legitimately
// implies. The table is curated, not learned; entries are normalized lowercase.
var relatedTerms = map[string][]string{
	"mathematics":         {"maths", "math", "statistics", "actuarial", "data science", "physics", "engineering"},
	"further mathematics": {"maths", "mathematics", "statistics", "engineering"},
	"physics":             {"engineering", "astronomy", "astrophysics", "mechanical", "electrical", "aerospace"},
	"chemistry":           {"chemical", "pharmacy", "pharmacology", "biochemistry", "materials"},
	"biology":             {"biomedical", "biochemistry", "medicine", "nursing", "zoology", "ecology", "life science"},
	"computer science":    {"computing", "software", "informatics", "information systems", "artificial intelligence", "cyber", "science"},
	"economics":           {"finance", "business", "accounting", "banking", "econometrics"},
	"business studies":    {"management", "marketing", "finance", "accounting", "commerce", "business"},
	"english literature":  {"english", "literature", "creative writing", "journalism", "linguistics"},
	"english language":    {"english", "linguistics", "journalism", "communication"},
	"history":             {"archaeology", "classics", "heritage", "politics"},
	"geography":           {"environmental", "geology", "urban planning", "earth science"},
	"psychology":          {"neuroscience", "counselling", "behavioural", "cognitive"},
	"sociology":           {"social policy", "criminology", "anthropology"},
	"art":                 {"fine art", "design", "illustration", "visual", "art"},
	"design technology":   {"product design", "industrial design", "design"},
	"music":               {"music production", "performing arts", "sound"},
	"politics":            {"international relations", "government", "public policy"},
	"law":                 {"legal", "criminology", "justice"},
}

// genericTerms flags terms too broad to establish relevance on their own.
// A generic or very short term only counts when the student's own subject
// contains it (e.g. "Computer Science" legitimately implies "science";
// a sociology relatedness link to "science" does not).
var genericTerms = map[string]bool{
	"science":    true,
	"design":     true,
	"business":   true,
	"studies":    true,
	"technology": true,
	"management": true,
	"general":    true,
}

const minTermLen = 4

// cahCodes maps common A-level subjects to HESA CAH classification codes,
// used to pick salary quartile data for the student's strongest subject.
var cahCodes = map[string]string{
	"mathematics":         "CAH09-01",
	"further mathematics": "CAH09-01",
	"physics":             "CAH07-01",
	"chemistry":           "CAH07-02",
	"biology":             "CAH03-01",
	"computer science":    "CAH11-01",
	"economics":           "CAH15-02",
	"business studies":    "CAH17-01",
	"english literature":  "CAH19-01",
	"english language":    "CAH19-01",
	"history":             "CAH20-01",
	"geography":           "CAH26-01",
	"psychology":          "CAH04-01",
	"sociology":           "CAH15-03",
	"art":                 "CAH25-01",
	"design technology":   "CAH25-02",
	"music":               "CAH25-03",
	"politics":            "CAH15-01",
	"law":                 "CAH16-01",
}

// CAHCodeForSubject returns the CAH classification code for a subject, or ""
// when the subject is not in the curated table.
func CAHCodeForSubject(subject string) string {
	return cahCodes[normalizeKey(subject)]
}

func normalizeKey(s string) string { return textx.Normalize(s) }

func normalizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		n := normalizeKey(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeGradeMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[normalizeKey(k)] = strings.ToUpper(strings.TrimSpace(v))
	}
	return out
}

// MatchRequired intersects the student's subjects with a course's required
// subjects. Exact matches are tried first; if none exist, substring
// containment in either direction catches naming variants such as "Maths"
// against "Mathematics".
func MatchRequired(studentSubjects, required []string) []string {
	subs := normalizeAll(studentSubjects)
	req := normalizeAll(required)
	if len(req) == 0 {
		return nil
	}
	subSet := make(map[string]bool, len(subs))
	for _, s := range subs {
		subSet[s] = true
	}
	var matched []string
	for _, r := range req {
		if subSet[r] {
			matched = append(matched, r)
		}
	}
	if len(matched) > 0 {
		return matched
	}
	for _, r := range req {
		for _, s := range subs {
			if strings.Contains(s, r) || strings.Contains(r, s) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}

// RelevantSubjects returns the student subjects that are topically relevant
// to the course name, either by whole-word appearance or through the curated
// relatedness table, subject to the generic-term guard.
func RelevantSubjects(studentSubjects []string, courseName string) []string {
	name := normalizeKey(courseName)
	if name == "" {
		return nil
	}
	var relevant []string
	for _, s := range normalizeAll(studentSubjects) {
		if textx.ContainsWholeWord(name, s) {
			relevant = append(relevant, s)
			continue
		}
		for _, term := range relatedTerms[s] {
			if !textx.ContainsWholeWord(name, term) {
				continue
			}
			if len(term) < minTermLen || genericTerms[term] {
				// guard: generic terms only count when implied by the
				// subject itself
				if !strings.Contains(s, term) {
					continue
				}
			}
			relevant = append(relevant, s)
			break
		}
	}
	return relevant
}
