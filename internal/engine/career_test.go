package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yap1co/coursefit/internal/engine"
)

func TestCareerRuleSetEvaluate(t *testing.T) {
	t.Parallel()
	rules := engine.DefaultCareerRules()

	tests := []struct {
		name      string
		course    string
		interests []string
		want      engine.CareerDecision
	}{
		{
			name:      "no interests is neutral",
			course:    "Computer Science",
			interests: nil,
			want:      engine.CareerNeutral,
		},
		{
			name:      "matching course",
			course:    "Business Analytics",
			interests: []string{"Business & Finance"},
			want:      engine.CareerMatch,
		},
		{
			name:      "conflicting course excluded",
			course:    "Computer Science BSc",
			interests: []string{"Business & Finance"},
			want:      engine.CareerConflict,
		},
		{
			name:      "engineering conflicts with business",
			course:    "Mechanical Engineering",
			interests: []string{"Business & Finance"},
			want:      engine.CareerConflict,
		},
		{
			name: "allow token rescues compound name",
			// carries "information systems" (a computing keyword) but the
			// business token keeps it in scope
			course:    "Business Information Systems",
			interests: []string{"Business & Finance"},
			want:      engine.CareerMatch,
		},
		{
			name:      "unrelated course is neutral",
			course:    "Ancient History",
			interests: []string{"Business & Finance"},
			want:      engine.CareerNeutral,
		},
		{
			name:      "unknown interest is ignored",
			course:    "Computer Science",
			interests: []string{"Astronaut"},
			want:      engine.CareerNeutral,
		},
		{
			name:      "two interests, match on either",
			course:    "Software Engineering",
			interests: []string{"Law", "Computer Science & IT"},
			want:      engine.CareerMatch,
		},
		{
			name:      "short keyword needs a word boundary",
			course:    "Italian Studies",
			interests: []string{"Computer Science & IT"},
			want:      engine.CareerNeutral,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, rules.Evaluate(tc.course, tc.interests))
		})
	}
}

func TestNewCareerRuleSetFromSettings(t *testing.T) {
	t.Parallel()
	rules := engine.NewCareerRuleSet(
		map[string][]string{
			"Health":     {"nursing", "medicine"},
			"Technology": {"software", "computing"},
		},
		map[string][]string{
			"Health": {"Technology"},
		},
	)

	assert.Equal(t, engine.CareerMatch, rules.Evaluate("Adult Nursing", []string{"Health"}))
	assert.Equal(t, engine.CareerConflict, rules.Evaluate("Software Engineering", []string{"Health"}))
	assert.Equal(t, engine.CareerNeutral, rules.Evaluate("Fine Art", []string{"Health"}))

	kws := rules.InterestKeywords()
	assert.ElementsMatch(t, []string{"nursing", "medicine"}, kws["health"])
}

func TestCareerRuleSetInterestKeywordsNormalized(t *testing.T) {
	t.Parallel()
	kws := engine.DefaultCareerRules().InterestKeywords()
	assert.Contains(t, kws, "business & finance")
	assert.Contains(t, kws["business & finance"], "finance")
}
