package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yap1co/coursefit/internal/domain"
)

func TestHasCareerInterests(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		interests []string
		want      bool
	}{
		{"nil", nil, false},
		{"empty", []string{}, false},
		{"blank entries only", []string{"", "   "}, false},
		{"declared", []string{"Business & Finance"}, true},
		{"declared among blanks", []string{"", "Law"}, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := domain.StudentProfile{Preferences: domain.Preferences{CareerInterests: tc.interests}}
			assert.Equal(t, tc.want, p.HasCareerInterests())
		})
	}
}

func TestSentinelErrorsWrap(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("op=catalog.list: %w", domain.ErrNotFound)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, errors.Is(err, domain.ErrInvalidArgument))
}
