// Package settings provides a YAML file implementation of the settings
// store, used when engine configuration is managed as a deployable file
// rather than database rows.
package settings

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yap1co/coursefit/internal/domain"
)

type fileContent struct {
	Weights  map[string]float64 `yaml:"weights"`
	Feedback struct {
		DecayDays       int     `yaml:"decay_days"`
		MinTotal        int     `yaml:"min_total"`
		OwnWeight       float64 `yaml:"own_weight"`
		SimilarWeight   float64 `yaml:"similar_weight"`
		PositiveBoost   float64 `yaml:"positive_boost"`
		NegativePenalty float64 `yaml:"negative_penalty"`
	} `yaml:"feedback"`
	CareerKeywords  map[string][]string `yaml:"career_keywords"`
	CareerConflicts map[string][]string `yaml:"career_conflicts"`
}

// FileStore implements domain.SettingsStore over a YAML file. The file is
// re-read on every call so a refresh picks up edits without restart; files
// are small and refreshes rare.
type FileStore struct {
	Path string

	mu sync.Mutex
}

// NewFileStore constructs a FileStore for the given path.
func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// GetWeights implements domain.SettingsStore.
func (s *FileStore) GetWeights(_ domain.Context) (map[string]float64, error) {
	c, err := s.load()
	if err != nil {
		return nil, err
	}
	if len(c.Weights) == 0 {
		return nil, fmt.Errorf("op=settings.file weights: %w", domain.ErrConfigUnavailable)
	}
	return c.Weights, nil
}

// GetFeedbackSettings implements domain.SettingsStore.
func (s *FileStore) GetFeedbackSettings(_ domain.Context) (domain.FeedbackSettings, error) {
	c, err := s.load()
	if err != nil {
		return domain.FeedbackSettings{}, err
	}
	f := c.Feedback
	if f.DecayDays == 0 && f.MinTotal == 0 {
		return domain.FeedbackSettings{}, fmt.Errorf("op=settings.file feedback: %w", domain.ErrConfigUnavailable)
	}
	return domain.FeedbackSettings{
		DecayDays:       f.DecayDays,
		MinTotal:        f.MinTotal,
		OwnWeight:       f.OwnWeight,
		SimilarWeight:   f.SimilarWeight,
		PositiveBoost:   f.PositiveBoost,
		NegativePenalty: f.NegativePenalty,
	}, nil
}

// GetCareerKeywords implements domain.SettingsStore.
func (s *FileStore) GetCareerKeywords(_ domain.Context) (map[string][]string, error) {
	c, err := s.load()
	if err != nil {
		return nil, err
	}
	if len(c.CareerKeywords) == 0 {
		return nil, fmt.Errorf("op=settings.file career_keywords: %w", domain.ErrConfigUnavailable)
	}
	return c.CareerKeywords, nil
}

// GetCareerConflicts implements domain.SettingsStore.
func (s *FileStore) GetCareerConflicts(_ domain.Context) (map[string][]string, error) {
	c, err := s.load()
	if err != nil {
		return nil, err
	}
	if len(c.CareerConflicts) == 0 {
		return nil, fmt.Errorf("op=settings.file career_conflicts: %w", domain.ErrConfigUnavailable)
	}
	return c.CareerConflicts, nil
}

func (s *FileStore) load() (fileContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return fileContent{}, fmt.Errorf("op=settings.file read: %w: %w", domain.ErrConfigUnavailable, err)
	}
	var c fileContent
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return fileContent{}, fmt.Errorf("op=settings.file decode: %w: %w", domain.ErrConfigUnavailable, err)
	}
	return c, nil
}
