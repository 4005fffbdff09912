// Package seed holds the catalog and reviews the API starts with.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"stayhub/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

type Data struct {
	Properties []domain.Property          `yaml:"properties"`
	Reviews    map[string][]reviewFixture `yaml:"reviews"`
}

type reviewFixture struct {
	ID         string  `yaml:"id"`
	UserID     string  `yaml:"userId"`
	UserName   string  `yaml:"userName"`
	Rating     int     `yaml:"rating"`
	Comment    string  `yaml:"comment"`
	Date       string  `yaml:"date"`
	UserAvatar *string `yaml:"userAvatar"`
}

// Default parses the embedded seed file.
func Default() (Data, error) { return Parse(defaultSeed) }

// LoadFile parses a seed file from disk.
func LoadFile(path string) (Data, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Data{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Data{}, fmt.Errorf("parse seed: %w", err)
	}
	for pid, rs := range d.Reviews {
		for _, r := range rs {
			if r.Rating < 1 || r.Rating > 5 {
				return Data{}, fmt.Errorf("seed review %s for property %s: rating %d out of range", r.ID, pid, r.Rating)
			}
		}
	}
	return d, nil
}

// ReviewsByProperty converts the fixtures into domain reviews, order preserved.
func (d Data) ReviewsByProperty() map[string][]domain.Review {
	out := make(map[string][]domain.Review, len(d.Reviews))
	for pid, rs := range d.Reviews {
		list := make([]domain.Review, 0, len(rs))
		for _, r := range rs {
			list = append(list, domain.Review{
				ID:         r.ID,
				UserID:     r.UserID,
				UserName:   r.UserName,
				Rating:     r.Rating,
				Comment:    r.Comment,
				Date:       r.Date,
				UserAvatar: r.UserAvatar,
			})
		}
		out[pid] = list
	}
	return out
}
