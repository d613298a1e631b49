// Package styling exposes the color harmony and keyword tables read-only.
package styling

import (
	"github.com/wichananm65/kombin-backend/internal/heuristics"
	"github.com/wichananm65/kombin-backend/internal/palette"
)

// ColorAdvice is the harmony data for one base color.
type ColorAdvice struct {
	Color     string            `json:"color"`
	Known     bool              `json:"known"`
	Relations palette.Relations `json:"relations"`
	Harmonic  []string          `json:"harmonic"`
}

type Service struct {
	harmony palette.Harmony
	tables  heuristics.Tables
}

func NewService(h palette.Harmony, t heuristics.Tables) *Service {
	return &Service{harmony: h, tables: t}
}

func (s *Service) Neutrals() []string {
	return s.harmony.Neutrals()
}

func (s *Service) Bases() []string {
	return s.harmony.Bases()
}

func (s *Service) Color(base string) ColorAdvice {
	return ColorAdvice{
		Color:     base,
		Known:     s.harmony.Known(base),
		Relations: s.harmony.Relations(base),
		Harmonic:  s.harmony.HarmonicColors(base),
	}
}

func (s *Service) Style(key string) heuristics.Group {
	return heuristics.Group{Key: key, Keywords: s.tables.Styles(key)}
}
func (s *Service) Season(key string) heuristics.Group {
	return heuristics.Group{Key: key, Keywords: s.tables.Seasons(key)}
}
func (s *Service) Silhouette(key string) heuristics.Group {
	return heuristics.Group{Key: key, Keywords: s.tables.Silhouettes(key)}
}
func (s *Service) Shoe(key string) heuristics.Group {
	return heuristics.Group{Key: key, Keywords: s.tables.ShoeStyles(key)}
}

// Proportion returns the bottom rise suggested for a top shape.
func (s *Service) Proportion(top string) (string, bool) {
	return s.tables.Proportion(top)
}

// Tables lists every keyword table keyed by name.
func (s *Service) Tables() map[string][]heuristics.Group {
	return map[string][]heuristics.Group{
		"styles":      s.tables.StyleGroups(),
		"seasons":     s.tables.SeasonGroups(),
		"silhouettes": s.tables.SilhouetteGroups(),
		"shoes":       s.tables.ShoeStyleGroups(),
	}
}
