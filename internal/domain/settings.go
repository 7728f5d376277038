package domain

import "fmt"

// Settings is the persisted settings object. It is stored as JSON under a
// single key and overrides the chosen preset's constraint fields.
type Settings struct {
	MaxResult        int      `json:"maxResult"`
	MinOperand       int      `json:"minOperand"`
	MaxOperand       int      `json:"maxOperand"`
	AllowZero        bool     `json:"allowZero"`
	Operations       []string `json:"operations,omitempty"`
	UnknownPositions []string `json:"unknownPositions,omitempty"`
}

// DefaultSettings mirrors the easy preset's constraint space.
func DefaultSettings() Settings {
	return Settings{
		MaxResult:  10,
		MinOperand: 0,
		MaxOperand: 10,
		AllowZero:  true,
	}
}

// Apply overlays the settings onto a base configuration. Empty operation or
// unknown-position lists keep the base's choices.
func (s Settings) Apply(base DifficultyConfig) (DifficultyConfig, error) {
	cfg := base
	cfg.Constraints = Constraints{
		MaxResult:  s.MaxResult,
		MinOperand: s.MinOperand,
		MaxOperand: s.MaxOperand,
		AllowZero:  s.AllowZero,
	}
	if len(s.Operations) > 0 {
		ops := make([]Operation, 0, len(s.Operations))
		for _, raw := range s.Operations {
			if !ValidOperations[raw] {
				return DifficultyConfig{}, fmt.Errorf("applying settings: unknown operation %q", raw)
			}
			ops = append(ops, Operation(raw))
		}
		cfg.Operations = ops
	}
	if len(s.UnknownPositions) > 0 {
		positions := make([]UnknownPosition, 0, len(s.UnknownPositions))
		for _, raw := range s.UnknownPositions {
			u, err := ParseUnknownPosition(raw)
			if err != nil {
				return DifficultyConfig{}, fmt.Errorf("applying settings: %w", err)
			}
			positions = append(positions, u)
		}
		cfg.UnknownPositions = positions
	}
	if err := cfg.Validate(); err != nil {
		return DifficultyConfig{}, fmt.Errorf("applying settings: %w", err)
	}
	return cfg, nil
}
