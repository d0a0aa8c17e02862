package position

import "github.com/KATBlackCoder/rapportflow/internal/domain"

type PositionOption struct {
	Value     domain.Position `json:"value"`
	Label     string          `json:"label"`
	CanExport bool            `json:"can_export"`
}

// Options lists every position from the lowest tier up.
func Options() []PositionOption {
	opts := make([]PositionOption, len(domain.Positions))
	for i, p := range domain.Positions {
		opts[i] = PositionOption{Value: p, Label: p.Label(), CanExport: p.CanExport()}
	}
	return opts
}
