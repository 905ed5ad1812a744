package store

import (
	"context"
	"fmt"

	"github.com/kmalouki/resumehub/internal/model"
)

// Stats returns per-collection record counts. The completeness score is
// filled in by the compose package; the store only counts.
func (s *Store) Stats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats
	counts := []struct {
		table string
		dst   *int
	}{
		{"experiences", &stats.Experiences},
		{"projects", &stats.Projects},
		{"skills", &stats.Skills},
		{"education", &stats.Education},
		{"certifications", &stats.Certifications},
		{"cv_variants", &stats.Variants},
	}
	for _, c := range counts {
		err := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", c.table)).Scan(c.dst)
		if err != nil {
			return model.Stats{}, fmt.Errorf("count %s: %w", c.table, err)
		}
	}
	return stats, nil
}
