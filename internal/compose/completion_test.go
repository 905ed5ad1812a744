package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmalouki/resumehub/internal/model"
)

func TestCompleteness(t *testing.T) {
	cases := []struct {
		name    string
		profile model.Profile
		stats   model.Stats
		want    int
	}{
		{
			name: "empty",
			want: 0,
		},
		{
			name:    "name only",
			profile: model.Profile{Name: "Khalil"},
			want:    15,
		},
		{
			name:    "contact fields",
			profile: model.Profile{Name: "Khalil", Email: "k@example.com", Phone: "+216"},
			want:    30,
		},
		{
			name:    "links",
			profile: model.Profile{GitHub: "https://github.com/kmalouki", LinkedIn: "https://linkedin.com/in/kmalouki"},
			want:    10,
		},
		{
			name:  "collections only",
			stats: model.Stats{Experiences: 3, Projects: 1, Skills: 12, Education: 2},
			want:  60,
		},
		{
			name: "everything",
			profile: model.Profile{
				Name: "Khalil", Email: "k@example.com", Phone: "+216",
				GitHub: "gh", LinkedIn: "li",
			},
			stats: model.Stats{Experiences: 1, Projects: 1, Skills: 1, Education: 1},
			want:  100,
		},
		{
			name:    "certifications do not count",
			profile: model.Profile{},
			stats:   model.Stats{Certifications: 5, Variants: 3},
			want:    0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Completeness(tc.profile, tc.stats))
		})
	}
}
