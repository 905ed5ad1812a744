package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kmalouki/resumehub/internal/compose"
	"github.com/kmalouki/resumehub/internal/model"
)

// BuildDocument projects a composed snapshot into the exchange document.
// Deterministic: entry order follows the snapshot's display order and
// skill buckets follow the fixed category order.
func BuildDocument(snap compose.Snapshot) Document {
	doc := Document{
		PersonalInfo: PersonalInfo{
			Name:         snap.Profile.Name,
			Title:        snap.Profile.Title,
			Phone:        snap.Profile.Phone,
			Email:        snap.Profile.Email,
			Address:      snap.Profile.Address,
			GitHub:       snap.Profile.GitHub,
			LinkedIn:     snap.Profile.LinkedIn,
			Portfolio:    snap.Profile.Portfolio,
			ProfileImage: snap.Profile.ProfileImage,
		},
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Projects:       []ProjectEntry{},
		Certifications: []CertificationEntry{},
		SoftSkills:     append([]string{}, snap.Profile.SoftSkills...),
		Languages:      []LanguageEntry{},
	}

	for _, category := range model.SkillCategories {
		bucket := doc.Skills.bucket(category)
		*bucket = []string{}
		for _, sk := range snap.SkillsByCategory[category] {
			*bucket = append(*bucket, sk.Name)
		}
	}

	for _, e := range snap.Experiences {
		doc.Experience = append(doc.Experience, ExperienceEntry{
			ID:           e.ID,
			Role:         e.Role,
			Company:      e.Company,
			Location:     e.Location,
			StartDate:    e.StartDate,
			EndDate:      e.EndDate,
			Tasks:        append([]string{}, e.Tasks...),
			Technologies: append([]string{}, e.Technologies...),
		})
	}

	for _, e := range snap.Education {
		doc.Education = append(doc.Education, EducationEntry{
			ID:          e.ID,
			Degree:      e.Degree,
			Institution: e.Institution,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
		})
	}

	for _, p := range snap.Projects {
		doc.Projects = append(doc.Projects, ProjectEntry{
			ID:           p.ID,
			Name:         p.Name,
			Date:         p.Date,
			Description:  p.Description,
			Highlights:   append([]string{}, p.Highlights...),
			Technologies: append([]string{}, p.Technologies...),
			Link:         p.Link,
		})
	}

	for _, c := range snap.Certifications {
		doc.Certifications = append(doc.Certifications, CertificationEntry{
			Name:   c.Name,
			Issuer: c.Issuer,
			Date:   c.Date,
			Link:   c.Link,
		})
	}

	for _, lang := range snap.Profile.SpokenLanguages {
		doc.Languages = append(doc.Languages, LanguageEntry{
			Name:  lang.Name,
			Level: string(lang.Level),
			Code:  lang.Code,
		})
	}

	return doc
}

// Marshal renders a document as 2-space indented JSON. With metadata, the
// document is wrapped in the _metadata envelope stamped at the given time.
func Marshal(doc Document, withMetadata bool, exportedAt time.Time) ([]byte, error) {
	var payload any = doc
	if withMetadata {
		payload = Envelope{
			Document: doc,
			Metadata: &Metadata{
				ExportedAt: exportedAt.UTC().Format(time.RFC3339),
				Version:    Version,
				Generator:  Generator,
			},
		}
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return data, nil
}
