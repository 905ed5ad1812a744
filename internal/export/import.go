package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kmalouki/resumehub/internal/model"
	"github.com/kmalouki/resumehub/internal/store"
)

// ImportFormatError reports an import payload missing required top-level
// keys. The store is left untouched.
type ImportFormatError struct {
	// MissingKeys lists the absent required keys.
	MissingKeys []string

	// Cause holds the underlying JSON error when the payload was not
	// valid JSON at all.
	Cause error
}

// Error implements the error interface.
func (e *ImportFormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid CV document: %v", e.Cause)
	}
	return fmt.Sprintf("invalid CV document: missing %s", strings.Join(e.MissingKeys, ", "))
}

// Unwrap returns the underlying JSON error, if any.
func (e *ImportFormatError) Unwrap() error {
	return e.Cause
}

// IsImportFormatError returns true if the error is an ImportFormatError.
// Uses errors.As to handle wrapped errors.
func IsImportFormatError(err error) bool {
	var ife *ImportFormatError
	return errors.As(err, &ife)
}

// requiredKeys are the top-level keys an import document must carry.
var requiredKeys = []string{"personalInfo", "skills", "experience"}

// Parse decodes an import payload. Both the _metadata-wrapped and bare
// document shapes are accepted. Documents missing personalInfo, skills or
// experience fail with ImportFormatError naming every absent key.
func Parse(data []byte) (Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, &ImportFormatError{Cause: err}
	}

	var missing []string
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Document{}, &ImportFormatError{MissingKeys: missing}
	}

	// The envelope embeds the document, so one decode handles both the
	// wrapped and bare shapes.
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Document{}, &ImportFormatError{Cause: err}
	}

	return env.Document, nil
}

// Apply writes a parsed document into the store, replacing the current CV
// data set in one transaction. Unknown skill categories and spoken levels
// are rejected as validation errors by the store.
func Apply(ctx context.Context, st *store.Store, doc Document) error {
	bundle := toBundle(doc)
	if err := st.ImportCV(ctx, bundle); err != nil {
		return fmt.Errorf("apply import: %w", err)
	}
	return nil
}

// toBundle converts a document into the store's import shape.
func toBundle(doc Document) store.ImportBundle {
	softSkills := append([]string{}, doc.SoftSkills...)
	spoken := make([]model.SpokenLanguage, 0, len(doc.Languages))
	for _, lang := range doc.Languages {
		spoken = append(spoken, model.SpokenLanguage{
			Name:  lang.Name,
			Level: model.SpokenLevel(lang.Level),
			Code:  lang.Code,
		})
	}

	bundle := store.ImportBundle{
		Profile: model.ProfilePatch{
			Name:            &doc.PersonalInfo.Name,
			Title:           &doc.PersonalInfo.Title,
			Email:           &doc.PersonalInfo.Email,
			Phone:           &doc.PersonalInfo.Phone,
			Address:         &doc.PersonalInfo.Address,
			GitHub:          &doc.PersonalInfo.GitHub,
			LinkedIn:        &doc.PersonalInfo.LinkedIn,
			Portfolio:       &doc.PersonalInfo.Portfolio,
			ProfileImage:    &doc.PersonalInfo.ProfileImage,
			SoftSkills:      &softSkills,
			SpokenLanguages: &spoken,
		},
	}

	for _, category := range model.SkillCategories {
		names := doc.Skills.bucket(category)
		for _, name := range *names {
			bundle.Skills = append(bundle.Skills, model.Skill{
				Name:     name,
				Category: category,
				Level:    3,
			})
		}
	}

	for _, e := range doc.Experience {
		bundle.Experiences = append(bundle.Experiences, model.Experience{
			Role:         e.Role,
			Company:      e.Company,
			Location:     e.Location,
			StartDate:    e.StartDate,
			EndDate:      e.EndDate,
			Tasks:        append([]string{}, e.Tasks...),
			Technologies: append([]string{}, e.Technologies...),
		})
	}

	for _, e := range doc.Education {
		bundle.Education = append(bundle.Education, model.Education{
			Degree:      e.Degree,
			Institution: e.Institution,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
		})
	}

	for _, p := range doc.Projects {
		bundle.Projects = append(bundle.Projects, model.Project{
			Name:         p.Name,
			Date:         p.Date,
			Description:  p.Description,
			Highlights:   append([]string{}, p.Highlights...),
			Technologies: append([]string{}, p.Technologies...),
			Link:         p.Link,
		})
	}

	for _, c := range doc.Certifications {
		issuer := c.Issuer
		if issuer == "" {
			issuer = "Unknown"
		}
		bundle.Certifications = append(bundle.Certifications, model.Certification{
			Name:   c.Name,
			Issuer: issuer,
			Date:   c.Date,
			Link:   c.Link,
		})
	}

	return bundle
}
