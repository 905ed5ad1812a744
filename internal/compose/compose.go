package compose

import (
	"context"
	"fmt"

	"github.com/kmalouki/resumehub/internal/model"
	"github.com/kmalouki/resumehub/internal/store"
)

// Entities is a point-in-time read of every collection the composer needs.
type Entities struct {
	Profile        model.Profile
	Experiences    []model.Experience
	Projects       []model.Project
	Skills         []model.Skill
	Education      []model.Education
	Certifications []model.Certification
	Settings       model.Settings
}

// Load reads all entity collections from the store.
func Load(ctx context.Context, st *store.Store) (Entities, error) {
	var e Entities
	var err error

	if e.Profile, err = st.GetProfile(ctx); err != nil {
		return Entities{}, fmt.Errorf("load profile: %w", err)
	}
	if e.Experiences, err = st.ListExperiences(ctx); err != nil {
		return Entities{}, fmt.Errorf("load experiences: %w", err)
	}
	if e.Projects, err = st.ListProjects(ctx); err != nil {
		return Entities{}, fmt.Errorf("load projects: %w", err)
	}
	if e.Skills, err = st.ListSkills(ctx); err != nil {
		return Entities{}, fmt.Errorf("load skills: %w", err)
	}
	if e.Education, err = st.ListEducation(ctx); err != nil {
		return Entities{}, fmt.Errorf("load education: %w", err)
	}
	if e.Certifications, err = st.ListCertifications(ctx); err != nil {
		return Entities{}, fmt.Errorf("load certifications: %w", err)
	}
	if e.Settings, err = st.GetSettings(ctx); err != nil {
		return Entities{}, fmt.Errorf("load settings: %w", err)
	}

	return e, nil
}

// Snapshot is the filtered, ordered projection of the entity collections
// for one variant, ready for a template renderer.
type Snapshot struct {
	Variant          model.CVVariant                      `json:"variant"`
	Profile          model.Profile                        `json:"profile"`
	Experiences      []model.Experience                   `json:"experiences"`
	Projects         []model.Project                      `json:"projects"`
	Skills           []model.Skill                        `json:"skills"`
	SkillsByCategory map[model.SkillCategory][]model.Skill `json:"skillsByCategory"`
	Education        []model.Education                    `json:"education"`
	Certifications   []model.Certification                `json:"certifications"`
	Settings         model.Settings                       `json:"settings"`
}

// NewSnapshot composes the rendering snapshot for a variant.
//
// For each referenceable collection: an empty id set on the variant means
// "include all"; a non-empty set includes only records whose id is in the
// set. Either way only visible records survive, in ascending display order
// (entity slices are assumed pre-sorted by the store). Ids referencing
// records that no longer exist are skipped silently. Profile and Settings
// are included wholesale, never filtered.
func NewSnapshot(variant model.CVVariant, entities Entities) Snapshot {
	snap := Snapshot{
		Variant:        variant,
		Profile:        entities.Profile,
		Settings:       entities.Settings,
		Experiences:    []model.Experience{},
		Projects:       []model.Project{},
		Skills:         []model.Skill{},
		Education:      []model.Education{},
		Certifications: []model.Certification{},
	}

	experienceIDs := idSet(variant.ExperienceIDs)
	for _, e := range entities.Experiences {
		if e.Visible && (len(experienceIDs) == 0 || experienceIDs[e.ID]) {
			snap.Experiences = append(snap.Experiences, e)
		}
	}

	projectIDs := idSet(variant.ProjectIDs)
	for _, p := range entities.Projects {
		if p.Visible && (len(projectIDs) == 0 || projectIDs[p.ID]) {
			snap.Projects = append(snap.Projects, p)
		}
	}

	skillIDs := idSet(variant.SkillIDs)
	for _, sk := range entities.Skills {
		if sk.Visible && (len(skillIDs) == 0 || skillIDs[sk.ID]) {
			snap.Skills = append(snap.Skills, sk)
		}
	}

	educationIDs := idSet(variant.EducationIDs)
	for _, e := range entities.Education {
		if len(educationIDs) == 0 || educationIDs[e.ID] {
			snap.Education = append(snap.Education, e)
		}
	}

	certificationIDs := idSet(variant.CertificationIDs)
	for _, c := range entities.Certifications {
		if len(certificationIDs) == 0 || certificationIDs[c.ID] {
			snap.Certifications = append(snap.Certifications, c)
		}
	}

	snap.SkillsByCategory = make(map[model.SkillCategory][]model.Skill)
	for _, sk := range snap.Skills {
		snap.SkillsByCategory[sk.Category] = append(snap.SkillsByCategory[sk.Category], sk)
	}

	return snap
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
