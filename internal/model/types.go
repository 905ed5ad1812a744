package model

import "time"

// SingletonID is the fixed id of the Profile and Settings rows.
// Exactly one of each exists after initialization; neither is ever deleted.
const SingletonID = "default"

// Profile is the singleton personal record behind every CV.
type Profile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	GitHub       string    `json:"github"`
	LinkedIn     string    `json:"linkedin"`
	Portfolio    string    `json:"portfolio"`
	ProfileImage string    `json:"profileImage,omitempty"`
	// SoftSkills and SpokenLanguages live on the profile row so a JSON
	// export/import round-trip is lossless.
	SoftSkills      []string         `json:"softSkills"`
	SpokenLanguages []SpokenLanguage `json:"spokenLanguages"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// SpokenLanguage is a human language the candidate speaks.
type SpokenLanguage struct {
	Name  string      `json:"name"`
	Level SpokenLevel `json:"level"`
	Code  string      `json:"code,omitempty"` // CEFR code like "B1"
}

// Experience is one work experience entry.
// Dates are free-text period labels ("Juin 2025"), never parsed.
type Experience struct {
	ID           string    `json:"id"`
	Role         string    `json:"role"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Tasks        []string  `json:"tasks"`
	Technologies []string  `json:"technologies"`
	Visible      bool      `json:"isVisible"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Project is one portfolio project entry.
type Project struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Date         string    `json:"date"`
	Description  string    `json:"description"`
	Highlights   []string  `json:"highlights"`
	Technologies []string  `json:"technologies"`
	Link         string    `json:"link,omitempty"`
	Featured     bool      `json:"isFeatured"`
	Visible      bool      `json:"isVisible"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Skill is one technical skill. Level is 1-5.
type Skill struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Category  SkillCategory `json:"category"`
	Level     int           `json:"level"`
	Years     int           `json:"yearsOfExperience,omitempty"`
	Visible   bool          `json:"isVisible"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Education is one education entry.
type Education struct {
	ID          string    `json:"id"`
	Degree      string    `json:"degree"`
	Institution string    `json:"institution"`
	Location    string    `json:"location,omitempty"`
	StartDate   string    `json:"startDate,omitempty"`
	EndDate     string    `json:"endDate"`
	Description string    `json:"description,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Certification is one certification entry.
type Certification struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Issuer    string    `json:"issuer"`
	Date      string    `json:"date,omitempty"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CVVariant is a named configuration selecting a subset of entities plus
// presentation choices. An empty id set means "use all" for that
// collection. Id sets may reference entities that no longer exist; the
// composer skips missing ids (no cascading delete, no pruning).
type CVVariant struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Language         Language   `json:"language"`
	Template         Template   `json:"template"`
	ExperienceIDs    []string   `json:"selectedExperienceIds"`
	ProjectIDs       []string   `json:"selectedProjectIds"`
	SkillIDs         []string   `json:"selectedSkillIds"`
	EducationIDs     []string   `json:"selectedEducationIds"`
	CertificationIDs []string   `json:"selectedCertificationIds"`
	AccentColor      string     `json:"accentColor,omitempty"`
	Default          bool       `json:"isDefault"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	LastExportedAt   *time.Time `json:"lastExportedAt,omitempty"`
}

// Settings is the singleton application settings record.
type Settings struct {
	ID              string    `json:"id"`
	ThemeMode       ThemeMode `json:"themeMode"`
	Language        Language  `json:"language"`
	DefaultTemplate Template  `json:"defaultTemplateId"`
	ShowPhoto       bool      `json:"showPhoto"`
}

// Activity is one append-only activity log entry. Entries are never
// mutated or deleted by normal operations.
type Activity struct {
	Seq        int64     `json:"seq"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Stats holds per-collection record counts plus the derived completeness
// score. Recomputed on every read; nothing here is persisted.
type Stats struct {
	Completion     int `json:"profileComplete"`
	Experiences    int `json:"experienceCount"`
	Projects       int `json:"projectCount"`
	Skills         int `json:"skillCount"`
	Education      int `json:"educationCount"`
	Certifications int `json:"certificationCount"`
	Variants       int `json:"cvVariantCount"`
}
