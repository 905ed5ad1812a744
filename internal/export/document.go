package export

import "github.com/kmalouki/resumehub/internal/model"

// Version is the document format version stamped into _metadata.
const Version = "1.0.0"

// Generator is the producer name stamped into _metadata.
const Generator = "resumehub"

// Document is the Profile-rooted CV data set exchanged as JSON.
type Document struct {
	PersonalInfo   PersonalInfo          `json:"personalInfo"`
	Skills         TechnicalSkills       `json:"skills"`
	Experience     []ExperienceEntry     `json:"experience"`
	Education      []EducationEntry      `json:"education"`
	Projects       []ProjectEntry        `json:"projects"`
	Certifications []CertificationEntry  `json:"certifications"`
	SoftSkills     []string              `json:"softSkills"`
	Languages      []LanguageEntry       `json:"languages"`
}

// Envelope wraps a Document with export metadata. Import accepts both the
// wrapped and bare shapes.
type Envelope struct {
	Document
	Metadata *Metadata `json:"_metadata,omitempty"`
}

// Metadata describes when and by what a document was exported.
type Metadata struct {
	ExportedAt string `json:"exportedAt"`
	Version    string `json:"version"`
	Generator  string `json:"generator"`
}

// PersonalInfo carries the profile fields of the document.
type PersonalInfo struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	GitHub       string `json:"github"`
	LinkedIn     string `json:"linkedin"`
	Portfolio    string `json:"portfolio"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// TechnicalSkills groups skill names by category.
type TechnicalSkills struct {
	Languages         []string `json:"languages"`
	Frameworks        []string `json:"frameworks"`
	Databases         []string `json:"databases"`
	Devops            []string `json:"devops"`
	ProjectManagement []string `json:"projectManagement"`
	Design            []string `json:"design"`
	VersionControl    []string `json:"versionControl"`
	Modeling          []string `json:"modeling"`
}

// ExperienceEntry is one work experience in the document.
type ExperienceEntry struct {
	ID           string   `json:"id"`
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Tasks        []string `json:"tasks"`
	Technologies []string `json:"technologies"`
}

// EducationEntry is one education record in the document.
type EducationEntry struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate"`
	Description string `json:"description,omitempty"`
}

// ProjectEntry is one project in the document.
type ProjectEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Date         string   `json:"date"`
	Description  string   `json:"description"`
	Highlights   []string `json:"highlights"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
}

// CertificationEntry is one certification in the document.
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	Link   string `json:"link,omitempty"`
}

// LanguageEntry is one spoken language in the document.
type LanguageEntry struct {
	Name  string `json:"name"`
	Level string `json:"level"`
	Code  string `json:"code,omitempty"`
}

// skillBucket maps a category to the matching TechnicalSkills field.
func (t *TechnicalSkills) bucket(category model.SkillCategory) *[]string {
	switch category {
	case model.CategoryLanguages:
		return &t.Languages
	case model.CategoryFrameworks:
		return &t.Frameworks
	case model.CategoryDatabases:
		return &t.Databases
	case model.CategoryDevops:
		return &t.Devops
	case model.CategoryProjectManagement:
		return &t.ProjectManagement
	case model.CategoryDesign:
		return &t.Design
	case model.CategoryVersionControl:
		return &t.VersionControl
	case model.CategoryModeling:
		return &t.Modeling
	}
	return nil
}
