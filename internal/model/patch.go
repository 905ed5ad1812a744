package model

// Patch structs name exactly the fields a partial update may touch.
// A nil pointer means "leave unchanged". Timestamps and order fields are
// owned by the store and never patchable directly.

// ProfilePatch is a partial update to the Profile singleton.
type ProfilePatch struct {
	Name            *string
	Title           *string
	Email           *string
	Phone           *string
	Address         *string
	GitHub          *string
	LinkedIn        *string
	Portfolio       *string
	ProfileImage    *string
	SoftSkills      *[]string
	SpokenLanguages *[]SpokenLanguage
}

// Apply merges the patch into p.
func (patch ProfilePatch) Apply(p *Profile) {
	setString(&p.Name, patch.Name)
	setString(&p.Title, patch.Title)
	setString(&p.Email, patch.Email)
	setString(&p.Phone, patch.Phone)
	setString(&p.Address, patch.Address)
	setString(&p.GitHub, patch.GitHub)
	setString(&p.LinkedIn, patch.LinkedIn)
	setString(&p.Portfolio, patch.Portfolio)
	setString(&p.ProfileImage, patch.ProfileImage)
	if patch.SoftSkills != nil {
		p.SoftSkills = append([]string(nil), *patch.SoftSkills...)
	}
	if patch.SpokenLanguages != nil {
		p.SpokenLanguages = append([]SpokenLanguage(nil), *patch.SpokenLanguages...)
	}
}

// ExperiencePatch is a partial update to an Experience.
type ExperiencePatch struct {
	Role         *string
	Company      *string
	Location     *string
	StartDate    *string
	EndDate      *string
	Tasks        *[]string
	Technologies *[]string
	Visible      *bool
}

// Apply merges the patch into e.
func (patch ExperiencePatch) Apply(e *Experience) {
	setString(&e.Role, patch.Role)
	setString(&e.Company, patch.Company)
	setString(&e.Location, patch.Location)
	setString(&e.StartDate, patch.StartDate)
	setString(&e.EndDate, patch.EndDate)
	setStrings(&e.Tasks, patch.Tasks)
	setStrings(&e.Technologies, patch.Technologies)
	setBool(&e.Visible, patch.Visible)
}

// ProjectPatch is a partial update to a Project.
type ProjectPatch struct {
	Name         *string
	Date         *string
	Description  *string
	Highlights   *[]string
	Technologies *[]string
	Link         *string
	Featured     *bool
	Visible      *bool
}

// Apply merges the patch into p.
func (patch ProjectPatch) Apply(p *Project) {
	setString(&p.Name, patch.Name)
	setString(&p.Date, patch.Date)
	setString(&p.Description, patch.Description)
	setStrings(&p.Highlights, patch.Highlights)
	setStrings(&p.Technologies, patch.Technologies)
	setString(&p.Link, patch.Link)
	setBool(&p.Featured, patch.Featured)
	setBool(&p.Visible, patch.Visible)
}

// SkillPatch is a partial update to a Skill.
type SkillPatch struct {
	Name     *string
	Category *SkillCategory
	Level    *int
	Years    *int
	Visible  *bool
}

// Apply merges the patch into s.
func (patch SkillPatch) Apply(s *Skill) {
	setString(&s.Name, patch.Name)
	if patch.Category != nil {
		s.Category = *patch.Category
	}
	if patch.Level != nil {
		s.Level = *patch.Level
	}
	if patch.Years != nil {
		s.Years = *patch.Years
	}
	setBool(&s.Visible, patch.Visible)
}

// EducationPatch is a partial update to an Education entry.
type EducationPatch struct {
	Degree      *string
	Institution *string
	Location    *string
	StartDate   *string
	EndDate     *string
	Description *string
}

// Apply merges the patch into e.
func (patch EducationPatch) Apply(e *Education) {
	setString(&e.Degree, patch.Degree)
	setString(&e.Institution, patch.Institution)
	setString(&e.Location, patch.Location)
	setString(&e.StartDate, patch.StartDate)
	setString(&e.EndDate, patch.EndDate)
	setString(&e.Description, patch.Description)
}

// CertificationPatch is a partial update to a Certification.
type CertificationPatch struct {
	Name   *string
	Issuer *string
	Date   *string
	Link   *string
}

// Apply merges the patch into c.
func (patch CertificationPatch) Apply(c *Certification) {
	setString(&c.Name, patch.Name)
	setString(&c.Issuer, patch.Issuer)
	setString(&c.Date, patch.Date)
	setString(&c.Link, patch.Link)
}

// VariantPatch is a partial update to a CVVariant. The Default flag is
// deliberately absent: default promotion goes through SetDefaultVariant so
// the one-default invariant holds.
type VariantPatch struct {
	Name             *string
	Language         *Language
	Template         *Template
	ExperienceIDs    *[]string
	ProjectIDs       *[]string
	SkillIDs         *[]string
	EducationIDs     *[]string
	CertificationIDs *[]string
	AccentColor      *string
}

// Apply merges the patch into v.
func (patch VariantPatch) Apply(v *CVVariant) {
	setString(&v.Name, patch.Name)
	if patch.Language != nil {
		v.Language = *patch.Language
	}
	if patch.Template != nil {
		v.Template = *patch.Template
	}
	setStrings(&v.ExperienceIDs, patch.ExperienceIDs)
	setStrings(&v.ProjectIDs, patch.ProjectIDs)
	setStrings(&v.SkillIDs, patch.SkillIDs)
	setStrings(&v.EducationIDs, patch.EducationIDs)
	setStrings(&v.CertificationIDs, patch.CertificationIDs)
	setString(&v.AccentColor, patch.AccentColor)
}

// SettingsPatch is a partial update to the Settings singleton.
type SettingsPatch struct {
	ThemeMode       *ThemeMode
	Language        *Language
	DefaultTemplate *Template
	ShowPhoto       *bool
}

// Apply merges the patch into s.
func (patch SettingsPatch) Apply(s *Settings) {
	if patch.ThemeMode != nil {
		s.ThemeMode = *patch.ThemeMode
	}
	if patch.Language != nil {
		s.Language = *patch.Language
	}
	if patch.DefaultTemplate != nil {
		s.DefaultTemplate = *patch.DefaultTemplate
	}
	setBool(&s.ShowPhoto, patch.ShowPhoto)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setStrings(dst *[]string, src *[]string) {
	if src != nil {
		*dst = append([]string(nil), *src...)
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
