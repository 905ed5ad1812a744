package compose

import "fmt"

// FindingType grades an analysis finding.
type FindingType string

const (
	FindingSuccess FindingType = "success"
	FindingWarning FindingType = "warning"
	FindingInfo    FindingType = "info"
)

// Finding is one observation about CV quality or completeness.
type Finding struct {
	Type       FindingType `json:"type"`
	Category   string      `json:"category"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// Analyze inspects the entity collections and reports completeness and
// quality findings. Deterministic: findings come out in a fixed category
// order for the same input.
func Analyze(entities Entities) []Finding {
	var findings []Finding
	add := func(t FindingType, category, message, suggestion string) {
		findings = append(findings, Finding{Type: t, Category: category, Message: message, Suggestion: suggestion})
	}

	profile := entities.Profile
	if profile.Name == "" {
		add(FindingWarning, "Profile", "Name is missing", "Add your full name")
	}
	if profile.Email == "" {
		add(FindingWarning, "Profile", "Email is missing", "Add your email address")
	}
	if profile.Phone == "" {
		add(FindingInfo, "Profile", "Phone number is missing", "Consider adding a phone number")
	}
	if profile.GitHub == "" {
		add(FindingInfo, "Profile", "GitHub is missing", "Add your GitHub to showcase your work")
	}
	if profile.LinkedIn == "" {
		add(FindingInfo, "Profile", "LinkedIn is missing", "Add your LinkedIn for professional networking")
	}
	if profile.Name != "" && profile.Email != "" {
		add(FindingSuccess, "Profile", "Contact info is complete", "")
	}

	if len(entities.Experiences) == 0 {
		add(FindingWarning, "Experience", "No experience added", "Add at least one work experience or internship")
	} else {
		if len(entities.Experiences) < 2 {
			add(FindingInfo, "Experience", "Only 1 experience entry", "Consider adding more relevant experiences")
		} else {
			add(FindingSuccess, "Experience", fmt.Sprintf("%d experiences documented", len(entities.Experiences)), "")
		}
		short := 0
		for _, e := range entities.Experiences {
			if len(e.Tasks) < 2 {
				short++
			}
		}
		if short > 0 {
			add(FindingWarning, "Experience", "Some experiences have few tasks", "Add 3-5 bullet points per experience")
		}
	}

	if len(entities.Projects) == 0 {
		add(FindingWarning, "Projects", "No projects added", "Add projects to showcase your skills")
	} else {
		if len(entities.Projects) >= 2 {
			add(FindingSuccess, "Projects", fmt.Sprintf("%d projects documented", len(entities.Projects)), "")
		}
		linked := 0
		for _, p := range entities.Projects {
			if p.Link != "" {
				linked++
			}
		}
		if linked == 0 {
			add(FindingInfo, "Projects", "No project links", "Add GitHub/demo links to your projects")
		} else {
			add(FindingSuccess, "Projects", fmt.Sprintf("%d projects have links", linked), "")
		}
	}

	if len(entities.Skills) == 0 {
		add(FindingWarning, "Skills", "No skills added", "Add your technical skills")
	} else if len(entities.Skills) >= 10 {
		add(FindingSuccess, "Skills", fmt.Sprintf("%d skills documented", len(entities.Skills)), "")
	} else {
		add(FindingInfo, "Skills", fmt.Sprintf("Only %d skills", len(entities.Skills)), "Consider adding more relevant skills")
	}

	if len(entities.Education) == 0 {
		add(FindingWarning, "Education", "No education added", "Add your educational background")
	} else {
		add(FindingSuccess, "Education", fmt.Sprintf("%d education entries", len(entities.Education)), "")
	}

	if len(entities.Certifications) > 0 {
		add(FindingSuccess, "Certifications", fmt.Sprintf("%d certifications added", len(entities.Certifications)), "")
	} else {
		add(FindingInfo, "Certifications", "No certifications", "Add relevant certifications to stand out")
	}

	return findings
}
