package compose

import (
	"strings"

	"golang.org/x/text/cases"
)

// techKeywords is the fixed vocabulary the job matcher recognizes in a job
// description. Matching is substring-based on the case-folded text, so
// "react" matches "React.js" and vice versa.
var techKeywords = []string{
	"react", "vue", "angular", "node", "express", "laravel", "php", "python", "java",
	"javascript", "typescript", "html", "css", "tailwind", "bootstrap", "sass",
	"mongodb", "mysql", "postgresql", "redis", "docker", "kubernetes", "aws", "azure",
	"git", "github", "gitlab", "ci/cd", "agile", "scrum", "rest", "graphql", "api",
	"next.js", "nuxt", "nestjs", "django", "flask", "spring", "sql", "nosql",
	"figma", "adobe", "photoshop", "illustrator", "xd", "sketch",
	"linux", "ubuntu", "nginx", "apache", "jenkins", "terraform",
}

// MatchResult splits the keywords found in a job description into those
// covered by the candidate's stack and those missing from it.
type MatchResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// MatchJob extracts known tech keywords from a job description and checks
// them against the candidate's skills plus the technologies attached to
// projects and experiences. Matching is bidirectional substring
// containment over Unicode case-folded strings.
func MatchJob(description string, entities Entities) MatchResult {
	result := MatchResult{Matched: []string{}, Missing: []string{}}
	if strings.TrimSpace(description) == "" {
		return result
	}

	folder := cases.Fold()
	job := folder.String(description)

	seen := make(map[string]bool)
	var stack []string
	addTech := func(name string) {
		folded := folder.String(name)
		if folded != "" && !seen[folded] {
			seen[folded] = true
			stack = append(stack, folded)
		}
	}
	for _, sk := range entities.Skills {
		addTech(sk.Name)
	}
	for _, p := range entities.Projects {
		for _, tech := range p.Technologies {
			addTech(tech)
		}
	}
	for _, e := range entities.Experiences {
		for _, tech := range e.Technologies {
			addTech(tech)
		}
	}

	for _, kw := range techKeywords {
		if !strings.Contains(job, kw) {
			continue
		}
		covered := false
		for _, tech := range stack {
			if strings.Contains(tech, kw) || strings.Contains(kw, tech) {
				covered = true
				break
			}
		}
		if covered {
			result.Matched = append(result.Matched, kw)
		} else {
			result.Missing = append(result.Missing, kw)
		}
	}

	return result
}
