package compose

import "github.com/kmalouki/resumehub/internal/model"

// Completeness weights. Fixed policy; the sum is exactly 100 and the
// score is clamped there anyway.
const (
	weightName       = 15
	weightEmail      = 10
	weightPhone      = 5
	weightGitHub     = 5
	weightLinkedIn   = 5
	weightExperience = 20
	weightProjects   = 15
	weightSkills     = 15
	weightEducation  = 10
)

// Completeness computes the 0-100 profile completeness score from the
// profile fields and collection counts. Pure aggregation, recomputed on
// every read.
func Completeness(profile model.Profile, stats model.Stats) int {
	score := 0
	if profile.Name != "" {
		score += weightName
	}
	if profile.Email != "" {
		score += weightEmail
	}
	if profile.Phone != "" {
		score += weightPhone
	}
	if profile.GitHub != "" {
		score += weightGitHub
	}
	if profile.LinkedIn != "" {
		score += weightLinkedIn
	}
	if stats.Experiences > 0 {
		score += weightExperience
	}
	if stats.Projects > 0 {
		score += weightProjects
	}
	if stats.Skills > 0 {
		score += weightSkills
	}
	if stats.Education > 0 {
		score += weightEducation
	}

	if score > 100 {
		score = 100
	}
	return score
}
