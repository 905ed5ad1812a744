package model

import (
	"golang.org/x/text/language"
)

// SkillCategory classifies a technical skill.
type SkillCategory string

const (
	CategoryLanguages         SkillCategory = "languages"
	CategoryFrameworks        SkillCategory = "frameworks"
	CategoryDatabases         SkillCategory = "databases"
	CategoryDevops            SkillCategory = "devops"
	CategoryDesign            SkillCategory = "design"
	CategoryProjectManagement SkillCategory = "projectManagement"
	CategoryVersionControl    SkillCategory = "versionControl"
	CategoryModeling          SkillCategory = "modeling"
)

// SkillCategories lists every category in document order. The export
// document and grouped listings iterate this slice, never the map form,
// so output order is deterministic.
var SkillCategories = []SkillCategory{
	CategoryLanguages,
	CategoryFrameworks,
	CategoryDatabases,
	CategoryDevops,
	CategoryProjectManagement,
	CategoryDesign,
	CategoryVersionControl,
	CategoryModeling,
}

// Valid reports whether c is a known category.
func (c SkillCategory) Valid() bool {
	for _, known := range SkillCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Template identifies one of the interchangeable CV layouts.
type Template string

const (
	TemplateClassic Template = "classic"
	TemplateModern  Template = "modern"
	TemplateMinimal Template = "minimal"
)

// Templates lists the valid template choices.
var Templates = []Template{TemplateClassic, TemplateModern, TemplateMinimal}

// Valid reports whether t is a known template.
func (t Template) Valid() bool {
	return t == TemplateClassic || t == TemplateModern || t == TemplateMinimal
}

// Language is a CV target language.
type Language string

const (
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// Languages lists the supported target languages.
var Languages = []Language{LanguageFrench, LanguageEnglish, LanguageArabic}

// languageMatcher resolves arbitrary BCP 47 input ("fr-FR", "en-US") to the
// nearest supported language.
var languageMatcher = language.NewMatcher([]language.Tag{
	language.French,
	language.English,
	language.Arabic,
})

// Valid reports whether l is a supported language code.
func (l Language) Valid() bool {
	return l == LanguageFrench || l == LanguageEnglish || l == LanguageArabic
}

// ParseLanguage resolves a user-supplied language string to a supported
// Language. Accepts exact codes and regional variants ("fr-FR" -> fr).
// Returns false when the input cannot be matched with confidence.
func ParseLanguage(s string) (Language, bool) {
	if l := Language(s); l.Valid() {
		return l, true
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf < language.High {
		return "", false
	}
	return Languages[idx], true
}

// ThemeMode is the UI theme preference stored in Settings.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// Valid reports whether m is a known theme mode.
func (m ThemeMode) Valid() bool {
	return m == ThemeLight || m == ThemeDark || m == ThemeSystem
}

// SpokenLevel grades proficiency in a spoken language.
type SpokenLevel string

const (
	SpokenNative       SpokenLevel = "native"
	SpokenFluent       SpokenLevel = "fluent"
	SpokenAdvanced     SpokenLevel = "advanced"
	SpokenIntermediate SpokenLevel = "intermediate"
	SpokenBeginner     SpokenLevel = "beginner"
)

// Valid reports whether l is a known spoken proficiency level.
func (l SpokenLevel) Valid() bool {
	switch l {
	case SpokenNative, SpokenFluent, SpokenAdvanced, SpokenIntermediate, SpokenBeginner:
		return true
	}
	return false
}
