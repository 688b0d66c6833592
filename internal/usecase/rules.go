package usecase

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// RuleSet is the data-only configuration behind the classifier: curated
// keyword lists and thresholds, editable without code changes. All matching
// is case-insensitive substring matching.
type RuleSet struct {
	// Degree keywords marking a qualifying degree for the target profile.
	DegreeKeywords []string `json:"degree_keywords" validate:"min=1,dive,required"`
	// Field-of-study keywords marking a relevant domain.
	FieldKeywords []string `json:"field_keywords" validate:"min=1,dive,required"`
	// Minimum total experience (years) for the target profile.
	MinExperienceYears float64 `json:"min_experience_years" validate:"gte=0"`
	// Marker phrases the parser writes into notes for unreadable CVs.
	UnreadableMarkers []string `json:"unreadable_markers" validate:"min=1,dive,required"`
	// cv_language values (beyond "en"/"en-*") that indicate an English CV.
	EnglishLanguageHints []string `json:"english_language_hints" validate:"min=1,dive,required"`
}

// DefaultRuleSet reproduces the curated lists used by the reviewers. Lots
// are mostly francophone, so French spellings sit next to English ones.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		DegreeKeywords: []string{
			"master", "licence", "bac+3", "bac+4", "bac+5",
			"ingénieur", "ingenieur", "engineer",
			"msc", "mba", "doctorat", "phd",
		},
		FieldKeywords: []string{
			"économie", "economie", "econom", "économétrie", "econometr",
			"statisti", "mathémat", "mathemat", "quantitat",
			"informatique", "computer science", "software", "logiciel",
			"data", "ingénierie", "engineering", "finance",
		},
		MinExperienceYears: 3,
		UnreadableMarkers: []string{
			"illisible", "unreadable", "illegible", "non lisible",
		},
		EnglishLanguageHints: []string{
			"english", "anglais",
		},
	}
}

// LoadRuleSet reads rule overrides from a JSON file. An empty path returns
// the defaults.
func LoadRuleSet(path string, validate *validator.Validate) (RuleSet, error) {
	if path == "" {
		return DefaultRuleSet(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("rules: failed to read %s: %w", path, err)
	}

	rules := DefaultRuleSet()
	if err := json.Unmarshal(data, &rules); err != nil {
		return RuleSet{}, fmt.Errorf("rules: failed to parse %s: %w", path, err)
	}

	if err := validate.Struct(rules); err != nil {
		return RuleSet{}, fmt.Errorf("rules: invalid rule set in %s: %w", path, err)
	}
	return rules, nil
}
