package usecase

import (
	"strings"

	"go-cv-review-backend/internal/domain"
)

// Classifier derives the per-record review tags (usability, band, target
// profile, English CV) from raw fields. All methods are pure.
type Classifier struct {
	rules RuleSet
}

func NewClassifier(rules RuleSet) *Classifier {
	return &Classifier{rules: rules}
}

// Annotate tags one record with every derived flag the dashboard needs.
func (c *Classifier) Annotate(r domain.CandidateRecord) domain.ReviewRow {
	usable := c.IsUsable(r)
	return domain.ReviewRow{
		CandidateRecord: r,
		Usable:          usable,
		Band:            c.bandOf(r, usable),
		TargetProfile:   c.IsTargetProfile(r),
		EnglishCV:       c.IsEnglishCV(r),
	}
}

// IsUsable reports whether a record carries enough signal to review. The
// explicit parse status wins when the pipeline wrote one; the content
// heuristic only applies to rows that predate the status column.
func (c *Classifier) IsUsable(r domain.CandidateRecord) bool {
	switch strings.ToLower(strings.TrimSpace(r.ParseStatus)) {
	case domain.ParseStatusDone:
		return true
	case domain.ParseStatusFailed, domain.ParseStatusUnusable, domain.ParseStatusProcessing:
		return false
	}

	if !isBlank(r.FullName) || !isBlank(r.DegreeLevel) || !isBlank(r.FieldOfStudy) || !isBlank(r.LastJobTitle) {
		return true
	}
	if r.ExperienceYears != nil && *r.ExperienceYears > 0 {
		return true
	}
	// A note explaining the CV is unreadable is itself signal: the row stays
	// visible so the reviewer sees the rationale.
	return containsAny(r.Notes, c.rules.UnreadableMarkers)
}

// BandOf derives the score band: >=80 A, 60-79 B, 40-59 C, below 40 or
// unscored REVIEW. Unusable records band as UNUSABLE regardless of score.
func (c *Classifier) BandOf(r domain.CandidateRecord) domain.Band {
	return c.bandOf(r, c.IsUsable(r))
}

func (c *Classifier) bandOf(r domain.CandidateRecord, usable bool) domain.Band {
	if !usable {
		return domain.BandUnusable
	}
	if r.Score == nil {
		return domain.BandReview
	}
	switch s := *r.Score; {
	case s >= 80:
		return domain.BandA
	case s >= 60:
		return domain.BandB
	case s >= 40:
		return domain.BandC
	default:
		return domain.BandReview
	}
}

// IsTargetProfile matches the curated degree + field + experience criteria.
// English ability is deliberately not part of this predicate; the English
// subset exists for that.
func (c *Classifier) IsTargetProfile(r domain.CandidateRecord) bool {
	if !containsAny(r.DegreeLevel, c.rules.DegreeKeywords) {
		return false
	}
	if !containsAny(r.FieldOfStudy, c.rules.FieldKeywords) {
		return false
	}
	return r.ExperienceYears != nil && *r.ExperienceYears >= c.rules.MinExperienceYears
}

// IsEnglishCV reports whether the CV itself is written in English.
func (c *Classifier) IsEnglishCV(r domain.CandidateRecord) bool {
	lang := strings.ToLower(strings.TrimSpace(r.CVLanguage))
	if lang == "en" || strings.HasPrefix(lang, "en-") {
		return true
	}
	return containsAny(lang, c.rules.EnglishLanguageHints)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func containsAny(s string, keywords []string) bool {
	if isBlank(s) {
		return false
	}
	s = strings.ToLower(s)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
