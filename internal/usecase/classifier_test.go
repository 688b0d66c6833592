package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-cv-review-backend/internal/domain"
	"go-cv-review-backend/internal/usecase"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func bptr(v bool) *bool       { return &v }

func TestIsUsable(t *testing.T) {
	c := usecase.NewClassifier(usecase.DefaultRuleSet())

	t.Run("Empty record is unusable", func(t *testing.T) {
		r := domain.CandidateRecord{ID: 1, ExperienceYears: fptr(0)}
		assert.False(t, c.IsUsable(r))
		assert.Equal(t, domain.BandUnusable, c.BandOf(r))
	})

	t.Run("Any identity field makes it usable", func(t *testing.T) {
		assert.True(t, c.IsUsable(domain.CandidateRecord{FullName: "Alice Martin"}))
		assert.True(t, c.IsUsable(domain.CandidateRecord{DegreeLevel: "Master"}))
		assert.True(t, c.IsUsable(domain.CandidateRecord{FieldOfStudy: "Informatique"}))
		assert.True(t, c.IsUsable(domain.CandidateRecord{LastJobTitle: "Data Analyst"}))
		assert.True(t, c.IsUsable(domain.CandidateRecord{ExperienceYears: fptr(2)}))
	})

	t.Run("Whitespace-only fields are blank", func(t *testing.T) {
		r := domain.CandidateRecord{FullName: "  ", DegreeLevel: "\t"}
		assert.False(t, c.IsUsable(r))
	})

	t.Run("Unreadable note keeps the row visible", func(t *testing.T) {
		r := domain.CandidateRecord{Notes: "CV illisible, extraction impossible"}
		assert.True(t, c.IsUsable(r))
		assert.Equal(t, domain.BandReview, c.BandOf(r))
	})

	t.Run("Explicit parse status wins over content", func(t *testing.T) {
		empty := domain.CandidateRecord{ParseStatus: domain.ParseStatusDone}
		assert.True(t, c.IsUsable(empty))

		rich := domain.CandidateRecord{
			FullName:    "Bob Diallo",
			DegreeLevel: "Master",
			ParseStatus: domain.ParseStatusUnusable,
		}
		assert.False(t, c.IsUsable(rich))

		assert.False(t, c.IsUsable(domain.CandidateRecord{FullName: "X", ParseStatus: domain.ParseStatusFailed}))
		assert.False(t, c.IsUsable(domain.CandidateRecord{FullName: "X", ParseStatus: domain.ParseStatusProcessing}))
	})
}

func TestBandOf(t *testing.T) {
	c := usecase.NewClassifier(usecase.DefaultRuleSet())

	tests := []struct {
		score *int
		want  domain.Band
	}{
		{iptr(100), domain.BandA},
		{iptr(80), domain.BandA},
		{iptr(79), domain.BandB},
		{iptr(60), domain.BandB},
		{iptr(59), domain.BandC},
		{iptr(40), domain.BandC},
		{iptr(39), domain.BandReview},
		{iptr(0), domain.BandReview},
		{nil, domain.BandReview},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.score != nil {
			name = fmt.Sprintf("%d", *tt.score)
		}
		t.Run("score "+name, func(t *testing.T) {
			r := domain.CandidateRecord{FullName: "Alice", Score: tt.score}
			assert.Equal(t, tt.want, c.BandOf(r))
		})
	}

	t.Run("Unusable wins over any score", func(t *testing.T) {
		r := domain.CandidateRecord{Score: iptr(95), ParseStatus: domain.ParseStatusFailed}
		assert.Equal(t, domain.BandUnusable, c.BandOf(r))
	})
}

// A record is unusable exactly when it bands UNUSABLE.
func TestUsabilityBandConsistency(t *testing.T) {
	c := usecase.NewClassifier(usecase.DefaultRuleSet())

	records := []domain.CandidateRecord{
		{},
		{FullName: "Alice"},
		{Score: iptr(85)},
		{FullName: "Bob", Score: iptr(85)},
		{ParseStatus: domain.ParseStatusDone},
		{FullName: "Eve", ParseStatus: domain.ParseStatusUnusable},
		{Notes: "document unreadable"},
		{ExperienceYears: fptr(0.5)},
	}

	for i, r := range records {
		row := c.Annotate(r)
		assert.Equal(t, row.Usable, row.Band != domain.BandUnusable, "record %d", i)
	}
}

func TestIsTargetProfile(t *testing.T) {
	c := usecase.NewClassifier(usecase.DefaultRuleSet())

	base := domain.CandidateRecord{
		DegreeLevel:     "Master",
		FieldOfStudy:    "Data Science",
		ExperienceYears: fptr(4),
	}

	t.Run("Qualifying degree, field and experience", func(t *testing.T) {
		assert.True(t, c.IsTargetProfile(base))
	})

	t.Run("English ability is not part of the predicate", func(t *testing.T) {
		r := base
		r.SpeaksEnglish = bptr(false)
		r.CVLanguage = "fr"
		assert.True(t, c.IsTargetProfile(r))
	})

	t.Run("Experience below threshold", func(t *testing.T) {
		r := base
		r.ExperienceYears = fptr(2)
		assert.False(t, c.IsTargetProfile(r))
	})

	t.Run("Unknown experience", func(t *testing.T) {
		r := base
		r.ExperienceYears = nil
		assert.False(t, c.IsTargetProfile(r))
	})

	t.Run("Non-qualifying degree", func(t *testing.T) {
		r := base
		r.DegreeLevel = "Brevet"
		assert.False(t, c.IsTargetProfile(r))
	})

	t.Run("Irrelevant field", func(t *testing.T) {
		r := base
		r.FieldOfStudy = "Histoire de l'art"
		assert.False(t, c.IsTargetProfile(r))
	})

	t.Run("French spellings match", func(t *testing.T) {
		r := domain.CandidateRecord{
			DegreeLevel:     "Diplôme d'ingénieur (bac+5)",
			FieldOfStudy:    "Économétrie et statistique",
			ExperienceYears: fptr(6),
		}
		assert.True(t, c.IsTargetProfile(r))
	})
}

func TestIsEnglishCV(t *testing.T) {
	c := usecase.NewClassifier(usecase.DefaultRuleSet())

	tests := []struct {
		lang string
		want bool
	}{
		{"en", true},
		{"EN", true},
		{"en-US", true},
		{"english", true},
		{"anglais", true},
		{"fr", false},
		{"fr-FR", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("cv_language "+tt.lang, func(t *testing.T) {
			r := domain.CandidateRecord{CVLanguage: tt.lang}
			assert.Equal(t, tt.want, c.IsEnglishCV(r))
		})
	}
}

func TestParseBand(t *testing.T) {
	tests := []struct {
		label string
		want  domain.Band
	}{
		{"A", domain.BandA},
		{"a", domain.BandA},
		{" b ", domain.BandB},
		{"C", domain.BandC},
		{"à revoir", domain.BandReview},
		{"A revoir", domain.BandReview},
		{"to review", domain.BandReview},
		{"", domain.BandNone},
		{"excellent", domain.BandNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ParseBand(tt.label), "label %q", tt.label)
	}
}
