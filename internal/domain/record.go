package domain

import (
	"context"
	"strings"
	"time"
)

// Band is the coarse review bucket a record falls into. It is always derived
// from the score (or from usability), never from the stored label.
type Band string

const (
	BandA        Band = "A"
	BandB        Band = "B"
	BandC        Band = "C"
	BandReview   Band = "REVIEW"
	BandUnusable Band = "UNUSABLE"
	BandNone     Band = "" // unset / unrecognized stored label
)

// ParseBand normalizes the free-form profile_type label written by the
// upstream parser ("a", "B", "À revoir", "to review", ...). It is used for
// display and export only; banding itself derives from the score.
func ParseBand(label string) Band {
	s := strings.ToLower(strings.TrimSpace(label))
	switch s {
	case "a":
		return BandA
	case "b":
		return BandB
	case "c":
		return BandC
	}
	if strings.Contains(s, "revoir") || strings.Contains(s, "review") {
		return BandReview
	}
	return BandNone
}

// Parse statuses written by the upstream CV pipeline. A record may predate
// the status column and carry an empty string.
const (
	ParseStatusDone       = "done"
	ParseStatusFailed     = "failed"
	ParseStatusUnusable   = "unusable"
	ParseStatusProcessing = "processing"
)

// CandidateRecord is one parsed CV as stored by the upstream pipeline. This
// service only ever reads these rows.
type CandidateRecord struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	FileName string `json:"file_name"`
	FileRef  string `json:"file_ref"` // absolute URL or storage path
	Lot      string `json:"lot"`      // batch label, e.g. "LOT1"

	DegreeLevel     string   `json:"degree_level"`
	FieldOfStudy    string   `json:"field_of_study"`
	ExperienceYears *float64 `json:"experience_years"` // nil = unknown
	LastJobTitle    string   `json:"last_job_title"`
	LastCompany     string   `json:"last_company"`
	SpeaksEnglish   *bool    `json:"speaks_english"` // nil = unknown
	EnglishLevel    string   `json:"english_level"`
	CVLanguage      string   `json:"cv_language"` // language code, e.g. "en"
	Skills          []string `json:"skills"`

	ProfileType string `json:"profile_type"` // raw stored label
	Score       *int   `json:"score"`        // 0-100, nil = unknown
	Notes       string `json:"notes"`
	ParseStatus string `json:"parse_status"`

	CreatedAt time.Time `json:"created_at"`
}

// ReviewRow is a record annotated with the derived classification tags the
// dashboard renders.
type ReviewRow struct {
	CandidateRecord
	Band          Band `json:"band"`
	Usable        bool `json:"usable"`
	TargetProfile bool `json:"target_profile"`
	EnglishCV     bool `json:"english_cv"`
}

// RecordRepository reads candidate records from the backing table/view.
type RecordRepository interface {
	// ListPage returns one ordered page of a lot. A page shorter than limit
	// means the lot is exhausted.
	ListPage(ctx context.Context, lot string, offset, limit int) ([]CandidateRecord, error)
	GetByID(ctx context.Context, id int64) (*CandidateRecord, error)
}
