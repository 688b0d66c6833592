package domain

import "context"

// View names one of the three overlapping subsets of a lot.
type View string

const (
	ViewAll     View = "all"
	ViewTarget  View = "target"
	ViewEnglish View = "english"
)

// SortOrder selects the total order applied after filtering. Missing scores
// and missing experience sort as lowest; ties break on record id.
type SortOrder string

const (
	SortByName      SortOrder = "name"
	SortScoreDesc   SortOrder = "score_desc"
	SortScoreAsc    SortOrder = "score_asc"
	SortExpDesc     SortOrder = "experience_desc"
	SortExpAsc      SortOrder = "experience_asc"
	DefaultSort               = SortScoreDesc
)

// FilterOptions is the reviewer's current filter configuration. All filters
// apply before the sort; their order does not matter.
type FilterOptions struct {
	Search       string
	Band         Band // BandNone = no band filter
	HideUnusable bool
	Sort         SortOrder
}

// BandStats are the aggregate counts shown above the table. Every usable
// record lands in exactly one of A/B/C/Review, so
// A+B+C+Review == Usable == Total-Unusable.
type BandStats struct {
	Total    int `json:"total"`
	Unusable int `json:"unusable"`
	Usable   int `json:"usable"`
	A        int `json:"a"`
	B        int `json:"b"`
	C        int `json:"c"`
	Review   int `json:"review"`
}

// ReviewResult is one rendered view of a lot: aggregate counts over the
// subset plus the filtered, sorted rows.
type ReviewResult struct {
	Lot     string    `json:"lot"`
	View    View      `json:"view"`
	Stats   BandStats `json:"stats"`
	Records []ReviewRow `json:"records"`
}

// ReviewUsecase drives the dashboard: it owns the per-lot record cache and
// recomputes subsets, stats and rows on demand.
type ReviewUsecase interface {
	// Refresh re-fetches the full lot. When refreshes race, the most
	// recently triggered one wins; a failed fetch leaves cached rows intact.
	Refresh(ctx context.Context, lot string) error
	// Query returns the selected view of a lot, fetching it on first use.
	Query(ctx context.Context, lot string, view View, opts FilterOptions) (*ReviewResult, error)
}

// CVLinkUsecase resolves a record's stored file reference to a viewable URL.
type CVLinkUsecase interface {
	OpenLink(ctx context.Context, id int64) (*CVLink, error)
}

// CVLink is a resolved, possibly time-limited, link to the original CV file.
type CVLink struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in,omitempty"` // seconds; 0 = permanent URL
}
