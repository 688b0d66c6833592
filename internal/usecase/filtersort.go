package usecase

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"go-cv-review-backend/internal/domain"
)

// ApplyFilters runs the search / band / hide-unusable filters over a subset.
// The predicates commute, so their order is just the cheapest-first one.
func ApplyFilters(rows []domain.ReviewRow, opts domain.FilterOptions) []domain.ReviewRow {
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	out := make([]domain.ReviewRow, 0, len(rows))
	for _, row := range rows {
		if opts.HideUnusable && !row.Usable {
			continue
		}
		if opts.Band != domain.BandNone && row.Band != opts.Band {
			continue
		}
		if search != "" && !matchesSearch(row, search) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func matchesSearch(row domain.ReviewRow, search string) bool {
	return strings.Contains(strings.ToLower(row.FullName), search) ||
		strings.Contains(strings.ToLower(row.FileName), search) ||
		strings.Contains(strings.ToLower(row.LastCompany), search)
}

// SortRows orders rows in place as a total order: the chosen key first, then
// record id, so equal keys keep a deterministic order. Missing scores and
// missing experience sort as lowest.
func SortRows(rows []domain.ReviewRow, order domain.SortOrder) {
	switch order {
	case domain.SortByName:
		// Collator construction is cheap relative to a sort pass and the
		// collator itself is not safe for concurrent use.
		col := collate.New(language.French, collate.Loose)
		sort.SliceStable(rows, func(i, j int) bool {
			if c := col.CompareString(rows[i].FullName, rows[j].FullName); c != 0 {
				return c < 0
			}
			return rows[i].ID < rows[j].ID
		})
	case domain.SortScoreAsc:
		sort.SliceStable(rows, func(i, j int) bool {
			if a, b := scoreKey(rows[i]), scoreKey(rows[j]); a != b {
				return a < b
			}
			return rows[i].ID < rows[j].ID
		})
	case domain.SortExpDesc:
		sort.SliceStable(rows, func(i, j int) bool {
			if a, b := expKey(rows[i]), expKey(rows[j]); a != b {
				return a > b
			}
			return rows[i].ID < rows[j].ID
		})
	case domain.SortExpAsc:
		sort.SliceStable(rows, func(i, j int) bool {
			if a, b := expKey(rows[i]), expKey(rows[j]); a != b {
				return a < b
			}
			return rows[i].ID < rows[j].ID
		})
	default: // SortScoreDesc
		sort.SliceStable(rows, func(i, j int) bool {
			if a, b := scoreKey(rows[i]), scoreKey(rows[j]); a != b {
				return a > b
			}
			return rows[i].ID < rows[j].ID
		})
	}
}

func scoreKey(row domain.ReviewRow) int {
	if row.Score == nil {
		return -1
	}
	return *row.Score
}

func expKey(row domain.ReviewRow) float64 {
	if row.ExperienceYears == nil {
		return -1
	}
	return *row.ExperienceYears
}
