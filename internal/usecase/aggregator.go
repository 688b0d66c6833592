package usecase

import "go-cv-review-backend/internal/domain"

// ComputeStats counts a subset in one pass. Every usable row lands in
// exactly one of A/B/C/Review, so the band counts always sum to Usable.
func ComputeStats(rows []domain.ReviewRow) domain.BandStats {
	var stats domain.BandStats
	stats.Total = len(rows)

	for _, row := range rows {
		switch row.Band {
		case domain.BandA:
			stats.A++
		case domain.BandB:
			stats.B++
		case domain.BandC:
			stats.C++
		case domain.BandReview:
			stats.Review++
		default:
			stats.Unusable++
		}
	}

	stats.Usable = stats.Total - stats.Unusable
	return stats
}
