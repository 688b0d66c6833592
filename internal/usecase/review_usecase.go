package usecase

import (
	"context"
	"fmt"
	"sync"

	"go-cv-review-backend/internal/domain"
	"go-cv-review-backend/pkg/apperror"
	"go-cv-review-backend/pkg/logger"
)

// lotState caches one lot's annotated records. seq is the token of the most
// recently triggered fetch; a finished fetch whose token is older than seq
// discards its result, so the newest refresh always wins the race.
type lotState struct {
	seq    uint64
	loaded bool
	rows   []domain.ReviewRow
}

type reviewUsecase struct {
	repo       domain.RecordRepository
	classifier *Classifier
	pageSize   int

	mu   sync.Mutex
	lots map[string]*lotState
}

func NewReviewUsecase(repo domain.RecordRepository, classifier *Classifier, pageSize int) domain.ReviewUsecase {
	return &reviewUsecase{
		repo:       repo,
		classifier: classifier,
		pageSize:   pageSize,
		lots:       map[string]*lotState{},
	}
}

func (u *reviewUsecase) Refresh(ctx context.Context, lot string) error {
	if lot == "" {
		return apperror.BadRequest("lot is required")
	}

	u.mu.Lock()
	st := u.state(lot)
	st.seq++
	token := st.seq
	u.mu.Unlock()

	rows, err := u.fetchAll(ctx, lot)

	u.mu.Lock()
	defer u.mu.Unlock()

	if err != nil {
		// Previously loaded rows stay visible; the caller gets the error.
		return apperror.Unavailable(fmt.Sprintf("failed to fetch lot %s", lot), err)
	}
	if token != st.seq {
		// A newer refresh started while this one ran; drop this result.
		logger.Log.Info("Discarding stale fetch result", "lot", lot, "token", token)
		return nil
	}

	st.rows = rows
	st.loaded = true
	return nil
}

func (u *reviewUsecase) Query(ctx context.Context, lot string, view domain.View, opts domain.FilterOptions) (*domain.ReviewResult, error) {
	if lot == "" {
		return nil, apperror.BadRequest("lot is required")
	}

	u.mu.Lock()
	loaded := u.state(lot).loaded
	u.mu.Unlock()

	if !loaded {
		if err := u.Refresh(ctx, lot); err != nil {
			return nil, err
		}
	}

	u.mu.Lock()
	cached := u.state(lot).rows
	u.mu.Unlock()

	subset := selectView(cached, view)
	stats := ComputeStats(subset)

	rows := ApplyFilters(subset, opts)
	SortRows(rows, opts.Sort)

	return &domain.ReviewResult{
		Lot:     lot,
		View:    view,
		Stats:   stats,
		Records: rows,
	}, nil
}

// state returns the lot's cache entry; callers must hold mu.
func (u *reviewUsecase) state(lot string) *lotState {
	st, ok := u.lots[lot]
	if !ok {
		st = &lotState{}
		u.lots[lot] = st
	}
	return st
}

// fetchAll pages through the lot until a short page. The store is never
// silently truncated: a full page always triggers one more request.
func (u *reviewUsecase) fetchAll(ctx context.Context, lot string) ([]domain.ReviewRow, error) {
	var rows []domain.ReviewRow
	for offset := 0; ; offset += u.pageSize {
		page, err := u.repo.ListPage(ctx, lot, offset, u.pageSize)
		if err != nil {
			return nil, err
		}
		for _, rec := range page {
			rows = append(rows, u.classifier.Annotate(rec))
		}
		if len(page) < u.pageSize {
			return rows, nil
		}
	}
}

// selectView picks the ALL / TARGET / ENGLISH subset. All three derive from
// the same cached fetch, so their counts stay mutually consistent.
func selectView(rows []domain.ReviewRow, view domain.View) []domain.ReviewRow {
	switch view {
	case domain.ViewTarget:
		out := make([]domain.ReviewRow, 0, len(rows))
		for _, row := range rows {
			if row.TargetProfile {
				out = append(out, row)
			}
		}
		return out
	case domain.ViewEnglish:
		out := make([]domain.ReviewRow, 0, len(rows))
		for _, row := range rows {
			if row.EnglishCV {
				out = append(out, row)
			}
		}
		return out
	default:
		out := make([]domain.ReviewRow, len(rows))
		copy(out, rows)
		return out
	}
}
