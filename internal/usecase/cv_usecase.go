package usecase

import (
	"context"
	"errors"

	"go-cv-review-backend/internal/domain"
	"go-cv-review-backend/pkg/apperror"
	"go-cv-review-backend/pkg/filestore"
	"go-cv-review-backend/pkg/logger"
)

type cvLinkUsecase struct {
	repo     domain.RecordRepository
	resolver *filestore.Resolver
}

func NewCVLinkUsecase(repo domain.RecordRepository, resolver *filestore.Resolver) domain.CVLinkUsecase {
	return &cvLinkUsecase{repo: repo, resolver: resolver}
}

// OpenLink resolves the stored file reference of one record. Failures come
// back as explicit cannot-open errors scoped to this record; they never
// affect the rest of the table.
func (u *cvLinkUsecase) OpenLink(ctx context.Context, id int64) (*domain.CVLink, error) {
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Unavailable("failed to load record", err)
	}
	if rec == nil {
		return nil, apperror.NotFound("record not found")
	}

	url, signed, err := u.resolver.ResolveLink(ctx, rec.FileRef)
	if err != nil {
		if errors.Is(err, filestore.ErrNoFileRef) {
			return nil, apperror.NotFound("record has no CV file")
		}
		logger.Log.Warn("CV link resolution failed", "record_id", id, "error", err)
		return nil, apperror.Unavailable("cannot open CV", err)
	}

	link := &domain.CVLink{URL: url}
	if signed {
		link.ExpiresIn = int(u.resolver.TTL().Seconds())
	}
	return link, nil
}
