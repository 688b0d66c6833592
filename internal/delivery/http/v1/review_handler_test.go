package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-cv-review-backend/internal/delivery/http/middleware"
	v1 "go-cv-review-backend/internal/delivery/http/v1"
	"go-cv-review-backend/internal/domain"
	"go-cv-review-backend/pkg/apperror"
	"go-cv-review-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	os.Exit(m.Run())
}

type mockReviewUC struct {
	mock.Mock
}

func (m *mockReviewUC) Refresh(ctx context.Context, lot string) error {
	return m.Called(ctx, lot).Error(0)
}

func (m *mockReviewUC) Query(ctx context.Context, lot string, view domain.View, opts domain.FilterOptions) (*domain.ReviewResult, error) {
	args := m.Called(ctx, lot, view, opts)
	if result, ok := args.Get(0).(*domain.ReviewResult); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCVUC struct {
	mock.Mock
}

func (m *mockCVUC) OpenLink(ctx context.Context, id int64) (*domain.CVLink, error) {
	args := m.Called(ctx, id)
	if link, ok := args.Get(0).(*domain.CVLink); ok {
		return link, args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestRouter(reviewUC domain.ReviewUsecase, cvUC domain.CVLinkUsecase) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	group := r.Group("/v1")
	v1.NewReviewHandler(group, reviewUC)
	v1.NewCVHandler(group, cvUC)
	return r
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListRecords(t *testing.T) {
	t.Run("Defaults to the all view sorted by score", func(t *testing.T) {
		uc := new(mockReviewUC)
		uc.On("Query", mock.Anything, "LOT1", domain.ViewAll, domain.FilterOptions{Sort: domain.SortScoreDesc}).
			Return(&domain.ReviewResult{Lot: "LOT1", View: domain.ViewAll, Stats: domain.BandStats{Total: 2}}, nil).Once()

		w := doRequest(newTestRouter(uc, new(mockCVUC)), http.MethodGet, "/v1/lots/LOT1/records")

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success bool                `json:"success"`
			Data    domain.ReviewResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "LOT1", body.Data.Lot)
		assert.Equal(t, 2, body.Data.Stats.Total)

		uc.AssertExpectations(t)
	})

	t.Run("Query parameters map onto filter options", func(t *testing.T) {
		uc := new(mockReviewUC)
		uc.On("Query", mock.Anything, "LOT1", domain.ViewTarget, domain.FilterOptions{
			Search:       "alice",
			Band:         domain.BandA,
			HideUnusable: true,
			Sort:         domain.SortByName,
		}).Return(&domain.ReviewResult{Lot: "LOT1", View: domain.ViewTarget}, nil).Once()

		w := doRequest(newTestRouter(uc, new(mockCVUC)), http.MethodGet,
			"/v1/lots/LOT1/records?view=target&search=alice&band=A&hide_unusable=true&sort=name")

		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("Unknown view is rejected before the usecase runs", func(t *testing.T) {
		uc := new(mockReviewUC)
		w := doRequest(newTestRouter(uc, new(mockCVUC)), http.MethodGet, "/v1/lots/LOT1/records?view=shortlist")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "Query")
	})

	t.Run("Unknown sort is rejected", func(t *testing.T) {
		w := doRequest(newTestRouter(new(mockReviewUC), new(mockCVUC)), http.MethodGet, "/v1/lots/LOT1/records?sort=random")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Store failure maps to 502", func(t *testing.T) {
		uc := new(mockReviewUC)
		uc.On("Query", mock.Anything, "LOT1", domain.ViewAll, mock.Anything).
			Return(nil, apperror.Unavailable("failed to fetch lot LOT1", nil)).Once()

		w := doRequest(newTestRouter(uc, new(mockCVUC)), http.MethodGet, "/v1/lots/LOT1/records")

		assert.Equal(t, http.StatusBadGateway, w.Code)

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "failed to fetch lot LOT1", body.Message)
	})
}

func TestRefreshEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := new(mockReviewUC)
		uc.On("Refresh", mock.Anything, "LOT1").Return(nil).Once()

		w := doRequest(newTestRouter(uc, new(mockCVUC)), http.MethodPost, "/v1/lots/LOT1/refresh")

		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("Fetch failure maps to 502", func(t *testing.T) {
		uc := new(mockReviewUC)
		uc.On("Refresh", mock.Anything, "LOT1").
			Return(apperror.Unavailable("failed to fetch lot LOT1", nil)).Once()

		w := doRequest(newTestRouter(uc, new(mockCVUC)), http.MethodPost, "/v1/lots/LOT1/refresh")

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestExportEndpoint(t *testing.T) {
	uc := new(mockReviewUC)
	uc.On("Query", mock.Anything, "LOT1", domain.ViewTarget, mock.Anything).
		Return(&domain.ReviewResult{Lot: "LOT1", View: domain.ViewTarget}, nil).Once()

	w := doRequest(newTestRouter(uc, new(mockCVUC)), http.MethodGet, "/v1/lots/LOT1/export?view=target")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="LOT1_target.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestGetCVLinkEndpoint(t *testing.T) {
	t.Run("Resolved link", func(t *testing.T) {
		uc := new(mockCVUC)
		uc.On("OpenLink", mock.Anything, int64(7)).
			Return(&domain.CVLink{URL: "https://store.example.com/cvs/x.pdf?sig=abc", ExpiresIn: 900}, nil).Once()

		w := doRequest(newTestRouter(new(mockReviewUC), uc), http.MethodGet, "/v1/records/7/cv-link")

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Data domain.CVLink `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 900, body.Data.ExpiresIn)
		assert.Contains(t, body.Data.URL, "sig=")
	})

	t.Run("Non-numeric id", func(t *testing.T) {
		w := doRequest(newTestRouter(new(mockReviewUC), new(mockCVUC)), http.MethodGet, "/v1/records/abc/cv-link")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown record", func(t *testing.T) {
		uc := new(mockCVUC)
		uc.On("OpenLink", mock.Anything, int64(404)).
			Return(nil, apperror.NotFound("record not found")).Once()

		w := doRequest(newTestRouter(new(mockReviewUC), uc), http.MethodGet, "/v1/records/404/cv-link")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
