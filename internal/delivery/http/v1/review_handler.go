package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-cv-review-backend/internal/delivery/http/response"
	"go-cv-review-backend/internal/domain"
	"go-cv-review-backend/internal/export"
	"go-cv-review-backend/pkg/apperror"
)

type ReviewHandler struct {
	reviewUC domain.ReviewUsecase
}

func NewReviewHandler(r *gin.RouterGroup, reviewUC domain.ReviewUsecase) {
	handler := &ReviewHandler{reviewUC: reviewUC}

	lots := r.Group("/lots")
	{
		lots.GET("/:lot/records", handler.ListRecords)
		lots.POST("/:lot/refresh", handler.Refresh)
		lots.GET("/:lot/export", handler.Export)
	}
}

// listRecordsQuery binds the reviewer's view + filter configuration.
type listRecordsQuery struct {
	View         string `form:"view,default=all" binding:"oneof=all target english"`
	Search       string `form:"search"`
	Band         string `form:"band" binding:"omitempty,oneof=A B C REVIEW UNUSABLE"`
	HideUnusable bool   `form:"hide_unusable"`
	Sort         string `form:"sort,default=score_desc" binding:"oneof=name score_desc score_asc experience_desc experience_asc"`
}

func (q listRecordsQuery) options() (domain.View, domain.FilterOptions) {
	return domain.View(q.View), domain.FilterOptions{
		Search:       q.Search,
		Band:         domain.Band(q.Band),
		HideUnusable: q.HideUnusable,
		Sort:         domain.SortOrder(q.Sort),
	}
}

// ListRecords godoc
// @Summary      List a lot's candidate records
// @Description  Returns the selected view of a lot with aggregate band counts and the filtered, sorted rows
// @Tags         review
// @Produce      json
// @Param        lot            path   string  true   "Batch label (e.g. LOT1)"
// @Param        view           query  string  false  "all | target | english"
// @Param        search         query  string  false  "Free-text search over name, file name and company"
// @Param        band           query  string  false  "A | B | C | REVIEW | UNUSABLE"
// @Param        hide_unusable  query  bool    false  "Hide unusable records"
// @Param        sort           query  string  false  "name | score_desc | score_asc | experience_desc | experience_asc"
// @Success      200  {object}  response.Response{data=domain.ReviewResult}
// @Failure      400  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /lots/{lot}/records [get]
// @Security     BasicAuth
func (h *ReviewHandler) ListRecords(c *gin.Context) {
	var query listRecordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	view, opts := query.options()
	result, err := h.reviewUC.Query(c.Request.Context(), c.Param("lot"), view, opts)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Records", result)
}

// Refresh godoc
// @Summary      Re-fetch a lot from the records store
// @Description  User-initiated refresh; when refreshes race, the most recently triggered one wins
// @Tags         review
// @Produce      json
// @Param        lot  path  string  true  "Batch label"
// @Success      200  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /lots/{lot}/refresh [post]
// @Security     BasicAuth
func (h *ReviewHandler) Refresh(c *gin.Context) {
	if err := h.reviewUC.Refresh(c.Request.Context(), c.Param("lot")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Lot refreshed", nil)
}

// Export godoc
// @Summary      Export the current view as an xlsx workbook
// @Tags         review
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        lot   path   string  true   "Batch label"
// @Param        view  query  string  false  "all | target | english"
// @Success      200  {file}  binary
// @Failure      400  {object}  response.Response
// @Router       /lots/{lot}/export [get]
// @Security     BasicAuth
func (h *ReviewHandler) Export(c *gin.Context) {
	var query listRecordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	lot := c.Param("lot")
	view, opts := query.options()
	result, err := h.reviewUC.Query(c.Request.Context(), lot, view, opts)
	if err != nil {
		c.Error(err)
		return
	}

	data, err := export.Workbook(result)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", lot, view)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
