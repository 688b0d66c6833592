package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-cv-review-backend/internal/delivery/http/response"
	"go-cv-review-backend/internal/domain"
	"go-cv-review-backend/pkg/apperror"
)

type CVHandler struct {
	cvUC domain.CVLinkUsecase
}

func NewCVHandler(r *gin.RouterGroup, cvUC domain.CVLinkUsecase) {
	handler := &CVHandler{cvUC: cvUC}

	records := r.Group("/records")
	{
		records.GET("/:id/cv-link", handler.GetCVLink)
	}
}

// GetCVLink godoc
// @Summary      Resolve a record's CV to a viewable link
// @Description  Absolute URLs pass through; storage paths get a 15-minute signed URL
// @Tags         review
// @Produce      json
// @Param        id  path  int  true  "Record id"
// @Success      200  {object}  response.Response{data=domain.CVLink}
// @Failure      404  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /records/{id}/cv-link [get]
// @Security     BasicAuth
func (h *CVHandler) GetCVLink(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid record id"))
		return
	}

	link, err := h.cvUC.OpenLink(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV link", link)
}
