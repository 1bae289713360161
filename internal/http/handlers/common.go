package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/export"
	"github.com/oeangg/simago-backend/internal/http/middleware"
	"github.com/oeangg/simago-backend/internal/metrics"
	"github.com/oeangg/simago-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "body kosong", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid", err)
		return false
	}
	return true
}

// BindListParams reads page/limit/search from the query string. Invalid
// numbers fall back to defaults; Normalize clamps the rest.
func BindListParams(c *gin.Context) domain.ListParams {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return domain.ListParams{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	}.Normalize()
}

// ParseIDParam reads :id; responds with 400 and returns false when invalid.
func ParseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return 0, false
	}
	return id, true
}

// ParseIDsQuery reads the export selection from ?ids=1,2,3. An empty
// selection is a validation error: export is only offered over selected rows.
func ParseIDsQuery(c *gin.Context) ([]int64, bool) {
	raw := strings.TrimSpace(c.Query("ids"))
	if raw == "" {
		RespondError(c, http.StatusBadRequest, "pilih minimal satu baris untuk diekspor", nil)
		return nil, false
	}

	ids := []int64{}
	for _, part := range util.SplitIDList(raw) {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			RespondError(c, http.StatusBadRequest, "daftar id tidak valid", nil)
			return nil, false
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		RespondError(c, http.StatusBadRequest, "pilih minimal satu baris untuk diekspor", nil)
		return nil, false
	}
	return ids, true
}

// writeCSVDownload streams rows as a date-stamped CSV attachment.
func writeCSVDownload[T any](c *gin.Context, entity string, cols []export.Column[T], rows []T) {
	filename := export.Filename(entity, time.Now())
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := export.WriteCSV(c.Writer, cols, rows); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menulis CSV", err)
		return
	}
	metrics.CSVExportsTotal.WithLabelValues(entity).Inc()
}
