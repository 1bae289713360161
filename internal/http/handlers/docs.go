package handlers

import (
	"net/http"

	intconfig "github.com/oeangg/simago-backend/internal/config"
	"github.com/oeangg/simago-backend/internal/http/middleware"
	"github.com/oeangg/simago-backend/internal/metrics"
	"github.com/oeangg/simago-backend/internal/repositories"
	"github.com/oeangg/simago-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		MaterialInRepo: repositories.MaterialInRepository{DB: intconfig.DB},
		SurveyRepo:     repositories.SurveyRepository{DB: intconfig.DB},
		RequestID:      middleware.GetRequestID(c),
	}
}

func writePDFDownload(c *gin.Context, docType string, pdf []byte, filename string) {
	metrics.DocumentsGenerated.WithLabelValues(docType).Inc()
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/material-in/:id/receiving-note
func MaterialInReceivingNote(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	pdf, filename, err := docsService(c).GenerateReceivingNote(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	writePDFDownload(c, "receiving_note", pdf, filename)
}

// GET /api/surveys/:id/summary-pdf
func SurveySummaryPDF(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	pdf, filename, err := docsService(c).GenerateSurveySummary(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	writePDFDownload(c, "survey_summary", pdf, filename)
}
