package handlers

import (
	"net/http"
	"strconv"

	intconfig "github.com/oeangg/simago-backend/internal/config"
	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
	"github.com/oeangg/simago-backend/internal/export"
	"github.com/oeangg/simago-backend/internal/http/middleware"
	"github.com/oeangg/simago-backend/internal/repositories"
	"github.com/oeangg/simago-backend/internal/util"

	"github.com/gin-gonic/gin"
)

func surveyRepo() repositories.SurveyRepository {
	return repositories.SurveyRepository{DB: intconfig.DB}
}

type cargoItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int64   `json:"quantity" binding:"required,gt=0"`
	WidthCm  float64 `json:"widthCm" binding:"required,gt=0"`
	LengthCm float64 `json:"lengthCm" binding:"required,gt=0"`
	HeightCm float64 `json:"heightCm" binding:"required,gt=0"`
}

type surveyInput struct {
	CustomerID  int64            `json:"customerId" binding:"required"`
	SurveyDate  string           `json:"surveyDate" binding:"required"`
	Origin      string           `json:"origin" binding:"required"`
	Destination string           `json:"destination" binding:"required"`
	CargoItems  []cargoItemInput `json:"cargoItems" binding:"required,min=1,dive"`
	Status      string           `json:"status"`
}

func (in surveyInput) toModel() models.Survey {
	s := models.Survey{
		CustomerID:  in.CustomerID,
		SurveyDate:  util.TrimOrEmpty(in.SurveyDate),
		Origin:      util.NormalizeSpace(in.Origin),
		Destination: util.NormalizeSpace(in.Destination),
		Status:      util.TrimOrEmpty(in.Status),
	}
	if s.Status == "" {
		s.Status = "draft"
	}
	for _, it := range in.CargoItems {
		s.CargoItems = append(s.CargoItems, models.CargoItem{
			Name:     util.NormalizeSpace(it.Name),
			Quantity: it.Quantity,
			WidthCm:  it.WidthCm,
			LengthCm: it.LengthCm,
			HeightCm: it.HeightCm,
		})
	}
	return s
}

// GET /api/surveys
func GetSurveys(c *gin.Context) {
	params := BindListParams(c)
	customerID, _ := strconv.ParseInt(c.Query("customerId"), 10, 64)

	surveys, total, err := surveyRepo().List(params, customerID, c.Query("status"))
	if err != nil {
		util.LogEvent(middleware.GetRequestID(c), "survey", "list", err.Error())
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data survey", err)
		return
	}
	c.JSON(http.StatusOK, domain.NewPaginated(surveys, total, params))
}

// GET /api/surveys/:id
func GetSurveyByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	s, err := surveyRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// POST /api/surveys
func CreateSurvey(c *gin.Context) {
	var in surveyInput
	if !BindJSONOrError(c, &in) {
		return
	}

	s, err := surveyRepo().Create(in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	util.LogEvent(middleware.GetRequestID(c), "survey", "create", "no="+s.SurveyNo)
	c.JSON(http.StatusCreated, gin.H{"message": "survey berhasil dibuat", "data": s})
}

// PUT /api/surveys/:id
func UpdateSurvey(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var in surveyInput
	if !BindJSONOrError(c, &in) {
		return
	}

	s, err := surveyRepo().Update(id, in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "survey berhasil diupdate", "data": s})
}

// DELETE /api/surveys/:id
func DeleteSurvey(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := surveyRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "survey berhasil dihapus"})
}

var surveyCSVColumns = []export.Column[models.Survey]{
	{Header: "No Survey", Extract: func(s models.Survey) string { return s.SurveyNo }},
	{Header: "Tanggal", Extract: func(s models.Survey) string { return s.SurveyDate }},
	{Header: "Customer", Extract: func(s models.Survey) string { return s.CustomerName }},
	{Header: "Asal", Extract: func(s models.Survey) string { return s.Origin }},
	{Header: "Tujuan", Extract: func(s models.Survey) string { return s.Destination }},
	{Header: "Jumlah Barang", Extract: func(s models.Survey) string { return strconv.Itoa(len(s.CargoItems)) }},
	{Header: "Total CBM", Extract: func(s models.Survey) string { return domain.FormatCBM(s.TotalCBM) }},
	{Header: "Status", Extract: func(s models.Survey) string { return s.Status }},
}

// GET /api/surveys/export?ids=1,2,3
func ExportSurveys(c *gin.Context) {
	ids, ok := ParseIDsQuery(c)
	if !ok {
		return
	}

	repo := surveyRepo()
	rows := []models.Survey{}
	for _, id := range ids {
		s, err := repo.GetByID(id)
		if err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			RespondError(c, http.StatusInternalServerError, "gagal mengambil data survey", err)
			return
		}
		rows = append(rows, s)
	}

	writeCSVDownload(c, "survey", surveyCSVColumns, rows)
}
