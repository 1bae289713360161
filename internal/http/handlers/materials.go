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

func materialRepo() repositories.MaterialRepository {
	return repositories.MaterialRepository{DB: intconfig.DB}
}

type materialInput struct {
	Code         string `json:"code" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Unit         string `json:"unit" binding:"required"`
	MinimumStock int64  `json:"minimumStock" binding:"gte=0"`
	Status       string `json:"status"`
}

func (in materialInput) toModel() models.Material {
	m := models.Material{
		Code:         util.TrimOrEmpty(in.Code),
		Name:         util.NormalizeSpace(in.Name),
		Category:     util.TrimOrEmpty(in.Category),
		Unit:         util.TrimOrEmpty(in.Unit),
		MinimumStock: in.MinimumStock,
		Status:       util.TrimOrEmpty(in.Status),
	}
	if m.Status == "" {
		m.Status = "aktif"
	}
	return m
}

// GET /api/materials
func GetMaterials(c *gin.Context) {
	params := BindListParams(c)
	materials, total, err := materialRepo().List(params, c.Query("category"), c.Query("status"))
	if err != nil {
		util.LogEvent(middleware.GetRequestID(c), "material", "list", err.Error())
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data material", err)
		return
	}
	c.JSON(http.StatusOK, domain.NewPaginated(materials, total, params))
}

// GET /api/materials/:id
func GetMaterialByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	m, err := materialRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// POST /api/materials
func CreateMaterial(c *gin.Context) {
	var in materialInput
	if !BindJSONOrError(c, &in) {
		return
	}

	m, err := materialRepo().Create(in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	util.LogEvent(middleware.GetRequestID(c), "material", "create", "code="+m.Code)
	c.JSON(http.StatusCreated, gin.H{"message": "material berhasil dibuat", "data": m})
}

// PUT /api/materials/:id
func UpdateMaterial(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var in materialInput
	if !BindJSONOrError(c, &in) {
		return
	}

	m, err := materialRepo().Update(id, in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "material berhasil diupdate", "data": m})
}

// DELETE /api/materials/:id
func DeleteMaterial(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := materialRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "material berhasil dihapus"})
}

var materialCSVColumns = []export.Column[models.Material]{
	{Header: "Kode", Extract: func(m models.Material) string { return m.Code }},
	{Header: "Nama", Extract: func(m models.Material) string { return m.Name }},
	{Header: "Kategori", Extract: func(m models.Material) string { return m.Category }},
	{Header: "Satuan", Extract: func(m models.Material) string { return m.Unit }},
	{Header: "Stok Minimum", Extract: func(m models.Material) string { return strconv.FormatInt(m.MinimumStock, 10) }},
	{Header: "Status", Extract: func(m models.Material) string { return m.Status }},
	{Header: "Dibuat", Extract: func(m models.Material) string { return m.CreatedAt }},
}

// GET /api/materials/export?ids=1,2,3
func ExportMaterials(c *gin.Context) {
	ids, ok := ParseIDsQuery(c)
	if !ok {
		return
	}

	repo := materialRepo()
	rows := []models.Material{}
	for _, id := range ids {
		m, err := repo.GetByID(id)
		if err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			RespondError(c, http.StatusInternalServerError, "gagal mengambil data material", err)
			return
		}
		rows = append(rows, m)
	}

	writeCSVDownload(c, "material", materialCSVColumns, rows)
}
