package handlers

import (
	"net/http"

	intconfig "github.com/oeangg/simago-backend/internal/config"
	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
	"github.com/oeangg/simago-backend/internal/export"
	"github.com/oeangg/simago-backend/internal/http/middleware"
	"github.com/oeangg/simago-backend/internal/repositories"
	"github.com/oeangg/simago-backend/internal/util"

	"github.com/gin-gonic/gin"
)

func driverRepo() repositories.DriverRepository {
	return repositories.DriverRepository{DB: intconfig.DB}
}

type driverInput struct {
	Code          string `json:"code" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone"`
	LicenseType   string `json:"licenseType" binding:"required,oneof='SIM A' 'SIM B1' 'SIM B2'"`
	LicenseNumber string `json:"licenseNumber" binding:"required"`
	Status        string `json:"status"`
}

func (in driverInput) toModel() models.Driver {
	d := models.Driver{
		Code:          util.TrimOrEmpty(in.Code),
		Name:          util.NormalizeSpace(in.Name),
		Phone:         util.TrimOrEmpty(in.Phone),
		LicenseType:   in.LicenseType,
		LicenseNumber: util.TrimOrEmpty(in.LicenseNumber),
		Status:        util.TrimOrEmpty(in.Status),
	}
	if d.Status == "" {
		d.Status = "aktif"
	}
	return d
}

// GET /api/drivers
func GetDrivers(c *gin.Context) {
	params := BindListParams(c)
	drivers, total, err := driverRepo().List(params, c.Query("status"))
	if err != nil {
		util.LogEvent(middleware.GetRequestID(c), "driver", "list", err.Error())
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data supir", err)
		return
	}
	c.JSON(http.StatusOK, domain.NewPaginated(drivers, total, params))
}

// GET /api/drivers/:id
func GetDriverByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	d, err := driverRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	var in driverInput
	if !BindJSONOrError(c, &in) {
		return
	}

	d, err := driverRepo().Create(in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	util.LogEvent(middleware.GetRequestID(c), "driver", "create", "code="+d.Code)
	c.JSON(http.StatusCreated, gin.H{"message": "supir berhasil dibuat", "data": d})
}

// PUT /api/drivers/:id
func UpdateDriver(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var in driverInput
	if !BindJSONOrError(c, &in) {
		return
	}

	d, err := driverRepo().Update(id, in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "supir berhasil diupdate", "data": d})
}

// DELETE /api/drivers/:id
func DeleteDriver(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := driverRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "supir berhasil dihapus"})
}

var driverCSVColumns = []export.Column[models.Driver]{
	{Header: "Kode", Extract: func(d models.Driver) string { return d.Code }},
	{Header: "Nama", Extract: func(d models.Driver) string { return d.Name }},
	{Header: "Telepon", Extract: func(d models.Driver) string { return dashIfEmpty(d.Phone) }},
	{Header: "Jenis SIM", Extract: func(d models.Driver) string { return d.LicenseType }},
	{Header: "No SIM", Extract: func(d models.Driver) string { return d.LicenseNumber }},
	{Header: "Status", Extract: func(d models.Driver) string { return d.Status }},
}

// GET /api/drivers/export?ids=1,2,3
func ExportDrivers(c *gin.Context) {
	ids, ok := ParseIDsQuery(c)
	if !ok {
		return
	}

	repo := driverRepo()
	rows := []models.Driver{}
	for _, id := range ids {
		d, err := repo.GetByID(id)
		if err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			RespondError(c, http.StatusInternalServerError, "gagal mengambil data supir", err)
			return
		}
		rows = append(rows, d)
	}

	writeCSVDownload(c, "supir", driverCSVColumns, rows)
}
