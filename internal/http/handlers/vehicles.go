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

func vehicleRepo() repositories.VehicleRepository {
	return repositories.VehicleRepository{DB: intconfig.DB}
}

type vehicleInput struct {
	PlateNumber string `json:"plateNumber" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Brand       string `json:"brand"`
	CapacityKg  int64  `json:"capacityKg" binding:"gte=0"`
	Year        int    `json:"year" binding:"omitempty,gte=1980"`
	Status      string `json:"status"`
}

func (in vehicleInput) toModel() models.Vehicle {
	v := models.Vehicle{
		PlateNumber: util.NormalizeSpace(in.PlateNumber),
		Type:        util.TrimOrEmpty(in.Type),
		Brand:       util.TrimOrEmpty(in.Brand),
		CapacityKg:  in.CapacityKg,
		Year:        in.Year,
		Status:      util.TrimOrEmpty(in.Status),
	}
	if v.Status == "" {
		v.Status = "aktif"
	}
	return v
}

// GET /api/vehicles
func GetVehicles(c *gin.Context) {
	params := BindListParams(c)
	vehicles, total, err := vehicleRepo().List(params, c.Query("type"), c.Query("status"))
	if err != nil {
		util.LogEvent(middleware.GetRequestID(c), "vehicle", "list", err.Error())
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data kendaraan", err)
		return
	}
	c.JSON(http.StatusOK, domain.NewPaginated(vehicles, total, params))
}

// GET /api/vehicles/:id
func GetVehicleByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	v, err := vehicleRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var in vehicleInput
	if !BindJSONOrError(c, &in) {
		return
	}

	v, err := vehicleRepo().Create(in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	util.LogEvent(middleware.GetRequestID(c), "vehicle", "create", "plate="+v.PlateNumber)
	c.JSON(http.StatusCreated, gin.H{"message": "kendaraan berhasil dibuat", "data": v})
}

// PUT /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var in vehicleInput
	if !BindJSONOrError(c, &in) {
		return
	}

	v, err := vehicleRepo().Update(id, in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "kendaraan berhasil diupdate", "data": v})
}

// DELETE /api/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := vehicleRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kendaraan berhasil dihapus"})
}

var vehicleCSVColumns = []export.Column[models.Vehicle]{
	{Header: "No Polisi", Extract: func(v models.Vehicle) string { return v.PlateNumber }},
	{Header: "Jenis", Extract: func(v models.Vehicle) string { return v.Type }},
	{Header: "Merek", Extract: func(v models.Vehicle) string { return dashIfEmpty(v.Brand) }},
	{Header: "Kapasitas (kg)", Extract: func(v models.Vehicle) string { return strconv.FormatInt(v.CapacityKg, 10) }},
	{Header: "Tahun", Extract: func(v models.Vehicle) string {
		if v.Year == 0 {
			return "-"
		}
		return strconv.Itoa(v.Year)
	}},
	{Header: "Status", Extract: func(v models.Vehicle) string { return v.Status }},
}

// GET /api/vehicles/export?ids=1,2,3
func ExportVehicles(c *gin.Context) {
	ids, ok := ParseIDsQuery(c)
	if !ok {
		return
	}

	repo := vehicleRepo()
	rows := []models.Vehicle{}
	for _, id := range ids {
		v, err := repo.GetByID(id)
		if err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			RespondError(c, http.StatusInternalServerError, "gagal mengambil data kendaraan", err)
			return
		}
		rows = append(rows, v)
	}

	writeCSVDownload(c, "kendaraan", vehicleCSVColumns, rows)
}
