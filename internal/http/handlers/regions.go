package handlers

import (
	"net/http"

	intconfig "github.com/oeangg/simago-backend/internal/config"
	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
	"github.com/oeangg/simago-backend/internal/repositories"
	"github.com/oeangg/simago-backend/internal/util"

	"github.com/gin-gonic/gin"
)

func regionRepo() repositories.RegionRepository {
	return repositories.RegionRepository{DB: intconfig.DB}
}

type provinceInput struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type regencyInput struct {
	Code         string `json:"code" binding:"required"`
	ProvinceCode string `json:"provinceCode" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

type districtInput struct {
	Code        string `json:"code" binding:"required"`
	RegencyCode string `json:"regencyCode" binding:"required"`
	Name        string `json:"name" binding:"required"`
}

// GET /api/regions/provinces
func GetProvinces(c *gin.Context) {
	params := BindListParams(c)
	provinces, total, err := regionRepo().ListProvinces(params)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data provinsi", err)
		return
	}
	c.JSON(http.StatusOK, domain.NewPaginated(provinces, total, params))
}

// POST /api/regions/provinces
func CreateProvince(c *gin.Context) {
	var in provinceInput
	if !BindJSONOrError(c, &in) {
		return
	}
	pv, err := regionRepo().CreateProvince(models.Province{
		Code: util.TrimOrEmpty(in.Code),
		Name: util.NormalizeSpace(in.Name),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "provinsi berhasil dibuat", "data": pv})
}

// PUT /api/regions/provinces/:id
func UpdateProvince(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var in provinceInput
	if !BindJSONOrError(c, &in) {
		return
	}
	pv, err := regionRepo().UpdateProvince(id, models.Province{
		Code: util.TrimOrEmpty(in.Code),
		Name: util.NormalizeSpace(in.Name),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "provinsi berhasil diupdate", "data": pv})
}

// DELETE /api/regions/provinces/:id
func DeleteProvince(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := regionRepo().DeleteProvince(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "provinsi berhasil dihapus"})
}

// GET /api/regions/regencies?provinceCode=xx
func GetRegencies(c *gin.Context) {
	params := BindListParams(c)
	regencies, total, err := regionRepo().ListRegencies(params, c.Query("provinceCode"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data kabupaten/kota", err)
		return
	}
	c.JSON(http.StatusOK, domain.NewPaginated(regencies, total, params))
}

// POST /api/regions/regencies
func CreateRegency(c *gin.Context) {
	var in regencyInput
	if !BindJSONOrError(c, &in) {
		return
	}
	rg, err := regionRepo().CreateRegency(models.Regency{
		Code:         util.TrimOrEmpty(in.Code),
		ProvinceCode: util.TrimOrEmpty(in.ProvinceCode),
		Name:         util.NormalizeSpace(in.Name),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "kabupaten/kota berhasil dibuat", "data": rg})
}

// PUT /api/regions/regencies/:id
func UpdateRegency(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var in regencyInput
	if !BindJSONOrError(c, &in) {
		return
	}
	rg, err := regionRepo().UpdateRegency(id, models.Regency{
		Code:         util.TrimOrEmpty(in.Code),
		ProvinceCode: util.TrimOrEmpty(in.ProvinceCode),
		Name:         util.NormalizeSpace(in.Name),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kabupaten/kota berhasil diupdate", "data": rg})
}

// DELETE /api/regions/regencies/:id
func DeleteRegency(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := regionRepo().DeleteRegency(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kabupaten/kota berhasil dihapus"})
}

// GET /api/regions/districts?regencyCode=xx
func GetDistricts(c *gin.Context) {
	params := BindListParams(c)
	districts, total, err := regionRepo().ListDistricts(params, c.Query("regencyCode"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data kecamatan", err)
		return
	}
	c.JSON(http.StatusOK, domain.NewPaginated(districts, total, params))
}

// POST /api/regions/districts
func CreateDistrict(c *gin.Context) {
	var in districtInput
	if !BindJSONOrError(c, &in) {
		return
	}
	d, err := regionRepo().CreateDistrict(models.District{
		Code:        util.TrimOrEmpty(in.Code),
		RegencyCode: util.TrimOrEmpty(in.RegencyCode),
		Name:        util.NormalizeSpace(in.Name),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "kecamatan berhasil dibuat", "data": d})
}

// PUT /api/regions/districts/:id
func UpdateDistrict(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var in districtInput
	if !BindJSONOrError(c, &in) {
		return
	}
	d, err := regionRepo().UpdateDistrict(id, models.District{
		Code:        util.TrimOrEmpty(in.Code),
		RegencyCode: util.TrimOrEmpty(in.RegencyCode),
		Name:        util.NormalizeSpace(in.Name),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kecamatan berhasil diupdate", "data": d})
}

// DELETE /api/regions/districts/:id
func DeleteDistrict(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := regionRepo().DeleteDistrict(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kecamatan berhasil dihapus"})
}
