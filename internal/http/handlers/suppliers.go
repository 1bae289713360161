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

func supplierRepo() repositories.SupplierRepository {
	return repositories.SupplierRepository{DB: intconfig.DB}
}

type supplierAddressInput struct {
	Line         string `json:"line" binding:"required"`
	City         string `json:"city"`
	ProvinceCode string `json:"provinceCode"`
	PostalCode   string `json:"postalCode"`
	IsPrimary    bool   `json:"isPrimary"`
}

type supplierContactInput struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IsPrimary bool   `json:"isPrimary"`
}

type supplierInput struct {
	Code      string                 `json:"code" binding:"required"`
	Name      string                 `json:"name" binding:"required"`
	TaxNumber string                 `json:"taxNumber"`
	Status    string                 `json:"status"`
	Addresses []supplierAddressInput `json:"addresses"`
	Contacts  []supplierContactInput `json:"contacts"`
}

func (in supplierInput) toModel() models.Supplier {
	s := models.Supplier{
		Code:      util.TrimOrEmpty(in.Code),
		Name:      util.NormalizeSpace(in.Name),
		TaxNumber: util.TrimOrEmpty(in.TaxNumber),
		Status:    util.TrimOrEmpty(in.Status),
	}
	if s.Status == "" {
		s.Status = "aktif"
	}
	for _, a := range in.Addresses {
		s.Addresses = append(s.Addresses, models.SupplierAddress{
			Line:         util.TrimOrEmpty(a.Line),
			City:         util.TrimOrEmpty(a.City),
			ProvinceCode: util.TrimOrEmpty(a.ProvinceCode),
			PostalCode:   util.TrimOrEmpty(a.PostalCode),
			IsPrimary:    a.IsPrimary,
		})
	}
	for _, ct := range in.Contacts {
		s.Contacts = append(s.Contacts, models.SupplierContact{
			Name:      util.NormalizeSpace(ct.Name),
			Phone:     util.TrimOrEmpty(ct.Phone),
			Email:     util.TrimOrEmpty(ct.Email),
			IsPrimary: ct.IsPrimary,
		})
	}
	return s
}

// GET /api/suppliers
func GetSuppliers(c *gin.Context) {
	params := BindListParams(c)
	suppliers, total, err := supplierRepo().List(params, c.Query("status"))
	if err != nil {
		util.LogEvent(middleware.GetRequestID(c), "supplier", "list", err.Error())
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data supplier", err)
		return
	}
	c.JSON(http.StatusOK, domain.NewPaginated(suppliers, total, params))
}

// GET /api/suppliers/:id
func GetSupplierByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	s, err := supplierRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// POST /api/suppliers
func CreateSupplier(c *gin.Context) {
	var in supplierInput
	if !BindJSONOrError(c, &in) {
		return
	}

	s, err := supplierRepo().Create(in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	util.LogEvent(middleware.GetRequestID(c), "supplier", "create", "code="+s.Code)
	c.JSON(http.StatusCreated, gin.H{"message": "supplier berhasil dibuat", "data": s})
}

// PUT /api/suppliers/:id
func UpdateSupplier(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var in supplierInput
	if !BindJSONOrError(c, &in) {
		return
	}

	s, err := supplierRepo().Update(id, in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "supplier berhasil diupdate", "data": s})
}

// DELETE /api/suppliers/:id
func DeleteSupplier(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := supplierRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "supplier berhasil dihapus"})
}

var supplierCSVColumns = []export.Column[models.SupplierRow]{
	{Header: "Kode", Extract: func(r models.SupplierRow) string { return r.Code }},
	{Header: "Nama", Extract: func(r models.SupplierRow) string { return r.Name }},
	{Header: "NPWP", Extract: func(r models.SupplierRow) string { return r.TaxNumber }},
	{Header: "Status", Extract: func(r models.SupplierRow) string { return r.Status }},
	{Header: "Alamat", Extract: func(r models.SupplierRow) string { return dashIfEmpty(r.AddressLine) }},
	{Header: "Kota", Extract: func(r models.SupplierRow) string { return dashIfEmpty(r.City) }},
	{Header: "Kontak", Extract: func(r models.SupplierRow) string { return dashIfEmpty(r.ContactName) }},
	{Header: "Telepon", Extract: func(r models.SupplierRow) string { return dashIfEmpty(r.ContactPhone) }},
	{Header: "Email", Extract: func(r models.SupplierRow) string { return dashIfEmpty(r.ContactEmail) }},
	{Header: "Dibuat", Extract: func(r models.SupplierRow) string { return r.CreatedAt }},
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// GET /api/suppliers/export?ids=1,2,3
// Exports only the selected rows; unknown ids are skipped.
func ExportSuppliers(c *gin.Context) {
	ids, ok := ParseIDsQuery(c)
	if !ok {
		return
	}

	repo := supplierRepo()
	rows := []models.SupplierRow{}
	for _, id := range ids {
		s, err := repo.GetByID(id)
		if err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			RespondError(c, http.StatusInternalServerError, "gagal mengambil data supplier", err)
			return
		}
		rows = append(rows, s.ToRow())
	}

	writeCSVDownload(c, "supplier", supplierCSVColumns, rows)
}
