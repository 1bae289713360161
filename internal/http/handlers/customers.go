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

func customerRepo() repositories.CustomerRepository {
	return repositories.CustomerRepository{DB: intconfig.DB}
}

type customerAddressInput struct {
	Line         string `json:"line" binding:"required"`
	City         string `json:"city"`
	ProvinceCode string `json:"provinceCode"`
	PostalCode   string `json:"postalCode"`
	IsPrimary    bool   `json:"isPrimary"`
}

type customerContactInput struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IsPrimary bool   `json:"isPrimary"`
}

type customerInput struct {
	Code      string                 `json:"code" binding:"required"`
	Name      string                 `json:"name" binding:"required"`
	Type      string                 `json:"type" binding:"required,oneof=individu perusahaan"`
	Status    string                 `json:"status"`
	Addresses []customerAddressInput `json:"addresses"`
	Contacts  []customerContactInput `json:"contacts"`
}

func (in customerInput) toModel() models.Customer {
	cu := models.Customer{
		Code:   util.TrimOrEmpty(in.Code),
		Name:   util.NormalizeSpace(in.Name),
		Type:   util.TrimOrEmpty(in.Type),
		Status: util.TrimOrEmpty(in.Status),
	}
	if cu.Status == "" {
		cu.Status = "aktif"
	}
	for _, a := range in.Addresses {
		cu.Addresses = append(cu.Addresses, models.CustomerAddress{
			Line:         util.TrimOrEmpty(a.Line),
			City:         util.TrimOrEmpty(a.City),
			ProvinceCode: util.TrimOrEmpty(a.ProvinceCode),
			PostalCode:   util.TrimOrEmpty(a.PostalCode),
			IsPrimary:    a.IsPrimary,
		})
	}
	for _, ct := range in.Contacts {
		cu.Contacts = append(cu.Contacts, models.CustomerContact{
			Name:      util.NormalizeSpace(ct.Name),
			Phone:     util.TrimOrEmpty(ct.Phone),
			Email:     util.TrimOrEmpty(ct.Email),
			IsPrimary: ct.IsPrimary,
		})
	}
	return cu
}

// GET /api/customers
func GetCustomers(c *gin.Context) {
	params := BindListParams(c)
	customers, total, err := customerRepo().List(params, c.Query("type"), c.Query("status"))
	if err != nil {
		util.LogEvent(middleware.GetRequestID(c), "customer", "list", err.Error())
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data customer", err)
		return
	}
	c.JSON(http.StatusOK, domain.NewPaginated(customers, total, params))
}

// GET /api/customers/:id
func GetCustomerByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	cu, err := customerRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cu)
}

// POST /api/customers
func CreateCustomer(c *gin.Context) {
	var in customerInput
	if !BindJSONOrError(c, &in) {
		return
	}

	cu, err := customerRepo().Create(in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	util.LogEvent(middleware.GetRequestID(c), "customer", "create", "code="+cu.Code)
	c.JSON(http.StatusCreated, gin.H{"message": "customer berhasil dibuat", "data": cu})
}

// PUT /api/customers/:id
func UpdateCustomer(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var in customerInput
	if !BindJSONOrError(c, &in) {
		return
	}

	cu, err := customerRepo().Update(id, in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "customer berhasil diupdate", "data": cu})
}

// DELETE /api/customers/:id
func DeleteCustomer(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := customerRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer berhasil dihapus"})
}

var customerCSVColumns = []export.Column[models.CustomerRow]{
	{Header: "Kode", Extract: func(r models.CustomerRow) string { return r.Code }},
	{Header: "Nama", Extract: func(r models.CustomerRow) string { return r.Name }},
	{Header: "Tipe", Extract: func(r models.CustomerRow) string { return r.Type }},
	{Header: "Status", Extract: func(r models.CustomerRow) string { return r.Status }},
	{Header: "Alamat", Extract: func(r models.CustomerRow) string { return dashIfEmpty(r.AddressLine) }},
	{Header: "Kota", Extract: func(r models.CustomerRow) string { return dashIfEmpty(r.City) }},
	{Header: "Kontak", Extract: func(r models.CustomerRow) string { return dashIfEmpty(r.ContactName) }},
	{Header: "Telepon", Extract: func(r models.CustomerRow) string { return dashIfEmpty(r.ContactPhone) }},
	{Header: "Dibuat", Extract: func(r models.CustomerRow) string { return r.CreatedAt }},
}

// GET /api/customers/export?ids=1,2,3
func ExportCustomers(c *gin.Context) {
	ids, ok := ParseIDsQuery(c)
	if !ok {
		return
	}

	repo := customerRepo()
	rows := []models.CustomerRow{}
	for _, id := range ids {
		cu, err := repo.GetByID(id)
		if err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			RespondError(c, http.StatusInternalServerError, "gagal mengambil data customer", err)
			return
		}
		rows = append(rows, cu.ToRow())
	}

	writeCSVDownload(c, "customer", customerCSVColumns, rows)
}
