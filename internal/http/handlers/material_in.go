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

func materialInRepo() repositories.MaterialInRepository {
	return repositories.MaterialInRepository{DB: intconfig.DB}
}

type materialInItemInput struct {
	MaterialID int64 `json:"materialId" binding:"required"`
	Quantity   int64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice  int64 `json:"unitPrice" binding:"gte=0"`
}

type materialInInput struct {
	SupplierID    int64                 `json:"supplierId" binding:"required"`
	Date          string                `json:"date" binding:"required"`
	Items         []materialInItemInput `json:"items" binding:"required,min=1,dive"`
	Tax           int64                 `json:"tax" binding:"gte=0"`
	OtherCosts    int64                 `json:"otherCosts" binding:"gte=0"`
	PaymentStatus string                `json:"paymentStatus" binding:"required,oneof=lunas belum_lunas"`
}

func (in materialInInput) toModel() models.MaterialIn {
	m := models.MaterialIn{
		SupplierID:    in.SupplierID,
		Date:          util.TrimOrEmpty(in.Date),
		Tax:           in.Tax,
		OtherCosts:    in.OtherCosts,
		PaymentStatus: in.PaymentStatus,
	}
	for _, it := range in.Items {
		m.Items = append(m.Items, models.MaterialInItem{
			MaterialID: it.MaterialID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
		})
	}
	return m
}

// GET /api/material-in
func GetMaterialIns(c *gin.Context) {
	params := BindListParams(c)
	supplierID, _ := strconv.ParseInt(c.Query("supplierId"), 10, 64)

	list, total, err := materialInRepo().List(params, supplierID, c.Query("paymentStatus"))
	if err != nil {
		util.LogEvent(middleware.GetRequestID(c), "material_in", "list", err.Error())
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data pembelian material", err)
		return
	}
	c.JSON(http.StatusOK, domain.NewPaginated(list, total, params))
}

// GET /api/material-in/:id
func GetMaterialInByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	m, err := materialInRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// POST /api/material-in
func CreateMaterialIn(c *gin.Context) {
	var in materialInInput
	if !BindJSONOrError(c, &in) {
		return
	}

	m, err := materialInRepo().Create(in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	util.LogEvent(middleware.GetRequestID(c), "material_in", "create", "no="+m.TransactionNo)
	c.JSON(http.StatusCreated, gin.H{"message": "pembelian material berhasil dibuat", "data": m})
}

// PUT /api/material-in/:id
func UpdateMaterialIn(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var in materialInInput
	if !BindJSONOrError(c, &in) {
		return
	}

	m, err := materialInRepo().Update(id, in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "pembelian material berhasil diupdate", "data": m})
}

// DELETE /api/material-in/:id
func DeleteMaterialIn(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := materialInRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pembelian material berhasil dihapus"})
}

var materialInCSVColumns = []export.Column[models.MaterialIn]{
	{Header: "No Transaksi", Extract: func(m models.MaterialIn) string { return m.TransactionNo }},
	{Header: "Tanggal", Extract: func(m models.MaterialIn) string { return m.Date }},
	{Header: "Supplier", Extract: func(m models.MaterialIn) string { return m.SupplierName }},
	{Header: "Jumlah Item", Extract: func(m models.MaterialIn) string { return strconv.Itoa(len(m.Items)) }},
	{Header: "Pajak", Extract: func(m models.MaterialIn) string { return util.FormatRupiah(m.Tax) }},
	{Header: "Biaya Lain", Extract: func(m models.MaterialIn) string { return util.FormatRupiah(m.OtherCosts) }},
	{Header: "Grand Total", Extract: func(m models.MaterialIn) string { return util.FormatRupiah(m.GrandTotal) }},
	{Header: "Status Bayar", Extract: func(m models.MaterialIn) string { return m.PaymentStatus }},
}

// GET /api/material-in/export?ids=1,2,3
func ExportMaterialIns(c *gin.Context) {
	ids, ok := ParseIDsQuery(c)
	if !ok {
		return
	}

	repo := materialInRepo()
	rows := []models.MaterialIn{}
	for _, id := range ids {
		m, err := repo.GetByID(id)
		if err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			RespondError(c, http.StatusInternalServerError, "gagal mengambil data pembelian material", err)
			return
		}
		rows = append(rows, m)
	}

	writeCSVDownload(c, "material_in", materialInCSVColumns, rows)
}
