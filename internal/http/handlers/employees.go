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

func employeeRepo() repositories.EmployeeRepository {
	return repositories.EmployeeRepository{DB: intconfig.DB}
}

type employeeInput struct {
	Code       string `json:"code" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Position   string `json:"position" binding:"required"`
	Department string `json:"department" binding:"required"`
	JoinDate   string `json:"joinDate"`
	Status     string `json:"status"`
}

func (in employeeInput) toModel() models.Employee {
	e := models.Employee{
		Code:       util.TrimOrEmpty(in.Code),
		Name:       util.NormalizeSpace(in.Name),
		Phone:      util.TrimOrEmpty(in.Phone),
		Position:   util.NormalizeSpace(in.Position),
		Department: util.NormalizeSpace(in.Department),
		JoinDate:   util.TrimOrEmpty(in.JoinDate),
		Status:     util.TrimOrEmpty(in.Status),
	}
	if e.Status == "" {
		e.Status = "aktif"
	}
	return e
}

// GET /api/employees
func GetEmployees(c *gin.Context) {
	params := BindListParams(c)
	employees, total, err := employeeRepo().List(params, c.Query("department"), c.Query("status"))
	if err != nil {
		util.LogEvent(middleware.GetRequestID(c), "employee", "list", err.Error())
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data karyawan", err)
		return
	}
	c.JSON(http.StatusOK, domain.NewPaginated(employees, total, params))
}

// GET /api/employees/:id
func GetEmployeeByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	e, err := employeeRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// POST /api/employees
func CreateEmployee(c *gin.Context) {
	var in employeeInput
	if !BindJSONOrError(c, &in) {
		return
	}

	e, err := employeeRepo().Create(in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	util.LogEvent(middleware.GetRequestID(c), "employee", "create", "nip="+e.Code)
	c.JSON(http.StatusCreated, gin.H{"message": "karyawan berhasil dibuat", "data": e})
}

// PUT /api/employees/:id
func UpdateEmployee(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var in employeeInput
	if !BindJSONOrError(c, &in) {
		return
	}

	e, err := employeeRepo().Update(id, in.toModel())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "karyawan berhasil diupdate", "data": e})
}

// DELETE /api/employees/:id
func DeleteEmployee(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := employeeRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "karyawan berhasil dihapus"})
}

var employeeCSVColumns = []export.Column[models.Employee]{
	{Header: "NIP", Extract: func(e models.Employee) string { return e.Code }},
	{Header: "Nama", Extract: func(e models.Employee) string { return e.Name }},
	{Header: "Telepon", Extract: func(e models.Employee) string { return dashIfEmpty(e.Phone) }},
	{Header: "Jabatan", Extract: func(e models.Employee) string { return e.Position }},
	{Header: "Departemen", Extract: func(e models.Employee) string { return e.Department }},
	{Header: "Tanggal Masuk", Extract: func(e models.Employee) string { return dashIfEmpty(e.JoinDate) }},
	{Header: "Status", Extract: func(e models.Employee) string { return e.Status }},
}

// GET /api/employees/export?ids=1,2,3
func ExportEmployees(c *gin.Context) {
	ids, ok := ParseIDsQuery(c)
	if !ok {
		return
	}

	repo := employeeRepo()
	rows := []models.Employee{}
	for _, id := range ids {
		e, err := repo.GetByID(id)
		if err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			RespondError(c, http.StatusInternalServerError, "gagal mengambil data karyawan", err)
			return
		}
		rows = append(rows, e)
	}

	writeCSVDownload(c, "karyawan", employeeCSVColumns, rows)
}
