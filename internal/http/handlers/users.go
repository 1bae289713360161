package handlers

import (
	"net/http"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
	"github.com/oeangg/simago-backend/internal/http/middleware"
	"github.com/oeangg/simago-backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type userInput struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=4"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required,oneof=owner admin staff"`
	Status   string `json:"status"`
	Password string `json:"password"` // wajib saat create, opsional saat update
}

func (in userInput) toModel() models.User {
	u := models.User{
		Name:     util.NormalizeSpace(in.Name),
		Username: util.TrimOrEmpty(in.Username),
		Email:    util.TrimOrEmpty(in.Email),
		Phone:    util.TrimOrEmpty(in.Phone),
		Role:     in.Role,
		Status:   util.TrimOrEmpty(in.Status),
	}
	if u.Status == "" {
		u.Status = "aktif"
	}
	return u
}

// GET /api/users
func GetUsers(c *gin.Context) {
	params := BindListParams(c)
	users, total, err := userRepo().List(params, c.Query("role"), c.Query("status"))
	if err != nil {
		util.LogEvent(middleware.GetRequestID(c), "user", "list", err.Error())
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data user", err)
		return
	}
	c.JSON(http.StatusOK, domain.NewPaginated(users, total, params))
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	u, err := userRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var in userInput
	if !BindJSONOrError(c, &in) {
		return
	}
	if len(in.Password) < 8 {
		RespondError(c, http.StatusBadRequest, "password minimal 8 karakter", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal memproses password", err)
		return
	}

	u, err := userRepo().Create(in.toModel(), string(hash))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	util.LogEvent(middleware.GetRequestID(c), "user", "create", "user="+u.Username)
	c.JSON(http.StatusCreated, gin.H{"message": "user berhasil dibuat", "data": u})
}

// PUT /api/users/:id
func UpdateUser(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var in userInput
	if !BindJSONOrError(c, &in) {
		return
	}

	hash := ""
	if in.Password != "" {
		if len(in.Password) < 8 {
			RespondError(c, http.StatusBadRequest, "password minimal 8 karakter", nil)
			return
		}
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "gagal memproses password", err)
			return
		}
		hash = string(h)
	}

	u, err := userRepo().Update(id, in.toModel(), hash)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user berhasil diupdate", "data": u})
}

// DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if id == middleware.GetUserID(c) {
		RespondError(c, http.StatusBadRequest, "tidak dapat menghapus akun sendiri", nil)
		return
	}
	if err := userRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user berhasil dihapus"})
}
