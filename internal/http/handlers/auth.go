package handlers

import (
	"net/http"
	"time"

	intconfig "github.com/oeangg/simago-backend/internal/config"
	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
	"github.com/oeangg/simago-backend/internal/http/middleware"
	"github.com/oeangg/simago-backend/internal/repositories"
	"github.com/oeangg/simago-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret []byte

// InitAuth stores the signing secret used for login tokens.
func InitAuth(secret string) {
	jwtSecret = []byte(secret)
}

func userRepo() repositories.UserRepository {
	return repositories.UserRepository{DB: intconfig.DB}
}

type loginInput struct {
	Identity string `json:"identity" binding:"required"` // email atau username
	Password string `json:"password" binding:"required"`
}

type registerInput struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=4"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

func signToken(u models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"role":    u.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var in loginInput
	if !BindJSONOrError(c, &in) {
		return
	}

	u, hash, err := userRepo().GetCredentials(util.TrimOrEmpty(in.Identity))
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "email/username atau password salah", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Password)) != nil {
		RespondError(c, http.StatusUnauthorized, "email/username atau password salah", nil)
		return
	}

	if u.Status != "aktif" {
		RespondError(c, http.StatusForbidden, "akun tidak aktif", nil)
		return
	}

	token, err := signToken(u)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat token", err)
		return
	}

	util.LogEvent(middleware.GetRequestID(c), "auth", "login", "user="+u.Username)
	c.JSON(http.StatusOK, gin.H{
		"message": "login berhasil",
		"data":    gin.H{"token": token, "user": u},
	})
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var in registerInput
	if !BindJSONOrError(c, &in) {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal memproses password", err)
		return
	}

	u := models.User{
		Name:     util.NormalizeSpace(in.Name),
		Username: util.TrimOrEmpty(in.Username),
		Email:    util.TrimOrEmpty(in.Email),
		Phone:    util.TrimOrEmpty(in.Phone),
		Role:     "staff",
		Status:   "aktif",
	}

	created, err := userRepo().Create(u, string(hash))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	util.LogEvent(middleware.GetRequestID(c), "auth", "register", "user="+created.Username)
	c.JSON(http.StatusCreated, gin.H{"message": "registrasi berhasil", "data": created})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	id := middleware.GetUserID(c)
	if id == 0 {
		RespondError(c, http.StatusUnauthorized, "token tidak valid", nil)
		return
	}
	u, err := userRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
