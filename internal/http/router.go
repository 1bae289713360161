package http

import (
	"net/http"

	intconfig "github.com/oeangg/simago-backend/internal/config"
	"github.com/oeangg/simago-backend/internal/http/handlers"
	"github.com/oeangg/simago-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires middleware and every route group.
func NewRouter(env intconfig.Env) *gin.Engine {
	handlers.InitAuth(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(env.CORSAllowedOrigins))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// publik
	api.GET("/health", handlers.Health)
	api.GET("/db-check", handlers.DBCheck)
	api.POST("/auth/login", handlers.Login)
	api.POST("/auth/register", handlers.Register)

	// semua route lain wajib login
	auth := api.Group("")
	auth.Use(middleware.Auth([]byte(env.JWTSecret)))

	auth.GET("/auth/me", handlers.Me)

	admin := auth.Group("")
	admin.Use(middleware.RequireRoles("owner", "admin"))

	suppliers := auth.Group("/suppliers")
	{
		suppliers.GET("", handlers.GetSuppliers)
		suppliers.GET("/export", handlers.ExportSuppliers)
		suppliers.GET("/:id", handlers.GetSupplierByID)
		suppliers.POST("", handlers.CreateSupplier)
		suppliers.PUT("/:id", handlers.UpdateSupplier)
	}
	admin.DELETE("/suppliers/:id", handlers.DeleteSupplier)

	customers := auth.Group("/customers")
	{
		customers.GET("", handlers.GetCustomers)
		customers.GET("/export", handlers.ExportCustomers)
		customers.GET("/:id", handlers.GetCustomerByID)
		customers.POST("", handlers.CreateCustomer)
		customers.PUT("/:id", handlers.UpdateCustomer)
	}
	admin.DELETE("/customers/:id", handlers.DeleteCustomer)

	materials := auth.Group("/materials")
	{
		materials.GET("", handlers.GetMaterials)
		materials.GET("/export", handlers.ExportMaterials)
		materials.GET("/:id", handlers.GetMaterialByID)
		materials.POST("", handlers.CreateMaterial)
		materials.PUT("/:id", handlers.UpdateMaterial)
	}
	admin.DELETE("/materials/:id", handlers.DeleteMaterial)

	materialIn := auth.Group("/material-in")
	{
		materialIn.GET("", handlers.GetMaterialIns)
		materialIn.GET("/export", handlers.ExportMaterialIns)
		materialIn.GET("/:id", handlers.GetMaterialInByID)
		materialIn.GET("/:id/receiving-note", handlers.MaterialInReceivingNote)
		materialIn.POST("", handlers.CreateMaterialIn)
		materialIn.PUT("/:id", handlers.UpdateMaterialIn)
	}
	admin.DELETE("/material-in/:id", handlers.DeleteMaterialIn)

	surveys := auth.Group("/surveys")
	{
		surveys.GET("", handlers.GetSurveys)
		surveys.GET("/export", handlers.ExportSurveys)
		surveys.GET("/:id", handlers.GetSurveyByID)
		surveys.GET("/:id/summary-pdf", handlers.SurveySummaryPDF)
		surveys.POST("", handlers.CreateSurvey)
		surveys.PUT("/:id", handlers.UpdateSurvey)
	}
	admin.DELETE("/surveys/:id", handlers.DeleteSurvey)

	drivers := auth.Group("/drivers")
	{
		drivers.GET("", handlers.GetDrivers)
		drivers.GET("/export", handlers.ExportDrivers)
		drivers.GET("/:id", handlers.GetDriverByID)
		drivers.POST("", handlers.CreateDriver)
		drivers.PUT("/:id", handlers.UpdateDriver)
	}
	admin.DELETE("/drivers/:id", handlers.DeleteDriver)

	employees := auth.Group("/employees")
	{
		employees.GET("", handlers.GetEmployees)
		employees.GET("/export", handlers.ExportEmployees)
		employees.GET("/:id", handlers.GetEmployeeByID)
		employees.POST("", handlers.CreateEmployee)
		employees.PUT("/:id", handlers.UpdateEmployee)
	}
	admin.DELETE("/employees/:id", handlers.DeleteEmployee)

	vehicles := auth.Group("/vehicles")
	{
		vehicles.GET("", handlers.GetVehicles)
		vehicles.GET("/export", handlers.ExportVehicles)
		vehicles.GET("/:id", handlers.GetVehicleByID)
		vehicles.POST("", handlers.CreateVehicle)
		vehicles.PUT("/:id", handlers.UpdateVehicle)
	}
	admin.DELETE("/vehicles/:id", handlers.DeleteVehicle)

	regions := auth.Group("/regions")
	{
		regions.GET("/provinces", handlers.GetProvinces)
		regions.POST("/provinces", handlers.CreateProvince)
		regions.PUT("/provinces/:id", handlers.UpdateProvince)

		regions.GET("/regencies", handlers.GetRegencies)
		regions.POST("/regencies", handlers.CreateRegency)
		regions.PUT("/regencies/:id", handlers.UpdateRegency)

		regions.GET("/districts", handlers.GetDistricts)
		regions.POST("/districts", handlers.CreateDistrict)
		regions.PUT("/districts/:id", handlers.UpdateDistrict)
	}
	admin.DELETE("/regions/provinces/:id", handlers.DeleteProvince)
	admin.DELETE("/regions/regencies/:id", handlers.DeleteRegency)
	admin.DELETE("/regions/districts/:id", handlers.DeleteDistrict)

	// manajemen user khusus owner/admin
	users := admin.Group("/users")
	{
		users.GET("", handlers.GetUsers)
		users.GET("/:id", handlers.GetUserByID)
		users.POST("", handlers.CreateUser)
		users.PUT("/:id", handlers.UpdateUser)
		users.DELETE("/:id", handlers.DeleteUser)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "route tidak ditemukan"})
	})

	return r
}
