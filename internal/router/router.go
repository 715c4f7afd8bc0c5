package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "github.com/cindral-studio/cindral-api/docs"
	"github.com/cindral-studio/cindral-api/internal/config"
	"github.com/cindral-studio/cindral-api/internal/middleware"
	"github.com/cindral-studio/cindral-api/internal/modules/handler"
	"github.com/cindral-studio/cindral-api/internal/modules/serializer"
	"github.com/cindral-studio/cindral-api/internal/modules/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config               *config.Config
	Log                  *zap.Logger
	Auth                 service.AuthService
	AuthHandler          *handler.AuthHandler
	CatalogHandler       *handler.CatalogHandler
	ContactHandler       *handler.ContactHandler
	ClientProjectHandler *handler.ClientProjectHandler
	BillingHandler       *handler.BillingHandler
	DashboardHandler     *handler.DashboardHandler
	PortalHandler        *handler.PortalHandler
	DataHandler          *handler.DataHandler
}

// NewRouter wires the route table. Content reads are public, the contact
// form is public, everything else requires the admin bearer token.
func NewRouter(d RouterDeps) *gin.Engine {
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))
	r.Use(middleware.RequestMetrics())

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	admin := middleware.AdminAuth(d.Auth)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/login", d.AuthHandler.Login)
		v1.POST("/logout", admin, d.AuthHandler.Logout)

		divisions := v1.Group("/divisions")
		{
			divisions.GET("", d.CatalogHandler.ListDivisions)
			divisions.POST("", admin, d.CatalogHandler.CreateDivision)
			divisions.PUT("/:id", admin, d.CatalogHandler.UpdateDivision)
			divisions.DELETE("/:id", admin, d.CatalogHandler.DeleteDivision)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", d.CatalogHandler.ListProjects)
			projects.POST("", admin, d.CatalogHandler.CreateProject)
			projects.PUT("/:id", admin, d.CatalogHandler.UpdateProject)
			projects.DELETE("/:id", admin, d.CatalogHandler.DeleteProject)
		}

		team := v1.Group("/team")
		{
			team.GET("", d.CatalogHandler.ListTeam)
			team.POST("", admin, d.CatalogHandler.CreateTeamMember)
			team.PUT("/:id", admin, d.CatalogHandler.UpdateTeamMember)
			team.DELETE("/:id", admin, d.CatalogHandler.DeleteTeamMember)
		}

		initiatives := v1.Group("/initiatives")
		{
			initiatives.GET("", d.CatalogHandler.ListInitiatives)
			initiatives.POST("", admin, d.CatalogHandler.CreateInitiative)
			initiatives.PUT("/:id", admin, d.CatalogHandler.UpdateInitiative)
			initiatives.DELETE("/:id", admin, d.CatalogHandler.DeleteInitiative)
		}

		v1.POST("/contact", d.ContactHandler.Submit)
		contact := v1.Group("/contact-submissions", admin)
		{
			contact.GET("", d.ContactHandler.List)
			contact.PUT("/:id", d.ContactHandler.Update)
			contact.DELETE("/:id", d.ContactHandler.Delete)
		}

		cp := v1.Group("/client-projects")
		{
			cp.GET("", d.ClientProjectHandler.List)
			cp.GET("/:id", d.ClientProjectHandler.Get)
			cp.POST("", admin, d.ClientProjectHandler.Create)
			cp.PUT("/:id", admin, d.ClientProjectHandler.Update)
			cp.DELETE("/:id", admin, d.ClientProjectHandler.Delete)

			cp.POST("/:id/tasks", admin, d.ClientProjectHandler.AddTask)
			cp.PUT("/:id/tasks", admin, d.ClientProjectHandler.ReplaceTasks)
			cp.PUT("/:id/tasks/:task_id", admin, d.ClientProjectHandler.UpdateTask)
			cp.DELETE("/:id/tasks/:task_id", admin, d.ClientProjectHandler.RemoveTask)

			cp.GET("/:id/delivery", admin, d.ClientProjectHandler.Delivery)
		}

		invoices := v1.Group("/client-invoices", admin)
		{
			invoices.GET("", d.BillingHandler.ListInvoices)
			invoices.GET("/:id", d.BillingHandler.GetInvoice)
			invoices.POST("", d.BillingHandler.CreateInvoice)
			invoices.PUT("/:id", d.BillingHandler.UpdateInvoice)
			invoices.DELETE("/:id", d.BillingHandler.DeleteInvoice)

			invoices.POST("/:id/document", d.BillingHandler.AttachDocument)
			invoices.GET("/:id/document", d.BillingHandler.DocumentURL)
		}

		users := v1.Group("/client-users", admin)
		{
			users.GET("", d.BillingHandler.ListUsers)
			users.GET("/:id", d.BillingHandler.GetUser)
			users.POST("", d.BillingHandler.CreateUser)
			users.PUT("/:id", d.BillingHandler.UpdateUser)
			users.DELETE("/:id", d.BillingHandler.DeleteUser)
		}

		v1.GET("/dashboard/portfolio", admin, d.DashboardHandler.Portfolio)
		v1.GET("/portal/users/:user_id/projects", admin, d.PortalHandler.Projects)

		data := v1.Group("/data", admin)
		{
			data.GET("/export", d.DataHandler.Export)
			data.POST("/import", d.DataHandler.Import)
			data.POST("/reset", d.DataHandler.Reset)
		}
	}
	return r
}
