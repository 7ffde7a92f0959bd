package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/siinmedia/jastiphemat/config"
	"github.com/siinmedia/jastiphemat/controllers"
)

// Dependencies are the handlers and settings the router is built from.
type Dependencies struct {
	Auth           controllers.AuthService
	Pages          *controllers.PageController
	Admin          *controllers.AdminController
	API            *controllers.APIController
	HTML           render.HTMLRender
	AllowedOrigins []string
}

func SetupRouter(d Dependencies) *gin.Engine {
	r := gin.Default()
	r.HTMLRender = d.HTML

	r.Use(cors.New(corsConfig(d.AllowedOrigins)))
	r.Use(config.PerformanceLogger())
	r.Use(controllers.SessionGate(d.Auth))

	r.GET("/", d.Pages.Landing)
	r.GET("/form", d.Pages.OrderForm)
	r.POST("/form", d.Pages.SubmitOrder)
	r.GET("/invoice/:id", d.Pages.InvoicePage)

	admin := r.Group("/admin")
	{
		admin.GET("", d.Admin.Dashboard)
		admin.POST("/login", d.Admin.Login)
		admin.POST("/logout", d.Admin.Logout)

		pesanan := admin.Group("/pesanan", controllers.RequireAdminPage())
		{
			pesanan.GET("/:id/invoice", d.Admin.InvoiceEditor)
			pesanan.POST("/:id/invoice", d.Admin.SaveInvoice)
			pesanan.POST("/:id/status", d.Admin.AdvanceStatus)
		}
	}

	auth := r.Group("/auth")
	{
		auth.POST("/login", d.API.Login)
		auth.POST("/logout", d.API.Logout)
		auth.GET("/me", controllers.RequireAdmin(), d.API.Me)
	}

	api := r.Group("/api")
	{
		api.POST("/pesanan", d.API.CreatePesanan)
		api.GET("/invoice/:id", d.API.GetInvoice)

		protected := api.Group("", controllers.RequireAdmin())
		{
			protected.GET("/pesanan", d.API.ListPesanan)
			protected.PATCH("/pesanan/:id/status", d.API.UpdateStatus)
			protected.GET("/pesanan/:id/invoice", d.API.GetEditor)
			protected.PUT("/pesanan/:id/invoice", d.API.SaveInvoice)
			protected.GET("/stats", d.API.Stats)
		}
	}

	r.NoRoute(controllers.NotFound)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(origins) == 0 {
		cfg.AllowOrigins = []string{"http://localhost:3000"}
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
