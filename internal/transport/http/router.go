package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/petcute_backend/internal/handlers"
	authmw "github.com/Skotchmaster/petcute_backend/internal/middleware/auth"
	"github.com/Skotchmaster/petcute_backend/internal/service"
)

type Deps struct {
	AuthService     *service.AuthService
	AuthHandler     *handlers.AuthHandler
	CategoryHandler *handlers.CategoryHandler
	ProductHandler  *handlers.ProductHandler
	SearchHandler   *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api")

	api.POST("/register", d.AuthHandler.Register)
	api.POST("/login", d.AuthHandler.Login)

	api.GET("/products", d.ProductHandler.GetProducts)
	if d.SearchHandler != nil {
		api.GET("/products/search", d.SearchHandler.Search)
	}
	api.GET("/products/:id", d.ProductHandler.GetProduct)

	protected := api.Group("", authmw.RequireLogin(d.AuthService))

	protected.POST("/logout", d.AuthHandler.Logout)
	protected.GET("/user", d.AuthHandler.Me)

	protected.GET("/categories", d.CategoryHandler.GetCategories)
	protected.GET("/categories/:id", d.CategoryHandler.GetCategory)
	protected.POST("/categories", d.CategoryHandler.CreateCategory)
	protected.PUT("/categories/:id", d.CategoryHandler.UpdateCategory)
	protected.PATCH("/categories/:id", d.CategoryHandler.UpdateCategory)
	protected.DELETE("/categories/:id", d.CategoryHandler.DeleteCategory)

	protected.POST("/products", d.ProductHandler.CreateProduct)
	protected.PUT("/products/:id", d.ProductHandler.UpdateProduct)
	protected.PATCH("/products/:id", d.ProductHandler.UpdateProduct)
	protected.DELETE("/products/:id", d.ProductHandler.DeleteProduct)
}
