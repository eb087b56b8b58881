package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediashelf/internal/presentation"
	"mediashelf/internal/presentation/handler"
	"mediashelf/internal/presentation/middleware"
)

// Handlers bundles everything Setup needs to wire the route table.
type Handlers struct {
	Music    *handler.ContentHandler
	Book     *handler.ContentHandler
	Blog     *handler.ContentHandler
	Category *handler.CategoryHandler
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Upload   *handler.UploadHandler
}

// Setup registers every route. Content routes are public; /api and
// /users routes sit behind the bearer middleware.
func Setup(e *echo.Echo, h Handlers, auth *middleware.Auth) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Server is running")
	})

	e.POST("/add-music", h.Music.Add)
	e.GET("/all-music", h.Music.List)
	e.PUT("/update-music/:"+presentation.IDParam, h.Music.Update)
	e.DELETE("/delete-music/:"+presentation.IDParam, h.Music.Delete)

	e.POST("/add-book", h.Book.Add)
	e.GET("/all-books", h.Book.List)
	e.PUT("/update-book/:"+presentation.IDParam, h.Book.Update)
	e.DELETE("/delete-book/:"+presentation.IDParam, h.Book.Delete)

	e.POST("/add-blog", h.Blog.Add)
	e.GET("/all-blogs", h.Blog.List)
	e.PUT("/update-blog/:"+presentation.IDParam, h.Blog.Update)
	e.DELETE("/delete-blog/:"+presentation.IDParam, h.Blog.Delete)

	e.POST("/add-category", h.Category.Add)
	e.GET("/categories/:"+presentation.SectionParam, h.Category.BySection)
	e.DELETE("/delete-category/:"+presentation.IDParam, h.Category.Delete)

	api := e.Group("/api")
	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)
	api.GET("/user", h.User.Me, auth.RequireAuth)
	api.PUT("/update-profile", h.User.UpdateProfile, auth.RequireAuth)
	api.POST("/upload", h.Upload.Upload, auth.RequireAuth)
	api.GET("/media", h.Upload.List, auth.RequireAuth)

	e.GET("/users", h.User.Users, auth.RequireAdmin)
	e.GET("/users/admin/:"+presentation.EmailParam, h.User.AdminFlag, auth.RequireAuth)
	e.PATCH("/users/admin/:"+presentation.IDParam, h.User.ToggleAdmin, auth.RequireAdmin)
	e.PUT("/users/role/:"+presentation.IDParam, h.User.SetRole, auth.RequireAdmin)
}
