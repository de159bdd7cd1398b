package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/chronicle-blog/chronicle-back/internal/admin"
	"github.com/chronicle-blog/chronicle-back/internal/auth"
	"github.com/chronicle-blog/chronicle-back/internal/category"
	"github.com/chronicle-blog/chronicle-back/internal/config"
	"github.com/chronicle-blog/chronicle-back/internal/database"
	"github.com/chronicle-blog/chronicle-back/internal/location"
	"github.com/chronicle-blog/chronicle-back/internal/logs"
	"github.com/chronicle-blog/chronicle-back/internal/middleware"
	"github.com/chronicle-blog/chronicle-back/internal/post"
	"github.com/chronicle-blog/chronicle-back/internal/storage"
	"github.com/chronicle-blog/chronicle-back/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()
	if cfg.DBUrl == "" {
		panic("DATABASE_URL missing")
	}
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET missing")
	}

	database.Connect(cfg.DBUrl)
	database.Migrate(
		&user.User{},
		&category.Category{},
		&location.Location{},
		&post.Post{},
		&post.Comment{},
	)

	if err := storage.InitS3(); err != nil {
		logs.LogError("S3 init failed, image storage unavailable", err, nil)
	}

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.POST("/signup", auth.Signup)
	api.POST("/login", auth.Login)

	// Public reads: anonymous works, a valid token enables the author
	// bypass on detail and profile pages.
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware())
	public.GET("/posts", post.GetIndex)
	public.GET("/posts/:id", post.GetPost)
	public.GET("/categories", category.GetCategories)
	public.GET("/categories/:slug", post.GetCategoryPosts)
	public.GET("/locations", location.GetLocations)
	public.GET("/users/:username", post.GetProfile)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	authed.GET("/me", auth.Me)
	authed.POST("/posts", post.CreatePost)
	authed.PATCH("/posts/:id", post.UpdatePost)
	authed.DELETE("/posts/:id", post.DeletePost)
	authed.POST("/posts/:id/comments", post.CreateComment)
	authed.PATCH("/comments/:id", post.UpdateComment)
	authed.DELETE("/comments/:id", post.DeleteComment)
	authed.PATCH("/users/:username", user.UpdateProfile)

	adm := api.Group("/admin")
	adm.Use(middleware.AuthMiddleware(), middleware.AdminOnlyMiddleware())
	adm.GET("/stats", admin.GetDashboardStats)
	adm.POST("/test-email", admin.SendTestEmail)
	adm.DELETE("/users/:id", admin.DeleteUser)
	adm.POST("/categories", category.CreateCategory)
	adm.PATCH("/categories/:id", category.UpdateCategory)
	adm.DELETE("/categories/:id", category.DeleteCategory)
	adm.POST("/locations", location.CreateLocation)
	adm.PATCH("/locations/:id", location.UpdateLocation)
	adm.DELETE("/locations/:id", location.DeleteLocation)

	if err := r.Run(cfg.Addr); err != nil {
		logs.LogError("Server stopped", err, nil)
	}
}
