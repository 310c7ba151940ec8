package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/go-bookstore/configs"
	"github.com/Keoroanthony/go-bookstore/internal/auth"
	"github.com/Keoroanthony/go-bookstore/internal/db"
	"github.com/Keoroanthony/go-bookstore/internal/handlers"
)

func main() {

	db.Init()

	cfg := config.LoadServerConfig()

	r := gin.Default()

	// single configured front-end origin
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	// ── session store ──
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("booksess", store))

	// ── public endpoints ──
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.POST("/auth/register", auth.Register)
	r.POST("/auth/login", auth.Login)
	r.POST("/auth/logout", auth.Logout)

	// ── protected API ──
	api := r.Group("/api")
	api.Use(auth.RequireAuth())
	{
		api.POST("/orders", handlers.CreateOrder)
		api.GET("/orders/user", handlers.GetUserOrders)
		api.GET("/books", handlers.ListBooks)
	}

	admin := api.Group("")
	admin.Use(auth.RequireAdmin())
	{
		admin.GET("/orders/admin", handlers.GetAllOrders)
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
		admin.DELETE("/orders/:id", handlers.DeleteOrder)
		admin.POST("/books", handlers.CreateBook)
	}

	r.Run(cfg.Addr)
}
