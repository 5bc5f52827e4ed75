package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-rental-backend/internal/shared/middleware"
	"library-rental-backend/internal/shared/response"
	"library-rental-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupBookRoutes(v1, c)
		setupStudentRoutes(v1, c)
		setupRentalRoutes(v1, c)
	}

	return router
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.POST("", c.BookHandler.CreateBook)
		books.GET("/:isbn", c.BookHandler.GetBook)
		books.PUT("/:isbn", c.BookHandler.UpdateBook)
		books.DELETE("/:isbn", c.BookHandler.DeleteBook)
	}
}

func setupStudentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	students := v1.Group("/students")
	{
		students.GET("", c.StudentHandler.ListStudents)
		students.POST("", c.StudentHandler.CreateStudent)
		students.GET("/:id/rentals", c.RentalHandler.ListStudentRentals)
	}
}

func setupRentalRoutes(v1 *gin.RouterGroup, c *container.Container) {
	rentals := v1.Group("/rentals")
	{
		rentals.POST("/rent", c.RentalHandler.RentBook)
		rentals.POST("/return", c.RentalHandler.ReturnBook)
		rentals.GET("/active", c.RentalHandler.ListActiveRentals)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.Ping(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", "database unreachable")
			return
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", "redis unreachable")
			return
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	}
}
