// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fieldservice/internal/delivery/http/middleware"
	"fieldservice/internal/delivery/http/router/handler"
	"fieldservice/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	ScanHandler    *handler.ScanHandler
	ViewHandler    *handler.ViewHandler
	OrderHandler   *handler.OrderHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	scanHandler    *handler.ScanHandler
	viewHandler    *handler.ViewHandler
	orderHandler   *handler.OrderHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		scanHandler:    params.ScanHandler,
		viewHandler:    params.ViewHandler,
		orderHandler:   params.OrderHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes. Login hands out the id every other route authenticates with.
	e.POST("/session/login", r.sessionHandler.Login)
	sessionGroup := e.Group("/session")
	sessionGroup.Use(r.authMiddleware.Identify)
	{
		sessionGroup.POST("/logout", r.sessionHandler.Logout)
		sessionGroup.POST("/refresh", r.sessionHandler.Refresh)
		sessionGroup.GET("", r.sessionHandler.Current)
	}

	// Decoding a scanned payload reaches no server and needs no session
	e.POST("/scan", r.scanHandler.Scan)

	// Technician flow: opening a view notifies the order server as the logged-in technician
	viewGroup := e.Group("/views")
	viewGroup.Use(r.authMiddleware.Authenticate)
	viewGroup.Use(r.authMiddleware.RequireRole(entity.RoleTechnician))
	{
		viewGroup.POST("", r.viewHandler.Open)
		viewGroup.GET("/:vid", r.viewHandler.Get)
		viewGroup.POST("/:vid/access", r.viewHandler.Access)
		viewGroup.POST("/:vid/choose", r.viewHandler.Choose)
		viewGroup.POST("/:vid/back", r.viewHandler.Back)
		viewGroup.POST("/:vid/submit", r.viewHandler.Submit)
		viewGroup.DELETE("/:vid", r.viewHandler.Close)
	}

	// Order routes that require a login session
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.GET("/:id/qr", r.orderHandler.QR)
	}

	// Admin routes that require authentication and the ADMIN role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                   // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.GET("/users", r.userHandler.List)
		adminGroup.POST("/users", r.userHandler.Create)
		adminGroup.PATCH("/users/:id/active", r.userHandler.SetActive)
		adminGroup.PATCH("/users/:id/role", r.userHandler.SetRole)

		adminGroup.GET("/orders", r.orderHandler.List)
		adminGroup.POST("/orders", r.orderHandler.Create)
		adminGroup.GET("/orders/:id", r.orderHandler.Get)
		adminGroup.GET("/orders/:id/audits", r.orderHandler.Audits)
		adminGroup.GET("/orders/:id/pdf", r.orderHandler.PDF)
		adminGroup.GET("/orders/:id/full-pdf", r.orderHandler.FullPDF)
		adminGroup.GET("/stats", r.orderHandler.Stats)
	}
}
