package router

import (
	"net/http"

	"github.com/Hebelub/train-booker/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListSessions(c *ginext.Context)
	GetSession(c *ginext.Context)
	GetSessionAttendees(c *ginext.Context)
	CreateSession(c *ginext.Context)
	UpdateSession(c *ginext.Context)
	DeleteSession(c *ginext.Context)
	BookSession(c *ginext.Context)
	UnbookSession(c *ginext.Context)
	GetBookingState(c *ginext.Context)
	ExportSessions(c *ginext.Context)
}

func InitRouter(mode, jwtSecret string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public reads; detail picks up the viewer when a token is sent.
		api.GET("/sessions", h.ListSessions)
		api.GET("/sessions/:id", middleware.OptionalAuth(jwtSecret), h.GetSession)
		api.GET("/sessions/:id/attendees", h.GetSessionAttendees)

		// Booking actions require a signed-in user.
		authed := api.Group("", middleware.Auth(jwtSecret))
		{
			authed.POST("/sessions/:id/book", h.BookSession)
			authed.POST("/sessions/:id/unbook", h.UnbookSession)
			authed.GET("/sessions/:id/booking-state", h.GetBookingState)
		}

		// Session management is admin-only.
		admin := api.Group("", middleware.AdminOnly(jwtSecret))
		{
			admin.POST("/sessions", h.CreateSession)
			admin.PATCH("/sessions/:id", h.UpdateSession)
			admin.DELETE("/sessions/:id", h.DeleteSession)
			admin.GET("/admin/sessions/export", h.ExportSessions)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
