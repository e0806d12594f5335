package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateAmenity(c *ginext.Context)
	UpdateAmenity(c *ginext.Context)
	GetAmenity(c *ginext.Context)
	ListAmenities(c *ginext.Context)
	GetSlots(c *ginext.Context)
	PreviewClosure(c *ginext.Context)
	CloseWindow(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	SetReservationStatus(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	RescheduleReservation(c *ginext.Context)
	GetUserReservations(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Amenities
		api.POST("/amenities", h.CreateAmenity)
		api.GET("/amenities", h.ListAmenities)
		api.GET("/amenities/:id", h.GetAmenity)
		api.PUT("/amenities/:id", h.UpdateAmenity)
		api.GET("/amenities/:id/slots", h.GetSlots)
		api.POST("/amenities/:id/closures/preview", h.PreviewClosure)
		api.POST("/amenities/:id/closures", h.CloseWindow)

		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/status", h.SetReservationStatus)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/reschedule", h.RescheduleReservation)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/reservations", h.GetUserReservations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
