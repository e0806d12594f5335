package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/AmenityBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateAmenity(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.AmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	amenity, err := h.amenityService.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAmenityResponse(amenity))
}

func (h *Handler) UpdateAmenity(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "amenity")
	if !ok {
		return
	}

	var req dto.AmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	amenity, err := h.amenityService.Update(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAmenityResponse(amenity))
}

func (h *Handler) GetAmenity(c *ginext.Context) {
	id, ok := pathID(c, "amenity")
	if !ok {
		return
	}

	amenity, err := h.amenityService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAmenityResponse(amenity))
}

// ListAmenities returns active amenities; ?all=true includes retired ones.
func (h *Handler) ListAmenities(c *ginext.Context) {
	activeOnly := c.Query("all") != "true"

	amenities, err := h.amenityService.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AmenityResponse, 0, len(amenities))
	for _, a := range amenities {
		resp = append(resp, dto.ToAmenityResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSlots(c *ginext.Context) {
	id, ok := pathID(c, "amenity")
	if !ok {
		return
	}

	date, err := time.Parse(time.DateOnly, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
		return
	}

	duration := 0
	if raw := c.Query("duration"); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "duration must be a number of minutes"})
			return
		}
	}

	availability, err := h.availabilityService.ComputeAvailableSlots(c.Request.Context(), id, date, duration)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

func (h *Handler) PreviewClosure(c *ginext.Context) {
	id, ok := pathID(c, "amenity")
	if !ok {
		return
	}

	var req dto.TimeRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	start, end, ok := parseRange(c, req.StartTime, req.EndTime)
	if !ok {
		return
	}

	affected, err := h.reservationService.PreviewClosure(c.Request.Context(), id, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClosureResponse{
		Count:        len(affected),
		Reservations: dto.ToReservationResponses(affected),
	})
}

func (h *Handler) CloseWindow(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "amenity")
	if !ok {
		return
	}

	var req dto.ClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	start, end, ok := parseRange(c, req.StartTime, req.EndTime)
	if !ok {
		return
	}

	cancelled, err := h.reservationService.CloseWindow(c.Request.Context(), id, start, end, actor, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClosureResponse{
		Count:        len(cancelled),
		Reservations: dto.ToReservationResponses(cancelled),
	})
}
