package handler

import (
	"net/http"

	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/stpnv0/AmenityBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateReservation(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	start, end, ok := parseRange(c, req.StartTime, req.EndTime)
	if !ok {
		return
	}

	// админ может бронировать за другого пользователя
	userID := actor.ID
	if req.UserID != "" && req.UserID != actor.ID {
		if !actor.IsAdmin() {
			h.handleError(c, domain.ErrAdminOnly)
			return
		}
		userID = req.UserID
	}

	input := domain.CreateReservationInput{
		UserID:          userID,
		AmenityID:       req.AmenityID,
		StartTime:       start,
		EndTime:         end,
		SpecialRequests: req.SpecialRequests.ToDomain(),
	}

	res, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}

	res, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if res.UserID != actor.ID && !actor.IsAdmin() {
		h.handleError(c, domain.ErrNotOwner)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) SetReservationStatus(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.reservationService.SetStatus(
		c.Request.Context(), id, domain.ReservationStatus(req.Status), actor, req.Reason,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}

	res, err := h.reservationService.Cancel(c.Request.Context(), id, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) RescheduleReservation(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "reservation")
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

	res, err := h.reservationService.Reschedule(c.Request.Context(), domain.RescheduleInput{
		ReservationID: id,
		Actor:         actor,
		StartTime:     start,
		EndTime:       end,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) GetUserReservations(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "user")
	if !ok {
		return
	}
	if userID != actor.ID && !actor.IsAdmin() {
		h.handleError(c, domain.ErrNotOwner)
		return
	}

	list, err := h.reservationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponses(list))
}
