package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalHandler struct {
	rentalUseCase usecase.RentalUseCase
	rentalQueries queries.RentalQueries
}

func NewRentalHandler(rentalUseCase usecase.RentalUseCase, rentalQueries queries.RentalQueries) *RentalHandler {
	return &RentalHandler{
		rentalUseCase: rentalUseCase,
		rentalQueries: rentalQueries,
	}
}

// @Summary Create rental
// @Description Book a car for a client over a half-open [start, end) period
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRentalRequest true "Rental request"
// @Success 201 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals [post]
func (h *RentalHandler) CreateRental(c *gin.Context) {
	var req reqdto.CreateRentalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := usecase.CreateRentalParams{
		CarID:    req.CarID,
		ClientID: req.ClientID,
		StartAt:  req.StartAt,
		EndAt:    req.EndAt,
		Notes:    req.GetNotes(),
	}
	if issuerID, ok := middleware.GetUserID(c); ok {
		params.IssuerID = &issuerID
	}

	view, err := h.rentalUseCase.CreateRental(c.Request.Context(), params)
	if err != nil {
		h.respondRentalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRentalView(view))
}

// @Summary Get rental
// @Description Get rental by ID with joined car, client and issuer details
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [get]
func (h *RentalHandler) GetRental(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	view, err := h.rentalQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondRentalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary List rentals
// @Description List rentals matching the given filters (all optional, AND semantics)
// @Tags rentals
// @Produce json
// @Param car_id query string false "Car ID"
// @Param client_id query string false "Client ID"
// @Param issuer_id query string false "Issuer ID"
// @Param status query string false "Rental status"
// @Param from query string false "Time range start (RFC3339)"
// @Param to query string false "Time range end (RFC3339)"
// @Success 200 {array} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Router /rentals [get]
func (h *RentalHandler) ListRentals(c *gin.Context) {
	var req reqdto.FilterRentalsRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid filter parameters",
		})
		return
	}
	if (req.From == nil) != (req.To == nil) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Both from and to must be given for a time range filter",
		})
		return
	}

	carID, carOK := parseOptionalID(req.CarID)
	clientID, clientOK := parseOptionalID(req.ClientID)
	issuerID, issuerOK := parseOptionalID(req.IssuerID)
	if !carOK || !clientOK || !issuerOK {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid filter parameters",
		})
		return
	}

	filter := queries.RentalFilter{
		CarID:    carID,
		ClientID: clientID,
		IssuerID: issuerID,
		Status:   req.Status,
	}
	if req.From != nil && req.To != nil {
		filter.TimeRange = []time.Time{*req.From, *req.To}
	}

	views, err := h.rentalQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

// @Summary Extend rental
// @Description Push the rental end forward; an earlier or equal end is a no-op
// @Tags rentals
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Param request body reqdto.ExtendRentalRequest true "Extension request"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/extend [post]
func (h *RentalHandler) ExtendRental(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.ExtendRentalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.rentalUseCase.ExtendRental(c.Request.Context(), id, req.NewEndAt)
	if err != nil {
		h.respondRentalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Complete rental
// @Description Settle the rental: cost is the hourly rate times elapsed hours rounded up
// @Tags rentals
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Param request body reqdto.CompleteRentalRequest true "Completion request"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/complete [post]
func (h *RentalHandler) CompleteRental(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.CompleteRentalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.rentalUseCase.CompleteRental(c.Request.Context(), id, req.ActualReturnAt)
	if err != nil {
		h.respondRentalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Cancel rental
// @Description Cancel an AWAITING rental; any other state is a no-op
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id}/cancel [post]
func (h *RentalHandler) CancelRental(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	view, err := h.rentalUseCase.CancelRental(c.Request.Context(), id)
	if err != nil {
		h.respondRentalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Delete rental
// @Description Hard-delete a rental record regardless of its state
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [delete]
func (h *RentalHandler) DeleteRental(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	deleted, err := h.rentalUseCase.DeleteRental(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Rental not found",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Check car availability
// @Description Answer whether the car is free over the half-open [start, end)
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Param start_at query string true "Period start (RFC3339)"
// @Param end_at query string true "Period end (RFC3339)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{id}/availability [get]
func (h *RentalHandler) GetCarAvailability(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	var req reqdto.AvailabilityRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start_at and end_at are required RFC3339 timestamps",
		})
		return
	}

	available, err := h.rentalUseCase.IsCarAvailable(c.Request.Context(), carID, req.StartAt, req.EndAt)
	if err != nil {
		h.respondRentalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		CarID:     carID,
		StartAt:   req.StartAt,
		EndAt:     req.EndAt,
		Available: available,
	})
}

// parseOptionalID converts an optional query-string UUID; nil stays nil.
func parseOptionalID(raw *string) (*uuid.UUID, bool) {
	if raw == nil {
		return nil, true
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

func (h *RentalHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *RentalHandler) respondRentalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrClientNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Client not found", nil)
	case errors.Is(err, errs.ErrCarNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
	case errors.Is(err, errs.ErrIssuerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Issuer not found", nil)
	case errors.Is(err, errs.ErrRentalNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Rental not found", nil)
	case errors.Is(err, errs.ErrCarUnavailable):
		var detail any
		var conflict *usecase.ConflictError
		if errors.As(err, &conflict) {
			detail = resdto.ConflictDetail{
				RentalID: conflict.RentalID,
				StartAt:  conflict.StartAt,
				EndAt:    conflict.EndAt,
			}
		}
		httperr.AbortWithError(c, http.StatusConflict, err, "Car is unavailable for the requested period", detail)
	case errors.Is(err, errs.ErrInvalidPeriod):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Rental end must be after its start", nil)
	case errors.Is(err, errs.ErrInvalidReturnDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Actual return date is outside the allowed range", nil)
	case errors.Is(err, errs.ErrRentalFinished):
		httperr.AbortWithError(c, http.StatusConflict, err, "Rental is already completed or cancelled", nil)
	case errors.Is(err, errs.ErrRentalNotActive):
		httperr.AbortWithError(c, http.StatusConflict, err, "Rental has not started yet", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	case errors.Is(err, errs.ErrConstraintViolation):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking conflicts with a concurrent request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
