package flight

import (
	"fmt"

	"emptyleg-marketplace/logger"
	flightService "emptyleg-marketplace/services/flight"
	"emptyleg-marketplace/types"
	flightTypes "emptyleg-marketplace/types/flight"
	"emptyleg-marketplace/utils"

	"github.com/gofiber/fiber/v2"
)

// FlightController handles flight listing, creation and moderation.
type FlightController struct {
	service flightService.UseCase
	audit   *logger.AsyncLogger
}

func NewFlightController(service flightService.UseCase, audit *logger.AsyncLogger) *FlightController {
	return &FlightController{service: service, audit: audit}
}

// List returns the flights visible to the caller, with optional filters.
// Anonymous callers see the public (approved, future) set.
func (fc *FlightController) List(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)
	q := flightTypes.FlightListQuery{
		OriginCity:      c.Query("origin"),
		DestinationCity: c.Query("destination"),
		Date:            c.Query("date"),
		Status:          c.Query("status"),
		Passengers:      c.QueryInt("passengers", 0),
		Page:            page,
		Limit:           limit,
	}

	flights, pagination, err := fc.service.List(c.Context(), utils.GetAuthUser(c), q)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Flights retrieved successfully",
		Data: types.PagedData{
			Items:      flights,
			Pagination: pagination,
		},
	})
}

// Get returns a single flight if the caller's visibility allows it.
func (fc *FlightController) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid flight id",
		})
	}

	f, err := fc.service.Get(c.Context(), utils.GetAuthUser(c), uint(id))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Flight retrieved successfully",
		Data:    f,
	})
}

// Store creates a flight listing in status pending. Operator only.
func (fc *FlightController) Store(c *fiber.Ctx) error {
	var req flightTypes.FlightCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	authUser := utils.GetAuthUser(c)
	if authUser == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authorization token missing",
		})
	}

	f, err := fc.service.Create(c.Context(), authUser.UserID, req)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	if fc.audit != nil {
		fc.audit.Log(utils.CreateSanitizedLogEntry(c))
	}

	logger.Success(fmt.Sprintf("Flight created successfully with ID: %d", f.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Flight submitted for review",
		Data:    f,
	})
}

// Review applies an admin approve/reject decision to a pending flight.
func (fc *FlightController) Review(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid flight id",
		})
	}

	var req flightTypes.FlightReviewRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	f, err := fc.service.Review(c.Context(), utils.GetAuthUser(c), uint(id), req)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	logger.Success(fmt.Sprintf("Flight %d reviewed: %s", f.ID, f.Status))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Flight reviewed successfully",
		Data:    f,
	})
}

// Cancel moves a flight to cancelled. Owning operator or admin.
func (fc *FlightController) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid flight id",
		})
	}

	if err := fc.service.Cancel(c.Context(), utils.GetAuthUser(c), uint(id)); err != nil {
		return utils.ErrorResponse(c, err)
	}

	logger.Success(fmt.Sprintf("Flight %d cancelled", id))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Flight cancelled successfully",
	})
}
