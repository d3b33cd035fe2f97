package booking

import (
	"fmt"

	"emptyleg-marketplace/logger"
	bookingService "emptyleg-marketplace/services/booking"
	"emptyleg-marketplace/types"
	bookingTypes "emptyleg-marketplace/types/booking"
	"emptyleg-marketplace/utils"

	"github.com/gofiber/fiber/v2"
)

// BookingController handles seat reservations against approved flights.
type BookingController struct {
	service bookingService.UseCase
	audit   *logger.AsyncLogger
}

func NewBookingController(service bookingService.UseCase, audit *logger.AsyncLogger) *BookingController {
	return &BookingController{service: service, audit: audit}
}

// Store creates a booking for the authenticated customer.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
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

	b, err := bc.service.Create(c.Context(), authUser, req)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	if bc.audit != nil {
		bc.audit.Log(utils.CreateSanitizedLogEntry(c))
	}

	logger.Success(fmt.Sprintf("Booking created successfully with reference: %s", b.Reference))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking confirmed",
		Data:    b,
	})
}

// Index lists the bookings visible to the caller.
func (bc *BookingController) Index(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	bookings, pagination, err := bc.service.List(c.Context(), utils.GetAuthUser(c), page, limit)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings retrieved successfully",
		Data: types.PagedData{
			Items:      bookings,
			Pagination: pagination,
		},
	})
}

// Cancel voids a confirmed booking and releases its seats.
func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
		})
	}

	if err := bc.service.Cancel(c.Context(), utils.GetAuthUser(c), uint(id)); err != nil {
		return utils.ErrorResponse(c, err)
	}

	logger.Success(fmt.Sprintf("Booking %d cancelled", id))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking cancelled successfully",
	})
}
