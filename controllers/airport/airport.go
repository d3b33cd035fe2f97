package airport

import (
	"fmt"

	"emptyleg-marketplace/logger"
	airportModel "emptyleg-marketplace/models/airport"
	airportService "emptyleg-marketplace/services/airport"
	"emptyleg-marketplace/types"
	airportTypes "emptyleg-marketplace/types/airport"
	"emptyleg-marketplace/utils"

	"github.com/gofiber/fiber/v2"
)

// AirportController handles airport search, submission and moderation.
type AirportController struct {
	service airportService.UseCase
}

func NewAirportController(service airportService.UseCase) *AirportController {
	return &AirportController{service: service}
}

// Search serves the origin/destination autocomplete over the approved set.
func (ac *AirportController) Search(c *fiber.Ctx) error {
	airports, err := ac.service.SearchApproved(c.Context(), c.Query("q"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Airports retrieved successfully",
		Data:    airports,
	})
}

// Store files an operator-submitted custom airport as pending.
func (ac *AirportController) Store(c *fiber.Ctx) error {
	var req airportTypes.AirportSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	a, err := ac.service.Submit(c.Context(), utils.GetAuthUser(c), req)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	logger.Success(fmt.Sprintf("Airport %s submitted for review", a.Code))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Airport submitted for review",
		Data:    a,
	})
}

// Approve resolves a pending airport as approved. Admin only.
func (ac *AirportController) Approve(c *fiber.Ctx) error {
	return ac.review(c, airportModel.AirportStatusApproved)
}

// Reject resolves a pending airport as rejected. Admin only.
func (ac *AirportController) Reject(c *fiber.Ctx) error {
	return ac.review(c, airportModel.AirportStatusRejected)
}

func (ac *AirportController) review(c *fiber.Ctx, decision airportModel.AirportStatus) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid airport id",
		})
	}

	var req airportTypes.AirportReviewRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			logger.Error("Failed to parse request body", err)
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid request body",
			})
		}
	}

	a, err := ac.service.Review(c.Context(), utils.GetAuthUser(c), uint(id), decision, req)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	logger.Success(fmt.Sprintf("Airport %s reviewed: %s", a.Code, a.Status))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Airport reviewed successfully",
		Data:    a,
	})
}

// Pending returns the admin moderation queue.
func (ac *AirportController) Pending(c *fiber.Ctx) error {
	airports, err := ac.service.PendingList(c.Context(), utils.GetAuthUser(c))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Pending airports retrieved successfully",
		Data:    airports,
	})
}

// Mine returns the caller's own submissions, any status.
func (ac *AirportController) Mine(c *fiber.Ctx) error {
	airports, err := ac.service.ListMine(c.Context(), utils.GetAuthUser(c))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Airports retrieved successfully",
		Data:    airports,
	})
}
