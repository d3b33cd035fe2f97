package notification

import (
	"emptyleg-marketplace/repository"
	"emptyleg-marketplace/types"
	"emptyleg-marketplace/utils"

	"github.com/gofiber/fiber/v2"
)

// NotificationController lets users read the messages the status engines
// created for them.
type NotificationController struct {
	store repository.Store
}

func NewNotificationController(store repository.Store) *NotificationController {
	return &NotificationController{store: store}
}

// Index lists the caller's notifications, newest first. ?unread=true
// restricts to unread ones.
func (nc *NotificationController) Index(c *fiber.Ctx) error {
	authUser := utils.GetAuthUser(c)
	if authUser == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authorization token missing",
		})
	}

	page, limit := utils.ParsePagination(c)
	unreadOnly := c.QueryBool("unread", false)

	notifications, total, err := nc.store.Notifications().ListByUser(
		c.Context(), authUser.UserID, unreadOnly, (page-1)*limit, limit)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notifications retrieved successfully",
		Data: types.PagedData{
			Items:      notifications,
			Pagination: types.Pagination{Total: total, Page: page, Limit: limit},
		},
	})
}

// MarkRead marks one of the caller's notifications as read.
func (nc *NotificationController) MarkRead(c *fiber.Ctx) error {
	authUser := utils.GetAuthUser(c)
	if authUser == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authorization token missing",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid notification id",
		})
	}

	ok, err := nc.store.Notifications().MarkRead(c.Context(), uint(id), authUser.UserID)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Notification not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notification marked as read",
	})
}

// MarkAllRead marks every unread notification of the caller as read.
func (nc *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	authUser := utils.GetAuthUser(c)
	if authUser == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authorization token missing",
		})
	}

	if err := nc.store.Notifications().MarkAllRead(c.Context(), authUser.UserID); err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "All notifications marked as read",
	})
}
