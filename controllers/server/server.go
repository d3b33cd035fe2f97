package server

import (
	"emptyleg-marketplace/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ServerController struct {
	db *gorm.DB
}

func NewServerController(db *gorm.DB) *ServerController {
	return &ServerController{db: db}
}

// Health reports process and database liveness.
func (sc *ServerController) Health(c *fiber.Ctx) error {
	dbStatus := "up"
	sqlDB, err := sc.db.DB()
	if err != nil || sqlDB.PingContext(c.Context()) != nil {
		dbStatus = "down"
	}

	status := fiber.StatusOK
	if dbStatus == "down" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: "Health check",
		Data: fiber.Map{
			"server":   "up",
			"database": dbStatus,
		},
	})
}
