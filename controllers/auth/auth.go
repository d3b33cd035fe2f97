package auth

import (
	"fmt"
	"os"

	"emptyleg-marketplace/logger"
	authService "emptyleg-marketplace/services/auth"
	"emptyleg-marketplace/types"
	authTypes "emptyleg-marketplace/types/auth"
	"emptyleg-marketplace/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthController handles registration, login and the token lifecycle.
type AuthController struct {
	service authService.UseCase
	audit   *logger.AsyncLogger
}

func NewAuthController(service authService.UseCase, audit *logger.AsyncLogger) *AuthController {
	return &AuthController{service: service, audit: audit}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   isProduction,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// Register creates a customer or operator account.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	resp, err := h.service.Register(c.Context(), req)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	h.setSecureCookie(c, "access", resp.Tokens.AccessToken, 8*60*60)
	h.setSecureCookie(c, "refresh", resp.Tokens.RefreshToken, 7*24*60*60)

	if h.audit != nil {
		h.audit.Log(utils.CreateSanitizedLogEntry(c))
	}

	logger.Success(fmt.Sprintf("User registered successfully. id: %d role: %s", resp.User.ID, resp.User.Role))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Registered successfully",
		Data:    resp,
	})
}

// Login verifies credentials and issues a token pair.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	resp, err := h.service.Login(c.Context(), req)
	if err != nil {
		if err == types.ErrUnauthenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid email or password",
			})
		}
		return utils.ErrorResponse(c, err)
	}

	h.setSecureCookie(c, "access", resp.Tokens.AccessToken, 8*60*60)
	h.setSecureCookie(c, "refresh", resp.Tokens.RefreshToken, 7*24*60*60)

	if h.audit != nil {
		h.audit.Log(utils.CreateSanitizedLogEntry(c))
	}

	logger.Success(fmt.Sprintf("User logged in successfully. id: %d", resp.User.ID))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Logged in successfully",
		Data:    resp,
	})
}

// Refresh rotates the refresh token and issues a new pair.
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	var req authTypes.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		// Cookie fallback for browser clients.
		req.RefreshToken = c.Cookies("refresh")
	}
	if req.RefreshToken == "" {
		req.RefreshToken = c.Cookies("refresh")
	}

	tokens, err := h.service.Refresh(c.Context(), req)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	h.setSecureCookie(c, "access", tokens.AccessToken, 8*60*60)
	h.setSecureCookie(c, "refresh", tokens.RefreshToken, 7*24*60*60)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Token refreshed",
		Data:    tokens,
	})
}

// Logout revokes the caller's refresh tokens and clears cookies.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	authUser := utils.GetAuthUser(c)
	if authUser == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authorization token missing",
		})
	}

	if err := h.service.Logout(c.Context(), authUser.UserID); err != nil {
		return utils.ErrorResponse(c, err)
	}

	h.setSecureCookie(c, "access", "", -1)
	h.setSecureCookie(c, "refresh", "", -1)

	logger.Success("Logout successful")
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Logout successful",
	})
}

// Profile returns the authenticated user's own record.
func (h *AuthController) Profile(c *fiber.Ctx) error {
	authUser := utils.GetAuthUser(c)
	if authUser == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authorization token missing",
		})
	}

	u, err := h.service.Profile(c.Context(), authUser.UserID)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile retrieved successfully",
		Data:    u,
	})
}
