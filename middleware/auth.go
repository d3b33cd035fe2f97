package middleware

import (
	"fmt"
	"os"
	"strings"

	"emptyleg-marketplace/constants"
	"emptyleg-marketplace/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// RequireRoles creates a middleware allowing only the given roles.
func RequireRoles(roles ...string) fiber.Handler {
	return IsAuthenticated(roles)
}

// RequireAuthentication only requires a valid token, any role.
func RequireAuthentication() fiber.Handler {
	return IsAuthenticated([]string{constants.RoleAny})
}

// IsAuthenticated checks for a valid access token and one of the required
// roles, then attaches the resolved identity to the request context.
func IsAuthenticated(requiredRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Authorization token missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		authUser, err := verifyAccessToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Invalid or expired token",
				Status:  fiber.StatusUnauthorized,
			})
		}

		if !roleAllowed(authUser.Role, requiredRoles) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Insufficient permissions",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals("auth", authUser)
		return c.Next()
	}
}

// OptionalAuth resolves the caller when a token is present but lets
// anonymous requests through. Public flight and airport listings use it.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := extractToken(c); token != "" {
			if authUser, err := verifyAccessToken(token); err == nil {
				c.Locals("auth", authUser)
			}
		}
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			return tokenParts[1]
		}
		return ""
	}
	// Cookie fallback for browser clients.
	return c.Cookies("access")
}

func verifyAccessToken(tokenString string) (*types.AuthUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}
	if tokenType, _ := claims["type"].(string); tokenType != "access" {
		return nil, fmt.Errorf("not an access token")
	}

	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return nil, fmt.Errorf("user id missing in token")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return nil, fmt.Errorf("role missing in token")
	}

	return &types.AuthUser{UserID: uint(uid), Role: role}, nil
}

func roleAllowed(role string, requiredRoles []string) bool {
	for _, required := range requiredRoles {
		if required == constants.RoleAny || required == role {
			return true
		}
	}
	return false
}
