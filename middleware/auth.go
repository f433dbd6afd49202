package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"finance-tracker-go-be/auth"
	"finance-tracker-go-be/database"
	"finance-tracker-go-be/models"
)

const userKey = "currentUser"

// Protect verifies the bearer token and attaches the authenticated user
// to the request. A valid token whose user has since been deleted is
// treated the same as a bad token.
func Protect(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, no token"})
	}

	userID, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		msg := "Not authorized, token failed"
		if errors.Is(err, auth.ErrExpiredToken) {
			msg = "Not authorized, token expired"
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": msg})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, user not found"})
		}
		return err
	}

	c.Locals(userKey, &user)
	return c.Next()
}

// CurrentUser returns the user Protect attached to the request. Only
// valid on routes behind Protect.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}
