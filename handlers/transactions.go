package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"finance-tracker-go-be/database"
	"finance-tracker-go-be/middleware"
	"finance-tracker-go-be/models"
)

// TransactionRequest is the payload for POST /api/transactions.
type TransactionRequest struct {
	Amount      float64                `json:"amount" validate:"required,gte=0.01"`
	Description string                 `json:"description" validate:"required"`
	Category    string                 `json:"category" validate:"required"`
	Date        time.Time              `json:"date" validate:"required"`
	Type        models.TransactionType `json:"type" validate:"required,oneof=income expense transfer"`
}

// TransactionUpdate is the partial payload for PUT /api/transactions/:id.
// Absent fields keep their stored value.
type TransactionUpdate struct {
	Amount      *float64                `json:"amount"`
	Description *string                 `json:"description"`
	Category    *string                 `json:"category"`
	Date        *time.Time              `json:"date"`
	Type        *models.TransactionType `json:"type"`
}

// ListTransactions returns all of the requester's transactions, newest
// first.
func ListTransactions(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	transactions := []models.Transaction{}
	if err := database.DB.Where("user_id = ?", user.ID).Order("date DESC").Find(&transactions).Error; err != nil {
		return err
	}

	return c.JSON(transactions)
}

// ListMonthlyTransactions returns the requester's transactions for one
// calendar month, bounds inclusive.
func ListMonthlyTransactions(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	month, errMonth := strconv.Atoi(c.Query("month"))
	year, errYear := strconv.Atoi(c.Query("year"))
	if errMonth != nil || errYear != nil || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Month and year are required"})
	}

	start, end := models.MonthWindow(year, time.Month(month), time.Local)

	transactions := []models.Transaction{}
	err := database.DB.
		Where("user_id = ? AND date >= ? AND date <= ?", user.ID, start, end).
		Order("date DESC").
		Find(&transactions).Error
	if err != nil {
		return err
	}

	return c.JSON(transactions)
}

// CreateTransaction records a new transaction owned by the requester.
func CreateTransaction(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return badRequestErrors(c, err)
	}

	transaction := models.Transaction{
		UserID:      user.ID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
		Type:        req.Type,
	}
	if err := database.DB.Create(&transaction).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(transaction)
}

// UpdateTransaction merges the supplied fields into an owned transaction.
func UpdateTransaction(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	transaction, err := findOwnedTransaction(c, user.ID)
	if err != nil || transaction == nil {
		return err
	}

	var req TransactionUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if req.Amount != nil {
		transaction.Amount = *req.Amount
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Date != nil {
		transaction.Date = *req.Date
	}
	if req.Type != nil {
		transaction.Type = *req.Type
	}

	if err := database.DB.Save(transaction).Error; err != nil {
		return err
	}

	return c.JSON(transaction)
}

// DeleteTransaction removes an owned transaction.
func DeleteTransaction(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	transaction, err := findOwnedTransaction(c, user.ID)
	if err != nil || transaction == nil {
		return err
	}

	if err := database.DB.Delete(transaction).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Transaction removed"})
}

// findOwnedTransaction loads the :id transaction and enforces ownership.
// When it returns nil, nil the response has already been written.
func findOwnedTransaction(c *fiber.Ctx, ownerID uuid.UUID) (*models.Transaction, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Transaction not found"})
	}

	var transaction models.Transaction
	if err := database.DB.First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Transaction not found"})
		}
		return nil, err
	}

	if transaction.UserID != ownerID {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not authorized"})
	}

	return &transaction, nil
}
