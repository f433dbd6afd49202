package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"finance-tracker-go-be/database"
	"finance-tracker-go-be/middleware"
	"finance-tracker-go-be/models"
)

// BudgetRequest is the payload for POST /api/budgets. Amount is a
// pointer so that an explicit zero ceiling is distinguishable from a
// missing field.
type BudgetRequest struct {
	Name     string              `json:"name" validate:"required"`
	Amount   *float64            `json:"amount" validate:"required,gte=0"`
	Category string              `json:"category" validate:"required"`
	Period   models.BudgetPeriod `json:"period" validate:"required,oneof=monthly yearly"`
}

// BudgetUpdate is the partial payload for PUT /api/budgets/:id.
type BudgetUpdate struct {
	Name     *string              `json:"name"`
	Amount   *float64             `json:"amount"`
	Category *string              `json:"category"`
	Period   *models.BudgetPeriod `json:"period"`
}

// ListBudgets returns the requester's budgets with Spent recomputed
// against the current accounting window and persisted. The
// read-sum-save sequence is not atomic against concurrent transaction
// writes; overlapping list calls leave whichever total was written last.
func ListBudgets(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	budgets := []models.Budget{}
	if err := database.DB.Where("user_id = ?", user.ID).Order("created_at ASC").Find(&budgets).Error; err != nil {
		return err
	}

	now := time.Now()
	for i := range budgets {
		spent, err := budgetSpent(&budgets[i], now)
		if err != nil {
			return err
		}
		budgets[i].Spent = spent
		if err := database.DB.Save(&budgets[i]).Error; err != nil {
			return err
		}
	}

	return c.JSON(budgets)
}

// budgetSpent sums the owner's expense transactions whose category
// exactly equals the budget's (case-sensitive, no normalization) and
// whose date falls inside the budget's accounting window ending at now.
func budgetSpent(b *models.Budget, now time.Time) (float64, error) {
	start, end := models.BudgetWindow(b.Period, now)

	var expenses []models.Transaction
	err := database.DB.
		Where("user_id = ? AND type = ? AND category = ? AND date >= ? AND date <= ?",
			b.UserID, models.TypeExpense, b.Category, start, end).
		Find(&expenses).Error
	if err != nil {
		return 0, err
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total, nil
}

// CreateBudget creates a budget after checking the requester has no
// other budget for the same category and period.
func CreateBudget(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req BudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return badRequestErrors(c, err)
	}

	var existing models.Budget
	err := database.DB.First(&existing, "user_id = ? AND category = ? AND period = ?",
		user.ID, req.Category, req.Period).Error
	if err == nil {
		return budgetConflict(c, req.Category, req.Period)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	budget := models.Budget{
		UserID:   user.ID,
		Name:     req.Name,
		Amount:   *req.Amount,
		Category: req.Category,
		Period:   req.Period,
	}
	if err := database.DB.Create(&budget).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(budget)
}

// UpdateBudget merges the supplied fields into an owned budget. When the
// category or period changes, the uniqueness check runs again against
// every other budget of the requester.
func UpdateBudget(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	budget, err := findOwnedBudget(c, user.ID)
	if err != nil || budget == nil {
		return err
	}

	var req BudgetUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	category := budget.Category
	if req.Category != nil {
		category = *req.Category
	}
	period := budget.Period
	if req.Period != nil {
		period = *req.Period
	}

	if category != budget.Category || period != budget.Period {
		var existing models.Budget
		err := database.DB.First(&existing, "user_id = ? AND category = ? AND period = ? AND id <> ?",
			user.ID, category, period, budget.ID).Error
		if err == nil {
			return budgetConflict(c, category, period)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	if req.Name != nil {
		budget.Name = *req.Name
	}
	if req.Amount != nil {
		budget.Amount = *req.Amount
	}
	budget.Category = category
	budget.Period = period

	if err := database.DB.Save(budget).Error; err != nil {
		return err
	}

	return c.JSON(budget)
}

// DeleteBudget removes an owned budget.
func DeleteBudget(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	budget, err := findOwnedBudget(c, user.ID)
	if err != nil || budget == nil {
		return err
	}

	if err := database.DB.Delete(budget).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Budget removed"})
}

func budgetConflict(c *fiber.Ctx, category string, period models.BudgetPeriod) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": fmt.Sprintf("A budget already exists for %s (%s)", category, period),
	})
}

// findOwnedBudget loads the :id budget and enforces ownership. When it
// returns nil, nil the response has already been written.
func findOwnedBudget(c *fiber.Ctx, ownerID uuid.UUID) (*models.Budget, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Budget not found"})
	}

	var budget models.Budget
	if err := database.DB.First(&budget, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Budget not found"})
		}
		return nil, err
	}

	if budget.UserID != ownerID {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not authorized"})
	}

	return &budget, nil
}
