package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
)

type ExpenseService struct {
	repo    repository.ExpenseRepository
	audit   *AuditService
	timeout time.Duration
}

func NewExpenseService(repo repository.ExpenseRepository, audit *AuditService, timeout time.Duration) *ExpenseService {
	return &ExpenseService{repo: repo, audit: audit, timeout: timeout}
}

func validateExpense(e *models.Expense) error {
	e.Description = strings.TrimSpace(e.Description)
	if e.Description == "" {
		return validationError("description is required")
	}
	if e.Amount.IsNegative() {
		return validationError("amount must not be negative")
	}
	e.Amount = e.Amount.RoundBank(2)
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	return nil
}

func (s *ExpenseService) FindByID(ctx context.Context, id uint) (*models.Expense, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	expense, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("expense %d", id))
	}
	return expense, nil
}

func (s *ExpenseService) List(ctx context.Context, query *repository.ListQuery) ([]models.Expense, int64, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	expenses, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, 0, translateError(err, "expenses")
	}
	return expenses, total, nil
}

func (s *ExpenseService) Create(ctx context.Context, expense *models.Expense) error {
	if err := validateExpense(expense); err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Create(ctx, expense); err != nil {
		return translateError(err, "expense")
	}
	s.audit.Record(ctx, models.AuditActionCreate, "expense", expense.ID, map[string]any{"amount": expense.Amount})
	return nil
}

func (s *ExpenseService) Update(ctx context.Context, id uint, expense *models.Expense) (*models.Expense, error) {
	if err := validateExpense(expense); err != nil {
		return nil, err
	}
	expense.ID = id

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, translateError(err, fmt.Sprintf("expense %d", id))
	}
	s.audit.Record(ctx, models.AuditActionUpdate, "expense", id, map[string]any{"amount": expense.Amount})
	return s.FindByID(ctx, id)
}

func (s *ExpenseService) Delete(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return translateError(err, fmt.Sprintf("expense %d", id))
	}
	s.audit.Record(ctx, models.AuditActionDelete, "expense", id, nil)
	return nil
}
