package handlers

import (
	"net/http"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

type ExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"75.50"`
	Date        time.Time       `json:"date" binding:"required"`
}

func (r *ExpenseRequest) toModel() *models.Expense {
	return &models.Expense{Description: r.Description, Amount: r.Amount, Date: r.Date}
}

// @Summary List Expenses
// @Tags Expenses
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search in description"
// @Param start_date query string false "From date (YYYY-MM-DD)"
// @Param end_date query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Router /expenses [get]
func (h *ExpenseHandler) Index(c *gin.Context) {
	query := listQuery(c, "start_date", "end_date")
	expenses, total, err := h.expenseService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses, "pagination": pagination(query, total)})
}

// @Summary Get Expense
// @Tags Expenses
// @Produce json
// @Param expense_id path int true "Expense ID"
// @Success 200 {object} models.Expense
// @Router /expenses/{expense_id} [get]
func (h *ExpenseHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "expense_id")
	if !ok {
		return
	}
	expense, err := h.expenseService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// @Summary Create Expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body ExpenseRequest true "Expense data"
// @Success 201 {object} models.Expense
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req ExpenseRequest
	if !bindRequest(c, "expense", &req) {
		return
	}
	expense := req.toModel()
	if err := h.expenseService.Create(c.Request.Context(), expense); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// @Summary Update Expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param expense_id path int true "Expense ID"
// @Param request body ExpenseRequest true "Expense data"
// @Success 200 {object} models.Expense
// @Router /expenses/{expense_id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "expense_id")
	if !ok {
		return
	}
	var req ExpenseRequest
	if !bindRequest(c, "expense", &req) {
		return
	}
	expense, err := h.expenseService.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// @Summary Delete Expense
// @Tags Expenses
// @Produce json
// @Param expense_id path int true "Expense ID"
// @Success 200 {object} map[string]string
// @Router /expenses/{expense_id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "expense_id")
	if !ok {
		return
	}
	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

type InventoryItemRequest struct {
	Name         string          `json:"name" binding:"required"`
	Quantity     int             `json:"quantity" binding:"gte=0"`
	UnitCost     decimal.Decimal `json:"unit_cost" swaggertype:"string" example:"3.20"`
	ReorderLevel int             `json:"reorder_level" binding:"gte=0"`
}

func (r *InventoryItemRequest) toModel() *models.InventoryItem {
	return &models.InventoryItem{Name: r.Name, Quantity: r.Quantity, UnitCost: r.UnitCost, ReorderLevel: r.ReorderLevel}
}

type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// @Summary List Inventory
// @Tags Inventory
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name"
// @Param low_stock query bool false "Only items at or below their reorder level"
// @Success 200 {object} map[string]interface{}
// @Router /inventory [get]
func (h *InventoryHandler) Index(c *gin.Context) {
	query := listQuery(c, "low_stock")
	items, total, err := h.inventoryService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "pagination": pagination(query, total)})
}

// @Summary Get Inventory Item
// @Tags Inventory
// @Produce json
// @Param item_id path int true "Item ID"
// @Success 200 {object} models.InventoryItem
// @Router /inventory/{item_id} [get]
func (h *InventoryHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	item, err := h.inventoryService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// @Summary Create Inventory Item
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body InventoryItemRequest true "Item data"
// @Success 201 {object} models.InventoryItem
// @Router /inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req InventoryItemRequest
	if !bindRequest(c, "item", &req) {
		return
	}
	item := req.toModel()
	if err := h.inventoryService.Create(c.Request.Context(), item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// @Summary Update Inventory Item
// @Tags Inventory
// @Accept json
// @Produce json
// @Param item_id path int true "Item ID"
// @Param request body InventoryItemRequest true "Item data"
// @Success 200 {object} models.InventoryItem
// @Router /inventory/{item_id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	var req InventoryItemRequest
	if !bindRequest(c, "item", &req) {
		return
	}
	item, err := h.inventoryService.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// @Summary Adjust Stock
// @Description Add (positive delta) or consume (negative delta) stock; stock never goes below zero
// @Tags Inventory
// @Accept json
// @Produce json
// @Param item_id path int true "Item ID"
// @Param request body AdjustStockRequest true "Quantity change"
// @Success 200 {object} models.InventoryItem
// @Failure 409 {object} map[string]string
// @Router /inventory/{item_id}/adjust [post]
func (h *InventoryHandler) Adjust(c *gin.Context) {
	id, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	var req AdjustStockRequest
	if !bindRequest(c, "adjustment", &req) {
		return
	}
	item, err := h.inventoryService.AdjustStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// @Summary Delete Inventory Item
// @Tags Inventory
// @Produce json
// @Param item_id path int true "Item ID"
// @Success 200 {object} map[string]string
// @Router /inventory/{item_id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	if err := h.inventoryService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// @Summary List Audit Logs
// @Description Get a paginated list of audit logs, newest first
// @Tags Audit
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(50)
// @Param entity query string false "Filter by entity, e.g. payment"
// @Param action query string false "Filter by action, e.g. RECORD_PAYMENT"
// @Success 200 {object} map[string]interface{}
// @Router /audits [get]
func (h *AuditHandler) Index(c *gin.Context) {
	query := listQuery(c, "entity", "action")
	if c.Query("per_page") == "" {
		query.PerPage = 50
	}

	logs, total, err := h.auditService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audits": logs, "pagination": pagination(query, total)})
}
