package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kassa/internal/errors"
	"kassa/internal/pagination"
	"kassa/internal/services"
)

// PaymentHandler handles payment-related requests.
type PaymentHandler struct {
	paymentService services.PaymentServicer
	auditService   services.AuditServicer
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService services.PaymentServicer, auditService services.AuditServicer) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, auditService: auditService}
}

// CreatePaymentRequest represents the request payload for creating a payment.
// Amount is the user-facing major-unit string; the formatter validates it.
type CreatePaymentRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Amount     string `json:"amount" binding:"required"`
	CategoryID string `json:"category_id" binding:"required,uuid"`
	Date       string `json:"date"`
	Quantity   *int   `json:"quantity" binding:"omitempty,min=1"`
	Grams      *int   `json:"grams" binding:"omitempty,min=1"`
}

// UpdatePaymentRequest represents the request payload for editing a payment.
type UpdatePaymentRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=255"`
	Amount     *string `json:"amount"`
	CategoryID *string `json:"category_id" binding:"omitempty,uuid"`
	Date       *string `json:"date"`
	Quantity   *int    `json:"quantity" binding:"omitempty,min=1"`
	Grams      *int    `json:"grams" binding:"omitempty,min=1"`
}

// CreatePayment handles the creation of a new payment
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = parseDate(req.Date)
		if err != nil {
			respondWithError(c, err)
			return
		}
	}

	payment, err := h.paymentService.CreatePayment(userID, req.Name, req.Amount, req.CategoryID, date, req.Quantity, req.Grams)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_PAYMENT", "payment", payment.ID, c.ClientIP(),
		map[string]any{"amount": payment.Amount, "category_id": payment.CategoryID})

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

// ListPayments returns a paginated list of the user's payments,
// optionally bounded to a year or a year+month.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	window, err := parseWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.paymentService.ListPayments(userID, window, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": result})
}

// GetPaymentByID returns a single payment
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	payment, err := h.paymentService.GetPaymentByID(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// UpdatePayment edits an existing payment
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.PaymentUpdate{
		Name:       req.Name,
		Amount:     req.Amount,
		CategoryID: req.CategoryID,
		Quantity:   req.Quantity,
		Grams:      req.Grams,
	}
	if req.Date != nil && *req.Date != "" {
		date, parseErr := parseDate(*req.Date)
		if parseErr != nil {
			respondWithError(c, parseErr)
			return
		}
		update.Date = &date
	}

	payment, err := h.paymentService.UpdatePayment(userID, c.Param("id"), update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PAYMENT", "payment", payment.ID, c.ClientIP(),
		map[string]any{"amount": payment.Amount, "category_id": payment.CategoryID})

	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// DeletePayment removes a payment
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paymentID := c.Param("id")
	if err := h.paymentService.DeletePayment(userID, paymentID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_PAYMENT", "payment", paymentID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}
