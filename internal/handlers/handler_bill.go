package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
	"github.com/SscSPs/bikeshop_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

type billHandler struct {
	billService portssvc.BillSvcFacade
}

func newBillHandler(bs portssvc.BillSvcFacade) *billHandler {
	return &billHandler{billService: bs}
}

func registerBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade) {
	h := newBillHandler(billService)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.POST("/sweep-overdue", h.sweepOverdue)
		bills.GET("/:billID", h.getBill)
		bills.POST("/:billID/pay", h.payBill)
		bills.POST("/:billID/cancel", h.cancelBill)
		bills.POST("/:billID/duplicate", h.duplicateBill)
	}
}

// createBill godoc
// @Summary Create a bill or salary entry
// @Description For kind "salario" the amount is the net salary (base + bonuses - deductions).
// @Tags bills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bill body dto.CreateBillRequest true "Bill"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create bill")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// listBills godoc
// @Summary List bills
// @Tags bills
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status" Enums(pendente, pago, atrasado, cancelado)
// @Param kind query string false "Kind" Enums(conta, salario)
// @Param from query string false "Due from (YYYY-MM-DD)"
// @Param to query string false "Due until (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.BillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	var params dto.ListBillsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	bills, err := h.billService.ListBills(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "Failed to list bills")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponses(bills))
}

// getBill godoc
// @Summary Get a bill
// @Tags bills
// @Produce json
// @Security BearerAuth
// @Param billID path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bills/{billID} [get]
func (h *billHandler) getBill(c *gin.Context) {
	bill, err := h.billService.GetBillByID(c.Request.Context(), c.Param("billID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// payBill godoc
// @Summary Pay a bill
// @Tags bills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param billID path string true "Bill ID"
// @Param payment body dto.PayBillRequest false "Payment date, defaults to today"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bills/{billID}/pay [post]
func (h *billHandler) payBill(c *gin.Context) {
	var req dto.PayBillRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
			return
		}
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	bill, err := h.billService.PayBill(c.Request.Context(), c.Param("billID"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to pay bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// cancelBill godoc
// @Summary Cancel a bill
// @Tags bills
// @Produce json
// @Security BearerAuth
// @Param billID path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bills/{billID}/cancel [post]
func (h *billHandler) cancelBill(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	bill, err := h.billService.CancelBill(c.Request.Context(), c.Param("billID"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to cancel bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// duplicateBill godoc
// @Summary Create the next occurrence of a bill
// @Description Copies the bill as a new pending bill due one month after the original, or on nextDueDate when given.
// @Tags bills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param billID path string true "Bill ID"
// @Param next body dto.DuplicateBillRequest false "Next due date"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bills/{billID}/duplicate [post]
func (h *billHandler) duplicateBill(c *gin.Context) {
	var req dto.DuplicateBillRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
			return
		}
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	bill, err := h.billService.DuplicateBill(c.Request.Context(), c.Param("billID"), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to duplicate bill")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// sweepOverdue godoc
// @Summary Mark overdue bills
// @Description Moves pending bills due before today to atrasado. Bills without a due date are reported as skipped.
// @Tags bills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SweepOverdueResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bills/sweep-overdue [post]
func (h *billHandler) sweepOverdue(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.billService.SweepOverdue(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to sweep overdue bills")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Overdue sweep finished",
		slog.Int("changed", len(result.Changed)),
		slog.Int("skipped", len(result.Skipped)))

	resp := dto.SweepOverdueResponse{
		AsOf:    result.AsOf.Format(dto.DateLayout),
		Changed: result.Changed,
		Skipped: result.Skipped,
	}
	if resp.Changed == nil {
		resp.Changed = []string{}
	}
	if resp.Skipped == nil {
		resp.Skipped = []string{}
	}
	c.JSON(http.StatusOK, resp)
}
