package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bikeshop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/bikeshop_backoffice/internal/dto"
	"github.com/SscSPs/bikeshop_backoffice/internal/middleware"
	"github.com/SscSPs/bikeshop_backoffice/internal/utils"
	"github.com/gin-gonic/gin"
)

type serviceOrderHandler struct {
	orderService portssvc.ServiceOrderSvcFacade
	posthog      *utils.PosthogClientWrapper
}

func newServiceOrderHandler(svc portssvc.ServiceOrderSvcFacade, posthog *utils.PosthogClientWrapper) *serviceOrderHandler {
	return &serviceOrderHandler{orderService: svc, posthog: posthog}
}

func registerServiceOrderRoutes(rg *gin.RouterGroup, orderService portssvc.ServiceOrderSvcFacade, posthog *utils.PosthogClientWrapper) {
	h := newServiceOrderHandler(orderService, posthog)

	orders := rg.Group("/service-orders")
	{
		orders.POST("", h.createServiceOrder)
		orders.GET("", h.listServiceOrders)
		orders.GET("/:orderID", h.getServiceOrder)
		orders.PATCH("/:orderID/status", h.updateServiceOrderStatus)
		orders.POST("/:orderID/complete", h.completeServiceOrder)
	}
}

// createServiceOrder godoc
// @Summary Open a service order
// @Tags service-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body dto.CreateServiceOrderRequest true "Order details"
// @Success 201 {object} dto.ServiceOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /service-orders [post]
func (h *serviceOrderHandler) createServiceOrder(c *gin.Context) {
	var req dto.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	order, err := h.orderService.CreateServiceOrder(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create service order")
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceOrderResponse(order))
}

// listServiceOrders godoc
// @Summary List service orders
// @Tags service-orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Order status" Enums(aberta, em_andamento, concluida, cancelada)
// @Param customerID query string false "Customer ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.ServiceOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /service-orders [get]
func (h *serviceOrderHandler) listServiceOrders(c *gin.Context) {
	var params dto.ListServiceOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	orders, err := h.orderService.ListServiceOrders(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "Failed to list service orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceOrderResponses(orders))
}

// getServiceOrder godoc
// @Summary Get a service order
// @Tags service-orders
// @Produce json
// @Security BearerAuth
// @Param orderID path string true "Service order ID"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /service-orders/{orderID} [get]
func (h *serviceOrderHandler) getServiceOrder(c *gin.Context) {
	order, err := h.orderService.GetServiceOrderByID(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve service order")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceOrderResponse(order))
}

// updateServiceOrderStatus godoc
// @Summary Change the status of an open order
// @Description Moves an order between aberta, em_andamento and cancelada. Use the complete endpoint to close it.
// @Tags service-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderID path string true "Service order ID"
// @Param status body dto.UpdateServiceOrderStatusRequest true "New status"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /service-orders/{orderID}/status [patch]
func (h *serviceOrderHandler) updateServiceOrderStatus(c *gin.Context) {
	var req dto.UpdateServiceOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	order, err := h.orderService.UpdateServiceOrderStatus(c.Request.Context(), c.Param("orderID"), req.Status, userID)
	if err != nil {
		respondWithError(c, err, "Failed to update service order")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceOrderResponse(order))
}

// completeServiceOrder godoc
// @Summary Complete a service order
// @Description Closes the order and records the receivables for the chosen payment method. Store credit may carry a down payment and installments.
// @Tags service-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderID path string true "Service order ID"
// @Param settlement body dto.CompleteServiceOrderRequest true "Settlement terms"
// @Success 200 {object} dto.CompleteServiceOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Order already completed"
// @Failure 500 {object} ErrorResponse
// @Router /service-orders/{orderID}/complete [post]
func (h *serviceOrderHandler) completeServiceOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CompleteServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	orderID := c.Param("orderID")

	order, txns, err := h.orderService.CompleteServiceOrder(c.Request.Context(), orderID, req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to complete service order")
		return
	}

	logger.Info("Service order completed",
		slog.String("order_id", orderID),
		slog.String("payment_method", string(req.PaymentMethod)),
		slog.Int("transactions", len(txns)))
	middleware.PosthogEvent(c, h.posthog, "service_order_completed", map[string]any{
		"order_id":       orderID,
		"payment_method": string(req.PaymentMethod),
		"transactions":   len(txns),
		"total":          order.TotalPrice.String(),
	})

	c.JSON(http.StatusOK, dto.CompleteServiceOrderResponse{
		ServiceOrder: dto.ToServiceOrderResponse(order),
		Transactions: dto.ToTransactionResponses(txns),
	})
}
