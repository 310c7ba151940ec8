package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/go-bookstore/internal/auth"
	"github.com/Keoroanthony/go-bookstore/internal/models"
	"github.com/Keoroanthony/go-bookstore/internal/notifier"
	"github.com/Keoroanthony/go-bookstore/internal/services"
)

type OrderItemRequest struct {
	BookID   uint `json:"book_id" binding:"required"`
	Quantity uint `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	ShippingAddress string             `json:"shipping_address" binding:"required"`
}

// POST /api/orders
func CreateOrder(c *gin.Context) {

	p, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req CreateOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order items are required"})
		return
	}

	user, err := services.FindUserByUsername(p.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]services.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.OrderItemInput{
			BookID:   item.BookID,
			Quantity: item.Quantity,
		})
	}

	order, err := services.CreateOrder(user, items, req.ShippingAddress)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("order %d created for user %s with %d items", order.ID, user.Username, len(order.Items))

	go func(email, name string, order models.Order) {
		if err := notifier.SendOrderConfirmation(email, name, &order); err != nil {
			log.Printf("failed to send confirmation for order %d to %s: %v", order.ID, email, err)
		}
	}(user.Email, user.Username, *order)

	c.JSON(http.StatusOK, order)
}

// GET /api/orders/user
func GetUserOrders(c *gin.Context) {

	p, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	user, err := services.FindUserByUsername(p.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	orders, err := services.GetUserOrders(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GET /api/orders/admin
func GetAllOrders(c *gin.Context) {

	orders, err := services.GetAllOrders()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// PUT /api/orders/:id/status
func UpdateOrderStatus(c *gin.Context) {

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req UpdateOrderStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
		return
	}

	order, err := services.UpdateOrderStatus(uint(orderID), status)
	if err != nil {
		respondError(c, err)
		return
	}

	if p, ok := auth.CurrentPrincipal(c); ok {
		log.Printf("order %d status updated to %s by admin %s", order.ID, status, p.Username)
	}

	c.JSON(http.StatusOK, order)
}

// DELETE /api/orders/:id
func DeleteOrder(c *gin.Context) {

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	if err := services.DeleteOrder(uint(orderID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}
