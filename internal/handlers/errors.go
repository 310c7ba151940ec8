package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/go-bookstore/internal/services"
)

// respondError is the single translation point from service error kinds
// to HTTP statuses. Unknown errors are logged and collapsed to a generic
// 500 so internal text never reaches clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": "order items are required"})
	case errors.Is(err, services.ErrUserNotFound):
		// A valid session naming a missing user is conflated with a
		// malformed request, matching the original contract.
		c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
	case errors.Is(err, services.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	default:
		log.Printf("unhandled service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
