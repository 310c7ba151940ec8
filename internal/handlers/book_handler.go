package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Keoroanthony/go-bookstore/internal/db"
	"github.com/Keoroanthony/go-bookstore/internal/models"
)

type CreateBookRequest struct {
	Title  string          `json:"title" binding:"required"`
	Author string          `json:"author" binding:"required"`
	Price  decimal.Decimal `json:"price" binding:"required"`
	Stock  uint            `json:"stock"`
}

// POST /api/books
func CreateBook(c *gin.Context) {

	var req CreateBookRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !req.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than zero"})
		return
	}

	book := models.Book{
		Title:  req.Title,
		Author: req.Author,
		Price:  req.Price,
		Stock:  req.Stock,
	}

	if err := db.DB.Create(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create book"})
		return
	}

	c.JSON(http.StatusCreated, book)
}

// GET /api/books
func ListBooks(c *gin.Context) {

	var books []models.Book

	if err := db.DB.Order("title").Find(&books).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list books"})
		return
	}

	c.JSON(http.StatusOK, books)
}
