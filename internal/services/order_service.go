package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/Keoroanthony/go-bookstore/internal/db"
	"github.com/Keoroanthony/go-bookstore/internal/models"
)

type OrderItemInput struct {
	BookID   uint
	Quantity uint
}

// CreateOrder persists an order and its items in one transaction. Each
// item's price is snapshotted from the book's current price and never
// updated afterwards.
func CreateOrder(user *models.User, items []OrderItemInput, shippingAddress string) (*models.Order, error) {

	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	tx := db.DB.Begin()

	if tx.Error != nil {
		return nil, tx.Error
	}

	order := models.Order{
		UserID:          user.ID,
		ShippingAddress: shippingAddress,
		Status:          models.OrderStatusPending,
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var orderItems []models.OrderItem

	for _, item := range items {

		var book models.Book

		if err := tx.First(&book, item.BookID).Error; err != nil {
			tx.Rollback()

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: id %d", ErrBookNotFound, item.BookID)
			}
			return nil, err
		}

		orderItems = append(orderItems, models.OrderItem{
			OrderID:  order.ID,
			BookID:   book.ID,
			Quantity: item.Quantity,
			Price:    book.Price,
		})
	}

	if err := tx.CreateInBatches(&orderItems, len(orderItems)).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Preload("Items").First(&order, order.ID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &order, nil
}

// GetUserOrders returns the caller's full order history, newest first.
// No pagination.
func GetUserOrders(user *models.User) ([]models.Order, error) {

	var orders []models.Order
	err := db.DB.
		Preload("Items").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func GetAllOrders() ([]models.Order, error) {

	var orders []models.Order
	err := db.DB.
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateOrderStatus sets the order's status. Transition legality is not
// checked; any known status may follow any other.
func UpdateOrderStatus(orderID uint, status models.OrderStatus) (*models.Order, error) {

	var order models.Order

	if err := db.DB.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := db.DB.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}

	log.Printf("order %d status updated to %s", order.ID, status)

	return &order, nil
}

// DeleteOrder removes an order and its items under one transaction,
// items first.
func DeleteOrder(orderID uint) error {

	tx := db.DB.Begin()

	if tx.Error != nil {
		return tx.Error
	}

	var order models.Order

	if err := tx.First(&order, orderID).Error; err != nil {
		tx.Rollback()

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
