package models

import (
	"fmt"
	"time"
)

type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
)

// Authorities returns the authority strings granted by this role.
func (r UserRole) Authorities() []string {
	return []string{"ROLE_" + string(r)}
}

type User struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Username   string   `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email      string   `gorm:"uniqueIndex;not null" json:"email"`
	Password   string   `gorm:"not null" json:"-"`
	Address    string   `gorm:"not null" json:"address"`
	CustomerID string   `gorm:"uniqueIndex" json:"customer_id"`
	Role       UserRole `gorm:"type:varchar(16);not null;default:CUSTOMER" json:"role"`
	Age        *int     `json:"age,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	Orders []Order `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// overridable for tests
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// NewUser builds a customer account with a freshly generated customer ID.
// The customer ID is assigned here exactly once; uniqueness is enforced
// only by the column's unique index, not by the generation scheme
// (same-millisecond creations collide).
func NewUser(username, email, passwordHash, address string, age *int) User {
	return User{
		Username:   username,
		Email:      email,
		Password:   passwordHash,
		Address:    address,
		Age:        age,
		CustomerID: generateCustomerID(),
		Role:       RoleCustomer,
	}
}

func generateCustomerID() string {
	return fmt.Sprintf("CUST%d", nowMillis())
}
