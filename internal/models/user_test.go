package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {

	t.Run("Assigns a CUST-prefixed customer ID and the customer role", func(t *testing.T) {
		age := 30
		user := NewUser("alice", "alice@example.com", "hashed", "1 Main St", &age)

		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, RoleCustomer, user.Role)
		assert.Regexp(t, `^CUST\d+$`, user.CustomerID)
	})

	t.Run("Customer IDs collide when created within the same millisecond", func(t *testing.T) {
		// The generator is time-based. Uniqueness is only enforced by the
		// database's unique index, so a frozen clock must produce equal IDs.
		original := nowMillis
		nowMillis = func() int64 { return 1700000000000 }
		t.Cleanup(func() { nowMillis = original })

		first := NewUser("u1", "u1@example.com", "h", "addr", nil)
		second := NewUser("u2", "u2@example.com", "h", "addr", nil)

		assert.Equal(t, "CUST1700000000000", first.CustomerID)
		assert.Equal(t, first.CustomerID, second.CustomerID)
	})
}

func TestUserRoleAuthorities(t *testing.T) {
	assert.Equal(t, []string{"ROLE_CUSTOMER"}, RoleCustomer.Authorities())
	assert.Equal(t, []string{"ROLE_ADMIN"}, RoleAdmin.Authorities())
}
