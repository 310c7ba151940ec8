package auth

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/go-bookstore/internal/models"
	"github.com/Keoroanthony/go-bookstore/internal/services"
)

const (
	sessionUsernameKey = "username"
	sessionRoleKey     = "role"

	principalContextKey = "principal"
)

// Principal is the request-scoped identity handed to handlers by
// RequireAuth. Authorization is a flat membership test on Authorities.
type Principal struct {
	Username    string
	Authorities []string
}

func (p *Principal) HasAuthority(authority string) bool {
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// CurrentPrincipal returns the identity set by RequireAuth, if any.
func CurrentPrincipal(c *gin.Context) (*Principal, bool) {
	v, exists := c.Get(principalContextKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────────────────────────────────────

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Address  string `json:"address" binding:"required"`
	Age      *int   `json:"age"`
}

// POST /auth/register
func Register(c *gin.Context) {

	var req RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RegisterUser(services.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Age:      req.Age,
	})

	if err != nil {
		switch err {
		case services.ErrUsernameTaken, services.ErrEmailTaken:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("registration failed for %s: %v", req.Username, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		}
		return
	}

	log.Printf("user %s registered with customer id %s", user.Username, user.CustomerID)

	c.JSON(http.StatusCreated, user)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func Login(c *gin.Context) {

	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := services.AuthenticateUser(req.Username, req.Password)

	if err != nil {
		if err == services.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		log.Printf("login failed for %s: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	sess := sessions.Default(c)
	sess.Set(sessionUsernameKey, user.Username)
	sess.Set(sessionRoleKey, string(user.Role))

	if err := sess.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged in", "user": user})
}

// POST /auth/logout
func Logout(c *gin.Context) {

	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Guards
// ─────────────────────────────────────────────────────────────────────────────

// RequireAuth rejects requests without a session identity and injects a
// *Principal into the context for handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {

		sess := sessions.Default(c)

		username, ok := sess.Get(sessionUsernameKey).(string)
		if !ok || username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		role, _ := sess.Get(sessionRoleKey).(string)

		c.Set(principalContextKey, &Principal{
			Username:    username,
			Authorities: models.UserRole(role).Authorities(),
		})
		c.Next()
	}
}

// RequireAdmin runs after RequireAuth and rejects callers whose
// authority set lacks the exact string "ROLE_ADMIN".
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {

		p, ok := CurrentPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		if !p.HasAuthority("ROLE_ADMIN") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		c.Next()
	}
}
