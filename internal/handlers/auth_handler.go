// ba-dashboard/internal/handlers/auth_handler.go

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ba-dashboard/config"
	"ba-dashboard/models"
)

const sessionDuration = 12 * time.Hour

// LoginInput is the login form payload.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ShowLoginPage tells unauthenticated clients where to go; the dashboard
// frontend renders the actual form.
func ShowLoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "BA finance dashboard",
		"login":   "POST /login",
	})
}

// LoginHandler verifies the login form against the roster. Success issues the
// session cookie and records SUCCESS; failure records FAILED and answers 401.
// Either way the attempt lands in the access log before the response goes out.
func LoginHandler(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	if !Verifier.Verify(input.Username, input.Password) {
		AccessLog.Log(input.Username, models.StatusFailed)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	loginTime := time.Now().Format(models.TimeLayout)
	claims := jwt.MapClaims{
		"username":   input.Username,
		"login_time": loginTime,
		"jti":        uuid.NewString(),
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(sessionDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(config.JwtKey)
	if err != nil {
		slog.Error("Could not sign session token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session"})
		return
	}

	AccessLog.Log(input.Username, models.StatusSuccess)

	c.SetCookie("auth_token", tokenStr, int(sessionDuration.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"username":  input.Username,
		"loginTime": loginTime,
		"token":     tokenStr,
	})
}

// LogoutHandler records LOGOUT and expires the session cookie. The state
// machine is cyclic: the user lands back at ANONYMOUS and can log in again.
func LogoutHandler(c *gin.Context) {
	if username := c.GetString("username"); username != "" {
		AccessLog.Log(username, models.StatusLogout)
	}
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// SessionHandler returns the authenticated session state set by the
// middleware.
func SessionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"username":      c.GetString("username"),
		"loginTime":     c.GetString("login_time"),
	})
}
