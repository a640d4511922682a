package controllers

import (
	"net/http"
	"time"

	dbpkg "crosscheck/db"
	"crosscheck/models"
	"crosscheck/tools"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// getJWTSecret prefers the JWT_SECRET env var so the secret can change
// without editing config.json, then falls back to the configured value.
func getJWTSecret() string {
	if v := getenv("JWT_SECRET", ""); v != "" {
		return v
	}
	if conf.Security.JwtSecret != "" {
		return conf.Security.JwtSecret
	}
	return "CHANGE_ME"
}

func tokenHoursValid() int {
	if conf.Security.TokenHoursValid > 0 {
		return getenvInt("JWT_HOURS_VALID", conf.Security.TokenHoursValid)
	}
	return getenvInt("JWT_HOURS_VALID", 24)
}

// Register creates the User and its Landlord record in one
// transaction. Every account is a landlord in this system.
func Register(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	user := models.User{}
	if err := c.Bind(&user); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	missing := user.MissingFields()
	if missing != "" {
		RespondError(c, "missing field "+missing, http.StatusBadRequest)
		return
	}

	if !tools.ValidateEmail(user.Email) {
		RespondError(c, "invalid email", http.StatusBadRequest)
		return
	}

	var existing models.User
	if err := db.Where("username = ? OR email = ?", user.Username, user.Email).First(&existing).Error; err == nil {
		RespondError(c, "user already exists", http.StatusConflict)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	user.Password = string(hash)

	tx := db.Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	landlord := models.Landlord{UserID: user.ID}
	if err := tx.Create(&landlord).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := signToken(user)
	if err != nil {
		RespondError(c, "could not sign token", http.StatusInternalServerError)
		return
	}

	user.Password = ""
	RespondCreated(c, LoginResponse{Token: token, User: user})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		RespondError(c, "username and password are required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	var user models.User
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		RespondError(c, "invalid username or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		RespondError(c, "invalid username or password", http.StatusUnauthorized)
		return
	}

	token, err := signToken(user)
	if err != nil {
		RespondError(c, "could not sign token", http.StatusInternalServerError)
		return
	}

	user.Password = ""
	RespondSuccess(c, LoginResponse{Token: token, User: user})
}

func signToken(user models.User) (string, error) {
	hours := tokenHoursValid()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Duration(hours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(getJWTSecret()))
}
