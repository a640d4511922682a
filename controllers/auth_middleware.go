package controllers

import (
	"net/http"
	"strings"

	dbpkg "crosscheck/db"
	"crosscheck/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ctxUserKey = "auth_user"
const ctxLandlordKey = "auth_landlord"

// AuthRequired validates the Bearer token, loads the user and its
// landlord record, and stores both in the context. A valid token with
// no landlord behind it is rejected here instead of blowing up later
// inside a handler.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
			RespondError(c, "missing bearer token", http.StatusUnauthorized)
			c.Abort()
			return
		}
		raw := strings.TrimSpace(h[len("Bearer "):])

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			return []byte(getJWTSecret()), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			RespondError(c, "invalid token", http.StatusUnauthorized)
			c.Abort()
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok || sub <= 0 {
			RespondError(c, "invalid token", http.StatusUnauthorized)
			c.Abort()
			return
		}

		db := dbpkg.DBInstance(c)
		if db == nil {
			RespondError(c, "db not configured in context", http.StatusInternalServerError)
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, int64(sub)).Error; err != nil {
			RespondError(c, "user not found", http.StatusUnauthorized)
			c.Abort()
			return
		}

		var landlord models.Landlord
		if err := db.Where("user_id = ?", user.ID).First(&landlord).Error; err != nil {
			RespondError(c, "no landlord for user", http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxLandlordKey, landlord)
		c.Next()
	}
}

// GetUserLogged returns the user loaded by AuthRequired.
func GetUserLogged(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// CurrentLandlord returns the landlord resolved by AuthRequired. Every
// list and detail operation is scoped to this record.
func CurrentLandlord(c *gin.Context) (models.Landlord, bool) {
	v, ok := c.Get(ctxLandlordKey)
	if !ok {
		return models.Landlord{}, false
	}
	landlord, ok := v.(models.Landlord)
	return landlord, ok
}
