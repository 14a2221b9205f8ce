package apitest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/priyanka857/Major-Project-1/internal/api"
)

const ctxUser = "auth_user"

func (s *Server) issueToken(u api.User) string {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"isAdmin": u.IsAdmin,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	return tok
}

// auth validates the bearer token; adminOnly additionally requires the admin
// claim. Error messages mirror the live API's.
func (s *Server) auth(adminOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			detail(c, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(strings.TrimPrefix(h, "Bearer "), claims, func(t *jwt.Token) (any, error) {
			return s.secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			detail(c, http.StatusUnauthorized, "Given token not valid for any token type")
			return
		}

		uid, ok := claims["user_id"].(float64)
		if !ok {
			detail(c, http.StatusUnauthorized, "Given token not valid for any token type")
			return
		}

		s.mu.Lock()
		u, exists := s.users[int(uid)]
		s.mu.Unlock()
		if !exists {
			detail(c, http.StatusUnauthorized, "User not found")
			return
		}
		if adminOnly && !u.IsAdmin {
			detail(c, http.StatusForbidden, "You do not have permission to perform this action.")
			return
		}

		c.Set(ctxUser, u.User)
		c.Next()
	}
}

func currentUser(c *gin.Context) api.User {
	u, _ := c.Get(ctxUser)
	return u.(api.User)
}
