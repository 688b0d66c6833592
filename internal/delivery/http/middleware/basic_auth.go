package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-cv-review-backend/internal/delivery/http/response"
)

// BasicAuth gates the whole API behind one shared username/password pair.
// Mismatches get a 401 with a Basic challenge naming the realm. Credentials
// are compared via SHA-256 digests in constant time, so neither length nor
// prefix leaks through timing.
func BasicAuth(username, password, realm string) gin.HandlerFunc {
	wantUser := sha256.Sum256([]byte(username))
	wantPass := sha256.Sum256([]byte(password))

	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if ok {
			gotUser := sha256.Sum256([]byte(user))
			gotPass := sha256.Sum256([]byte(pass))
			userMatch := subtle.ConstantTimeCompare(wantUser[:], gotUser[:]) == 1
			passMatch := subtle.ConstantTimeCompare(wantPass[:], gotPass[:]) == 1
			if userMatch && passMatch {
				c.Next()
				return
			}
		}

		c.Header("WWW-Authenticate", `Basic realm="`+realm+`", charset="UTF-8"`)
		response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
		c.Abort()
	}
}
