package gin

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/jwt"
	"github.com/bobinette/notenet/log"
	"github.com/bobinette/notenet/mock"
)

const userKey = "user"

type HandlerFunc func(*gin.Context) (interface{}, error)

// JSONFormatter renders the result of next with the given status, or the
// error as a {"message": ...} body with the code carried by the error.
func JSONFormatter(status int, next HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := next(c)
		if err != nil {
			code := http.StatusInternalServerError
			if err, ok := err.(errors.Error); ok {
				code = err.Code()
			}

			body := gin.H{"message": errors.MessageOf(err)}
			if mock.IsLimitReached(err) {
				body["limitReached"] = true
			}

			c.JSON(code, body)
			return
		}

		c.JSON(status, res)
	}
}

// Authenticated rejects requests without a valid bearer token, and stores
// the caller in the context otherwise.
func Authenticated(backend *mock.Backend, decoder *jwt.EncodeDecoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		claims, err := decoder.Decode(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errors.MessageOf(err)})
			return
		}

		user, err := backend.User(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) notenet.User {
	v, _ := c.Get(userKey)
	user, _ := v.(notenet.User)
	return user
}

func Logger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Printf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
