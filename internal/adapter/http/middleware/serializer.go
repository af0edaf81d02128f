package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// WriteSerializer serializes mutating requests. Ledger operations are
// read-modify-write sequences over the store and assume one writer at a
// time; reads stay concurrent.
func WriteSerializer() gin.HandlerFunc {
	var mu sync.Mutex
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
		default:
			mu.Lock()
			defer mu.Unlock()
			c.Next()
		}
	}
}
