// Package compress -- middleware распаковки gzip тела входящих запросов.
package compress

import (
	"compress/gzip"
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GzipRequestHandle хэндлер распаковки body входящего Request запроса.
func GzipRequestHandle(_ context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Header.Get(`Content-Encoding`) != `gzip` {
			c.Next()
			return
		}
		gz, err := gzip.NewReader(c.Request.Body)
		if err != nil {
			log.Println("Error in GzipRequestHandle:", err)
			c.Set("GzipRequestHandle", "error")
			c.Status(http.StatusInternalServerError)
			c.Abort()
			return
		}
		log.Println("gzip request decompression")

		defer func(gz *gzip.Reader) {
			if err1 := gz.Close(); err1 != nil {
				log.Println("gz.Close() error")
			}
		}(gz)
		c.Request.Body = gz
		c.Set("GzipRequestHandle", "success")
		c.Next()
	}
}
