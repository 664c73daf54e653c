// Package logging -- пакет конфигурирования логирования.
package logging

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewLogger создание SugaredLogger для HTTP логирования loglint сервера.
func NewLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// WithLogging обертка над gin.HandlerFunc для внедрения Zap логирования.
func WithLogging(sugar *zap.SugaredLogger) gin.HandlerFunc {
	logFn := func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		sugar.Infoln(
			"uri", c.Request.RequestURI,
			"method", c.Request.Method,
			"status", c.Writer.Status(), // получаем перехваченный код статуса ответа
			"duration", duration,
			"size", c.Writer.Size(), // получаем перехваченный размер ответа
		)
	}
	return logFn
}
