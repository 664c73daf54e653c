// Package handlers -- Gin handler-ы loglint сервера находок.
package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"loglint/internal/storage"
)

// Storager интерфейс хранилища находок.
type Storager interface {
	UpdateBatch(ctx context.Context, findings []storage.Finding) error
	GetRun(ctx context.Context, runID string) ([]storage.Finding, error)
	CountByAnalyzer(ctx context.Context) (map[string]int64, error)
	GetAllFindings(ctx context.Context) (any, error)
	Close() error
}

// Pinger опциональный интерфейс хранилища с проверкой соединения. Реализуется pgstorage.
type Pinger interface {
	Ping(ctx context.Context) error
}

// UpdateBatchHandler -- Gin handler приема батча находок в формате JSON массива объектов Finding.
func UpdateBatchHandler(ctx context.Context, store Storager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var findings []storage.Finding
		if err := c.BindJSON(&findings); err != nil {
			log.Println("UpdateBatchHandler: BindJSON error:", err)
			c.Status(http.StatusBadRequest)
			return
		}
		if err := store.UpdateBatch(ctx, findings); err != nil {
			log.Println("UpdateBatchHandler: UpdateBatch error:", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"accepted": len(findings)})
	}
}

// GetRunHandler -- Gin handler получения всех находок одного запуска по его идентификатору.
func GetRunHandler(ctx context.Context, store Storager) gin.HandlerFunc {
	return func(c *gin.Context) {
		runID := c.Param("id")
		findings, err := store.GetRun(ctx, runID)
		if err != nil {
			log.Println("GetRunHandler: GetRun error:", err)
			c.Status(http.StatusNotFound)
			return
		}
		c.IndentedJSON(http.StatusOK, findings)
	}
}

// CountsHandler -- Gin handler получения количества находок по анализаторам.
func CountsHandler(ctx context.Context, store Storager) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := store.CountByAnalyzer(ctx)
		if err != nil {
			log.Println("CountsHandler: CountByAnalyzer error:", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		c.IndentedJSON(http.StatusOK, counts)
	}
}

// GetAllFindingsHandler -- Gin handler получения всех находок хранилища.
func GetAllFindingsHandler(ctx context.Context, store Storager) gin.HandlerFunc {
	return func(c *gin.Context) {
		findings, err := store.GetAllFindings(ctx)
		if err != nil {
			log.Println("GetAllFindingsHandler: GetAllFindings error:", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		c.IndentedJSON(http.StatusOK, findings)
	}
}

// PingHandler -- Gin handler проверки соединения с хранилищем. Для хранилищ без
// поддержки Ping (memstorage) всегда возвращает успех.
func PingHandler(ctx context.Context, store Storager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p, ok := store.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				log.Println("PingHandler: Ping error:", err)
				c.Status(http.StatusInternalServerError)
				return
			}
		}
		c.String(http.StatusOK, "pong")
	}
}
