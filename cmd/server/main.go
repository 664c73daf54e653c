package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"loglint/cmd/server/initconf"
	"loglint/internal"
	"loglint/internal/compress"
	"loglint/internal/handlers"
	"loglint/internal/logging"
	"loglint/internal/storage/memstorage"
	"loglint/internal/storage/pgstorage"
)

var conf initconf.Config

// Переменные версии сборки. Значения задаются флагами линковщика через -X (см. internal.PrintStartMessage).
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// newRouter сборка Gin router-а со всеми middleware и маршрутами loglint сервера.
func newRouter(ctx context.Context, store handlers.Storager, sugar *zap.SugaredLogger, conf *initconf.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.WithLogging(sugar))
	router.Use(compress.GzipRequestHandle(ctx))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.POST("/updates", internal.SyncDumpUpdate(ctx, store, conf), handlers.UpdateBatchHandler(ctx, store))
	router.GET("/", handlers.GetAllFindingsHandler(ctx, store))
	router.GET("/runs/:id", handlers.GetRunHandler(ctx, store))
	router.GET("/counts", handlers.CountsHandler(ctx, store))
	router.GET("/ping", handlers.PingHandler(ctx, store))

	if conf.PProfHTTPEnabled {
		log.Println("pprof web server enabled")
		pprof.Register(router)
	}
	return router
}

func main() {
	if err := initconf.InitConfig(&conf); err != nil {
		log.Fatal("SERVER panic from initConfig: ", err)
	}

	if conf.Logfile != "" {
		file, err := os.OpenFile(conf.Logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Failed to open log file:", err)
		}
		log.SetOutput(file)
		defer file.Close()
	}

	internal.PrintStartMessage(buildVersion, buildDate, buildCommit)

	sugar, err := logging.NewLogger()
	if err != nil {
		log.Fatal("main: logging.NewLogger error: ", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store handlers.Storager
	if conf.DatabaseDSN != "" {
		pgStore, err := pgstorage.New(ctx, &conf)
		if err != nil {
			log.Fatal("main: pgstorage.New error: ", err)
		}
		store = pgStore
	} else {
		memStore, err := memstorage.New(ctx)
		if err != nil {
			log.Fatal("main: memstorage.New error: ", err)
		}
		store = memStore
		// Восстановление дампа находок с предыдущего запуска.
		if conf.Restore {
			if restored, err := internal.Load(conf.FileStoragePath); err != nil {
				log.Println("main: cannot restore findings dump:", err)
			} else {
				store = restored
			}
		}
		// Периодический дамп находок на диск.
		if conf.StoreFindingInterval > 0 {
			go func() {
				ticker := time.NewTicker(time.Duration(conf.StoreFindingInterval) * time.Second)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if err := internal.Save(ctx, store, conf.FileStoragePath); err != nil {
							log.Println("main: periodic Save error:", err)
						}
					}
				}
			}()
		}
	}
	defer store.Close()

	router := newRouter(ctx, store, sugar, &conf)

	srv := &http.Server{Addr: conf.RunAddr, Handler: router}

	idleConnsClosed := make(chan struct{})
	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigint
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Println("main: HTTP server Shutdown error:", err)
		}
		// Финальный дамп находок для memstorage.
		if conf.DatabaseDSN == "" {
			if err := internal.Save(ctx, store, conf.FileStoragePath); err != nil {
				log.Println("main: final Save error:", err)
			}
		}
		close(idleConnsClosed)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main: ListenAndServe error: ", err)
	}
	<-idleConnsClosed
}
