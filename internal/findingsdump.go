package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"loglint/cmd/server/initconf"
	"loglint/internal/handlers"
	"loglint/internal/storage/memstorage"
)

// Storager минимальный интерфейс хранилища для сохранения dump файла.
type Storager interface {
	GetAllFindings(ctx context.Context) (any, error)
}

// Save функция сохранения дампа находок в файл.
func Save(ctx context.Context, store Storager, fname string) error {
	if fname == "" {
		return errors.New("Save: dump file name is empty")
	}
	// сериализуем представление хранилища в JSON формат
	findings, err := store.GetAllFindings(ctx)
	if err != nil {
		log.Println("error store serialisation in Save", err)
		return err
	}

	data, err := json.Marshal(findings)
	if err != nil {
		log.Println("Save. Error marshalling store")
		return err
	}

	err = os.WriteFile(fname, data, 0666)
	if err != nil {
		log.Println("Save. Error os.WriteFile")
		for i, t := range timeoutsRetryConst {
			log.Println("Save: Trying to recover after ", t, "seconds, attempt number ", i+1)
			time.Sleep(time.Duration(t) * time.Second)
			if err = os.WriteFile(fname, data, 0666); err == nil {
				return nil
			}
			log.Println("Save: attempt ", i+1, " error")
		}
		return fmt.Errorf("%s %v", "Save: os.WriteFile error:", err)
	}
	return nil
}

// Load функция чтения дампа находок из файла. Применимо только для memstorage.
func Load(fname string) (handlers.Storager, error) {
	var store handlers.Storager
	// Временное хранилище для Unmarshall-инга в необходимую структуру memstorage
	var memStore memstorage.MemStorage
	data, err := os.ReadFile(fname)
	if err != nil {
		log.Println("Load. Error read store dump file", fname)
		return nil, err
	}
	// Использование метода Unmarshal пакета memstorage из-за непубличности полей
	err = memstorage.Unmarshal(data, &memStore)
	if err != nil {
		log.Println("Load. Error unmarshalling from file")
		return nil, err
	}
	store = memStore
	log.Println("storage from Load restored")
	return store, nil
}

// SyncDumpUpdate middleware для апдейта файла дампа находок каждый раз при приходе нового батча.
// Для случая ключа STORE_INTERVAL = 0.
func SyncDumpUpdate(ctx context.Context, store handlers.Storager, conf *initconf.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if conf.StoreFindingInterval == 0 {
			log.Println("sync flush findings into dump")
			if err := Save(ctx, store, conf.FileStoragePath); err != nil {
				log.Println("SyncDumpUpdate error:", err)
				c.Set("SyncDumpUpdate", "fail")
				return
			}
			c.Set("SyncDumpUpdate", "success")
		}
	}
}
