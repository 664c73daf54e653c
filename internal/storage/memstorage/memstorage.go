// Package memstorage -- пакет с реализацией In Memory типа хранилища.
package memstorage

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"loglint/internal/storage"
)

// MemStorage inmemory хранилище для находок.
type MemStorage struct {
	runMap map[string][]storage.Finding // Map находок по идентификатору запуска.
}

// New -- конструктор объекта хранилища MemStorage.
func New(_ context.Context) (MemStorage, error) {
	return MemStorage{
		runMap: make(map[string][]storage.Finding),
	}, nil
}

// UpdateBatch -- реализация метода сохранения набора находок, описанного через массив объектов Finding.
func (ms MemStorage) UpdateBatch(_ context.Context, findings []storage.Finding) error {
	if len(findings) == 0 {
		log.Println("UpdateBatch. No findings to update in []Finding")
		return nil
	}
	for _, f := range findings {
		ms.runMap[f.RunID] = append(ms.runMap[f.RunID], f)
	}
	log.Println("UpdateBatch. End Update batch, runs in storage:", len(ms.runMap))
	return nil
}

// GetRun -- реализация метода получения всех находок одного запуска по его идентификатору.
func (ms MemStorage) GetRun(_ context.Context, runID string) ([]storage.Finding, error) {
	val, ok := ms.runMap[runID]
	if !ok {
		return nil, errors.New("no findings for run " + runID)
	}
	return val, nil
}

// CountByAnalyzer -- реализация метода подсчета находок по анализаторам.
func (ms MemStorage) CountByAnalyzer(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, findings := range ms.runMap {
		for _, f := range findings {
			counts[f.Analyzer]++
		}
	}
	return counts, nil
}

// GetAllFindings -- реализация метода получения всех находок. Возвращается представление
// с публичным полем RunMap -- оно же используется как формат dump файла.
func (ms MemStorage) GetAllFindings(_ context.Context) (any, error) {
	return tmpMemStorage{RunMap: ms.runMap}, nil
}

// Close -- заглушка метода закрытия соединения.
func (ms MemStorage) Close() error {
	return nil
}

// Структура для использования в Marshal и Unmarshal функциях.
type tmpMemStorage struct {
	RunMap map[string][]storage.Finding
}

// Unmarshal функция для Unmarshal private полей структуры MemStorage.
func Unmarshal(data []byte, stor *MemStorage) error {
	tmp := tmpMemStorage{
		RunMap: make(map[string][]storage.Finding),
	}
	err := json.Unmarshal(data, &tmp)
	if err != nil {
		return err
	}
	stor.runMap = tmp.RunMap
	return nil
}

// Marshal функция для Marshal private полей структуры MemStorage.
func Marshal(stor any) ([]byte, error) {
	ms, ok := stor.(MemStorage)
	if !ok {
		return nil, errors.New("not a MemStorage")
	}
	tmp := tmpMemStorage{
		RunMap: ms.runMap,
	}
	return json.Marshal(tmp)
}
