// Package storage -- пакет с определением объектов используемого в loglint хранилища.
package storage

// Finding структура для хранения одной находки статического анализа.
type Finding struct {
	RunID    string `json:"run_id"`             // Идентификатор запуска агента (uuid).
	Analyzer string `json:"analyzer"`           // Имя анализатора, сообщившего находку.
	File     string `json:"file"`               // Файл с находкой.
	Line     int    `json:"line"`               // Строка.
	Column   int    `json:"column"`             // Колонка.
	Severity string `json:"severity,omitempty"` // Серьезность: info для run-метаданных, warning для диагностик.
	Message  string `json:"message"`            // Текст диагностики.
}
