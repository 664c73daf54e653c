// Package b -- сценарий с настроенным перечнем лог-функций.
package b

import (
	"b/httplog"
	"b/log"
)

func configured() {
	var f32 float32
	httplog.Info("Test: %s") // want "format string requires 1 arguments but 0 were provided"
	// Настройка вытесняет перечень по умолчанию: log.Infof не проверяется.
	log.Infof("String: %s", f32)
}
