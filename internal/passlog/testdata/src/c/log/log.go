// Package log -- лог-пакет printf-стиля для сценариев правок.
package log

func Infof(format string, args ...interface{}) {}
