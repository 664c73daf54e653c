// Package log -- лог-пакет printf-стиля для сценариев анализатора.
package log

func Info(args ...interface{}) {}

func Infof(format string, args ...interface{}) {}

func Errorf(format string, args ...interface{}) {}
