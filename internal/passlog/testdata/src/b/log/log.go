// Package log -- лог-пакет из перечня по умолчанию.
package log

func Infof(format string, args ...interface{}) {}
