// Package httplog -- лог-пакет, подключаемый через настройку funcs.
package httplog

func Info(args ...interface{}) {}
