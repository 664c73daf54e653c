// Package staticlint -- multichecker, статический анализатор.
// Файл flags.go -- инициализация конфигурации multichecker-а из переменных окружения.
package main

import (
	"log"
	"os"
	"strconv"
)

// Flags -- динамически включаемые опции multichecker-а.
type Flags struct {
	ErrCheckEnable bool
}

var flags = Flags{}

// initConfig -- функция инициализации конфигурации с использованием переменных окружения.
func initConfig() error {

	// Default values.
	flags.ErrCheckEnable = false

	// Пытаемся прочитать переменную окружения ERRCHECK_ENABLE.
	if envErrCheckEnable := os.Getenv("ERRCHECK_ENABLE"); envErrCheckEnable != "" {
		log.Println("env var ERRCHECK_ENABLE was specified, check ERRCHECK_ENABLE =", envErrCheckEnable)
		tmp, err := strconv.ParseBool(envErrCheckEnable)
		if err != nil {
			log.Printf("invalid ERRCHECK_ENABLE variable, keep default `%t`", flags.ErrCheckEnable)
			tmp = flags.ErrCheckEnable
		}
		flags.ErrCheckEnable = tmp
		log.Println("Using env var ERRCHECK_ENABLE =", flags.ErrCheckEnable)
	}

	return nil
}
