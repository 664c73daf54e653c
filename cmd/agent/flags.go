package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"loglint/conf"
)

var config conf.AgentConfig

// FlagTest флаг режима тестирования для отключения парсинга командной строки при тестировании
var FlagTest = false

// initConfig функция обработки параметров командной строки и переменных окружения агента.
func initConfig(config *conf.AgentConfig) error {
	if !FlagTest {
		flag.StringVar(&config.Address, "a", "localhost:8080", "address and port of loglint server")
		flag.StringVar(&config.Input, "f", "findings.json", "file with staticlint -json output, \"-\" for stdin")
		flag.StringVar(&config.Logfile, "l", "", "agent log file")
		flag.Parse()
	}

	// Переменные окружения имеют приоритет перед флагами.
	if envAddr := os.Getenv("ADDRESS"); envAddr != "" {
		log.Println("env var ADDRESS was specified, use ADDRESS =", envAddr)
		config.Address = envAddr
	}
	if envInput := os.Getenv("FINDINGS_FILE"); envInput != "" {
		log.Println("env var FINDINGS_FILE was specified, use FINDINGS_FILE =", envInput)
		config.Input = envInput
	}
	if envLogfile := os.Getenv("AGENT_LOG"); envLogfile != "" {
		log.Println("env var AGENT_LOG was specified, use AGENT_LOG =", envLogfile)
		config.Logfile = envLogfile
	}

	// Проверка на то, что заданный адрес является валидным сочетанием хост:порт
	ipPort := strings.Split(config.Address, ":")
	if len(ipPort) != 2 || ipPort[1] == "" {
		return fmt.Errorf("invalid ADDRESS variable `%s`", config.Address)
	}
	if _, err := strconv.Atoi(ipPort[1]); err != nil {
		return fmt.Errorf("invalid ADDRESS variable `%s`", config.Address)
	}
	return nil
}
