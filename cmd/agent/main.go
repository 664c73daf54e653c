package main

import (
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"loglint/conf"
	"loglint/internal"
)

// Переменные версии сборки. Значения задаются флагами линковщика через -X (см. internal.PrintStartMessage).
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// readInput чтение -json вывода multichecker-а из файла или stdin.
func readInput(input string) ([]byte, error) {
	if input == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(input)
}

// run разбор вывода multichecker-а и отправка находок одного запуска на сервер.
func run(config *conf.AgentConfig) error {
	data, err := readInput(config.Input)
	if err != nil {
		log.Println("run: error reading input:", err)
		return err
	}

	runID := uuid.NewString()
	log.Println("run: new run with id", runID)

	findings, err := internal.ParseVetOutput(data, runID)
	if err != nil {
		log.Println("run: error parsing staticlint output:", err)
		return err
	}
	log.Println("run: parsed", len(findings), "findings")

	// Метаданные хоста запуска -- синтетические находки анализатора runinfo.
	findings = append(findings, internal.HostInfoFindings(runID)...)

	if err := internal.SendFindingsJSONBatch(findings, "http://"+config.Address+"/updates"); err != nil {
		log.Println("run: error from SendFindingsJSONBatch:", err)
		return err
	}
	log.Println("run: findings for run", runID, "sent to", config.Address)
	return nil
}

func main() {
	if err := initConfig(&config); err != nil {
		log.Fatal("AGENT panic from initConfig: ", err)
	}

	if config.Logfile != "" {
		file, err := os.OpenFile(config.Logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Failed to open log file:", err)
		}
		log.SetOutput(file)
		defer file.Close()
	}

	internal.PrintStartMessage(buildVersion, buildDate, buildCommit)

	if err := run(&config); err != nil {
		log.Fatal("AGENT error: ", err)
	}
}
