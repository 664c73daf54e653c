// Package internal -- общие функции агента и сервера loglint: разбор -json вывода
// multichecker-а, отправка находок на сервер, сохранение и восстановление dump файла.
package internal

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"loglint/internal/storage"
)

// Таймауты повторных попыток отправки и сохранения.
var timeoutsRetryConst = [3]int{1, 3, 5}

// VetDiagnostic одна диагностика в -json выводе multichecker-а.
type VetDiagnostic struct {
	Posn    string `json:"posn"`
	Message string `json:"message"`
}

// ParseVetOutput разбор -json вывода multichecker-а (вид {"пакет": {"анализатор": [{posn, message}]}})
// в слайс находок с проставленным идентификатором запуска.
func ParseVetOutput(data []byte, runID string) ([]storage.Finding, error) {
	var out map[string]map[string][]VetDiagnostic
	if err := json.Unmarshal(data, &out); err != nil {
		log.Println("ParseVetOutput: json.Unmarshal error:", err)
		return nil, err
	}
	var findings []storage.Finding
	for _, analyzers := range out {
		for analyzer, diags := range analyzers {
			for _, d := range diags {
				file, line, col := splitPosn(d.Posn)
				findings = append(findings, storage.Finding{
					RunID:    runID,
					Analyzer: analyzer,
					File:     file,
					Line:     line,
					Column:   col,
					Severity: "warning",
					Message:  d.Message,
				})
			}
		}
	}
	return findings, nil
}

// splitPosn разбор позиции вида file.go:line:col. Двоеточия в пути файла
// (windows диски) остаются в имени файла.
func splitPosn(posn string) (string, int, int) {
	i := strings.LastIndex(posn, ":")
	if i < 0 {
		return posn, 0, 0
	}
	col, err := strconv.Atoi(posn[i+1:])
	if err != nil {
		return posn, 0, 0
	}
	j := strings.LastIndex(posn[:i], ":")
	if j < 0 {
		// Только одно число в конце -- это номер строки.
		return posn[:i], col, 0
	}
	line, err := strconv.Atoi(posn[j+1 : i])
	if err != nil {
		return posn[:i], col, 0
	}
	return posn[:j], line, col
}

// HostInfoFindings синтетические находки с метаданными хоста запуска агента.
func HostInfoFindings(runID string) []storage.Finding {
	info := func(msg string) storage.Finding {
		return storage.Finding{RunID: runID, Analyzer: "runinfo", Severity: "info", Message: msg}
	}
	var findings []storage.Finding
	if hostname, err := os.Hostname(); err == nil {
		findings = append(findings, info("hostname="+hostname))
	}
	if n, err := cpu.Counts(true); err == nil {
		findings = append(findings, info(fmt.Sprintf("cpus=%d", n)))
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		findings = append(findings, info(fmt.Sprintf("memtotal=%d", vm.Total)))
	}
	return findings
}

// SendRequest отправка POST запроса с заданными Content-Type и Content-Encoding заголовками.
func SendRequest(client *http.Client, url string, body io.Reader, contentType string, contentEncoding string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", contentType)
	if contentEncoding != "" {
		req.Header.Set("Content-Encoding", contentEncoding)
	}

	response, err := client.Do(req)
	if err != nil {
		log.Println("SendRequest: client.Do error:", err)
		return nil, err
	}
	return response, nil
}

// SendFindingsJSONBatch отправка батча находок на сервер одним gzip-запросом.
// При ошибках соединения отправка повторяется по таймаутам timeoutsRetryConst.
func SendFindingsJSONBatch(findings []storage.Finding, url string) error {
	payload, err := json.Marshal(findings)
	if err != nil {
		return err
	}

	// Сжатие тела запроса.
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err = gz.Write(payload); err != nil {
		return err
	}
	if err = gz.Close(); err != nil {
		return err
	}
	compressed := buf.Bytes()

	client := &http.Client{}
	response, err := SendRequest(client, url, bytes.NewReader(compressed), "application/json", "gzip")
	if err != nil {
		for i, t := range timeoutsRetryConst {
			log.Println("SendFindingsJSONBatch: trying to recover after", t, "seconds, attempt number", i+1)
			time.Sleep(time.Duration(t) * time.Second)
			response, err = SendRequest(client, url, bytes.NewReader(compressed), "application/json", "gzip")
			if err == nil {
				break
			}
			log.Println("SendFindingsJSONBatch: attempt", i+1, "error:", err)
		}
		if err != nil {
			return fmt.Errorf("SendFindingsJSONBatch: retry attempts exhausted: %w", err)
		}
	}
	defer response.Body.Close()

	log.Println("SendFindingsJSONBatch: response status:", response.Status)
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("SendFindingsJSONBatch: server returned status %s", response.Status)
	}
	return nil
}
