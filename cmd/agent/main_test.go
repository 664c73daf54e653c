package main

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"loglint/conf"
	"loglint/internal/storage"
)

const testVetOutput = `{
	"loglint/internal/passlog": {
		"passlogparams": [
			{
				"posn": "/src/passlog/a.go:10:2",
				"message": "format string requires 2 arguments but 1 were provided"
			},
			{
				"posn": "/src/passlog/a.go:14:20",
				"message": "argument type <int64> does not match format specifier '%d'"
			}
		]
	}
}`

func createInputFile(t *testing.T, fname string, content string) {
	if err := os.WriteFile(fname, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func Test_readInput(t *testing.T) {
	fname := "./testFindings.json"
	createInputFile(t, fname, testVetOutput)
	defer os.Remove(fname)

	data, err := readInput(fname)
	assert.NoError(t, err)
	assert.Equal(t, testVetOutput, string(data))

	_, err = readInput("./no-such-file.json")
	assert.Error(t, err)
}

func Test_run(t *testing.T) {
	fname := "./testFindings.json"
	createInputFile(t, fname, testVetOutput)
	defer os.Remove(fname)

	var received []storage.Finding
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/updates" {
			t.Errorf("Expected to request '/updates', got: %s", r.URL.Path)
		}
		if r.Header.Get("Content-Encoding") != "gzip" {
			t.Errorf("Expected Content-Encoding: gzip header, got: %s", r.Header.Get("Content-Encoding"))
		}
		gz, err := gzip.NewReader(r.Body)
		if err != nil {
			t.Errorf("gzip.NewReader error: %v", err)
			return
		}
		body, err := io.ReadAll(gz)
		if err != nil {
			t.Errorf("io.ReadAll error: %v", err)
			return
		}
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("json.Unmarshal error: %v", err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	testConfig := conf.AgentConfig{
		Address: strings.TrimPrefix(server.URL, "http://"),
		Input:   fname,
	}
	err := run(&testConfig)
	assert.NoError(t, err)

	// Две диагностики из вывода multichecker-а плюс runinfo метаданные хоста.
	assert.GreaterOrEqual(t, len(received), 2)
	var analyzers []string
	runID := ""
	for _, f := range received {
		analyzers = append(analyzers, f.Analyzer)
		if runID == "" {
			runID = f.RunID
		}
		// Все находки одного запуска помечены одним run id.
		assert.Equal(t, runID, f.RunID)
	}
	assert.Contains(t, analyzers, "passlogparams")

	for _, f := range received {
		if f.Analyzer == "passlogparams" && f.Line == 10 {
			assert.Equal(t, "/src/passlog/a.go", f.File)
			assert.Equal(t, 2, f.Column)
		}
	}
}

func Test_runBadInput(t *testing.T) {
	fname := "./testBadFindings.json"
	createInputFile(t, fname, "not a json")
	defer os.Remove(fname)

	testConfig := conf.AgentConfig{
		Address: "localhost:8080",
		Input:   fname,
	}
	err := run(&testConfig)
	assert.Error(t, err)
}
