// Package staticlint -- multichecker, статический анализатор.
// Основной анализатор -- passlogparams: сверка printf-спецификаторов формата
// с аргументами вызовов лог-функций. Подробное описание -- в description/doc.go.
package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"regexp"

	printffuncname "github.com/golangci/go-printf-func-name/pkg/analyzer"
	"github.com/kisielk/errcheck/errcheck"
	"github.com/ultraware/funlen"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"loglint/internal/osexit"
	"loglint/internal/passlog"
)

// Config -- имя файла конфигурации.
const Config = `multichecker.json`

// ConfigData описывает структуру файла конфигурации.
type ConfigData struct {
	Staticcheck     []string
	StaticcheckExcl []string
	Stylecheck      []string
	StylecheckExcl  []string
	Analysis        []string
	AnalysisExcl    []string
}

// ChecksCreate -- сборка набора анализаторов по конфигурации.
// Custom анализаторы и неконфигурируемые линтеры подключаются статически,
// staticcheck/stylecheck и стандартные passes -- через конфигурационный файл.
func ChecksCreate(cfg ConfigData, typeRegistry map[string]*analysis.Analyzer) ([]*analysis.Analyzer, error) {
	mychecks := []*analysis.Analyzer{
		passlog.Analyzer,
		osexit.Analyzer,
		printffuncname.Analyzer,
		funlen.NewAnalyzer(220, 200, true),
	}

	// Проверки для staticcheck и stylecheck разделов.
	checks := make(map[string]bool)
	for _, v := range cfg.Staticcheck {
		checks[v] = true
	}
	for _, v := range cfg.Stylecheck {
		checks[v] = true
	}
	for _, v := range cfg.Analysis {
		if v != "all" {
			checks[v] = true
		}
	}

	exclude := make(map[string]bool)
	for _, v := range cfg.StaticcheckExcl {
		exclude[v] = true
	}
	for _, v := range cfg.StylecheckExcl {
		exclude[v] = true
	}
	for _, v := range cfg.AnalysisExcl {
		exclude[v] = true
	}

	// Если в конфиг файле для "staticcheck" указано allSA -- используются все SA анализаторы.
	if len(cfg.Staticcheck) > 0 && cfg.Staticcheck[0] == "allSA" {
		log.Println("Add all SA staticcheck checks")
		for _, v := range staticcheck.Analyzers {
			if !exclude[v.Analyzer.Name] {
				mychecks = append(mychecks, v.Analyzer)
			}
		}
	}
	// Если в конфиг файле для "stylecheck" указано allST -- используются все ST анализаторы.
	if len(cfg.Stylecheck) > 0 && cfg.Stylecheck[0] == "allST" {
		log.Println("Add all ST stylecheck checks")
		for _, v := range stylecheck.Analyzers {
			if !exclude[v.Analyzer.Name] {
				mychecks = append(mychecks, v.Analyzer)
			}
		}
	}

	for _, v := range staticcheck.Analyzers {
		if checks[v.Analyzer.Name] && !exclude[v.Analyzer.Name] {
			mychecks = append(mychecks, v.Analyzer)
		}
	}
	for _, v := range stylecheck.Analyzers {
		if checks[v.Analyzer.Name] && !exclude[v.Analyzer.Name] {
			mychecks = append(mychecks, v.Analyzer)
		}
	}

	// Стандартные анализаторы пакета golang.org/x/tools/go/analysis/passes
	// подключаются через предварительно созданный registry их типов.
	if len(cfg.Analysis) > 0 && cfg.Analysis[0] == "all" {
		for k := range typeRegistry {
			if !exclude[k] {
				mychecks = append(mychecks, typeRegistry[k])
			}
		}
	}
	for _, v := range cfg.Analysis {
		if checks[v] && !exclude[v] {
			mychecks = append(mychecks, typeRegistry[v])
		}
	}

	if flags.ErrCheckEnable {
		mychecks = append(mychecks, errcheck.Analyzer)
	}

	return mychecks, nil
}

// commentRegex -- однострочные "//" комментарии в конфигурационном JSON.
var commentRegex = regexp.MustCompile(`(?m)^\s*//.*$`)

// readConfig -- чтение конфигурационного файла из директории исполняемого файла.
func readConfig(configFile string) (ConfigData, error) {
	var cfg ConfigData
	appfile, err := os.Executable()
	if err != nil {
		log.Println("readConfig: error in os.Executable() call")
		return cfg, err
	}
	data, err := os.ReadFile(filepath.Join(filepath.Dir(appfile), configFile))
	if err != nil {
		log.Println("readConfig: error in os.ReadFile", err)
		return cfg, err
	}

	// Вычищаем из конфигурационного файла закомментированные с "//" строки.
	d := commentRegex.ReplaceAllString(string(data), "")

	if err = json.Unmarshal([]byte(d), &cfg); err != nil {
		log.Println("readConfig: error in json.Unmarshal() call", err)
		return cfg, err
	}
	return cfg, nil
}

func main() {
	if err := initConfig(); err != nil {
		log.Fatal("main: initConfig() error")
	}

	// Инициализация registry с passes анализаторами.
	typeRegistry, err := createAnalysisTypesRegistry()
	if err != nil {
		log.Fatal("main: error in createAnalysisTypesRegistry()", err)
	}

	cfg, err := readConfig(Config)
	if err != nil {
		log.Fatal("main: error in readConfig()", err)
	}

	mychecks, err := ChecksCreate(cfg, typeRegistry)
	if err != nil {
		log.Fatal("main: error in ChecksCreate()", err)
	}

	multichecker.Main(
		mychecks...,
	)
}
