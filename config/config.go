// Package config -- пакет, содержащий объекты json конфигураций loglint.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"reflect"
)

// Config конфигурация loglint сервера находок.
type Config struct {
	RunAddr              string `json:"address"`           // Address and port to run server.
	Logfile              string `json:"logfile"`           // Server log file.
	StoreFindingInterval int    `json:"store_interval"`    // Store findings dump to disk interval in sec.
	FileStoragePath      string `json:"store_file"`        // File to save findings to disk. For MemStorage type only.
	Restore              bool   `json:"restore"`           // Restore findings dump with server start. For MemStorage type only.
	DatabaseDSN          string `json:"database_dsn"`      // DatabaseDSN.
	UseDBConfig          bool   `json:"use_db_config"`     // Use dbconfig yaml file (conf/dbconfig.yaml).
	PProfHTTPEnabled     bool   `json:"pprof_http_enable"` // Start PProfHTTP server.
}

// AgentConfig конфигурация loglint агента.
type AgentConfig struct {
	Address string `json:"address"`   // Loglint server address and port.
	Input   string `json:"input"`     // File with staticlint -json output, "-" for stdin.
	Logfile string `json:"agent_log"` // Agent log file.
}

// ToJSON конвертация JSON с go-style комментариями в "чистый" JSON для json.Unmarshal.
// Внимание! Комментарии в конце строки должны быть оформлены в виде " // ".
func ToJSON(b []byte) []byte {
	var res [][]byte
	for _, s := range bytes.Split(b, []byte("\n")) {
		// Комментарии с начала строки.
		if bytes.HasPrefix(bytes.TrimLeft(s, " "), []byte("//")) {
			continue
		}
		res = append(res, bytes.Split(s, []byte(" // "))[0])
	}
	return bytes.Join(res, []byte("\n"))
}

// ReadConfig чтение конфигурации из json файла.
// Интервалы в файле задаются как int (в секундах), а не как string вида "1s".
func ReadConfig(fileName string, conf any) error {
	var err error
	serverConf := Config{}
	agentConf := AgentConfig{}
	log.Println("ReadConfig: start to read config file", fileName)
	data, err := os.ReadFile(fileName)
	if err != nil {
		log.Println("ReadConfig. Error in os.ReadFile() :", err)
		return err
	}
	jsn := ToJSON(data)
	log.Println("ReadConfig. jsn is: ", string(jsn))
	// Если на вход получена конфигурация сервера.
	if reflect.DeepEqual(reflect.TypeOf(conf), reflect.TypeOf(&serverConf)) {
		log.Println("reflect.TypeOf(conf) is *Config")
		err = json.Unmarshal(jsn, &conf)
		// Если на вход получена конфигурация агента.
	} else if reflect.TypeOf(conf) == reflect.TypeOf(&agentConf) {
		log.Println("reflect.TypeOf(conf) is *AgentConfig")
		err = json.Unmarshal(jsn, &conf)
		// Если полученное на вход непонятно.
	} else {
		return errors.New("wrong config")
	}
	if err != nil {
		log.Println("ReadConfig. Error in json.Unmarshal :", err)
		return err
	}
	log.Println("conf after Unmarshal is :", fmt.Sprintf("%+v\n", conf))
	return nil
}
