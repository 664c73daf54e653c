package config

import (
	"log"
	"os"
	"reflect"
	"testing"
)

func createTMPConfig(filename string, badJSON bool) error {
	var confString string
	confString = `{
  "address": "localhost:8080", // address and port of loglint server. Аналог переменной окружения ADDRESS или флага -a
  "input": "findings.json", // staticlint -json output file. Аналог переменной окружения FINDINGS_FILE или флага -f
  "agent_log": "agent.log" // agent log file. Аналог переменной окружения AGENT_LOG или флага -l
}`
	if badJSON {
		log.Println("BAD config")
		confString = `{
  "address": false, // address and port of loglint server. Аналог переменной окружения ADDRESS или флага -a
  "input": 42, // staticlint -json output file. Аналог переменной окружения FINDINGS_FILE или флага -f
  "agent_log": false // agent log file. Аналог переменной окружения AGENT_LOG или флага -l
}`
	}
	err := os.WriteFile(filename, []byte(confString), 0644)
	if err != nil {
		return err
	}
	return nil
}

func TestReadConfig(t *testing.T) {
	type args struct {
		fileName  string
		conf      any
		ErrorType string
		badJSON   bool
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "Positive test ReadConfig agent",
			args: args{
				fileName: "./tempconfig11111.json",
				conf:     &AgentConfig{},
			},
			wantErr: false,
		},
		{
			name: "Positive test ReadConfig server",
			args: args{
				fileName: "./tempconfig11111.json",
				conf:     &Config{},
			},
			wantErr: false,
		},
		{
			name: "Wrong config type test ReadConfig",
			args: args{
				fileName: "./tempconfig11111.json",
				conf:     &struct{ X int }{},
			},
			wantErr: true,
		},
		{
			name: "os.ReadFile error test ReadConfig",
			args: args{
				fileName:  "./tempconfig11111.json",
				conf:      &AgentConfig{},
				ErrorType: "os.ReadFile error",
			},
			wantErr: true,
		},
		{
			name: "json.Unmarshal error test ReadConfig",
			args: args{
				fileName: "./tempconfig11111.json",
				conf:     &AgentConfig{},
				badJSON:  true,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := createTMPConfig(tt.args.fileName, tt.args.badJSON); err != nil {
				t.Errorf("createTMPConfig() error = %v", err)
			}
			if tt.args.ErrorType == "os.ReadFile error" {
				_ = os.Remove(tt.args.fileName)
			}
			if err := ReadConfig(tt.args.fileName, tt.args.conf); (err != nil) != tt.wantErr {
				t.Errorf("ReadConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			_ = os.Remove(tt.args.fileName)
		})
	}
}

func TestToJSON(t *testing.T) {
	type args struct {
		s string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "Positive test ToJSON, comment line",
			args: args{
				s: "// комментарий с начала строки\n{\"address\": \"localhost:8080\"}",
			},
			want: "{\"address\": \"localhost:8080\"}",
		},
		{
			name: "Positive test ToJSON, trailing comment",
			args: args{
				s: "{\"address\": \"localhost:8080\"} // комментарий в конце строки",
			},
			want: "{\"address\": \"localhost:8080\"}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToJSON([]byte(tt.args.s)); !reflect.DeepEqual(string(got), tt.want) {
				t.Errorf("ToJSON() = %v, want %v", string(got), tt.want)
			}
		})
	}
}
