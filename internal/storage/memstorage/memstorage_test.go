package memstorage

import (
	"context"
	"reflect"
	"testing"

	"loglint/internal/storage"
)

func testFindings() []storage.Finding {
	return []storage.Finding{
		{RunID: "run1", Analyzer: "passlogparams", File: "a.go", Line: 10, Column: 2, Severity: "warning", Message: "format string requires 2 arguments but 1 were provided"},
		{RunID: "run1", Analyzer: "passlogparams", File: "a.go", Line: 14, Column: 20, Severity: "warning", Message: "argument type <int64> does not match format specifier '%d'"},
		{RunID: "run1", Analyzer: "osexit", File: "main.go", Line: 20, Column: 1, Severity: "warning", Message: "direct os.Exit call in main function"},
		{RunID: "run2", Analyzer: "passlogparams", File: "b.go", Line: 5, Column: 3, Severity: "warning", Message: "unnecessary String() call"},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{
			name:    "Positive Test New",
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got.runMap == nil {
				t.Errorf("New() runMap is nil")
			}
		})
	}
}

func TestMemStorage_UpdateBatch(t *testing.T) {
	type args struct {
		findings []storage.Finding
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "Test MemStorage_UpdateBatch positive",
			args: args{
				findings: testFindings(),
			},
			wantErr: false,
		},
		{
			name: "Test MemStorage_UpdateBatch empty batch",
			args: args{
				findings: nil,
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, _ := New(context.Background())
			if err := ms.UpdateBatch(context.Background(), tt.args.findings); (err != nil) != tt.wantErr {
				t.Errorf("UpdateBatch() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMemStorage_GetRun(t *testing.T) {
	type args struct {
		runID string
	}
	tests := []struct {
		name    string
		args    args
		wantLen int
		wantErr bool
	}{
		{
			name: "Test MemStorage_GetRun positive",
			args: args{
				runID: "run1",
			},
			wantLen: 3,
			wantErr: false,
		},
		{
			name: "Test MemStorage_GetRun unknown run",
			args: args{
				runID: "run777",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, _ := New(context.Background())
			_ = ms.UpdateBatch(context.Background(), testFindings())
			got, err := ms.GetRun(context.Background(), tt.args.runID)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetRun() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if len(got) != tt.wantLen {
				t.Errorf("GetRun() len = %v, want %v", len(got), tt.wantLen)
			}
		})
	}
}

func TestMemStorage_CountByAnalyzer(t *testing.T) {
	ms, _ := New(context.Background())
	_ = ms.UpdateBatch(context.Background(), testFindings())
	want := map[string]int64{
		"passlogparams": 3,
		"osexit":        1,
	}
	got, err := ms.CountByAnalyzer(context.Background())
	if err != nil {
		t.Errorf("CountByAnalyzer() error = %v", err)
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountByAnalyzer() = %v, want %v", got, want)
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	ms, _ := New(context.Background())
	_ = ms.UpdateBatch(context.Background(), testFindings())

	data, err := Marshal(ms)
	if err != nil {
		t.Errorf("Marshal() error = %v", err)
		return
	}

	var restored MemStorage
	if err := Unmarshal(data, &restored); err != nil {
		t.Errorf("Unmarshal() error = %v", err)
		return
	}
	if !reflect.DeepEqual(ms.runMap, restored.runMap) {
		t.Errorf("Unmarshal() = %v, want %v", restored.runMap, ms.runMap)
	}
}

func TestMarshalWrongType(t *testing.T) {
	if _, err := Marshal("not a storage"); err == nil {
		t.Errorf("Marshal() expected error for wrong type")
	}
}

func TestMemStorage_Close(t *testing.T) {
	ms, _ := New(context.Background())
	if err := ms.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
