package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty input dir returns ErrInputDirEmpty",
			config:  Config{InputDir: "", Workers: 1},
			wantErr: ErrInputDirEmpty,
		},
		{
			name:    "zero workers returns ErrWorkersInvalid",
			config:  Config{InputDir: "inputs", Workers: 0},
			wantErr: ErrWorkersInvalid,
		},
		{
			name:    "negative workers returns ErrWorkersInvalid",
			config:  Config{InputDir: "inputs", Workers: -2},
			wantErr: ErrWorkersInvalid,
		},
		{
			name:    "valid config",
			config:  Config{InputDir: "inputs", Workers: DefaultWorkers},
			wantErr: nil,
		},
		{
			name:    "empty DataDir is valid at config level",
			config:  Config{InputDir: "inputs", DataDir: "", Workers: 1},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestResultFailed(t *testing.T) {
	if (Result{Answer: 3}).Failed() {
		t.Fatal("result without error reported as failed")
	}
	if !(Result{Err: "boom"}).Failed() {
		t.Fatal("result with error not reported as failed")
	}
}
