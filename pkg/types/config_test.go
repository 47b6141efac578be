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
			name:    "empty directory returns ErrDirectoryEmpty",
			config:  Config{Directory: "", Extension: ".csv"},
			wantErr: ErrDirectoryEmpty,
		},
		{
			name:    "blank directory returns ErrDirectoryEmpty",
			config:  Config{Directory: "   ", Extension: ".csv"},
			wantErr: ErrDirectoryEmpty,
		},
		{
			name:    "extension without dot returns ErrExtensionInvalid",
			config:  Config{Directory: "vocab", Extension: "csv"},
			wantErr: ErrExtensionInvalid,
		},
		{
			name:    "bare dot returns ErrExtensionInvalid",
			config:  Config{Directory: "vocab", Extension: "."},
			wantErr: ErrExtensionInvalid,
		},
		{
			name:    "valid config",
			config:  Config{Directory: "vocab", Extension: ".csv"},
			wantErr: nil,
		},
		{
			name:    "read-only config is valid",
			config:  Config{Directory: "vocab", Extension: ".tsv", ReadOnly: true},
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

func TestConfigWithDefaults(t *testing.T) {
	got := Config{}.WithDefaults()
	if got.Directory != DefaultDirectory {
		t.Fatalf("Directory = %q, want %q", got.Directory, DefaultDirectory)
	}
	if got.Extension != DefaultExtension {
		t.Fatalf("Extension = %q, want %q", got.Extension, DefaultExtension)
	}

	kept := Config{Directory: "lists", Extension: ".txt"}.WithDefaults()
	if kept.Directory != "lists" || kept.Extension != ".txt" {
		t.Fatalf("WithDefaults overwrote explicit values: %+v", kept)
	}
}
