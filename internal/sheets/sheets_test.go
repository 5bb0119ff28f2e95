package sheets

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/secid-import/internal/shared"
	tu "github.com/desertthunder/secid-import/internal/testing"
)

func TestLoadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "members.xlsx")
	tu.WriteWorkbook(t, path, [][]any{
		{"Dirección de correo electrónico", " Nombre(s) ", "Elige la generación a la que perteneces.", "Marca temporal", "Nombre(s)"},
		{"ana@example.com", "Ana", 2021, time.Date(2023, 5, 1, 10, 20, 30, 0, time.UTC), "duplicate"},
		{"", "", "", "", ""},
		{"luis@example.com", "Luis"},
	})

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows (blank row skipped), got %d", len(table.Rows))
	}

	first := table.Rows[0]
	if first.Index != 2 {
		t.Errorf("first row index = %d, want 2", first.Index)
	}
	if got := first.Get("Nombre(s)"); got != "Ana" {
		t.Errorf("header should be trimmed and first duplicate should win, got %q", got)
	}
	if got := first.Get("Elige la generación a la que perteneces."); got != "2021" {
		t.Errorf("numeric cell raw value = %q, want 2021", got)
	}
	if got := first.Get("Marca temporal"); !strings.HasPrefix(got, "45047.43") {
		t.Errorf("date cell should keep its serial value, got %q", got)
	}

	second := table.Rows[1]
	if second.Index != 4 {
		t.Errorf("second row index = %d, want 4", second.Index)
	}
	if got := second.Get("Marca temporal"); got != "" {
		t.Errorf("short row should read blank, got %q", got)
	}
	if got := second.Get("Teléfono"); got != "" {
		t.Errorf("absent column should read blank, got %q", got)
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.csv")
	tu.WriteCSV(t, path, [][]string{
		{"\ufeffDirección de correo electrónico", "Numero de cuenta"},
		{"ana@example.com", "314159265"},
		{"luis@example.com"},
	})

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if err := table.Require("Dirección de correo electrónico", "Numero de cuenta"); err != nil {
		t.Fatalf("byte order mark should be stripped from the first header: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if got := table.Rows[0].Get("Numero de cuenta"); got != "314159265" {
		t.Errorf("account = %q", got)
	}
	if got := table.Rows[1].Get("Numero de cuenta"); got != "" {
		t.Errorf("ragged row should read blank, got %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tc := []struct {
		name    string
		setup   func() string
		wantErr error
	}{
		{
			name:    "missing file",
			setup:   func() string { return filepath.Join(dir, "nope.xlsx") },
			wantErr: shared.ErrInputMissing,
		},
		{
			name: "unsupported extension",
			setup: func() string {
				return tu.WriteCSV(t, filepath.Join(dir, "members.ods"), [][]string{{"a"}})
			},
			wantErr: shared.ErrUnsupportedFormat,
		},
		{
			name: "empty csv",
			setup: func() string {
				return tu.WriteCSV(t, filepath.Join(dir, "empty.csv"), nil)
			},
			wantErr: shared.ErrEmptySheet,
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.setup())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequire(t *testing.T) {
	table, err := NewTable("inline", [][]string{{"a", "b"}, {"1", "2"}})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	if err := table.Require("a", "b"); err != nil {
		t.Errorf("Require() unexpected error = %v", err)
	}

	err = table.Require("a", "Apellido Materno")
	if !errors.Is(err, shared.ErrMissingColumn) {
		t.Fatalf("Require() error = %v, want ErrMissingColumn", err)
	}
	if !strings.Contains(err.Error(), "Apellido Materno") {
		t.Errorf("error should name the column: %v", err)
	}
}
