package shared

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Input.Members != "tmp/members.xlsx" {
			t.Errorf("expected members path tmp/members.xlsx, got %s", config.Input.Members)
		}

		if config.Input.Accounts != "tmp/members-accounts.xlsx" {
			t.Errorf("expected accounts path tmp/members-accounts.xlsx, got %s", config.Input.Accounts)
		}

		if config.Output.Path != "tmp/members-import.json" {
			t.Errorf("expected output path tmp/members-import.json, got %s", config.Output.Path)
		}

		if len(config.Import.ExcludedEmails) != 2 {
			t.Errorf("expected 2 excluded emails, got %v", config.Import.ExcludedEmails)
		}

		if config.HistoryEnabled() {
			t.Error("history should be disabled by default")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Output.Path != DefaultConfig().Output.Path {
			t.Errorf("created config output path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[input]
members = "data/roster.csv"

[output]
path = "out/import.json"
csv_path = "out/import.csv"

[import]
excluded_emails = ["qa@secid.mx"]

[database]
path = "out/history.db"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Input.Members != "data/roster.csv" {
			t.Errorf("expected members data/roster.csv, got %s", config.Input.Members)
		}

		if config.Input.Accounts != "tmp/members-accounts.xlsx" {
			t.Errorf("unset accounts path should keep default, got %s", config.Input.Accounts)
		}

		if config.Output.CSVPath != "out/import.csv" {
			t.Errorf("expected csv path out/import.csv, got %s", config.Output.CSVPath)
		}

		if len(config.Import.ExcludedEmails) != 1 || config.Import.ExcludedEmails[0] != "qa@secid.mx" {
			t.Errorf("expected excluded emails to be replaced, got %v", config.Import.ExcludedEmails)
		}

		if !config.HistoryEnabled() {
			t.Error("history should be enabled when database.path is set")
		}
	})

	t.Run("LoadConfig rejects invalid TOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[input\nmembers ="), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfig rejects empty output path", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[output]\npath = \"\"\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name    string
			mutate  func(c *Config)
			wantErr string
		}{
			{name: "defaults are valid", mutate: func(c *Config) {}},
			{
				name:    "empty members path",
				mutate:  func(c *Config) { c.Input.Members = "" },
				wantErr: "input.members is empty",
			},
			{
				name:    "malformed excluded email",
				mutate:  func(c *Config) { c.Import.ExcludedEmails = []string{"qa@secid.mx", "not-an-email"} },
				wantErr: `import.excluded_emails[1]: "not-an-email" is not an email address`,
			},
			{
				name:    "negative connection limit",
				mutate:  func(c *Config) { c.Database.MaxOpenConns = -1 },
				wantErr: `database.max_open_conns fails "gte"`,
			},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				config := DefaultConfig()
				tt.mutate(config)

				err := config.Validate()
				if tt.wantErr == "" {
					if err != nil {
						t.Fatalf("expected no error, got %v", err)
					}
					return
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("expected ErrInvalidConfig, got %v", err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error to mention %q, got %q", tt.wantErr, err.Error())
				}
			})
		}
	})
}
