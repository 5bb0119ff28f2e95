package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/secid-import/internal/models"
	"github.com/desertthunder/secid-import/internal/shared"
)

func strPtr(s string) *string { return &s }

func validDocument() models.Document {
	return models.Document{
		GeneratedAt:       "2025-03-01T12:00:00.000001",
		TotalMembers:      2,
		MemberCount:       1,
		CollaboratorCount: 1,
		ExcludedEmails:    []string{"prueba@secid.mx"},
		Members: []models.Record{
			{
				Email:          "ana@example.com",
				DisplayName:    "Ana López",
				FirstName:      strPtr("Ana"),
				LastName:       "López",
				Classification: models.MemberClassification,
				NumeroCuenta:   strPtr("314159265"),
				AcademicLevel:  strPtr("licenciatura"),
				Skills:         []string{"Python"},
				Priorities:     models.Priorities{Seminarios: strPtr("Alta")},
			},
			{
				Email:          "jdoe@example.com",
				DisplayName:    "jdoe",
				Classification: models.CollaboratorClassification,
				Skills:         []string{},
			},
		},
	}
}

func TestValidateDocument_Valid(t *testing.T) {
	if err := ValidateDocument(validDocument()); err != nil {
		t.Fatalf("ValidateDocument() error = %v", err)
	}
}

func TestValidateDocument_Invalid(t *testing.T) {
	tc := []struct {
		name   string
		mutate func(d *models.Document)
		field  string
	}{
		{
			name: "mixed classification",
			mutate: func(d *models.Document) {
				d.Members[0].VerificationStatus = "none"
			},
			field: "members.0",
		},
		{
			name: "unknown academic level",
			mutate: func(d *models.Document) {
				d.Members[0].AcademicLevel = strPtr("diplomado")
			},
			field: "academicLevel",
		},
		{
			name: "non-numeric account",
			mutate: func(d *models.Document) {
				d.Members[0].NumeroCuenta = strPtr("31-41")
			},
			field: "numeroCuenta",
		},
		{
			name: "nil skills",
			mutate: func(d *models.Document) {
				d.Members[1].Skills = nil
			},
			field: "skills",
		},
		{
			name: "counters do not add up",
			mutate: func(d *models.Document) {
				d.MemberCount = 2
			},
			field: "memberCount",
		},
		{
			name: "total does not match members",
			mutate: func(d *models.Document) {
				d.Members = d.Members[:1]
			},
			field: "totalMembers",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(&doc)

			err := ValidateDocument(doc)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error to mention %q, got %v", tt.field, err)
			}
		})
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		data, err := shared.MarshalJSON(validDocument(), true)
		if err != nil {
			t.Fatalf("MarshalJSON() error = %v", err)
		}
		path := filepath.Join(dir, "valid.json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		if err := ValidateFile(path); err != nil {
			t.Errorf("ValidateFile() error = %v", err)
		}
	})

	t.Run("unexpected top-level key", func(t *testing.T) {
		path := filepath.Join(dir, "extra.json")
		content := `{"generatedAt":"x","totalMembers":0,"memberCount":0,"collaboratorCount":0,"excludedEmails":[],"members":[],"extra":true}`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		var verr *ValidationError
		if err := ValidateFile(path); !errors.As(err, &verr) {
			t.Errorf("expected *ValidationError, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		err := ValidateFile(filepath.Join(dir, "missing.json"))
		if !errors.Is(err, shared.ErrInputMissing) {
			t.Errorf("expected ErrInputMissing, got %v", err)
		}
	})
}
