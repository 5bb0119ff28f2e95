// package formatter writes import documents to disk (JSON, CSV) and renders the run summary
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/desertthunder/secid-import/internal/models"
	"github.com/desertthunder/secid-import/internal/shared"
	"github.com/desertthunder/secid-import/internal/ui"
)

// WriteImportDocument writes doc as indented UTF-8 JSON to path.
//
// The file is written next to path under a temporary name and renamed into place,
// so path either keeps its previous content or holds the complete new document.
func WriteImportDocument(doc models.Document, path string) error {
	data, err := shared.MarshalJSON(doc, true)
	if err != nil {
		return fmt.Errorf("failed to marshal import document: %w", err)
	}
	return writeFileAtomic(path, append(data, '\n'))
}

type csvColumn struct {
	header string
	value  func(models.Record) string
}

func opt(get func(models.Record) *string) func(models.Record) string {
	return func(r models.Record) string {
		if v := get(r); v != nil {
			return *v
		}
		return ""
	}
}

func priority(key string) func(models.Record) string {
	return func(r models.Record) string { return r.Priorities.Map()[key] }
}

var csvColumns = []csvColumn{
	{"email", func(r models.Record) string { return r.Email }},
	{"displayName", func(r models.Record) string { return r.DisplayName }},
	{"firstName", opt(func(r models.Record) *string { return r.FirstName })},
	{"lastName", func(r models.Record) string { return r.LastName }},
	{"role", func(r models.Record) string { return string(r.Role) }},
	{"registrationType", func(r models.Record) string { return r.RegistrationType }},
	{"verificationStatus", func(r models.Record) string { return r.VerificationStatus }},
	{"lifecycleStatus", func(r models.Record) string { return r.LifecycleStatus }},
	{"numeroCuenta", opt(func(r models.Record) *string { return r.NumeroCuenta })},
	{"academicLevel", opt(func(r models.Record) *string { return r.AcademicLevel })},
	{"campus", opt(func(r models.Record) *string { return r.Campus })},
	{"generation", opt(func(r models.Record) *string { return r.Generation })},
	{"gender", opt(func(r models.Record) *string { return r.Gender })},
	{"company", opt(func(r models.Record) *string { return r.Company })},
	{"position", opt(func(r models.Record) *string { return r.Position })},
	{"professionalStatus", opt(func(r models.Record) *string { return r.ProfessionalStatus })},
	{"maxDegree", opt(func(r models.Record) *string { return r.MaxDegree })},
	{"maxDegreeInstitution", opt(func(r models.Record) *string { return r.MaxDegreeInstitution })},
	{"maxDegreeProgram", opt(func(r models.Record) *string { return r.MaxDegreeProgram })},
	{"skills", func(r models.Record) string { return strings.Join(r.Skills, "; ") }},
	{"experienceLevel", opt(func(r models.Record) *string { return r.ExperienceLevel })},
	{"currentlyStudying", opt(func(r models.Record) *string { return r.CurrentlyStudying })},
	{"linkedin", opt(func(r models.Record) *string { return r.LinkedIn })},
	{"instagram", opt(func(r models.Record) *string { return r.Instagram })},
	{"twitter", opt(func(r models.Record) *string { return r.Twitter })},
	{"facebook", opt(func(r models.Record) *string { return r.Facebook })},
	{"phone", opt(func(r models.Record) *string { return r.Phone })},
	{"cvUrl", opt(func(r models.Record) *string { return r.CVURL })},
	{"cvHighlights", opt(func(r models.Record) *string { return r.CVHighlights })},
	{"birthDate", opt(func(r models.Record) *string { return r.BirthDate })},
	{"registeredAt", opt(func(r models.Record) *string { return r.RegisteredAt })},
	{"whatsappConsent", opt(func(r models.Record) *string { return r.WhatsappConsent })},
	{"objectives", opt(func(r models.Record) *string { return r.Objectives })},
	{"expectations", opt(func(r models.Record) *string { return r.Expectations })},
	{"priorities.bolsaTrabajo", priority("bolsaTrabajo")},
	{"priorities.hackatones", priority("hackatones")},
	{"priorities.cursosEspecializados", priority("cursosEspecializados")},
	{"priorities.seminarios", priority("seminarios")},
	{"priorities.asesorias", priority("asesorias")},
	{"priorities.mentoria", priority("mentoria")},
	{"priorities.newsletter", priority("newsletter")},
	{"comments", opt(func(r models.Record) *string { return r.Comments })},
}

// ExportToCSV flattens the records of doc into one CSV row each.
// Skills are joined with "; " and each initiative gets its own column.
func ExportToCSV(doc models.Document) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := make([]string, len(csvColumns))
	for i, c := range csvColumns {
		headers[i] = c.header
	}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, r := range doc.Members {
		row := make([]string, len(csvColumns))
		for i, c := range csvColumns {
			row[i] = c.value(r)
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteCSVExport writes the flattened records of doc to path.
func WriteCSVExport(doc models.Document, path string) error {
	data, err := ExportToCSV(doc)
	if err != nil {
		return fmt.Errorf("failed to generate CSV: %w", err)
	}
	return writeFileAtomic(path, data)
}

// Summary is what the console reports after a run.
type Summary struct {
	Path          string
	Total         int
	Members       int
	Collaborators int
	WithAccount   int
	Excluded      []string
}

// NewSummary collects the summary counters of doc written to path.
func NewSummary(doc models.Document, path string) Summary {
	return Summary{
		Path:          path,
		Total:         doc.TotalMembers,
		Members:       doc.MemberCount,
		Collaborators: doc.CollaboratorCount,
		WithAccount:   doc.WithAccount(),
		Excluded:      doc.ExcludedEmails,
	}
}

// WriteSummary prints the five summary lines to w.
func WriteSummary(w io.Writer, s Summary, p *ui.Palette) error {
	if p == nil {
		p = ui.NewPalette(w)
	}

	excluded := "(none)"
	if len(s.Excluded) > 0 {
		excluded = strings.Join(s.Excluded, ", ")
	}

	lines := []string{
		p.OK(fmt.Sprintf("Wrote %d records to %s", s.Total, s.Path)),
		"  " + p.Label("Members:") + " " + strconv.Itoa(s.Members),
		"  " + p.Label("Collaborators:") + " " + strconv.Itoa(s.Collaborators),
		"  " + p.Label("With account numbers:") + " " + strconv.Itoa(s.WithAccount),
		"  " + p.Label("Excluded:") + " " + excluded,
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

// writeFileAtomic writes data to a temporary file in the target directory and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
