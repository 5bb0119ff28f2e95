package tasks

import (
	"fmt"
	"strings"

	"github.com/desertthunder/secid-import/internal/models"
	"github.com/desertthunder/secid-import/internal/normalize"
	"github.com/desertthunder/secid-import/internal/sheets"
	"github.com/desertthunder/secid-import/internal/shared"
)

// ExcludeMembers drops rows whose normalized email is in excluded and reports how many were dropped.
// Order is preserved.
func ExcludeMembers(rows []sheets.Row, excluded []string) ([]sheets.Row, int) {
	skip := make(map[string]struct{}, len(excluded))
	for _, e := range excluded {
		skip[normalize.Email(e)] = struct{}{}
	}

	kept := make([]sheets.Row, 0, len(rows))
	for _, row := range rows {
		if _, ok := skip[normalize.Email(row.Get(ColEmail))]; ok {
			continue
		}
		kept = append(kept, row)
	}
	return kept, len(rows) - len(kept)
}

// BuildAccountMap maps normalized email to account number.
//
// Rows with a blank email or account are skipped and a later row for the same email
// replaces an earlier one. A non-numeric account is an error.
func BuildAccountMap(accounts *sheets.Table) (map[string]string, error) {
	out := make(map[string]string, len(accounts.Rows))
	for _, row := range accounts.Rows {
		email := normalize.Email(row.Get(ColEmail))
		raw := row.Get(ColAccountNumber)
		if email == "" || !normalize.IsPresent(raw) {
			continue
		}

		number, ok := normalize.IntegerString(raw)
		if !ok {
			return nil, fmt.Errorf("%w: %q in column %q, row %d of %s",
				shared.ErrInvalidCell, raw, ColAccountNumber, row.Index, accounts.Path)
		}
		out[email] = number
	}
	return out, nil
}

// IsMember decides the member/collaborator split: any value in the membership column,
// whitespace included, or a registration type mentioning "miembro" or "egresado".
func IsMember(row sheets.Row) bool {
	if row.Get(ColMember) != "" {
		return true
	}
	tipo := strings.ToLower(strings.TrimSpace(row.Get(ColRegistrationType)))
	return strings.Contains(tipo, "miembro") || strings.Contains(tipo, "egresado")
}

// Classify returns the classification fields for a member row.
func Classify(row sheets.Row) models.Classification {
	return models.ClassificationFor(IsMember(row))
}

// BuildRecord assembles the import record for one member row.
func BuildRecord(row sheets.Row, accounts map[string]string) (models.Record, error) {
	email := strings.TrimSpace(row.Get(ColEmail))
	if email == "" {
		return models.Record{}, fmt.Errorf("%w: blank %q in row %d", shared.ErrInvalidCell, ColEmail, row.Index)
	}

	firstName := normalize.SafeString(row.Get(ColFirstName))
	paternal := normalize.SafeString(row.Get(ColPaternalSurname))
	maternal := normalize.SafeString(row.Get(ColMaternalSurname))

	displayName := joinPresent(firstName, paternal)
	if displayName == "" {
		displayName, _, _ = strings.Cut(email, "@")
	}

	var numeroCuenta *string
	if n, ok := accounts[normalize.Email(email)]; ok {
		numeroCuenta = &n
	}

	var priorities models.Priorities
	for _, pc := range PriorityColumns {
		priorities.Set(pc.Key, normalize.SafeString(row.Get(pc.Column)))
	}

	field := func(col string) *string { return normalize.SafeString(row.Get(col)) }

	return models.Record{
		Email:          email,
		DisplayName:    displayName,
		FirstName:      firstName,
		LastName:       joinPresent(paternal, maternal),
		Classification: Classify(row),

		NumeroCuenta:         numeroCuenta,
		AcademicLevel:        normalize.NormalizeAcademicLevel(row.Get(ColAcademicLevel)),
		Campus:               field(ColCampus),
		Generation:           normalize.NormalizeGeneration(row.Get(ColGeneration)),
		Gender:               field(ColGender),
		Company:              field(ColCompany),
		Position:             field(ColPosition),
		ProfessionalStatus:   field(ColProfessionalStatus),
		MaxDegree:            field(ColMaxDegree),
		MaxDegreeInstitution: field(ColMaxDegreeInstitution),
		MaxDegreeProgram:     field(ColMaxDegreeProgram),
		Skills:               normalize.ParseSkills(row.Get(ColSkills)),
		ExperienceLevel:      field(ColExperienceLevel),
		CurrentlyStudying:    field(ColCurrentlyStudying),
		LinkedIn:             field(ColLinkedIn),
		Instagram:            field(ColInstagram),
		Twitter:              field(ColTwitter),
		Facebook:             field(ColFacebook),
		Phone:                field(ColPhone),
		CVURL:                field(ColCV),
		CVHighlights:         field(ColCVHighlights),
		BirthDate:            normalize.ToISO(row.Get(ColBirthDate)),
		RegisteredAt:         normalize.ToISO(row.Get(ColTimestamp)),
		WhatsappConsent:      field(ColWhatsappConsent),
		Objectives:           field(ColObjectives),
		Expectations:         field(ColExpectations),
		Priorities:           priorities,
		Comments:             field(ColComments),
	}, nil
}

// joinPresent joins the non-nil parts with a single space.
func joinPresent(parts ...*string) string {
	var present []string
	for _, p := range parts {
		if p != nil {
			present = append(present, *p)
		}
	}
	return strings.Join(present, " ")
}
