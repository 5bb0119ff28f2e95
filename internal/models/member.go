package models

// Role is the class a member row resolves to.
type Role string

const (
	RoleMember       Role = "member"
	RoleCollaborator Role = "collaborator"
)

// Classification holds the four fields fixed by the member/collaborator decision.
// Only [MemberClassification] and [CollaboratorClassification] are valid values.
type Classification struct {
	Role               Role   `json:"role"`
	RegistrationType   string `json:"registrationType"`
	VerificationStatus string `json:"verificationStatus"`
	LifecycleStatus    string `json:"lifecycleStatus"`
}

var (
	MemberClassification = Classification{
		Role:               RoleMember,
		RegistrationType:   "member",
		VerificationStatus: "approved",
		LifecycleStatus:    "active",
	}
	CollaboratorClassification = Classification{
		Role:               RoleCollaborator,
		RegistrationType:   "collaborator",
		VerificationStatus: "none",
		LifecycleStatus:    "collaborator",
	}
)

// ClassificationFor returns the classification for the given decision.
func ClassificationFor(isMember bool) Classification {
	if isMember {
		return MemberClassification
	}
	return CollaboratorClassification
}

// Priorities maps each initiative to the rating a respondent gave it.
// Unrated initiatives are omitted from JSON.
type Priorities struct {
	BolsaTrabajo         *string `json:"bolsaTrabajo,omitempty"`
	Hackatones           *string `json:"hackatones,omitempty"`
	CursosEspecializados *string `json:"cursosEspecializados,omitempty"`
	Seminarios           *string `json:"seminarios,omitempty"`
	Asesorias            *string `json:"asesorias,omitempty"`
	Mentoria             *string `json:"mentoria,omitempty"`
	Newsletter           *string `json:"newsletter,omitempty"`
}

// Set stores value under the initiative key. Unknown keys and absent values are ignored.
func (p *Priorities) Set(key string, value *string) {
	if value == nil {
		return
	}
	switch key {
	case "bolsaTrabajo":
		p.BolsaTrabajo = value
	case "hackatones":
		p.Hackatones = value
	case "cursosEspecializados":
		p.CursosEspecializados = value
	case "seminarios":
		p.Seminarios = value
	case "asesorias":
		p.Asesorias = value
	case "mentoria":
		p.Mentoria = value
	case "newsletter":
		p.Newsletter = value
	}
}

// Map returns the rated initiatives keyed by their JSON name.
func (p Priorities) Map() map[string]string {
	out := make(map[string]string)
	for _, kv := range []struct {
		key   string
		value *string
	}{
		{"bolsaTrabajo", p.BolsaTrabajo},
		{"hackatones", p.Hackatones},
		{"cursosEspecializados", p.CursosEspecializados},
		{"seminarios", p.Seminarios},
		{"asesorias", p.Asesorias},
		{"mentoria", p.Mentoria},
		{"newsletter", p.Newsletter},
	} {
		if kv.value != nil {
			out[kv.key] = *kv.value
		}
	}
	return out
}

// Record is one member as it will be imported. Field order is the JSON key order.
type Record struct {
	Email       string  `json:"email"`
	DisplayName string  `json:"displayName"`
	FirstName   *string `json:"firstName"`
	LastName    string  `json:"lastName"`

	Classification

	NumeroCuenta         *string    `json:"numeroCuenta"`
	AcademicLevel        *string    `json:"academicLevel"`
	Campus               *string    `json:"campus"`
	Generation           *string    `json:"generation"`
	Gender               *string    `json:"gender"`
	Company              *string    `json:"company"`
	Position             *string    `json:"position"`
	ProfessionalStatus   *string    `json:"professionalStatus"`
	MaxDegree            *string    `json:"maxDegree"`
	MaxDegreeInstitution *string    `json:"maxDegreeInstitution"`
	MaxDegreeProgram     *string    `json:"maxDegreeProgram"`
	Skills               []string   `json:"skills"`
	ExperienceLevel      *string    `json:"experienceLevel"`
	CurrentlyStudying    *string    `json:"currentlyStudying"`
	LinkedIn             *string    `json:"linkedin"`
	Instagram            *string    `json:"instagram"`
	Twitter              *string    `json:"twitter"`
	Facebook             *string    `json:"facebook"`
	Phone                *string    `json:"phone"`
	CVURL                *string    `json:"cvUrl"`
	CVHighlights         *string    `json:"cvHighlights"`
	BirthDate            *string    `json:"birthDate"`
	RegisteredAt         *string    `json:"registeredAt"`
	WhatsappConsent      *string    `json:"whatsappConsent"`
	Objectives           *string    `json:"objectives"`
	Expectations         *string    `json:"expectations"`
	Priorities           Priorities `json:"priorities"`
	Comments             *string    `json:"comments"`
}

// HasAccount reports whether an account number was joined to the record.
func (r Record) HasAccount() bool {
	return r.NumeroCuenta != nil && *r.NumeroCuenta != ""
}

// Document is the file handed to the database import.
type Document struct {
	GeneratedAt       string   `json:"generatedAt"`
	TotalMembers      int      `json:"totalMembers"`
	MemberCount       int      `json:"memberCount"`
	CollaboratorCount int      `json:"collaboratorCount"`
	ExcludedEmails    []string `json:"excludedEmails"`
	Members           []Record `json:"members"`
}

// WithAccount counts records that carry an account number.
func (d Document) WithAccount() int {
	n := 0
	for _, r := range d.Members {
		if r.HasAccount() {
			n++
		}
	}
	return n
}
