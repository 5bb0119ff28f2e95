package tasks

// Survey headers read from the member and account spreadsheets.
const (
	ColEmail                = "Dirección de correo electrónico"
	ColFirstName            = "Nombre(s)"
	ColPaternalSurname      = "Apellido Paterno"
	ColMaternalSurname      = "Apellido Materno"
	ColMember               = "Miembro"
	ColRegistrationType     = "Tipo de registro"
	ColAcademicLevel        = "Indica el nivel académico en el que cursaste estudios de ciencia de datos en la UNAM."
	ColCampus               = "Indica tu sede de estudios"
	ColGeneration           = "Elige la generación a la que perteneces."
	ColGender               = "Indica el género con el que te identificas."
	ColCompany              = "Última empresa o institución en la que laboras / laboraste"
	ColPosition             = "Puesto de trabajo"
	ColProfessionalStatus   = "Situación profesional"
	ColMaxDegree            = "Máximo grado de estudios"
	ColMaxDegreeInstitution = "Institución en la que cursaste el máximo grado de estudios"
	ColMaxDegreeProgram     = "Nombre del programa del máximo grado de estudios"
	ColSkills               = "Intereses / área de expertise"
	ColExperienceLevel      = "Indica el nivel de experiencia que tienes en el área de ciencia de datos"
	ColCurrentlyStudying    = "¿Estudias actualmente?"
	ColLinkedIn             = "LinkedIn"
	ColInstagram            = "Instagram"
	ColTwitter              = "Twitter"
	ColFacebook             = "Facebook"
	ColPhone                = "Teléfono"
	ColCV                   = "Currículum vitae"
	ColCVHighlights         = "Resumé (CV highlights)"
	ColBirthDate            = "Fecha de Nacimiento"
	ColTimestamp            = "Marca temporal"
	ColWhatsappConsent      = "¿Autorizas que añadamos tu número de teléfono a la comunidad de WhatsApp de egresados de la SECiD?"
	ColObjectives           = "¿Cuáles son los principales objetivos de tu acercamiento a SECiD?"
	ColExpectations         = "Describe a mayor detalle cuáles son tus expectativas al colaborar con SECiD."
	ColComments             = "Comparte tus recomendaciones adicionales, comentarios, y sugerencias sobre cómo podríamos colaborar y mejorar."

	ColAccountNumber = "Numero de cuenta"
)

const priorityPrefix = "Selecciona el nivel de prioridad que le asignas a cada una de las siguientes iniciativas: "

// PriorityColumn pairs an initiative key with its survey header.
type PriorityColumn struct {
	Key    string
	Column string
}

// PriorityColumns lists the seven initiatives in output order.
var PriorityColumns = []PriorityColumn{
	{Key: "bolsaTrabajo", Column: priorityPrefix + "[Bolsa Trabajo]"},
	{Key: "hackatones", Column: priorityPrefix + "[Hackatones]"},
	{Key: "cursosEspecializados", Column: priorityPrefix + "[Cursos especializados]"},
	{Key: "seminarios", Column: priorityPrefix + "[Seminarios]"},
	{Key: "asesorias", Column: priorityPrefix + "[Asesorías]"},
	{Key: "mentoria", Column: priorityPrefix + "[Mentoría]"},
	{Key: "newsletter", Column: priorityPrefix + "[Newsletter]"},
}

// Columns every member table must have. Any other column may be missing and reads as blank.
var RequiredMemberColumns = []string{ColEmail, ColFirstName, ColPaternalSurname, ColMaternalSurname}

// Columns every account table must have.
var RequiredAccountColumns = []string{ColEmail}
