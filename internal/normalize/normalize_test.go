package normalize

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func TestSafeString(t *testing.T) {
	tc := []struct {
		name string
		raw  string
		want string
	}{
		{name: "blank", raw: "", want: "<nil>"},
		{name: "whitespace only", raw: " \t\n ", want: "<nil>"},
		{name: "trimmed", raw: "  Ciudad Universitaria ", want: "Ciudad Universitaria"},
		{name: "keeps inner spaces", raw: "Data  Scientist", want: "Data  Scientist"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := deref(SafeString(tt.raw)); got != tt.want {
				t.Errorf("SafeString(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	if got := Email("  Ana.Lopez@Example.COM "); got != "ana.lopez@example.com" {
		t.Errorf("Email() = %q", got)
	}
}

func TestParseSkills(t *testing.T) {
	tc := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "blank", raw: "", want: []string{}},
		{name: "mixed separators with empty token", raw: "Python; SQL, , R", want: []string{"Python", "SQL", "R"}},
		{name: "keeps duplicates and order", raw: "R, Python, R", want: []string{"R", "Python", "R"}},
		{name: "only separators", raw: " ;, ; ", want: []string{}},
		{name: "single value", raw: " Machine Learning ", want: []string{"Machine Learning"}},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSkills(tt.raw)
			if got == nil {
				t.Fatal("ParseSkills() must never return nil")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseSkills(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestNormalizeAcademicLevel(t *testing.T) {
	tc := []struct {
		raw  string
		want string
	}{
		{raw: "Licenciatura en Ciencia de Datos", want: LevelLicenciatura},
		{raw: "Maestría", want: LevelPosgrado},
		{raw: "Doctorado en Ciencias", want: LevelPosgrado},
		{raw: "Posgrado", want: LevelPosgrado},
		{raw: "Curso de actualización", want: LevelCurso},
		{raw: "ACTUALIZACIÓN PROFESIONAL", want: LevelCurso},
		{raw: "Licenciatura y maestría", want: LevelLicenciatura},
		{raw: "Diplomado", want: "<nil>"},
		{raw: "", want: "<nil>"},
		{raw: "   ", want: "<nil>"},
	}

	for _, tt := range tc {
		t.Run(tt.raw, func(t *testing.T) {
			if got := deref(NormalizeAcademicLevel(tt.raw)); got != tt.want {
				t.Errorf("NormalizeAcademicLevel(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeGeneration(t *testing.T) {
	tc := []struct {
		raw  string
		want string
	}{
		{raw: "2021.0", want: "2021"},
		{raw: "2021", want: "2021"},
		{raw: " 2019.9 ", want: "2019"},
		{raw: "-0.5", want: "0"},
		{raw: "N/A", want: "N/A"},
		{raw: "  Generación 2020 ", want: "Generación 2020"},
		{raw: "NaN", want: "NaN"},
		{raw: "inf", want: "inf"},
		{raw: "0x10", want: "0x10"},
		{raw: "", want: "<nil>"},
		{raw: "  ", want: "<nil>"},
	}

	for _, tt := range tc {
		t.Run(tt.raw, func(t *testing.T) {
			if got := deref(NormalizeGeneration(tt.raw)); got != tt.want {
				t.Errorf("NormalizeGeneration(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIntegerString(t *testing.T) {
	tc := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{raw: "314159265", want: "314159265", wantOK: true},
		{raw: "314159265.0", want: "314159265", wantOK: true},
		{raw: "3.14159265E8", want: "314159265", wantOK: true},
		{raw: "1e30", want: "1000000000000000019884624838656", wantOK: true},
		{raw: "abc"},
		{raw: ""},
		{raw: "1_000"},
		{raw: "0x10"},
		{raw: "NaN"},
		{raw: "-Inf"},
	}

	for _, tt := range tc {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := IntegerString(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("IntegerString(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestToISO(t *testing.T) {
	tc := []struct {
		name string
		raw  string
		want string
	}{
		{name: "blank", raw: "", want: "<nil>"},
		{name: "serial date", raw: "36650", want: "2000-05-04T00:00:00"},
		{name: "serial timestamp", raw: "45047.43090277778", want: "2023-05-01T10:20:30"},
		{name: "iso date", raw: "2000-05-04", want: "2000-05-04T00:00:00"},
		{name: "iso datetime with space", raw: "2023-05-01 10:20:30", want: "2023-05-01T10:20:30"},
		{name: "iso datetime with micros", raw: "2023-05-01T10:20:30.250000", want: "2023-05-01T10:20:30.250000"},
		{name: "zoned", raw: "2023-05-01T10:20:30Z", want: "2023-05-01T10:20:30+00:00"},
		{name: "zoned offset", raw: "2023-05-01T10:20:30-06:00", want: "2023-05-01T10:20:30-06:00"},
		{name: "month first slash date", raw: "05/04/2000", want: "2000-05-04T00:00:00"},
		{name: "day first when month is out of range", raw: "13/05/2000", want: "2000-05-13T00:00:00"},
		{name: "form timestamp", raw: "5/1/2023 9:15:00", want: "2023-05-01T09:15:00"},
		{name: "named month", raw: "March 9, 2024", want: "2024-03-09T00:00:00"},
		{name: "day month year", raw: "9 Mar 2024", want: "2024-03-09T00:00:00"},
		{name: "day dash month abbreviation", raw: "09-Mar-2024", want: "2024-03-09T00:00:00"},
		{name: "dotted date", raw: "2024.03.09", want: "2024-03-09T00:00:00"},
		{name: "rfc1123 gmt", raw: "Sat, 09 Mar 2024 14:05:06 GMT", want: "2024-03-09T14:05:06+00:00"},
		{name: "unparseable text", raw: "no recuerdo", want: "<nil>"},
		{name: "negative serial", raw: "-5", want: "<nil>"},
		{name: "not a number", raw: "NaN", want: "<nil>"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := deref(ToISO(tt.raw)); got != tt.want {
				t.Errorf("ToISO(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatISO(t *testing.T) {
	ts := time.Date(2024, 2, 29, 23, 59, 1, 123456789, time.FixedZone("CST", -6*3600))

	if got := FormatISO(ts, false); got != "2024-02-29T23:59:01.123456" {
		t.Errorf("FormatISO(naive) = %s", got)
	}
	if got := FormatISO(ts, true); got != "2024-02-29T23:59:01.123456-06:00" {
		t.Errorf("FormatISO(zoned) = %s", got)
	}
	if got := FormatISO(ts.Truncate(time.Second), false); got != "2024-02-29T23:59:01" {
		t.Errorf("FormatISO(whole seconds) = %s", got)
	}
}
