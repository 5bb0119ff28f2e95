// Package normalize maps raw survey cells to the values stored on an import record.
//
// Every function is total: malformed input degrades to an absent (nil) value
// instead of an error, so one bad cell never stops a run.
package normalize

import (
	"math"
	"strconv"
	"strings"
)

// SafeString trims raw and returns nil when nothing is left.
func SafeString(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

// IsPresent reports whether a cell holds anything besides whitespace.
func IsPresent(raw string) bool {
	return SafeString(raw) != nil
}

// Email trims and lowercases an address for joining and exclusion.
// The display value on a record keeps its original casing.
func Email(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseSkills splits a free-text interests cell on commas and semicolons.
// Tokens are trimmed, empty tokens dropped, order and duplicates kept.
func ParseSkills(raw string) []string {
	skills := []string{}
	for _, token := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' }) {
		if token = strings.TrimSpace(token); token != "" {
			skills = append(skills, token)
		}
	}
	return skills
}

const (
	LevelLicenciatura = "licenciatura"
	LevelPosgrado     = "posgrado"
	LevelCurso        = "curso"
)

// NormalizeAcademicLevel buckets the academic level answer.
//
// Checks run in priority order, so "Licenciatura y maestría" is licenciatura.
func NormalizeAcademicLevel(raw string) *string {
	val := strings.ToLower(strings.TrimSpace(raw))
	if val == "" {
		return nil
	}

	var level string
	switch {
	case strings.Contains(val, "licenciatura"):
		level = LevelLicenciatura
	case containsAny(val, "posgrado", "maestr", "doctor"):
		level = LevelPosgrado
	case containsAny(val, "curso", "actualización"):
		level = LevelCurso
	default:
		return nil
	}
	return &level
}

// NormalizeGeneration renders a numeric generation as its integer part ("2021.0" -> "2021").
// Non-numeric text is returned trimmed.
func NormalizeGeneration(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if n, ok := IntegerString(s); ok {
		return &n
	}
	return &s
}

// IntegerString parses raw as a finite decimal number and renders its integer part, truncating toward zero.
// Underscore digit separators and hex notation are rejected ("1_000", "0x10"), as are NaN and Inf.
func IntegerString(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return "", false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false
	}

	whole := math.Trunc(f)
	if whole == 0 {
		whole = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(whole, 'f', 0, 64), true
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
