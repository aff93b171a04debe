package docfill

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldLabel turns a placeholder literal into a display label:
// "{{nome_inquilino}}" becomes "Nome Inquilino".
func FieldLabel(placeholder string) string {
	name := strings.TrimSuffix(strings.TrimPrefix(placeholder, "{{"), "}}")
	name = strings.ReplaceAll(name, "_", " ")
	return cases.Title(language.Portuguese).String(name)
}
