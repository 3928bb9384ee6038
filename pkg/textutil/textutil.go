// Package textutil búsqueda y orden de texto sensibles al idioma (tildes, mayúsculas).
package textutil

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Fold normaliza s para comparaciones sin distinguir mayúsculas (case folding Unicode).
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsFold indica si alguno de los campos contiene query, sin distinguir mayúsculas.
// Una query vacía coincide siempre.
func ContainsFold(query string, fields ...string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	q = Fold(q)
	for _, f := range fields {
		if strings.Contains(Fold(f), q) {
			return true
		}
	}
	return false
}

// Collator comparador de cadenas para el idioma de la aplicación (español).
// No es seguro para uso concurrente: crear uno por operación.
func Collator() *collate.Collator {
	return collate.New(language.Spanish, collate.IgnoreCase)
}

// SortStrings ordena ss alfabéticamente según el collator en español.
func SortStrings(ss []string) {
	c := Collator()
	sort.SliceStable(ss, func(i, j int) bool {
		return c.CompareString(ss[i], ss[j]) < 0
	})
}

// Distinct cadenas distintas no vacías, ordenadas con SortStrings.
func Distinct(ss []string) []string {
	seen := make(map[string]struct{}, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	SortStrings(out)
	return out
}
