package letters

import (
	"fmt"
	"time"

	"churchapp/internal/domains"
)

// ResolveContext carries the sources token values are drawn from.
type ResolveContext struct {
	Member domains.Member
	Church domains.Church
	Now    time.Time
}

// vocabulary is the closed set of tokens the resolver knows. Optional fields
// resolve to the empty string when unset.
var vocabulary = map[string]func(ResolveContext) string{
	"nombre":     func(c ResolveContext) string { return c.Member.FullName },
	"fecha":      func(c ResolveContext) string { return FormatDate(c.Now) },
	"iglesia":    func(c ResolveContext) string { return c.Church.Name },
	"pastor":     func(c ResolveContext) string { return deref(c.Church.PastorName) },
	"ministerio": func(c ResolveContext) string { return deref(c.Member.Ministry) },
	"telefono":   func(c ResolveContext) string { return deref(c.Member.Phone) },
	"email":      func(c ResolveContext) string { return deref(c.Member.Email) },
}

// Resolve builds the substitution map for the given token names. Names outside
// the vocabulary resolve to the empty string so generation never blocks on a
// stray token.
func Resolve(names []string, ctx ResolveContext) map[string]any {
	values := make(map[string]any, len(names))
	for _, name := range names {
		if resolve, ok := vocabulary[name]; ok {
			values[name] = resolve(ctx)
			continue
		}
		values[name] = ""
	}
	return values
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDate renders t as a Spanish long date, e.g. "2 de enero de 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
