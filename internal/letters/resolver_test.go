package letters

import (
	"testing"
	"time"

	"churchapp/internal/domains"
)

func strPtr(s string) *string { return &s }

func TestResolve(t *testing.T) {
	ctx := ResolveContext{
		Member: domains.Member{
			FullName: "Ana Torres",
			Ministry: strPtr("Alabanza"),
			Phone:    strPtr("555-0101"),
			Email:    strPtr("ana@example.com"),
		},
		Church: domains.Church{
			Name:       "Iglesia Monte Sion",
			PastorName: strPtr("Juan Pérez"),
		},
		Now: time.Date(2026, time.March, 8, 10, 0, 0, 0, time.UTC),
	}

	names := []string{"nombre", "fecha", "iglesia", "pastor", "ministerio", "telefono", "email"}
	values := Resolve(names, ctx)

	want := map[string]string{
		"nombre":     "Ana Torres",
		"fecha":      "8 de marzo de 2026",
		"iglesia":    "Iglesia Monte Sion",
		"pastor":     "Juan Pérez",
		"ministerio": "Alabanza",
		"telefono":   "555-0101",
		"email":      "ana@example.com",
	}
	for name, wantValue := range want {
		if values[name] != wantValue {
			t.Errorf("Resolve()[%q] = %v, want %q", name, values[name], wantValue)
		}
	}
}

func TestResolveOptionalFieldsDefaultEmpty(t *testing.T) {
	ctx := ResolveContext{
		Member: domains.Member{FullName: "Pedro Díaz"},
		Church: domains.Church{Name: "Iglesia Central"},
		Now:    time.Now(),
	}

	values := Resolve([]string{"pastor", "ministerio", "telefono", "email"}, ctx)
	for name, value := range values {
		if value != "" {
			t.Errorf("Resolve()[%q] = %v, want empty string", name, value)
		}
	}
}

func TestResolveUnknownTokenIsEmpty(t *testing.T) {
	values := Resolve([]string{"cargo"}, ResolveContext{Now: time.Now()})

	value, ok := values["cargo"]
	if !ok {
		t.Fatal("unknown token missing from substitution map")
	}
	if value != "" {
		t.Errorf("Resolve()[%q] = %v, want empty string", "cargo", value)
	}
}

func TestFormatDate(t *testing.T) {
	got := FormatDate(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC))
	if got != "2 de enero de 2026" {
		t.Errorf("FormatDate() = %q, want %q", got, "2 de enero de 2026")
	}
}
