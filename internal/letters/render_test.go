package letters

import (
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		content string
		values  map[string]any
		want    string
	}{
		{
			name:    "full substitution",
			content: "{{nombre}} - {{fecha}}",
			values:  map[string]any{"nombre": "Ana", "fecha": "2024-01-01"},
			want:    "Ana - 2024-01-01",
		},
		{
			name:    "missing token becomes empty string",
			content: "Hola {{foo}}",
			values:  map[string]any{},
			want:    "Hola ",
		},
		{
			name:    "every occurrence is replaced",
			content: "{{nombre}}, si, {{nombre}}",
			values:  map[string]any{"nombre": "Pedro"},
			want:    "Pedro, si, Pedro",
		},
		{
			name:    "literal braces pass through",
			content: "{ not a token }",
			values:  map[string]any{},
			want:    "{ not a token }",
		},
		{
			name:    "non-string values are coerced",
			content: "{{edad}} años",
			values:  map[string]any{"edad": 30},
			want:    "30 años",
		},
		{
			name:    "inserted value is not re-substituted",
			content: "Firma: {{firma}}",
			values:  map[string]any{"firma": "{{pastor}}", "pastor": "Juan"},
			want:    "Firma: {{pastor}}",
		},
		{
			name:    "no values at all",
			content: "sin variables",
			values:  nil,
			want:    "sin variables",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.content, tt.values)
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	values := map[string]any{"nombre": "Ana", "iglesia": "Monte Sion"}
	content := "{{nombre}} de {{iglesia}} ({{otro}})"

	once := Render(content, values)
	twice := Render(once, values)
	if once != twice {
		t.Errorf("second render changed output: %q -> %q", once, twice)
	}
}
