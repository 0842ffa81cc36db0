package letters

import (
	"reflect"
	"testing"
)

func TestVariables(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "empty content",
			content: "",
			want:    []string{},
		},
		{
			name:    "no tokens",
			content: "Estimado hermano, reciba un cordial saludo.",
			want:    []string{},
		},
		{
			name:    "single token",
			content: "Estimado {{nombre}}:",
			want:    []string{"nombre"},
		},
		{
			name:    "first-seen order",
			content: "{{fecha}}\n\nEstimado {{nombre}}, la iglesia {{iglesia}} le saluda.",
			want:    []string{"fecha", "nombre", "iglesia"},
		},
		{
			name:    "duplicates collapse",
			content: "{{nombre}} y otra vez {{nombre}}, firmado {{pastor}} y {{nombre}}",
			want:    []string{"nombre", "pastor"},
		},
		{
			name:    "case sensitive",
			content: "{{nombre}} {{Nombre}}",
			want:    []string{"nombre", "Nombre"},
		},
		{
			name:    "single braces are not tokens",
			content: "{ not a token } {nombre}",
			want:    []string{},
		},
		{
			name:    "empty body is not a token",
			content: "{{}}",
			want:    []string{},
		},
		{
			name:    "unknown tokens are still extracted",
			content: "{{nombre}} {{cargo}}",
			want:    []string{"nombre", "cargo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Variables(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Variables(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
