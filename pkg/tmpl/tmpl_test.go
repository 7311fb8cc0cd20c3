package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "simple substitution",
			tmpl: "hello {{ .Name }}",
			data: map[string]string{"Name": "world"},
			want: "hello world",
		},
		{
			name: "struct data",
			tmpl: "{{ .Title }} by {{ .Author }}",
			data: struct {
				Title  string
				Author string
			}{Title: "Dune", Author: "Frank Herbert"},
			want: "Dune by Frank Herbert",
		},
		{
			name: "no variables",
			tmpl: "static string",
			data: nil,
			want: "static string",
		},
		{
			name:    "missing key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name:    "invalid template syntax",
			tmpl:    "{{ .Name }",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name: "empty value is valid",
			tmpl: "prefix{{ .Name }}suffix",
			data: map[string]string{"Name": ""},
			want: "prefixsuffix",
		},
		{
			name: "trim function",
			tmpl: "[{{ .Name | trim }}]",
			data: map[string]string{"Name": "  padded \n"},
			want: "[padded]",
		},
		{
			name: "join function",
			tmpl: `{{ join .Tags ", " }}`,
			data: map[string][]string{"Tags": {"sf", "classic"}},
			want: "sf, classic",
		},
		{
			name: "orDefault keeps value",
			tmpl: `{{ .Notes | orDefault "none" }}`,
			data: map[string]string{"Notes": " loved it "},
			want: "loved it",
		},
		{
			name: "orDefault on blank",
			tmpl: `{{ .Notes | orDefault "none" }}`,
			data: map[string]string{"Notes": "   "},
			want: "none",
		},
		{
			name: "md escapes emphasis",
			tmpl: "{{ .Title | md }}",
			data: map[string]string{"Title": "*snake_case* #1"},
			want: `\*snake\_case\* \#1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
