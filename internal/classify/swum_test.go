package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIdentifier(t *testing.T) {
	tests := []struct {
		ident string
		want  []string
	}{
		{ident: "get_user_profile", want: []string{"get", "user", "profile"}},
		{ident: "parseConfig", want: []string{"parse", "config"}},
		{ident: "HTTPServer", want: []string{"h", "t", "t", "p", "server"}},
		{ident: "path-utils", want: []string{"path", "utils"}},
		{ident: "main", want: []string{"main"}},
		{ident: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitIdentifier(tt.ident))
		})
	}
}

func TestExpandIdentifier(t *testing.T) {
	tests := []struct {
		ident string
		want  string
	}{
		{ident: "get_user_profile", want: "Gets the user profile."},
		{ident: "parse_config", want: "Parses the config."},
		{ident: "is_valid", want: "Checks whether valid."},
		{ident: "new_client", want: "Creates a new client."},
		{ident: "validate", want: "Validates."},
		{ident: "widget_factory", want: "Widget factory."},
		{ident: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandIdentifier(tt.ident))
		})
	}
}
