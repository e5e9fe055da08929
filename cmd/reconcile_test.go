package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDestructiveAction(t *testing.T) {
	tests := []struct {
		name  string
		input string
		yes   bool
		want  bool
	}{
		{"Literal y", "y\n", false, true},
		{"Literal y without newline", "y", false, true},
		{"Windows newline", "y\r\n", false, true},
		{"Uppercase", "Y\n", false, false},
		{"Yes word", "yes\n", false, false},
		{"Padded", " y\n", false, false},
		{"Empty", "\n", false, false},
		{"EOF", "", false, false},
		{"Flag", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := confirmDestructiveAction(strings.NewReader(tt.input), &out, tt.yes, 3)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, out.String())
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{
		"merge-games", "merge-developers", "merge-articles", "merge-videos", "merge-tweets", "merge-all",
		"clean-articles", "clean-videos", "clean-tweets",
		"serve", "keys", "init-registry",
	}
	for _, name := range want {
		c, _, err := RootCmd.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, c.Name())
		}
	}

	clean, _, err := RootCmd.Find([]string{"clean-tweets"})
	if assert.NoError(t, err) {
		assert.NotNil(t, clean.Flags().Lookup("yes"))
		assert.NotNil(t, clean.Flags().Lookup("dry-run"))
	}

	for _, sub := range []string{"list", "add", "check"} {
		c, _, err := RootCmd.Find([]string{"keys", sub})
		if assert.NoError(t, err, sub) {
			assert.Equal(t, sub, c.Name())
		}
	}
}
