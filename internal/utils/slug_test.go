package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Sprint Planning", "sprint-planning"},
		{"  Sprint   Planning!  ", "sprint-planning"},
		{"Quadro Principal (Admin)", "quadro-principal-admin"},
		{"UPPER case", "upper-case"},
		{"already-slugged", "already-slugged"},
		{"---", "board"},
		{"", "board"},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, Slugify(tc.title), "Slugify(%q)", tc.title)
	}
}

func TestSanitizeSlugPart(t *testing.T) {
	assert.Equal(t, "admin-example-com", SanitizeSlugPart("admin@example.com"))
	assert.Equal(t, "Dev-User-example-com", SanitizeSlugPart("Dev.User@example.com"))
}
