package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"cat.png":                  "cat.png",
		"dir/cat.png":              "cat.png",
		"../../etc/passwd":         "passwd",
		`C:\photos\cat.png`:        "cat.png",
		"..":                       "",
		".":                        "",
		"/":                        "",
		"":                         "",
		"with space.png":           "with space.png",
		"nested/../../../evil.png": "evil.png",
	}
	for in, want := range cases {
		require.Equal(t, want, sanitizeFilename(in), in)
	}
}
