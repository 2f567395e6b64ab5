package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/nsvalidate/internal/checklist"
	"github.com/thoreinstein/nsvalidate/internal/errors"
)

func TestValidate_Default(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}

func TestValidate_Nil(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Version = 0
	cfg.RootFiles = append(cfg.RootFiles, checklist.Entry{Path: "README.md", Description: "Again"})
	cfg.PublicFiles = []checklist.Entry{{Path: "", Description: "Nothing"}}

	err := Validate(cfg)
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))

	var fields []string
	for _, fe := range verrs {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "version")
	assert.Contains(t, fields, "public_files[0].path")
	assert.Contains(t, fields, "files")
	assert.Contains(t, err.Error(), "duplicate paths: README.md")
}

func TestValidRelPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"package.json", true},
		{"src/models/User.js", true},
		{".env.example", true},
		{"./README.md", true},
		{"src/../init.sql", true},
		{"", false},
		{".", false},
		{"..", false},
		{"../outside", false},
		{"src/../../outside", false},
		{"/etc/passwd", false},
		{"bad\x00path", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, validRelPath(tt.path))
		})
	}
}
