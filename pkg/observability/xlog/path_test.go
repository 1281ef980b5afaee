package xlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanLogPath(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"app.log", "app.log", false},
		{"./logs//app.log", filepath.Clean("logs/app.log"), false},
		{"/var/log/xipscope.log", filepath.Clean("/var/log/xipscope.log"), false},
		{"app..2024.log", "app..2024.log", false},

		{"", "", true},
		{"   ", "", true},
		{"logs/", "", true},
		{`logs\`, "", true},
		{"../app.log", "", true},
		{"logs/../../app.log", "", true},
		{"app\x00.log", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := cleanLogPath(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRotation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnsureLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, ensureLogDir(filepath.Join(dir, "x.log")))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, ensureLogDir("x.log"))
}
