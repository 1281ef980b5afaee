package xconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSettings 测试用配置结构体
type testSettings struct {
	Output string  `koanf:"output"`
	Log    testLog `koanf:"log"`
	Scan   struct {
		Jobs int `koanf:"jobs"`
	} `koanf:"scan"`
}

type testLog struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

const testYAMLContent = `
output: json
log:
  level: debug
  format: text
scan:
  jobs: 8
`

const testJSONContent = `{
  "output": "json",
  "log": {"level": "debug", "format": "text"},
  "scan": {"jobs": 8}
}`

const testTOMLContent = `
output = "json"

[log]
level = "debug"
format = "text"

[scan]
jobs = 8
`

func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
	}{
		{"config.yaml", testYAMLContent, FormatYAML},
		{"config.yml", testYAMLContent, FormatYAML},
		{"config.json", testJSONContent, FormatJSON},
		{"config.toml", testTOMLContent, FormatTOML},
		{"CONFIG.TOML", testTOMLContent, FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempFile(t, tt.name, tt.content)

			cfg, err := New(path)
			require.NoError(t, err)
			assert.Equal(t, path, cfg.Path())
			assert.Equal(t, tt.format, cfg.Format())
			assert.Equal(t, "debug", cfg.Client().String("log.level"))

			var s testSettings
			require.NoError(t, cfg.Unmarshal("", &s))
			assert.Equal(t, "json", s.Output)
			assert.Equal(t, "text", s.Log.Format)
			assert.Equal(t, 8, s.Scan.Jobs)
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrLoadFailed)

	_, err = New(createTempFile(t, "config.ini", "a=b"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = New(createTempFile(t, "bad.yaml", "log: [unclosed"))
	assert.ErrorIs(t, err, ErrParseFailed)

	_, err = New(createTempFile(t, "bad.json", "{"))
	assert.ErrorIs(t, err, ErrParseFailed)

	_, err = New(createTempFile(t, "bad.toml", "log = = 1"))
	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestNew_EmptyYAMLFile(t *testing.T) {
	cfg, err := New(createTempFile(t, "empty.yaml", ""))
	require.NoError(t, err)

	s := testSettings{Output: "text"}
	require.NoError(t, cfg.Unmarshal("", &s))
	assert.Equal(t, "text", s.Output, "未出现的键保持默认值")
}

func TestNewFromBytes(t *testing.T) {
	cfg, err := NewFromBytes([]byte(testJSONContent), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, cfg.Path())
	assert.Equal(t, FormatJSON, cfg.Format())

	var l testLog
	require.NoError(t, cfg.Unmarshal("log", &l))
	assert.Equal(t, "debug", l.Level)

	empty, err := NewFromBytes(nil, FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, empty.Client().Keys())

	_, err = NewFromBytes([]byte("x"), Format("ini"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = NewFromBytes([]byte("{"), FormatJSON)
	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	cfg, err := NewFromBytes([]byte("scan:\n  jobs: many\n"), FormatYAML)
	require.NoError(t, err)

	var s testSettings
	assert.ErrorIs(t, cfg.Unmarshal("", &s), ErrUnmarshalFailed)
	assert.Panics(t, func() { MustUnmarshal(cfg, "", &s) })
}

func TestOptions(t *testing.T) {
	cfg, err := NewFromBytes([]byte(`{"log":{"level":"warn"}}`), FormatJSON, WithDelim("/"), WithTag("json"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Client().String("log/level"))

	var l struct {
		Level string `json:"level"`
	}
	require.NoError(t, cfg.Unmarshal("log", &l))
	assert.Equal(t, "warn", l.Level)
}

func TestReload(t *testing.T) {
	path := createTempFile(t, "config.yaml", "output: text\n")
	cfg, err := New(path)
	require.NoError(t, err)
	old := cfg.Client()

	require.NoError(t, os.WriteFile(path, []byte("output: json\n"), 0600))
	require.NoError(t, cfg.Reload())
	assert.Equal(t, "json", cfg.Client().String("output"))
	assert.Equal(t, "text", old.String("output"), "旧指针保持旧快照")

	// 解析失败时保留旧配置
	require.NoError(t, os.WriteFile(path, []byte("output: [\n"), 0600))
	assert.ErrorIs(t, cfg.Reload(), ErrParseFailed)
	assert.Equal(t, "json", cfg.Client().String("output"))

	fromBytes, err := NewFromBytes(nil, FormatYAML)
	require.NoError(t, err)
	assert.ErrorIs(t, fromBytes.Reload(), ErrNotReloadable)
}
