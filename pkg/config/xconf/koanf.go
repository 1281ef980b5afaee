package xconf

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// koanfConfig 是 Config 接口的 koanf 实现。
type koanfConfig struct {
	k      atomic.Pointer[koanf.Koanf]
	path   string
	format Format
	opts   *Options
}

// New 从文件路径创建配置实例。
// 根据文件扩展名自动检测格式（.yaml/.yml、.json 或 .toml）。
func New(path string, opts ...Option) (Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	c := &koanfConfig{path: path, format: format, opts: applyOptions(opts)}
	k, err := c.loadFile()
	if err != nil {
		return nil, err
	}
	c.k.Store(k)
	return c, nil
}

// NewFromBytes 从字节数据创建配置实例，需要显式指定格式。
// 空数据创建一个空配置，Unmarshal 保留目标结构体的原值。
func NewFromBytes(data []byte, format Format, opts ...Option) (Config, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}

	c := &koanfConfig{format: format, opts: applyOptions(opts)}
	k := koanf.New(c.opts.Delim)
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}
	c.k.Store(k)
	return c, nil
}

// Client 返回底层的 koanf 实例。
// Reload 之后旧指针仍可用，但数据是旧快照。
func (c *koanfConfig) Client() *koanf.Koanf {
	return c.k.Load()
}

// Unmarshal 将指定路径的配置反序列化到目标结构体。
func (c *koanfConfig) Unmarshal(path string, target any) error {
	if err := c.k.Load().UnmarshalWithConf(path, target, koanf.UnmarshalConf{
		Tag: c.opts.Tag,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

// Reload 重新加载配置文件，失败时保留旧配置。
func (c *koanfConfig) Reload() error {
	if c.path == "" {
		return ErrNotReloadable
	}
	k, err := c.loadFile()
	if err != nil {
		return err
	}
	c.k.Store(k)
	return nil
}

// Path 返回配置文件路径。
func (c *koanfConfig) Path() string {
	return c.path
}

// Format 返回配置格式。
func (c *koanfConfig) Format() Format {
	return c.format
}

// loadFile 读取并解析 c.path 到新的 koanf 实例。
func (c *koanfConfig) loadFile() (*koanf.Koanf, error) {
	parser, err := parserFor(c.format)
	if err != nil {
		return nil, err
	}
	k := koanf.New(c.opts.Delim)
	if err := k.Load(file.Provider(c.path), parser); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return k, nil
}

func applyOptions(opts []Option) *Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}

// parserFor 返回格式对应的 koanf 解析器。
func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	case FormatTOML:
		return toml.Parser(), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}
