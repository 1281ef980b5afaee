package xlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// logDirPerm 是自动创建日志目录时使用的权限。
const logDirPerm = 0o750

// cleanLogPath 校验并规范化日志文件路径。
//
// 拒绝空路径、空字节、目录路径（以 "/" 或 "\" 结尾）以及含 ".." 段的相对穿越。
// 只做格式净化，不限制绝对路径的位置。
func cleanLogPath(filename string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", fmt.Errorf("%w: empty filename", ErrInvalidRotation)
	}
	if strings.ContainsRune(filename, 0) {
		return "", fmt.Errorf("%w: filename contains null byte", ErrInvalidRotation)
	}
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, "\\") {
		return "", fmt.Errorf("%w: %q is a directory", ErrInvalidRotation, filename)
	}

	cleaned := filepath.Clean(filename)
	for _, seg := range strings.FieldsFunc(cleaned, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return "", fmt.Errorf("%w: path traversal in %q", ErrInvalidRotation, filename)
		}
	}
	return cleaned, nil
}

// ensureLogDir 确保日志文件的父目录存在。
func ensureLogDir(filename string) error {
	dir := filepath.Dir(filename)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRotation, err)
	}
	return nil
}
