package main

import (
	"fmt"
	"strings"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示用户输入错误，映射为退出码 2。
type usageError struct {
	msg string
	err error
}

func (e *usageError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *usageError) Unwrap() error { return e.err }

func newUsageError(err error, format string, args ...any) *usageError {
	return &usageError{msg: fmt.Sprintf(format, args...), err: err}
}

// isCLIUsageError 识别 urfave/cli 产生的参数解析错误。
// urfave/cli 未导出这些错误类型，只能按消息匹配。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, s := range []string{
		"flag provided but not defined",
		"flag needs an argument",
		"invalid value",
		"No help topic for",
		"Required flag",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
