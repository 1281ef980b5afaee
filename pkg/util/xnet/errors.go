package xnet

import "errors"

// ErrInvalidAddress 表示无效的 IP 地址字符串。
var ErrInvalidAddress = errors.New("xnet: invalid IP address")
