package xnet

import (
	"encoding/hex"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// ParseAddr 宽松解析 IP 地址字符串，供命令行和文件输入使用。
//
// 在 [netip.ParseAddr] 的基础上额外接受：
//   - 首尾空白
//   - 方括号包裹的 IPv6（如 "[::1]"、"[fe80::1%eth0]"）
//   - 带前导零的 IPv4（如 "192.168.001.001"）
//   - 32 个十六进制字符的完整 IPv6（无分隔符）
//
// 失败时返回的错误包装 [ErrInvalidAddress]。
func ParseAddr(s string) (netip.Addr, error) {
	s = strings.TrimSpace(s)
	if len(s) > 2 && s[0] == '[' && s[len(s)-1] == ']' {
		s = s[1 : len(s)-1]
	}

	addr, err := netip.ParseAddr(s)
	if err == nil {
		return addr, nil
	}

	if a, ok := parseFullHex6(s); ok {
		return a, nil
	}
	if a, ok := parsePadded4(s); ok {
		return a, nil
	}
	return netip.Addr{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
}

// ParseIP 解析地址字符串为 [IP]，IPv4-mapped 地址按 IPv4 处理。
func ParseIP(s string) (IP, error) {
	addr, err := ParseAddr(s)
	if err != nil {
		return IP{}, err
	}
	ip, _ := IPFromAddr(addr)
	return ip, nil
}

// MustParseIP 与 [ParseIP] 相同，失败时 panic。仅用于常量和测试。
func MustParseIP(s string) IP {
	ip, err := ParseIP(s)
	if err != nil {
		panic(err)
	}
	return ip
}

// parseFullHex6 解析 32 字符十六进制 IPv6。
func parseFullHex6(s string) (netip.Addr, bool) {
	if len(s) != 32 {
		return netip.Addr{}, false
	}
	var b [16]byte
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		return netip.Addr{}, false
	}
	return netip.AddrFrom16(b), true
}

// parsePadded4 解析每段至多 3 位十进制、允许前导零的 IPv4。
func parsePadded4(s string) (netip.Addr, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return netip.Addr{}, false
	}
	var b [4]byte
	for i, p := range parts {
		if p == "" || len(p) > 3 {
			return netip.Addr{}, false
		}
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return netip.Addr{}, false
		}
		b[i] = byte(n)
	}
	return netip.AddrFrom4(b), true
}
