package xnet

import (
	"encoding/binary"
	"net/netip"
)

// IPv6 是以 8 个 16 位段表示的 IPv6 地址，语义上等价于大端序 uint128。
//
// 与 [IPv4] 相同，IPv6 是不可变值类型，所有方法均为纯函数。
type IPv6 [8]uint16

// IPv6Classifier 描述 IPv6 专属的地址空间判断能力。
type IPv6Classifier interface {
	// MulticastScope 返回多播作用域；非多播或作用域未登记时 ok 为 false。
	MulticastScope() (scope MulticastScope, ok bool)
	// IsUnicastLinkLocal 报告是否属于 fe80::/10。
	IsUnicastLinkLocal() bool
	// IsUniqueLocal 报告是否属于 fc00::/7。
	IsUniqueLocal() bool
	// IsUnicastGlobal 报告是否为全局单播地址。
	IsUnicastGlobal() bool
	// IsDocumentation 报告是否属于 2001:db8::/32。
	IsDocumentation() bool
}

var (
	_ IPv6Classifier = IPv6{}
	_ Globaler       = IPv6{}
)

// IPv6FromBytes 由 16 字节大端序表示构造 IPv6。
func IPv6FromBytes(b [16]byte) IPv6 {
	var ip IPv6
	for i := range ip {
		ip[i] = binary.BigEndian.Uint16(b[2*i:])
	}
	return ip
}

// As16 返回 16 字节大端序表示。
func (ip IPv6) As16() [16]byte {
	var b [16]byte
	for i, seg := range ip {
		binary.BigEndian.PutUint16(b[2*i:], seg)
	}
	return b
}

// Addr 返回对应的 [netip.Addr]（不带 zone）。
func (ip IPv6) Addr() netip.Addr {
	return netip.AddrFrom16(ip.As16())
}

// String 返回 RFC 5952 规范格式。
func (ip IPv6) String() string {
	return ip.Addr().String()
}

// IsMulticast 报告 ip 是否属于 ff00::/8。
func (ip IPv6) IsMulticast() bool {
	return ip[0]&0xFF00 == 0xFF00
}

// IsLoopback 报告 ip 是否为 ::1。
func (ip IPv6) IsLoopback() bool {
	return ip == IPv6{7: 1}
}

// IsUnspecified 报告 ip 是否为 ::。
func (ip IPv6) IsUnspecified() bool {
	return ip == IPv6{}
}

// MulticastScope 返回多播地址的作用域。
// 非多播地址，或作用域字段为 0、6、7、9–13、15 时，ok 为 false。
func (ip IPv6) MulticastScope() (MulticastScope, bool) {
	if !ip.IsMulticast() {
		return 0, false
	}
	return scopeFromField(ip[0])
}

// IsUnicastLinkLocal 报告 ip 是否属于 fe80::/10。
func (ip IPv6) IsUnicastLinkLocal() bool {
	return ip[0]&0xFFC0 == 0xFE80
}

// IsUniqueLocal 报告 ip 是否属于 fc00::/7（ULA）。
func (ip IPv6) IsUniqueLocal() bool {
	return ip[0]&0xFE00 == 0xFC00
}

// IsDocumentation 报告 ip 是否属于 2001:db8::/32。
func (ip IPv6) IsDocumentation() bool {
	return ip[0] == 0x2001 && ip[1] == 0x0DB8
}

// IsUnicastGlobal 报告 ip 是否为全局单播地址：
// 非多播、非环回、非链路本地、非 ULA、非未指定、非文档地址。
func (ip IPv6) IsUnicastGlobal() bool {
	return !ip.IsMulticast() &&
		!ip.IsLoopback() &&
		!ip.IsUnicastLinkLocal() &&
		!ip.IsUniqueLocal() &&
		!ip.IsUnspecified() &&
		!ip.IsDocumentation()
}

// IsGlobal 报告 ip 是否在公网全局可达。
//
// 多播地址仅当作用域为 [ScopeGlobal] 时可达，作用域未登记的多播地址一律不可达；
// 单播地址由 [IPv6.IsUnicastGlobal] 决定。
func (ip IPv6) IsGlobal() bool {
	if scope, ok := ip.MulticastScope(); ok {
		return scope == ScopeGlobal
	}
	return ip.IsUnicastGlobal()
}
