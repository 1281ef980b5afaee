package xnet

import "net/netip"

// Globaler 由能够判断"是否全局可达"的地址类型实现。
// [IPv4]、[IPv6] 与 [IP] 均实现此接口。
type Globaler interface {
	IsGlobal() bool
}

var _ Globaler = IP{}

// IP 是 IPv4 或 IPv6 地址的标签联合体，任一时刻恰有一个变体有效。
//
// 零值为 IPv4 地址 0.0.0.0。
//
// 设计决策: 使用值类型结构体而非接口，使 IP 可比较、可做 map key，
// 且 IsGlobal 分派不涉及动态调度与内存分配。
type IP struct {
	v4  IPv4
	v6  IPv6
	is6 bool
}

// IPFrom4 返回持有 IPv4 变体的 IP。
func IPFrom4(v IPv4) IP {
	return IP{v4: v}
}

// IPFrom6 返回持有 IPv6 变体的 IP。
func IPFrom6(v IPv6) IP {
	return IP{v6: v, is6: true}
}

// IPFromAddr 将 [netip.Addr] 转换为 IP。
// 无效地址返回 ok == false；zone 被丢弃。
//
// IPv4-mapped IPv6 地址（::ffff:a.b.c.d）转换为 IPv4 变体，与 [AddrVersion] 一致。
// 如需按 IPv6 位模式判断，请直接使用 IPFrom6(IPv6FromBytes(addr.As16()))。
func IPFromAddr(addr netip.Addr) (IP, bool) {
	switch {
	case !addr.IsValid():
		return IP{}, false
	case addr.Is4() || addr.Is4In6():
		return IPFrom4(addr.Unmap().As4()), true
	default:
		return IPFrom6(IPv6FromBytes(addr.As16())), true
	}
}

// Is4 报告 ip 是否持有 IPv4 变体。
func (ip IP) Is4() bool { return !ip.is6 }

// Is6 报告 ip 是否持有 IPv6 变体。
func (ip IP) Is6() bool { return ip.is6 }

// As4 返回 IPv4 变体；ip 持有 IPv6 时 ok 为 false。
func (ip IP) As4() (IPv4, bool) {
	return ip.v4, !ip.is6
}

// As6 返回 IPv6 变体；ip 持有 IPv4 时 ok 为 false。
func (ip IP) As6() (IPv6, bool) {
	return ip.v6, ip.is6
}

// Version 返回 V4 或 V6。
func (ip IP) Version() Version {
	if ip.is6 {
		return V6
	}
	return V4
}

// Addr 返回对应的 [netip.Addr]。
func (ip IP) Addr() netip.Addr {
	if ip.is6 {
		return ip.v6.Addr()
	}
	return ip.v4.Addr()
}

// String 返回地址的文本表示。
func (ip IP) String() string {
	return ip.Addr().String()
}

// IsGlobal 按有效变体分派到 [IPv4.IsGlobal] 或 [IPv6.IsGlobal]。
func (ip IP) IsGlobal() bool {
	if ip.is6 {
		return ip.v6.IsGlobal()
	}
	return ip.v4.IsGlobal()
}

// IsGlobal 报告 addr 是否在公网全局可达。
// 无效地址返回 false；IPv4-mapped IPv6 地址按 IPv4 判断。
//
// 示例：
//
//	xnet.IsGlobal(netip.MustParseAddr("8.8.8.8"))     // true
//	xnet.IsGlobal(netip.MustParseAddr("192.168.1.1")) // false
//	xnet.IsGlobal(netip.MustParseAddr("ff0e::1"))     // true（全局作用域多播）
func IsGlobal(addr netip.Addr) bool {
	ip, ok := IPFromAddr(addr)
	return ok && ip.IsGlobal()
}

// MulticastScopeOf 返回 IPv6 多播地址的作用域。
// 无效地址、IPv4 地址、非多播地址或作用域未登记时 ok 为 false。
func MulticastScopeOf(addr netip.Addr) (MulticastScope, bool) {
	ip, ok := IPFromAddr(addr)
	if !ok {
		return 0, false
	}
	v6, ok := ip.As6()
	if !ok {
		return 0, false
	}
	return v6.MulticastScope()
}
