package xnet

import "net/netip"

// 设计决策: 以下 8 个包级函数（IsPrivate ~ IsInterfaceLocalMulticast）是对
// netip.Addr 同名方法的薄包装，添加了 IsValid 前置检查，
// 使调用方可从单一包导入所有分类函数，无需混用 addr.IsXxx() 和 xnet.IsYyy()。

// IsPrivate 报告 addr 是否为私有地址。
//   - IPv4: 10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16
//   - IPv6: fc00::/7
//
// 无效地址返回 false。
func IsPrivate(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsPrivate()
}

// IsLoopback 报告 addr 是否为环回地址（127.0.0.0/8 或 ::1）。
func IsLoopback(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsLoopback()
}

// IsLinkLocalUnicast 报告 addr 是否为链路本地单播地址（169.254.0.0/16 或 fe80::/10）。
func IsLinkLocalUnicast(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsLinkLocalUnicast()
}

// IsLinkLocalMulticast 报告 addr 是否为链路本地多播地址（224.0.0.0/24 或 ff02::/16）。
func IsLinkLocalMulticast(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsLinkLocalMulticast()
}

// IsGlobalUnicast 报告 addr 是否为 [netip.Addr.IsGlobalUnicast] 意义上的全局单播地址。
//
// 注意：私有地址、文档地址等在此意义下也是全局单播。
// 判断公网可达请使用 [IsGlobal]。
func IsGlobalUnicast(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsGlobalUnicast()
}

// IsMulticast 报告 addr 是否为多播地址（224.0.0.0/4 或 ff00::/8）。
func IsMulticast(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsMulticast()
}

// IsUnspecified 报告 addr 是否为未指定地址（0.0.0.0 或 ::）。
func IsUnspecified(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsUnspecified()
}

// IsInterfaceLocalMulticast 报告 addr 是否为接口本地多播地址（ff01::/16）。
func IsInterfaceLocalMulticast(addr netip.Addr) bool {
	return addr.IsValid() && addr.IsInterfaceLocalMulticast()
}

// Classify 返回 IP 地址的分类信息。
//
// 示例：
//
//	c := xnet.Classify(netip.MustParseAddr("192.168.1.1"))
//	fmt.Println(c.IsPrivate)       // true
//	fmt.Println(c.IsGlobalUnicast) // true (私有地址也是全局单播)
//	fmt.Println(c.IsGlobal)        // false
func Classify(addr netip.Addr) Classification {
	if !addr.IsValid() {
		return Classification{}
	}
	scope, _ := MulticastScopeOf(addr)
	return Classification{
		Version:                   AddrVersion(addr),
		IsValid:                   true,
		IsGlobal:                  IsGlobal(addr),
		IsPrivate:                 addr.IsPrivate(),
		IsLoopback:                addr.IsLoopback(),
		IsLinkLocalUnicast:        addr.IsLinkLocalUnicast(),
		IsLinkLocalMulticast:      addr.IsLinkLocalMulticast(),
		IsInterfaceLocalMulticast: addr.IsInterfaceLocalMulticast(),
		IsGlobalUnicast:           addr.IsGlobalUnicast(),
		IsMulticast:               addr.IsMulticast(),
		IsUnspecified:             addr.IsUnspecified(),
		IsRoutable:                IsRoutable(addr),
		IsDocumentation:           IsDocumentation(addr),
		IsSharedAddress:           IsSharedAddress(addr),
		IsIETFProtocolAssignment:  IsIETFProtocolAssignment(addr),
		IsBenchmark:               IsBenchmark(addr),
		IsReserved:                IsReserved(addr),
		IsBroadcast:               IsBroadcast(addr),
		IsUniqueLocal:             IsUniqueLocal(addr),
		MulticastScope:            scope,
	}
}

// Classification 包含 IP 地址的各种分类信息。
//
// 设计决策: 使用扁平的导出字段而非位标志，调用方可直接访问 c.IsPrivate；
// 所有字段在 Classify() 一次调用中填充。分类标志不互斥。
type Classification struct {
	// Version 是 IP 版本（V4 或 V6）。
	Version Version `json:"version"`

	// IsValid 表示地址是否有效。
	IsValid bool `json:"valid"`

	// IsGlobal 表示是否在公网全局可达，见 [IsGlobal]。
	IsGlobal bool `json:"global"`

	IsPrivate                 bool `json:"private"`
	IsLoopback                bool `json:"loopback"`
	IsLinkLocalUnicast        bool `json:"link_local_unicast"`
	IsLinkLocalMulticast      bool `json:"link_local_multicast"`
	IsInterfaceLocalMulticast bool `json:"interface_local_multicast"`
	IsGlobalUnicast           bool `json:"global_unicast"`
	IsMulticast               bool `json:"multicast"`
	IsUnspecified             bool `json:"unspecified"`
	IsRoutable                bool `json:"routable"`

	// IsDocumentation 表示是否为文档专用地址（TEST-NET/2001:db8::）。
	IsDocumentation bool `json:"documentation"`

	// IsSharedAddress 表示是否为共享地址空间（100.64.0.0/10, CGNAT）。
	IsSharedAddress bool `json:"shared"`

	// IsIETFProtocolAssignment 表示是否属于 192.0.0.0/24。
	IsIETFProtocolAssignment bool `json:"ietf_protocol_assignment"`

	// IsBenchmark 表示是否为基准测试地址（IPv4: 198.18.0.0/15, IPv6: 2001:2::/48）。
	IsBenchmark bool `json:"benchmark"`

	// IsReserved 表示是否为保留地址（240.0.0.0/4，不含广播地址）。
	IsReserved bool `json:"reserved"`

	// IsBroadcast 表示是否为有限广播地址 255.255.255.255。
	IsBroadcast bool `json:"broadcast"`

	// IsUniqueLocal 表示是否为 IPv6 唯一本地地址（fc00::/7）。
	IsUniqueLocal bool `json:"unique_local"`

	// MulticastScope 是 IPv6 多播作用域；零值表示不适用。
	MulticastScope MulticastScope `json:"multicast_scope"`
}

// String 返回分类信息的字符串表示。
// 优先级：越特殊的分类越靠前（如 loopback > private > global-unicast）。
func (c Classification) String() string {
	if !c.IsValid {
		return "invalid"
	}

	labels := [...]struct {
		flag  bool
		label string
	}{
		{c.IsLoopback, "loopback"},
		{c.IsUnspecified, "unspecified"},
		{c.IsBroadcast, "broadcast"},
		{c.IsPrivate, "private"},
		{c.IsLinkLocalUnicast, "link-local-unicast"},
		{c.IsLinkLocalMulticast, "link-local-multicast"},
		{c.IsInterfaceLocalMulticast, "interface-local-multicast"},
		{c.IsDocumentation, "documentation"},
		{c.IsSharedAddress, "shared-address"},
		{c.IsIETFProtocolAssignment, "ietf-protocol-assignment"},
		{c.IsBenchmark, "benchmark"},
		{c.IsReserved, "reserved"},
		{c.IsMulticast, "multicast"},
		{c.IsGlobalUnicast, "global-unicast"},
	}

	for _, e := range labels {
		if e.flag {
			return e.label
		}
	}
	// 仅在手工构造 Classification{IsValid: true} 时触达。
	return "unknown"
}

// IsRoutable 报告 addr 是否为协议层面可路由的单播地址：
// 有效、非环回、非链路本地单播、非未指定、非多播、非有限广播。
//
// 注意：私有地址在局域网内可路由，因此 IsRoutable 返回 true。
// 判断公网可达请使用 [IsGlobal]。
func IsRoutable(addr netip.Addr) bool {
	if !addr.IsValid() || IsBroadcast(addr) {
		return false
	}
	return !addr.IsLoopback() &&
		!addr.IsLinkLocalUnicast() &&
		!addr.IsUnspecified() &&
		!addr.IsMulticast()
}

// IsDocumentation 报告 addr 是否为文档专用地址。
//   - IPv4: 192.0.2.0/24, 198.51.100.0/24, 203.0.113.0/24
//   - IPv6: 2001:db8::/32
//
// 无效地址返回 false。
func IsDocumentation(addr netip.Addr) bool {
	ip, ok := IPFromAddr(addr)
	if !ok {
		return false
	}
	if v4, ok := ip.As4(); ok {
		return v4.IsDocumentation()
	}
	v6, _ := ip.As6()
	return v6.IsDocumentation()
}

// asIPv4 返回 addr 的 IPv4 形式；IPv4-mapped IPv6 地址先 Unmap。
func asIPv4(addr netip.Addr) (IPv4, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return IPv4{}, false
	}
	return addr.Unmap().As4(), true
}

// IsSharedAddress 报告 addr 是否为共享地址空间 100.64.0.0/10（RFC 6598）。
// 仅适用于 IPv4，无效地址或 IPv6 地址返回 false。
func IsSharedAddress(addr netip.Addr) bool {
	v4, ok := asIPv4(addr)
	return ok && v4.IsShared()
}

// IsIETFProtocolAssignment 报告 addr 是否属于 192.0.0.0/24。
// 仅适用于 IPv4。
func IsIETFProtocolAssignment(addr netip.Addr) bool {
	v4, ok := asIPv4(addr)
	return ok && v4.IsIETFProtocolAssignment()
}

// IsBenchmark 报告 addr 是否为基准测试地址。
//   - IPv4: 198.18.0.0/15 (RFC 2544)
//   - IPv6: 2001:2::/48 (RFC 5180)
//
// 无效地址返回 false。
func IsBenchmark(addr netip.Addr) bool {
	if v4, ok := asIPv4(addr); ok {
		return v4.IsBenchmarking()
	}
	if !addr.IsValid() {
		return false
	}
	v6 := IPv6FromBytes(addr.As16())
	return v6[0] == 0x2001 && v6[1] == 0x0002 && v6[2] == 0
}

// IsReserved 报告 addr 是否为保留地址 240.0.0.0/4（Class E）。
// 255.255.255.255 不计入，使用 [IsBroadcast] 判断广播地址。
// 仅适用于 IPv4。
func IsReserved(addr netip.Addr) bool {
	v4, ok := asIPv4(addr)
	return ok && v4.IsReserved()
}

// IsBroadcast 报告 addr 是否为有限广播地址 255.255.255.255。
// 仅适用于 IPv4。
func IsBroadcast(addr netip.Addr) bool {
	v4, ok := asIPv4(addr)
	return ok && v4.IsBroadcast()
}

// IsUniqueLocal 报告 addr 是否为 IPv6 唯一本地地址 fc00::/7。
// IPv4 与 IPv4-mapped 地址返回 false。
func IsUniqueLocal(addr netip.Addr) bool {
	ip, ok := IPFromAddr(addr)
	if !ok {
		return false
	}
	v6, ok := ip.As6()
	return ok && v6.IsUniqueLocal()
}
