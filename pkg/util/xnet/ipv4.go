package xnet

import (
	"encoding/binary"
	"net/netip"
)

// IPv4 是以 4 个八位组表示的 IPv4 地址，语义上等价于大端序 uint32。
//
// IPv4 是值类型，可比较、可做 map key。所有方法均为纯函数，
// 不分配内存，可在任意 goroutine 中并发调用。
type IPv4 [4]byte

// IPv4Classifier 描述 IPv4 专属的地址空间判断能力。
type IPv4Classifier interface {
	// IsShared 报告是否属于共享地址空间 100.64.0.0/10（RFC 6598）。
	IsShared() bool
	// IsIETFProtocolAssignment 报告是否属于 IETF 协议分配块 192.0.0.0/24（RFC 6890）。
	IsIETFProtocolAssignment() bool
	// IsReserved 报告是否属于保留块 240.0.0.0/4（不含有限广播地址）。
	IsReserved() bool
	// IsBenchmarking 报告是否属于基准测试块 198.18.0.0/15（RFC 2544）。
	IsBenchmarking() bool
}

var (
	_ IPv4Classifier = IPv4{}
	_ Globaler       = IPv4{}
)

// 192.0.0.0/24 中被 IANA 标记为全局可达的两个地址（RFC 7723 / RFC 8155）。
const (
	ipv4PCPAnycast  = 0xC0000009 // 192.0.0.9
	ipv4TURNAnycast = 0xC000000A // 192.0.0.10
)

// IPv4FromUint32 由大端序 uint32 构造 IPv4。
func IPv4FromUint32(v uint32) IPv4 {
	var ip IPv4
	binary.BigEndian.PutUint32(ip[:], v)
	return ip
}

// Uint32 返回地址的大端序 uint32 表示。
func (ip IPv4) Uint32() uint32 {
	return binary.BigEndian.Uint32(ip[:])
}

// Addr 返回对应的 [netip.Addr]。
func (ip IPv4) Addr() netip.Addr {
	return netip.AddrFrom4(ip)
}

// String 返回点分十进制表示。
func (ip IPv4) String() string {
	return ip.Addr().String()
}

// IsShared 报告 ip 是否属于共享地址空间 100.64.0.0/10（CGNAT）。
// 第二个八位组的高两位必须为 01，即 64..127。
func (ip IPv4) IsShared() bool {
	return ip[0] == 100 && ip[1]&0xC0 == 0x40
}

// IsIETFProtocolAssignment 报告 ip 是否属于 192.0.0.0/24。
func (ip IPv4) IsIETFProtocolAssignment() bool {
	return ip[0] == 192 && ip[1] == 0 && ip[2] == 0
}

// IsReserved 报告 ip 是否属于 240.0.0.0/4（Class E）。
// 255.255.255.255 是独立的广播类别，不计入保留地址。
func (ip IPv4) IsReserved() bool {
	return ip[0]&0xF0 == 0xF0 && !ip.IsBroadcast()
}

// IsBenchmarking 报告 ip 是否属于 198.18.0.0/15，即 198.18.x.x 或 198.19.x.x。
func (ip IPv4) IsBenchmarking() bool {
	return ip[0] == 198 && ip[1]&0xFE == 18
}

// IsBroadcast 报告 ip 是否为有限广播地址 255.255.255.255。
func (ip IPv4) IsBroadcast() bool {
	return ip == IPv4{255, 255, 255, 255}
}

// IsDocumentation 报告 ip 是否属于 TEST-NET-1/2/3（RFC 5737）：
// 192.0.2.0/24、198.51.100.0/24、203.0.113.0/24。
func (ip IPv4) IsDocumentation() bool {
	switch [3]byte{ip[0], ip[1], ip[2]} {
	case [3]byte{192, 0, 2}, [3]byte{198, 51, 100}, [3]byte{203, 0, 113}:
		return true
	}
	return false
}

// IsPrivate 报告 ip 是否属于 10.0.0.0/8、172.16.0.0/12 或 192.168.0.0/16。
func (ip IPv4) IsPrivate() bool {
	return ip.Addr().IsPrivate()
}

// IsLoopback 报告 ip 是否属于 127.0.0.0/8。
func (ip IPv4) IsLoopback() bool {
	return ip.Addr().IsLoopback()
}

// IsLinkLocal 报告 ip 是否属于 169.254.0.0/16。
func (ip IPv4) IsLinkLocal() bool {
	return ip.Addr().IsLinkLocalUnicast()
}

// IsGlobal 报告 ip 是否在公网全局可达。
//
// 192.0.0.9 与 192.0.0.10 虽位于 IETF 协议分配块内，但被单独登记为全局可达，
// 优先判定。其余地址只要落入任一非全局块即返回 false。
//
// 注意：IPv4 多播（224.0.0.0/4）不在排除列表中。
func (ip IPv4) IsGlobal() bool {
	if v := ip.Uint32(); v == ipv4PCPAnycast || v == ipv4TURNAnycast {
		return true
	}
	return !ip.IsPrivate() &&
		!ip.IsLoopback() &&
		!ip.IsLinkLocal() &&
		!ip.IsBroadcast() &&
		!ip.IsDocumentation() &&
		!ip.IsShared() &&
		!ip.IsIETFProtocolAssignment() &&
		!ip.IsReserved() &&
		!ip.IsBenchmarking() &&
		ip[0] != 0
}
