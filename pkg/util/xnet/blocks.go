package xnet

import (
	"net/netip"
	"sync"

	"go4.org/netipx"
)

// Block 是特殊用途地址块表中的一项。
type Block struct {
	// Prefix 是地址块。
	Prefix netip.Prefix `json:"prefix"`

	// Name 是地址块的类别名，如 "private"、"documentation"。
	Name string `json:"name"`

	// Global 为 true 表示该块是从更大的非全局块中划出的全局可达例外。
	Global bool `json:"global"`
}

// specialBlocks 是 IsGlobal 排除列表的表格形式。
// 例外项（Global == true）的前缀总是比其所在的非全局块更长。
var specialBlocks = buildSpecialBlocks()

func buildSpecialBlocks() []Block {
	blocks := []Block{
		{netip.MustParsePrefix("0.0.0.0/8"), "this-network", false},
		{netip.MustParsePrefix("10.0.0.0/8"), "private", false},
		{netip.MustParsePrefix("100.64.0.0/10"), "shared", false},
		{netip.MustParsePrefix("127.0.0.0/8"), "loopback", false},
		{netip.MustParsePrefix("169.254.0.0/16"), "link-local", false},
		{netip.MustParsePrefix("172.16.0.0/12"), "private", false},
		{netip.MustParsePrefix("192.0.0.0/24"), "ietf-protocol-assignment", false},
		{netip.MustParsePrefix("192.0.0.9/32"), "pcp-anycast", true},
		{netip.MustParsePrefix("192.0.0.10/32"), "turn-anycast", true},
		{netip.MustParsePrefix("192.0.2.0/24"), "documentation", false},
		{netip.MustParsePrefix("192.168.0.0/16"), "private", false},
		{netip.MustParsePrefix("198.18.0.0/15"), "benchmarking", false},
		{netip.MustParsePrefix("198.51.100.0/24"), "documentation", false},
		{netip.MustParsePrefix("203.0.113.0/24"), "documentation", false},
		{netip.MustParsePrefix("240.0.0.0/4"), "reserved", false},
		{netip.MustParsePrefix("255.255.255.255/32"), "broadcast", false},

		{netip.MustParsePrefix("::/128"), "unspecified", false},
		{netip.MustParsePrefix("::1/128"), "loopback", false},
		{netip.MustParsePrefix("2001:db8::/32"), "documentation", false},
		{netip.MustParsePrefix("fc00::/7"), "unique-local", false},
		{netip.MustParsePrefix("fe80::/10"), "link-local", false},
		{netip.MustParsePrefix("ff00::/8"), "multicast", false},
	}
	// ffXe::/16：作用域字段为 0xE 的多播地址，X 为任意标志位。
	for flags := range 16 {
		var b [16]byte
		b[0] = 0xFF
		b[1] = byte(flags<<4) | byte(ScopeGlobal)
		blocks = append(blocks, Block{
			Prefix: netip.PrefixFrom(netip.AddrFrom16(b), 16),
			Name:   "global-multicast",
			Global: true,
		})
	}
	return blocks
}

// SpecialBlocks 返回特殊用途地址块表的副本。
// 先列出 IPv4 块，再列出 IPv6 块；例外项紧随其所在块之后（多播例外集中在末尾）。
func SpecialBlocks() []Block {
	out := make([]Block, len(specialBlocks))
	copy(out, specialBlocks)
	return out
}

// nonGlobalSet 在首次使用时构建，之后只读。
var nonGlobalSet = sync.OnceValue(func() *netipx.IPSet {
	var b netipx.IPSetBuilder
	for _, blk := range specialBlocks {
		if !blk.Global {
			b.AddPrefix(blk.Prefix)
		}
	}
	for _, blk := range specialBlocks {
		if blk.Global {
			b.RemovePrefix(blk.Prefix)
		}
	}
	set, err := b.IPSet()
	if err != nil {
		// 表为静态常量，构建失败只可能是表本身写错。
		panic("xnet: invalid special block table: " + err.Error())
	}
	return set
})

// NonGlobalSet 返回所有非全局地址组成的 [*netipx.IPSet]。
//
// 对任意 IPv4 或 IPv6 地址 a（IPv4-mapped 地址需先 Unmap）：
//
//	NonGlobalSet().Contains(a) == !IsGlobal(a)
//
// 返回的集合在多次调用间共享，调用方不得修改。
func NonGlobalSet() *netipx.IPSet {
	return nonGlobalSet()
}

// LookupBlock 返回包含 addr 的最长前缀块。
// 无效地址或不在任何特殊块中的地址返回 ok == false。
// IPv4-mapped IPv6 地址按 IPv4 查找。
func LookupBlock(addr netip.Addr) (Block, bool) {
	if !addr.IsValid() {
		return Block{}, false
	}
	addr = addr.Unmap().WithZone("")

	var best Block
	found := false
	for _, blk := range specialBlocks {
		if blk.Prefix.Contains(addr) && (!found || blk.Prefix.Bits() > best.Prefix.Bits()) {
			best, found = blk, true
		}
	}
	return best, found
}
