package xnet

import (
	"net/netip"
	"testing"
)

func BenchmarkIPv4IsGlobal(b *testing.B) {
	ip := IPv4{8, 8, 8, 8}
	for b.Loop() {
		_ = ip.IsGlobal()
	}
}

func BenchmarkIPv6IsGlobal(b *testing.B) {
	b.Run("unicast", func(b *testing.B) {
		ip := IPv6{0x2606, 0x4700, 0, 0, 0, 0, 0, 1}
		for b.Loop() {
			_ = ip.IsGlobal()
		}
	})
	b.Run("multicast", func(b *testing.B) {
		ip := IPv6{0xff0e, 0, 0, 0, 0, 0, 0, 1}
		for b.Loop() {
			_ = ip.IsGlobal()
		}
	})
}

// 谓词实现与集合查找的对比。
func BenchmarkIsGlobal(b *testing.B) {
	addr := netip.MustParseAddr("8.8.8.8")

	b.Run("predicate", func(b *testing.B) {
		for b.Loop() {
			_ = IsGlobal(addr)
		}
	})
	b.Run("ipset", func(b *testing.B) {
		set := NonGlobalSet()
		for b.Loop() {
			_ = !set.Contains(addr)
		}
	})
}

func BenchmarkClassify(b *testing.B) {
	addr := netip.MustParseAddr("192.168.1.1")
	for b.Loop() {
		_ = Classify(addr)
	}
}

func BenchmarkLookupBlock(b *testing.B) {
	addr := netip.MustParseAddr("192.0.0.9")
	for b.Loop() {
		_, _ = LookupBlock(addr)
	}
}
