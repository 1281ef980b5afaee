package xnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

// v4 解析点分十进制字符串为 IPv4，仅用于测试。
func v4(s string) IPv4 {
	return netip.MustParseAddr(s).As4()
}

func TestIPv4_IsShared(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"100.64.0.0", true},
		{"100.64.0.1", true},
		{"100.100.100.100", true},
		{"100.127.255.255", true},

		{"100.63.255.255", false}, // /10 下边界之外
		{"100.128.0.0", false},    // /10 上边界之外
		{"101.64.0.0", false},
		{"10.64.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, v4(tt.addr).IsShared())
		})
	}
}

func TestIPv4_IsIETFProtocolAssignment(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"192.0.0.0", true},
		{"192.0.0.5", true},
		{"192.0.0.9", true},
		{"192.0.0.255", true},

		{"192.0.1.5", false},
		{"192.1.0.5", false},
		{"193.0.0.5", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, v4(tt.addr).IsIETFProtocolAssignment())
		})
	}
}

func TestIPv4_IsReserved(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"240.0.0.0", true},
		{"240.0.0.1", true},
		{"250.1.2.3", true},
		{"255.255.255.254", true},

		{"255.255.255.255", false}, // 广播地址单独归类
		{"239.255.255.255", false},
		{"8.8.8.8", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, v4(tt.addr).IsReserved())
		})
	}
}

func TestIPv4_IsBenchmarking(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"198.18.0.0", true},
		{"198.18.0.1", true},
		{"198.19.255.255", true},

		{"198.17.255.255", false},
		{"198.20.0.0", false},
		{"199.18.0.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, v4(tt.addr).IsBenchmarking())
		})
	}
}

func TestIPv4_HostClassifications(t *testing.T) {
	assert.True(t, v4("255.255.255.255").IsBroadcast())
	assert.False(t, v4("255.255.255.254").IsBroadcast())

	assert.True(t, v4("192.0.2.1").IsDocumentation())
	assert.True(t, v4("198.51.100.255").IsDocumentation())
	assert.True(t, v4("203.0.113.0").IsDocumentation())
	assert.False(t, v4("192.0.3.1").IsDocumentation())
	assert.False(t, v4("203.0.114.1").IsDocumentation())

	assert.True(t, v4("10.1.2.3").IsPrivate())
	assert.True(t, v4("172.31.0.1").IsPrivate())
	assert.False(t, v4("172.32.0.1").IsPrivate())

	assert.True(t, v4("127.8.8.8").IsLoopback())
	assert.True(t, v4("169.254.10.1").IsLinkLocal())
	assert.False(t, v4("169.255.0.1").IsLinkLocal())
}

func TestIPv4_IsGlobal(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		// 全局可达
		{"8.8.8.8", true},
		{"1.1.1.1", true},
		{"100.63.255.255", true},
		{"100.128.0.0", true},
		{"198.20.0.0", true},
		{"224.0.0.1", true}, // IPv4 多播不在排除列表中
		{"239.255.255.250", true},
		{"192.0.0.9", true},  // IETF 块中的例外
		{"192.0.0.10", true}, // IETF 块中的例外

		// 非全局
		{"0.0.0.0", false},
		{"0.0.0.1", false},
		{"0.255.255.255", false},
		{"10.0.0.1", false},
		{"172.16.0.1", false},
		{"192.168.1.1", false},
		{"127.0.0.1", false},
		{"169.254.0.1", false},
		{"255.255.255.255", false},
		{"192.0.2.1", false},
		{"198.51.100.1", false},
		{"203.0.113.1", false},
		{"100.64.0.0", false},
		{"192.0.0.0", false},
		{"192.0.0.8", false},
		{"192.0.0.11", false},
		{"240.0.0.1", false},
		{"198.18.0.1", false},
		{"198.19.255.255", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			ip := v4(tt.addr)
			got := ip.IsGlobal()
			assert.Equal(t, tt.want, got)
			// 确定性：重复调用结果一致
			assert.Equal(t, got, ip.IsGlobal())
		})
	}
}

func TestIPv4_Conversions(t *testing.T) {
	ip := IPv4{192, 0, 0, 9}
	assert.Equal(t, uint32(0xC0000009), ip.Uint32())
	assert.Equal(t, ip, IPv4FromUint32(0xC0000009))
	assert.Equal(t, "192.0.0.9", ip.String())
	assert.Equal(t, netip.MustParseAddr("192.0.0.9"), ip.Addr())
}
