// Package xnet 提供 IP 地址空间分类工具。
//
// xnet 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 核心问题是："这个地址在公网上是否全局可达？"
//
// # 核心类型
//
//   - [IPv4]: 4 个八位组的值类型，附带 IPv4 专属判断（[IPv4Classifier]）
//   - [IPv6]: 8 个 16 位段的值类型，附带 IPv6 专属判断（[IPv6Classifier]）
//   - [IP]: IPv4 或 IPv6 的标签联合体
//   - [Globaler]: 三者共同实现的 IsGlobal 能力
//   - [MulticastScope]: IPv6 多播作用域
//
// 所有判断都是位模式上的纯函数：不分配内存、不返回错误、不阻塞，
// 可在任意 goroutine 中并发调用。
//
// # 快速示例
//
//	xnet.IsGlobal(netip.MustParseAddr("8.8.8.8"))      // true
//	xnet.IsGlobal(netip.MustParseAddr("100.64.0.1"))   // false（共享地址空间）
//	xnet.IsGlobal(netip.MustParseAddr("192.0.0.9"))    // true（IETF 块中的例外）
//	xnet.IsGlobal(netip.MustParseAddr("ff0e::1"))      // true（全局作用域多播）
//
//	v6 := xnet.IPv6{0xff02, 0, 0, 0, 0, 0, 0, 1}
//	scope, ok := v6.MulticastScope()                   // link-local, true
//	xnet.IPFrom6(v6).IsGlobal()                        // false
//
// # 全局可达判定
//
// IPv4：192.0.0.9 与 192.0.0.10 直接判定为全局；其余地址只要属于以下任一类即非全局：
// 私有、环回、链路本地、有限广播、文档、共享（100.64.0.0/10）、
// IETF 协议分配（192.0.0.0/24）、保留（240.0.0.0/4）、基准测试（198.18.0.0/15）、
// 或首个八位组为 0。IPv4 多播不在排除列表中。
//
// IPv6：多播地址仅当作用域为 [ScopeGlobal] 时全局可达；
// 单播地址须非环回、非未指定、非链路本地（fe80::/10）、非 ULA（fc00::/7）、
// 非文档（2001:db8::/32）。
//
// # 地址块表
//
// [SpecialBlocks] 以 (前缀, 类别) 表的形式给出同一排除列表，
// [NonGlobalSet] 将其编译为 [*netipx.IPSet]，[LookupBlock] 返回地址命中的最长前缀块。
// 表与谓词互为校验：对任意地址 a，NonGlobalSet().Contains(a) == !IsGlobal(a)。
//
// # 分类汇总
//
// [Classify] 一次填充 [Classification] 的全部字段，分类标志不互斥，
// 例如 240.0.0.1 同时满足 IsGlobalUnicast 和 IsReserved。
// [Classification.String] 按优先级返回最特殊的分类标签。
// [IsSharedAddress]、[IsIETFProtocolAssignment]、[IsReserved] 和 [IsBroadcast]
// 仅适用于 IPv4；[IsReserved] 不包含 255.255.255.255。
//
// # IPv4-mapped IPv6 地址处理
//
// 接受 [netip.Addr] 的包级函数与 [IPFromAddr] 将 ::ffff:a.b.c.d 视为 IPv4，
// 与 [AddrVersion] 一致。直接构造的 [IPv6] 值始终按 IPv6 位模式判断，
// 因此 IPv6 形式的 ::ffff:10.0.0.1 是全局单播。
package xnet
