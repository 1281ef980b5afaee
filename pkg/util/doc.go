// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xnet: IP 地址空间分类，判断地址是否全局可达（基于 net/netip + go4.org/netipx）
package util
