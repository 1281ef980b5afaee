package xnet

import "fmt"

// MulticastScope 表示 IPv6 多播地址第一段低 4 位的作用域字段（RFC 7346）。
//
// 常量的取值即作用域字段的原始值。零值不对应任何作用域，
// [IPv6.MulticastScope] 以 ok == false 表示"无作用域"。
type MulticastScope uint8

// 已登记的多播作用域。
const (
	ScopeInterfaceLocal    MulticastScope = 0x1
	ScopeLinkLocal         MulticastScope = 0x2
	ScopeRealmLocal        MulticastScope = 0x3
	ScopeAdminLocal        MulticastScope = 0x4
	ScopeSiteLocal         MulticastScope = 0x5
	ScopeOrganizationLocal MulticastScope = 0x8
	ScopeGlobal            MulticastScope = 0xE
)

// scopeFromField 将 4 位作用域字段映射为 MulticastScope。
// 0、6、7、9–13、15 均未映射。
func scopeFromField(field uint16) (MulticastScope, bool) {
	switch s := MulticastScope(field & 0x000F); s {
	case ScopeInterfaceLocal, ScopeLinkLocal, ScopeRealmLocal, ScopeAdminLocal,
		ScopeSiteLocal, ScopeOrganizationLocal, ScopeGlobal:
		return s, true
	default:
		return 0, false
	}
}

// String 返回作用域名称，未映射的值返回 "none" 或 "scope(N)"。
func (s MulticastScope) String() string {
	switch s {
	case ScopeInterfaceLocal:
		return "interface-local"
	case ScopeLinkLocal:
		return "link-local"
	case ScopeRealmLocal:
		return "realm-local"
	case ScopeAdminLocal:
		return "admin-local"
	case ScopeSiteLocal:
		return "site-local"
	case ScopeOrganizationLocal:
		return "organization-local"
	case ScopeGlobal:
		return "global"
	case 0:
		return "none"
	default:
		return fmt.Sprintf("scope(%d)", uint8(s))
	}
}

// MarshalText 实现 encoding.TextMarshaler，用于 JSON/YAML 输出。
func (s MulticastScope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
