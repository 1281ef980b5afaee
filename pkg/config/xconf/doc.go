// Package xconf 提供配置文件加载和解析功能，基于 koanf 实现。
//
// xconf 定位为最小化配置加载器，负责文件/字节数据的加载与反序列化。
// 不负责必选字段校验和默认值注入，这些由调用方在 Unmarshal 前后处理：
// 先填充默认值，再 Unmarshal 覆盖，未出现的键保持默认值。
//
// # 支持的格式
//
//   - YAML（默认，推荐）：.yaml, .yml
//   - JSON：.json
//   - TOML：.toml
//
// # 用法
//
//	cfg, err := xconf.New("/etc/xipscope/config.yaml")
//	if err != nil {
//		return err
//	}
//	var s Settings
//	if err := cfg.Unmarshal("", &s); err != nil {
//		return err
//	}
//
// 所有方法都是并发安全的；Reload 原子替换底层 koanf 实例。
package xconf
