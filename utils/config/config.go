package config

// 未指定时采用的默认值
const (
	DefaultNumRegions = 6     // 默认区域数量
	DefaultSeed       = 42    // 默认随机种子
	DefaultInterval   = 86400 // 默认每周期时长：一天（秒）
)

// RuntimeConfig 运行时配置
// 功能：存储仿真运行时的配置信息
// 说明：将YAML配置转换为运行时可用的配置对象，补齐未指定的默认值
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
	W   World   // 世界生成配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：创建运行时配置对象，进行配置验证与默认值补齐
// 参数：config-原始配置对象
// 返回：初始化的运行时配置指针
// 算法说明：
// 1. 创建运行时配置对象
// 2. 设置默认值：区域数量默认为6，随机种子默认为42，周期时长默认为一天
// 说明：确保配置的正确性和一致性，为仿真运行提供有效配置
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	rc.All = config
	rc.C = config.Control
	rc.W = config.World
	if rc.W.NumRegions <= 0 {
		rc.W.NumRegions = DefaultNumRegions
	}
	if rc.W.Seed == 0 {
		rc.W.Seed = DefaultSeed
	}
	if rc.C.Step.Interval <= 0 {
		rc.C.Step.Interval = DefaultInterval
	}

	return rc
}
