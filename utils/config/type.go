package config

// World 世界生成配置
// 功能：定义仿真世界的初始规模与随机种子
// 说明：相同的区域数量与种子总是生成完全相同的世界和周期序列
type World struct {
	NumRegions int32  `yaml:"num_regions,omitempty"` // 区域数量，未指定时默认为6
	Seed       uint64 `yaml:"seed,omitempty"`        // 随机种子，未指定时默认为42
}

// ControlStep 指定模拟器模拟周期范围和时间间隔的配置项
// 功能：定义仿真时间控制参数
// 说明：控制仿真的周期范围、每周期对应的仿真时长
type ControlStep struct {
	Start    int32   `yaml:"start"`    // 开始周期
	Total    int32   `yaml:"total"`    // 总周期数
	Interval float64 `yaml:"interval"` // 每周期的时间间隔（秒），未指定时默认为一天
}

// Control 模拟器控制配置
// 功能：定义仿真系统的核心控制参数
type Control struct {
	Step ControlStep `yaml:"step"`
}

// Config YAML配置文件的根结构
// 功能：定义整个仿真系统的配置结构
type Config struct {
	World   World   `yaml:"world"`   // 世界生成
	Control Control `yaml:"control"` // 模拟过程控制
}
