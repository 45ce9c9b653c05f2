package entity

// entity/region/region.go的依赖倒置
type IRegion interface {
	// 自身属性

	ID() int32    // 获取区域ID
	Name() string // 获取区域显示名

	// 资源账本操作

	Deplete(a ResourceAmount)            // 消耗资源，下限截断为0
	Replenish(a ResourceAmount)          // 补充资源，上限截断为容量
	ApplyResourceDelta(a ResourceAmount) // 按符号应用资源变化量：正为补充、负为消耗
	Resources() ResourceSnapshot         // 获取资源快照
	TotalValue() float64                 // 获取资源总价值
	IsCritical() bool                    // 判断是否处于资源危机状态

	// 人口与发展

	Population() int32           // 获取人口
	SetPopulation(p int32)       // 设置人口，负数截断为0
	DevelopmentLevel() float64   // 获取发展水平（0-1）
	SetDevelopmentLevel(v float64)
	GrowthRate() float64 // 获取人口增长率
	SetGrowthRate(v float64)
	Stability() float64 // 获取稳定度（0-1）

	// 环境属性

	Temperature() float64  // 获取温度（摄氏度）
	Rainfall() float64     // 获取月降水量（毫米）
	DisasterRisk() float64 // 获取灾害风险

	// 输出

	Snapshot(partners map[int32]float64) RegionSnapshot // 生成完整状态快照
}

// entity/agent/agent.go的依赖倒置
type IRegionalAgent interface {
	Stats() AgentStats                  // 获取统计信息
	TopStrategies(n int) []StrategyFreq // 获取使用频率最高的n个策略
	LearningSteps() int                 // 获取累计学习步数
}
