package entity

// 跨模块共享的数据记录，作为核心引擎对外输出的耦合点，
// 字段与JSON名称保持稳定，外部HTTP层原样转发

// ResourceAmount 各类资源的数量组合
// 说明：作为资源增减操作的入参，调用方保证各分量非负，
// 带符号的变化量（事件效果、动作效果）按正负拆分后再进入账本
type ResourceAmount struct {
	Water  float64 // 水
	Food   float64 // 食物
	Energy float64 // 能源
	Land   float64 // 土地
}

// ResourceSnapshot 资源账本快照
type ResourceSnapshot struct {
	Water  float64 `json:"water"`
	Food   float64 `json:"food"`
	Energy float64 `json:"energy"`
	Land   float64 `json:"land"`
}

// RegionSnapshot 区域完整状态快照
type RegionSnapshot struct {
	RegionID         int32             `json:"region_id"`
	Name             string            `json:"name"`
	Resources        ResourceSnapshot  `json:"resources"`
	Population       int32             `json:"population"`
	DevelopmentLevel float64           `json:"development_level"`
	GrowthRate       float64           `json:"growth_rate"`
	Stability        float64           `json:"stability"`
	TradePartners    map[int32]float64 `json:"trade_partners"`
	Temperature      float64           `json:"temperature"`
	Rainfall         float64           `json:"rainfall"`
	DisasterRisk     float64           `json:"disaster_risk"`
}

// EventRecord 气候事件记录
// 说明：周期报告中不带时间戳，历史查询中带时间戳（omitempty）
type EventRecord struct {
	Type            string  `json:"type"`
	AffectedRegions []int32 `json:"affected_regions"`
	Severity        float64 `json:"severity"`
	Timestamp       string  `json:"timestamp,omitempty"`
}

// ActionRecord 智能体动作记录
type ActionRecord struct {
	RegionID int32   `json:"region_id"`
	Action   string  `json:"action"`
	Reward   float64 `json:"reward"`
}

// TradeRecord 一次交易的记录
type TradeRecord struct {
	RegionA   int32   `json:"region_a"`
	RegionB   int32   `json:"region_b"`
	Strength  float64 `json:"strength"`
	Timestamp string  `json:"timestamp"`
}

// TradeEdge 贸易网络中的一条有向边
type TradeEdge struct {
	Source int32   `json:"source"`
	Target int32   `json:"target"`
	Weight float64 `json:"weight"`
}

// AgentStats 智能体统计信息
type AgentStats struct {
	ActionsTaken  int      `json:"actions_taken"`
	AvgReward     float64  `json:"avg_reward"`
	RecentActions []string `json:"recent_actions"`
	Epsilon       float64  `json:"epsilon"`
}

// StrategyFreq 策略使用频率
type StrategyFreq struct {
	Action    string `json:"action"`
	Frequency int    `json:"frequency"`
}
