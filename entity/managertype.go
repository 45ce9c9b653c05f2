package entity

// Manager依赖倒置

// entity/region/manager.go的依赖倒置
type IRegionManager interface {
	Init(numRegions int32) // 初始化：生成初始世界

	// 输入Region ID，查找Region，如果不存在则panic
	Get(id int32) IRegion
	// 输入Region ID，查找Region，如果不存在则返回error
	GetOrError(id int32) (IRegion, error)

	IDs() []int32 // 升序排列的全部区域ID
	Count() int32 // 区域数量

	Update() // 更新阶段：自然资源动态与人口变化
}

// entity/climate/manager.go的依赖倒置
type IClimateManager interface {
	Init(regionManager IRegionManager) // 初始化

	// 更新阶段：以固定概率生成一个气候事件并应用到所有区域，
	// 返回生成事件的记录（不带时间戳），未生成时返回nil
	Update() *EventRecord

	History() []EventRecord // 按时间顺序返回全部事件记录（带时间戳）
	Count() int             // 历史事件总数
}

// entity/trade/manager.go的依赖倒置
type ITradeManager interface {
	Init(regionManager IRegionManager) // 初始化：建立初始贸易关系

	Establish(a, b int32, strength float64)      // 建立双向贸易关系
	PartnersOf(id int32) map[int32]float64       // 获取某区域的贸易伙伴及强度
	ExecuteTrade(a, b int32, strength float64)   // 执行一次a与b之间的交易

	Update() // 更新阶段：对每对贸易伙伴以固定概率执行交易

	Nodes() []int32                  // 升序排列的全部节点ID
	Edges() []TradeEdge              // 确定性排序的全部有向边
	EdgeCount() int32                // 有向边数量
	RecentTrades(n int) []TradeRecord // 最近n条交易记录（按时间顺序）
}

// entity/agent/manager.go的依赖倒置
type IAgentManager interface {
	Init(regionManager IRegionManager, tradeManager ITradeManager) // 初始化

	// 输入Region ID，查找对应的智能体，如果不存在则panic
	Get(id int32) IRegionalAgent
	// 输入Region ID，查找对应的智能体，如果不存在则返回error
	GetOrError(id int32) (IRegionalAgent, error)

	Update() []ActionRecord    // 更新阶段：所有区域依次决策、执行、学习
	MeanLearningSteps() float64 // 所有智能体的平均学习步数
}
