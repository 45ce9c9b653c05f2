package task

import (
	"github.com/tsinghua-fib-lab/worldsim-oss/entity"
)

// 查询接口的固定截断长度
const (
	worldStateEventCount = 10 // 世界状态中携带的最近事件数
	recentTradeCount     = 20 // 贸易网络快照中携带的最近交易数
)

// WorldState 世界状态汇总
type WorldState struct {
	Cycle        int32                           `json:"cycle"`
	Regions      map[int32]entity.RegionSnapshot `json:"regions"`
	TradeNetwork TradeNetworkEdges               `json:"trade_network"`
	Events       []entity.EventRecord            `json:"events"`
}

// TradeNetworkEdges 世界状态中的贸易网络视图
type TradeNetworkEdges struct {
	Edges []entity.TradeEdge `json:"edges"`
}

// Statistics 仿真统计信息
type Statistics struct {
	Cycle            int32   `json:"cycle"`
	TotalPopulation  int32   `json:"total_population"`
	AvgStability     float64 `json:"avg_stability"`
	AvgDevelopment   float64 `json:"avg_development"`
	CollapsedRegions int     `json:"collapsed_regions"`
	ActiveRegions    int     `json:"active_regions"`
	TradeConnections int32   `json:"trade_connections"`
	AvgLearningSteps float64 `json:"avg_learning_steps"`
}

// CycleHistory 周期历史查询结果
type CycleHistory struct {
	Cycles      []*CycleReport `json:"cycles"`
	TotalCycles int            `json:"total_cycles"`
}

// TradeNetworkState 贸易网络快照
type TradeNetworkState struct {
	Nodes        []int32              `json:"nodes"`
	Edges        []entity.TradeEdge   `json:"edges"`
	RecentTrades []entity.TradeRecord `json:"recent_trades"`
}

// EventHistory 事件历史查询结果
type EventHistory struct {
	Count  int                  `json:"count"`
	Events []entity.EventRecord `json:"events"`
}

// RegionDetail 单区域详情
type RegionDetail struct {
	Region     entity.RegionSnapshot `json:"region"`
	AgentStats entity.AgentStats     `json:"agent_stats"`
}

// RegionAnalysis 单区域策略分析
type RegionAnalysis struct {
	Name             string                `json:"name"`
	Status           string                `json:"status"`
	Population       int32                 `json:"population"`
	Development      float64               `json:"development"`
	Stability        float64               `json:"stability"`
	TotalActions     int                   `json:"total_actions"`
	TopStrategies    []entity.StrategyFreq `json:"top_strategies"`
	LearningProgress float64               `json:"learning_progress"`
	AvgReward        float64               `json:"avg_reward"`
}

// AvgResources 全局平均资源量
type AvgResources struct {
	Water  float64 `json:"water"`
	Food   float64 `json:"food"`
	Energy float64 `json:"energy"`
}

// SustainabilityMetrics 全局可持续性指标
type SustainabilityMetrics struct {
	TotalPopulation  int32        `json:"total_population"`
	AvgResources     AvgResources `json:"avg_resources"`
	CollapsedRegions int          `json:"collapsed_regions"`
	TradeIntensity   float64      `json:"trade_intensity"`
	EventsTotal      int          `json:"events_total"`
}

// Analysis 策略与可持续性分析结果
type Analysis struct {
	Cycle                 int32                    `json:"cycle"`
	Regions               map[int32]RegionAnalysis `json:"regions"`
	SustainabilityMetrics SustainabilityMetrics    `json:"sustainability_metrics"`
}

// Regions 获取全部区域的当前快照
func (ctx *Context) Regions() map[int32]entity.RegionSnapshot {
	regions := make(map[int32]entity.RegionSnapshot, ctx.regionManager.Count())
	for _, id := range ctx.regionManager.IDs() {
		regions[id] = ctx.regionManager.Get(id).Snapshot(ctx.tradeManager.PartnersOf(id))
	}
	return regions
}

// WorldState 获取当前完整世界状态
// 返回：周期序号、全部区域快照、贸易网络边集与最近的事件记录（按时间顺序）
func (ctx *Context) WorldState() WorldState {
	events := ctx.climateManager.History()
	if len(events) > worldStateEventCount {
		events = events[len(events)-worldStateEventCount:]
	}
	return WorldState{
		Cycle:        ctx.clock.Cycle,
		Regions:      ctx.Regions(),
		TradeNetwork: TradeNetworkEdges{Edges: ctx.tradeManager.Edges()},
		Events:       events,
	}
}

// Statistics 获取仿真统计信息
// 算法说明：
// 1. 人口、稳定度、发展水平按ID升序逐区域累计
// 2. 危机区域 = 任一基础资源低于危机线的区域
// 3. 贸易连接数为有向边数量，平均学习步数来自智能体管理器
func (ctx *Context) Statistics() Statistics {
	ids := ctx.regionManager.IDs()
	totalPop := int32(0)
	stability := 0.0
	development := 0.0
	collapsed := 0
	for _, id := range ids {
		r := ctx.regionManager.Get(id)
		totalPop += r.Population()
		stability += r.Stability()
		development += r.DevelopmentLevel()
		if r.IsCritical() {
			collapsed++
		}
	}
	n := len(ids)
	return Statistics{
		Cycle:            ctx.clock.Cycle,
		TotalPopulation:  totalPop,
		AvgStability:     stability / float64(n),
		AvgDevelopment:   development / float64(n),
		CollapsedRegions: collapsed,
		ActiveRegions:    n - collapsed,
		TradeConnections: ctx.tradeManager.EdgeCount(),
		AvgLearningSteps: ctx.agentManager.MeanLearningSteps(),
	}
}

// History 获取最近的周期报告
// 参数：limit-返回的最大报告数
// 返回：历史尾部的limit条报告（按周期顺序）与历史总长度
func (ctx *Context) History(limit int) CycleHistory {
	total := len(ctx.history)
	if limit < 0 {
		limit = 0
	}
	if limit > total {
		limit = total
	}
	cycles := make([]*CycleReport, 0, limit)
	cycles = append(cycles, ctx.history[total-limit:]...)
	return CycleHistory{
		Cycles:      cycles,
		TotalCycles: total,
	}
}

// TradeNetworkState 获取贸易网络快照
func (ctx *Context) TradeNetworkState() TradeNetworkState {
	return TradeNetworkState{
		Nodes:        ctx.tradeManager.Nodes(),
		Edges:        ctx.tradeManager.Edges(),
		RecentTrades: ctx.tradeManager.RecentTrades(recentTradeCount),
	}
}

// EventHistory 获取最近的事件记录
// 参数：limit-返回的最大事件数
// 返回：最近limit条事件，最新的在前
func (ctx *Context) EventHistory(limit int) EventHistory {
	all := ctx.climateManager.History()
	if limit < 0 {
		limit = 0
	}
	if limit > len(all) {
		limit = len(all)
	}
	events := make([]entity.EventRecord, 0, limit)
	for i := len(all) - 1; i >= len(all)-limit; i-- {
		events = append(events, all[i])
	}
	return EventHistory{Count: len(events), Events: events}
}

// RegionDetail 获取单区域详情
// 参数：id-区域ID
// 返回：区域快照与对应智能体的统计信息，ID不存在时返回error
func (ctx *Context) RegionDetail(id int32) (RegionDetail, error) {
	r, err := ctx.regionManager.GetOrError(id)
	if err != nil {
		return RegionDetail{}, err
	}
	a, err := ctx.agentManager.GetOrError(id)
	if err != nil {
		return RegionDetail{}, err
	}
	return RegionDetail{
		Region:     r.Snapshot(ctx.tradeManager.PartnersOf(id)),
		AgentStats: a.Stats(),
	}, nil
}

// Analysis 获取策略与可持续性分析
// 算法说明：
// 1. 区域状态判定：危机区域为critical，稳定度高于0.6为stable，其余为fragile
// 2. 每个区域给出使用频率最高的3个策略与学习进度（当前探索率）
// 3. 贸易活跃度 = 有向边数 / (区域数×2)
func (ctx *Context) Analysis() Analysis {
	ids := ctx.regionManager.IDs()
	regions := make(map[int32]RegionAnalysis, len(ids))
	totalPop := int32(0)
	var water, food, energy float64
	collapsed := 0
	for _, id := range ids {
		r := ctx.regionManager.Get(id)
		a := ctx.agentManager.Get(id)
		stats := a.Stats()

		status := "stable"
		if r.IsCritical() {
			status = "critical"
			collapsed++
		} else if r.Stability() <= 0.6 {
			status = "fragile"
		}
		regions[id] = RegionAnalysis{
			Name:             r.Name(),
			Status:           status,
			Population:       r.Population(),
			Development:      r.DevelopmentLevel(),
			Stability:        r.Stability(),
			TotalActions:     stats.ActionsTaken,
			TopStrategies:    a.TopStrategies(3),
			LearningProgress: stats.Epsilon,
			AvgReward:        stats.AvgReward,
		}

		res := r.Resources()
		totalPop += r.Population()
		water += res.Water
		food += res.Food
		energy += res.Energy
	}
	n := float64(len(ids))
	return Analysis{
		Cycle:   ctx.clock.Cycle,
		Regions: regions,
		SustainabilityMetrics: SustainabilityMetrics{
			TotalPopulation:  totalPop,
			AvgResources:     AvgResources{Water: water / n, Food: food / n, Energy: energy / n},
			CollapsedRegions: collapsed,
			TradeIntensity:   float64(ctx.tradeManager.EdgeCount()) / (n * 2),
			EventsTotal:      ctx.climateManager.Count(),
		},
	}
}
