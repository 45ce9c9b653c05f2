package trade

import (
	"sort"

	"github.com/tsinghua-fib-lab/worldsim-oss/entity"
)

// 初始建联与交易执行参数
const (
	initPartnerSpan  = 2   // 初始建联时每个区域向前探测的邻居数
	initTradeProb    = 0.7 // 初始建联概率
	initStrengthLo   = 0.3 // 初始贸易强度下界
	initStrengthHi   = 0.8 // 初始贸易强度上界（不包含）
	tradeProbability = 0.5 // 每周期每对伙伴执行交易的概率

	tradeUnit          = 50.0 // 交易量 = 强度×tradeUnit
	tradeDeliveryRatio = 0.8  // 运输损耗后的到账比例
	tradeProfitRatio   = 0.9  // 能源方的到账比例
)

// TradeManager 贸易网络管理器
// 功能：维护区域间的有向加权贸易关系，执行粮食换能源的双边交易，
// 保存完整的交易日志
// 说明：邻接表以区域ID为键，所有遍历都按ID升序进行以保证结果可复现
type TradeManager struct {
	ctx entity.ITaskContext

	regionManager entity.IRegionManager
	adjacency     map[int32]map[int32]float64 // 区域ID->伙伴ID->贸易强度
	records       []entity.TradeRecord        // 按执行顺序排列的交易日志
}

// NewManager 创建贸易网络管理器实例
// 参数：ctx-任务上下文
// 返回：新创建的贸易网络管理器实例
func NewManager(ctx entity.ITaskContext) *TradeManager {
	m := &TradeManager{
		ctx:       ctx,
		adjacency: make(map[int32]map[int32]float64),
		records:   make([]entity.TradeRecord, 0),
	}
	return m
}

// Init 初始化贸易网络
// 功能：为全部区域创建节点并按固定规则随机建立初始贸易关系
// 参数：regionManager-区域管理器
// 算法说明：
// 1. 按ID升序为每个区域创建空邻接表
// 2. 每个区域i依次尝试与其后initPartnerSpan个区域建联：
//    以initTradeProb的概率建立双向关系，强度取[initStrengthLo, initStrengthHi)
//    内的均匀随机值，掷骰失败时不消耗强度抽样
func (m *TradeManager) Init(regionManager entity.IRegionManager) {
	m.regionManager = regionManager
	engine := m.ctx.Rand()
	ids := regionManager.IDs()
	for _, id := range ids {
		m.adjacency[id] = make(map[int32]float64)
	}
	for i := range ids {
		for j := i + 1; j <= i+initPartnerSpan && j < len(ids); j++ {
			if engine.PTrue(initTradeProb) {
				m.Establish(ids[i], ids[j], engine.UniformFloat64(initStrengthLo, initStrengthHi))
			}
		}
	}
	log.Debugf("init trade network: %d nodes, %d edges", len(ids), m.EdgeCount())
}

// Establish 建立双向贸易关系
// 功能：在a与b之间建立两条方向相反、强度相同的贸易边，已存在时覆盖强度
// 参数：a/b-区域ID，strength-贸易强度
func (m *TradeManager) Establish(a, b int32, strength float64) {
	if m.adjacency[a] == nil {
		m.adjacency[a] = make(map[int32]float64)
	}
	if m.adjacency[b] == nil {
		m.adjacency[b] = make(map[int32]float64)
	}
	m.adjacency[a][b] = strength
	m.adjacency[b][a] = strength
}

// PartnersOf 获取某区域的贸易伙伴及强度
// 参数：id-区域ID
// 返回：伙伴ID到强度的映射副本，无伙伴时返回空映射
func (m *TradeManager) PartnersOf(id int32) map[int32]float64 {
	partners := make(map[int32]float64, len(m.adjacency[id]))
	for peer, strength := range m.adjacency[id] {
		partners[peer] = strength
	}
	return partners
}

// ExecuteTrade 执行一次a与b之间的交易
// 功能：a方付出粮食换回部分粮食，b方付出能源换回更多能源，并记录日志
// 参数：a/b-区域ID，strength-本次交易强度
// 算法说明：
// 1. 交易量 = 强度×tradeUnit
// 2. a方粮食：先消耗交易量，再回补交易量×tradeDeliveryRatio（运输损耗）
// 3. b方能源：先消耗交易量×tradeDeliveryRatio，再回补交易量×tradeProfitRatio
// 4. 日志带当前仿真时间戳，只追加不删减
func (m *TradeManager) ExecuteTrade(a, b int32, strength float64) {
	ra := m.regionManager.Get(a)
	rb := m.regionManager.Get(b)
	amount := strength * tradeUnit
	ra.Deplete(entity.ResourceAmount{Food: amount})
	ra.Replenish(entity.ResourceAmount{Food: amount * tradeDeliveryRatio})
	rb.Deplete(entity.ResourceAmount{Energy: amount * tradeDeliveryRatio})
	rb.Replenish(entity.ResourceAmount{Energy: amount * tradeProfitRatio})
	m.records = append(m.records, entity.TradeRecord{
		RegionA:   a,
		RegionB:   b,
		Strength:  strength,
		Timestamp: m.ctx.Clock().String(),
	})
}

// Update 推进一个周期的贸易活动
// 功能：对每对贸易伙伴以固定概率执行一次交易
// 算法说明：
// 1. 按ID升序遍历节点a，再按ID升序遍历a的伙伴b
// 2. 只处理a<b的组合，保证每对无序伙伴恰好被考虑一次
// 3. 以tradeProbability的概率按已建立的强度执行交易
func (m *TradeManager) Update() {
	engine := m.ctx.Rand()
	for _, a := range m.Nodes() {
		for _, b := range m.sortedPartners(a) {
			if a < b && engine.PTrue(tradeProbability) {
				m.ExecuteTrade(a, b, m.adjacency[a][b])
			}
		}
	}
}

// Nodes 获取升序排列的全部节点ID
func (m *TradeManager) Nodes() []int32 {
	ids := make([]int32, 0, len(m.adjacency))
	for id := range m.adjacency {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Edges 获取全部有向贸易边
// 返回：按(source, target)升序排列的有向边列表
func (m *TradeManager) Edges() []entity.TradeEdge {
	edges := make([]entity.TradeEdge, 0)
	for _, a := range m.Nodes() {
		for _, b := range m.sortedPartners(a) {
			edges = append(edges, entity.TradeEdge{Source: a, Target: b, Weight: m.adjacency[a][b]})
		}
	}
	return edges
}

// EdgeCount 获取有向边数量
func (m *TradeManager) EdgeCount() int32 {
	count := 0
	for _, partners := range m.adjacency {
		count += len(partners)
	}
	return int32(count)
}

// RecentTrades 获取最近n条交易记录
// 参数：n-返回的最大记录数
// 返回：日志尾部的n条记录副本，按时间顺序排列
func (m *TradeManager) RecentTrades(n int) []entity.TradeRecord {
	if n <= 0 {
		return []entity.TradeRecord{}
	}
	if n > len(m.records) {
		n = len(m.records)
	}
	return append([]entity.TradeRecord(nil), m.records[len(m.records)-n:]...)
}

// sortedPartners 获取某区域按ID升序排列的伙伴ID列表
func (m *TradeManager) sortedPartners(id int32) []int32 {
	partners := make([]int32, 0, len(m.adjacency[id]))
	for peer := range m.adjacency[id] {
		partners = append(partners, peer)
	}
	sort.Slice(partners, func(i, j int) bool { return partners[i] < partners[j] })
	return partners
}
