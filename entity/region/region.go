package region

import (
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity"
	"github.com/tsinghua-fib-lab/worldsim-oss/utils/randengine"
)

// 世界生成时的初始分布参数
const (
	initResourceLo = 800.0  // 初始水/食物/能源下界
	initResourceHi = 1200.0 // 初始水/食物/能源上界
	initLand       = 1000.0 // 初始土地
	initPopLo      = 80     // 初始人口下界（包含）
	initPopHi      = 120    // 初始人口上界（不包含）
	initDevLo      = 0.3    // 初始发展水平下界
	initDevHi      = 0.7    // 初始发展水平上界
	initTempLo     = 15.0   // 初始温度下界
	initTempHi     = 25.0   // 初始温度上界
	initRainLo     = 80.0   // 初始降水下界
	initRainHi     = 150.0  // 初始降水上界

	defaultGrowthRate   = 0.02 // 默认人口增长率
	defaultStability    = 0.8  // 默认稳定度
	defaultDisasterRisk = 0.05 // 默认灾害风险
)

// 自然动态参数
const (
	waterPerRainfall    = 5    // 每毫米降水带来的水补给
	foodPerDevPop       = 2    // 发展水平×人口的食物产出系数
	energyPerCapita     = 5    // 人均能源消耗
	popGrowthFoodRatio  = 8    // 食物超过人口×该值时人口增长
	popShrinkFoodRatio  = 3    // 食物低于人口×该值时人口衰减
	popShrinkFactor     = 0.98 // 食物短缺时的人口衰减系数
)

// Region 区域实体
// 功能：聚合一个区域的资源账本、人口、发展与环境属性
// 说明：区域在世界初始化时一次性创建，每个周期被更新，从不销毁，
// 资源跌破危机阈值的区域只是被标记为危机状态而不会被移除
type Region struct {
	id   int32
	name string

	ledger *ResourceLedger

	population       int32
	developmentLevel float64
	growthRate       float64
	stability        float64

	// 环境属性
	temperature  float64
	rainfall     float64
	disasterRisk float64
}

// newRegion 创建区域
// 功能：按初始分布随机生成一个区域的全部属性
// 参数：id-区域ID，name-显示名，e-随机数引擎
// 返回：新创建的区域实例
// 说明：随机量的抽取顺序是固定的，保证相同种子生成完全相同的世界
func newRegion(id int32, name string, e *randengine.Engine) *Region {
	return &Region{
		id:   id,
		name: name,
		ledger: NewLedger(
			e.UniformFloat64(initResourceLo, initResourceHi),
			e.UniformFloat64(initResourceLo, initResourceHi),
			e.UniformFloat64(initResourceLo, initResourceHi),
			initLand,
		),
		population:       int32(e.UniformInt(initPopLo, initPopHi)),
		developmentLevel: e.UniformFloat64(initDevLo, initDevHi),
		growthRate:       defaultGrowthRate,
		stability:        defaultStability,
		temperature:      e.UniformFloat64(initTempLo, initTempHi),
		rainfall:         e.UniformFloat64(initRainLo, initRainHi),
		disasterRisk:     defaultDisasterRisk,
	}
}

// ID 获取区域ID
func (r *Region) ID() int32 {
	return r.id
}

// Name 获取区域显示名
func (r *Region) Name() string {
	return r.name
}

// Deplete 消耗资源
func (r *Region) Deplete(a entity.ResourceAmount) {
	r.ledger.Deplete(a)
}

// Replenish 补充资源
func (r *Region) Replenish(a entity.ResourceAmount) {
	r.ledger.Replenish(a)
}

// ApplyResourceDelta 应用带符号的资源变化量
// 功能：将变化量按符号拆分后送入账本，正分量补充、负分量消耗
// 参数：a-各类资源的带符号变化量
// 说明：事件效果与动作效果都经过该入口，保证库存始终在[0, 上限]内
func (r *Region) ApplyResourceDelta(a entity.ResourceAmount) {
	var dep, rep entity.ResourceAmount
	if a.Water >= 0 {
		rep.Water = a.Water
	} else {
		dep.Water = -a.Water
	}
	if a.Food >= 0 {
		rep.Food = a.Food
	} else {
		dep.Food = -a.Food
	}
	if a.Energy >= 0 {
		rep.Energy = a.Energy
	} else {
		dep.Energy = -a.Energy
	}
	if a.Land >= 0 {
		rep.Land = a.Land
	} else {
		dep.Land = -a.Land
	}
	r.ledger.Deplete(dep)
	r.ledger.Replenish(rep)
}

// Resources 获取资源快照
func (r *Region) Resources() entity.ResourceSnapshot {
	return r.ledger.Snapshot()
}

// TotalValue 获取资源总价值
func (r *Region) TotalValue() float64 {
	return r.ledger.TotalValue()
}

// IsCritical 判断是否处于资源危机状态
func (r *Region) IsCritical() bool {
	return r.ledger.IsCritical()
}

// Population 获取人口
func (r *Region) Population() int32 {
	return r.population
}

// SetPopulation 设置人口，负数截断为0
func (r *Region) SetPopulation(p int32) {
	if p < 0 {
		p = 0
	}
	r.population = p
}

// DevelopmentLevel 获取发展水平
func (r *Region) DevelopmentLevel() float64 {
	return r.developmentLevel
}

// SetDevelopmentLevel 设置发展水平，截断到[0, 1]
func (r *Region) SetDevelopmentLevel(v float64) {
	r.developmentLevel = lo.Clamp(v, 0, 1)
}

// GrowthRate 获取人口增长率
func (r *Region) GrowthRate() float64 {
	return r.growthRate
}

// SetGrowthRate 设置人口增长率
func (r *Region) SetGrowthRate(v float64) {
	r.growthRate = v
}

// Stability 获取稳定度
func (r *Region) Stability() float64 {
	return r.stability
}

// Temperature 获取温度
func (r *Region) Temperature() float64 {
	return r.temperature
}

// Rainfall 获取降水量
func (r *Region) Rainfall() float64 {
	return r.rainfall
}

// DisasterRisk 获取灾害风险
func (r *Region) DisasterRisk() float64 {
	return r.disasterRisk
}

// UpdateNatural 自然资源动态与人口变化
// 功能：执行一个周期内不依赖智能体决策的自然过程
// 算法说明：
// 1. 降水补给：补充水 = 降水量×5
// 2. 食物产出：补充食物 = 发展水平×人口×2
// 3. 能源消耗：消耗能源 = 人口×5
// 4. 人口变化：食物 > 人口×8 时按增长率增长，食物 < 人口×3 时衰减2%，
//    其余情况人口不变，人口换算始终向下取整
func (r *Region) UpdateNatural() {
	r.Replenish(entity.ResourceAmount{Water: r.rainfall * waterPerRainfall})
	r.Replenish(entity.ResourceAmount{Food: r.developmentLevel * float64(r.population) * foodPerDevPop})
	r.Deplete(entity.ResourceAmount{Energy: float64(r.population) * energyPerCapita})

	if r.ledger.Food() > float64(r.population)*popGrowthFoodRatio {
		r.population = int32(float64(r.population) * (1 + r.growthRate))
	} else if r.ledger.Food() < float64(r.population)*popShrinkFoodRatio {
		r.population = int32(float64(r.population) * popShrinkFactor)
	}
}

// Snapshot 生成完整状态快照
// 功能：导出区域当前的全部对外可见状态
// 参数：partners-贸易伙伴及强度映射，由贸易网络解析后传入
// 返回：区域状态快照
func (r *Region) Snapshot(partners map[int32]float64) entity.RegionSnapshot {
	if partners == nil {
		partners = map[int32]float64{}
	}
	return entity.RegionSnapshot{
		RegionID:         r.id,
		Name:             r.name,
		Resources:        r.ledger.Snapshot(),
		Population:       r.population,
		DevelopmentLevel: r.developmentLevel,
		GrowthRate:       r.growthRate,
		Stability:        r.stability,
		TradePartners:    partners,
		Temperature:      r.temperature,
		Rainfall:         r.rainfall,
		DisasterRisk:     r.disasterRisk,
	}
}
