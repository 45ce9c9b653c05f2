package region

import (
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity"
)

// 资源容量上限与危机阈值
const (
	WaterCap  = 2000.0 // 水库存上限
	FoodCap   = 2000.0 // 食物库存上限
	EnergyCap = 2000.0 // 能源库存上限
	LandCap   = 1000.0 // 土地库存上限

	CriticalThreshold = 100.0 // 水/食物/能源任一低于该值即视为危机

	landValueWeight = 10 // 土地稀缺性更高，在总价值中的权重
)

// ResourceLedger 资源账本
// 功能：维护一个区域的水、食物、能源、土地四类资源库存
// 说明：任何时刻每类库存都满足 0 <= 库存 <= 上限，越界的变更请求被静默截断
// 而不是拒绝，截断行为本身就是对外契约，所有操作都不会失败
type ResourceLedger struct {
	water  float64
	food   float64
	energy float64
	land   float64
}

// NewLedger 创建资源账本
// 功能：按给定初始库存创建账本，初始值越界时截断到[0, 上限]
// 参数：water/food/energy/land-四类资源的初始库存
// 返回：新创建的资源账本指针
func NewLedger(water, food, energy, land float64) *ResourceLedger {
	return &ResourceLedger{
		water:  lo.Clamp(water, 0, WaterCap),
		food:   lo.Clamp(food, 0, FoodCap),
		energy: lo.Clamp(energy, 0, EnergyCap),
		land:   lo.Clamp(land, 0, LandCap),
	}
}

// Deplete 消耗资源
// 功能：按给定数量减少各类库存，结果下限截断为0
// 参数：a-各类资源的消耗量，调用方保证非负
func (l *ResourceLedger) Deplete(a entity.ResourceAmount) {
	l.water = lo.Clamp(l.water-a.Water, 0, WaterCap)
	l.food = lo.Clamp(l.food-a.Food, 0, FoodCap)
	l.energy = lo.Clamp(l.energy-a.Energy, 0, EnergyCap)
	l.land = lo.Clamp(l.land-a.Land, 0, LandCap)
}

// Replenish 补充资源
// 功能：按给定数量增加各类库存，结果上限截断为容量
// 参数：a-各类资源的补充量，调用方保证非负
func (l *ResourceLedger) Replenish(a entity.ResourceAmount) {
	l.water = lo.Clamp(l.water+a.Water, 0, WaterCap)
	l.food = lo.Clamp(l.food+a.Food, 0, FoodCap)
	l.energy = lo.Clamp(l.energy+a.Energy, 0, EnergyCap)
	l.land = lo.Clamp(l.land+a.Land, 0, LandCap)
}

// Water 获取水库存
func (l *ResourceLedger) Water() float64 {
	return l.water
}

// Food 获取食物库存
func (l *ResourceLedger) Food() float64 {
	return l.food
}

// Energy 获取能源库存
func (l *ResourceLedger) Energy() float64 {
	return l.energy
}

// Land 获取土地库存
func (l *ResourceLedger) Land() float64 {
	return l.land
}

// TotalValue 计算资源总价值
// 功能：将各类库存折算为单一价值量
// 返回：水+食物+能源+土地×权重
func (l *ResourceLedger) TotalValue() float64 {
	return l.water + l.food + l.energy + l.land*landValueWeight
}

// IsCritical 判断是否处于资源危机状态
// 功能：检查维持生存的三类资源是否有任何一类低于危机阈值
// 返回：水、食物、能源任一低于阈值时为true
func (l *ResourceLedger) IsCritical() bool {
	return l.water < CriticalThreshold || l.food < CriticalThreshold || l.energy < CriticalThreshold
}

// Snapshot 获取资源快照
func (l *ResourceLedger) Snapshot() entity.ResourceSnapshot {
	return entity.ResourceSnapshot{
		Water:  l.water,
		Food:   l.food,
		Energy: l.energy,
		Land:   l.land,
	}
}
