package agent

import (
	"github.com/tsinghua-fib-lab/worldsim-oss/entity"
)

// ActionKind 区域动作类型
type ActionKind int32

// 动作空间的封闭枚举
const (
	ActionInvestFood ActionKind = iota
	ActionInvestEnergy
	ActionInvestWater
	ActionIncreaseProduction
	ActionTradeAggressive
	ActionTradeModerate
	ActionConserve
	ActionInvestDevelopment
	ActionDoNothing
	actionKindCount
)

// ActionSpec 单一动作的固定效果
// 说明：TradeIntensity与Conservation是目录中声明的策略系数，
// 不改变当期区域状态，只有资源、人口、增长率、发展水平的效果会生效
type ActionSpec struct {
	Name           string                // 动作展示名
	Resources      entity.ResourceAmount // 资源变化量（带符号）
	PopGrowth      float64               // 人口增长比例
	Growth         float64               // 增长率变化量
	DevIncrease    float64               // 发展水平增量
	TradeIntensity float64               // 贸易倾向系数
	Conservation   float64               // 节约系数
	Passive        bool                  // 是否为无操作
}

// actionSpecs 动作类型到固定效果的封闭目录
var actionSpecs = [actionKindCount]ActionSpec{
	ActionInvestFood:         {Name: "Invest in Food", Resources: entity.ResourceAmount{Water: -50, Food: 100, Energy: -20}},
	ActionInvestEnergy:       {Name: "Invest in Energy", Resources: entity.ResourceAmount{Water: -30, Food: -20, Energy: 150}},
	ActionInvestWater:        {Name: "Invest in Water", Resources: entity.ResourceAmount{Water: 200, Food: -50, Energy: -50}},
	ActionIncreaseProduction: {Name: "Increase Production", PopGrowth: 0.05, Resources: entity.ResourceAmount{Energy: -100}},
	ActionTradeAggressive:    {Name: "Trade (Aggressive)", TradeIntensity: 0.8, Resources: entity.ResourceAmount{Energy: -30}},
	ActionTradeModerate:      {Name: "Trade (Moderate)", TradeIntensity: 0.5, Resources: entity.ResourceAmount{Energy: -15}},
	ActionConserve:           {Name: "Conserve Resources", Conservation: 0.3, Growth: -0.02},
	ActionInvestDevelopment:  {Name: "Invest in Development", DevIncrease: 0.05, Resources: entity.ResourceAmount{Energy: -80}},
	ActionDoNothing:          {Name: "Do Nothing", Passive: true},
}

// String 获取动作的展示名，动作记录与策略统计都使用该名称
func (k ActionKind) String() string {
	return actionSpecs[k].Name
}

// Spec 获取动作的固定效果
func (k ActionKind) Spec() ActionSpec {
	return actionSpecs[k]
}

// Apply 将动作效果应用到区域
// 参数：r-执行动作的区域
// 算法说明：
// 1. 资源效果：变化量经符号分流的截断后生效
// 2. 人口效果：人口 = int(人口×(1+增长比例))
// 3. 增长率按目录增量调整，发展水平按增量调整并封顶1
func (k ActionKind) Apply(r entity.IRegion) {
	spec := actionSpecs[k]
	r.ApplyResourceDelta(spec.Resources)
	if spec.PopGrowth != 0 {
		r.SetPopulation(int32(float64(r.Population()) * (1 + spec.PopGrowth)))
	}
	if spec.Growth != 0 {
		r.SetGrowthRate(r.GrowthRate() + spec.Growth)
	}
	if spec.DevIncrease != 0 {
		r.SetDevelopmentLevel(r.DevelopmentLevel() + spec.DevIncrease)
	}
}
