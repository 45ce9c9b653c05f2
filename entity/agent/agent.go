package agent

import (
	"math"
	"sort"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity"
)

// 状态向量与奖励的归一化参数
const (
	resourceNorm    = 2000.0 // 水、粮食、能源的归一化分母
	landNorm        = 1000.0 // 土地的归一化分母
	populationNorm  = 1000.0 // 人口的归一化分母
	temperatureNorm = 50.0   // 温度的归一化分母
	rainfallNorm    = 200.0  // 降雨量的归一化分母
	partnerNorm     = 10.0   // 贸易伙伴数的归一化分母
	growthScale     = 100.0  // 增长率的放大系数

	recentActionCount = 5 // 统计中保留的最近动作数
)

// RegionalAgent 区域智能体
// 功能：为单个区域决策，维护动作与奖励历史，驱动学习器更新
// 说明：每个智能体持有独立的学习器，价值表不跨区域共享
type RegionalAgent struct {
	id      int32
	learner *Learner

	actionHistory []ActionKind
	rewardHistory []float64
}

// NewAgent 创建区域智能体
// 参数：id-对应的区域ID，learner-该智能体独占的学习器
// 返回：区域智能体指针
func NewAgent(id int32, learner *Learner) *RegionalAgent {
	return &RegionalAgent{
		id:            id,
		learner:       learner,
		actionHistory: make([]ActionKind, 0),
		rewardHistory: make([]float64, 0),
	}
}

// StateVector 生成归一化状态向量
// 功能：把区域状态压缩成固定顺序的12维向量
// 参数：r-区域，partnerCount-贸易伙伴数
// 返回：每个分量都截断到[0,1]的状态向量
func (a *RegionalAgent) StateVector(r entity.IRegion, partnerCount int) []float64 {
	res := r.Resources()
	state := make([]float64, 0, stateSize)
	state = append(state,
		res.Water/resourceNorm,
		res.Food/resourceNorm,
		res.Energy/resourceNorm,
		res.Land/landNorm,
		float64(r.Population())/populationNorm,
		r.DevelopmentLevel(),
		r.Stability(),
		r.Temperature()/temperatureNorm,
		r.Rainfall()/rainfallNorm,
		r.DisasterRisk(),
		float64(partnerCount)/partnerNorm,
		r.GrowthRate()*growthScale,
	)
	for i, v := range state {
		state[i] = lo.Clamp(v, 0.0, 1.0)
	}
	return state
}

// Decide 为区域选择一个动作
// 参数：r-区域，partnerCount-贸易伙伴数，training-是否处于训练模式
// 返回：选中的动作与决策时使用的状态向量（动作生效前的真实状态）
func (a *RegionalAgent) Decide(r entity.IRegion, partnerCount int, training bool) (ActionKind, []float64) {
	state := a.StateVector(r, partnerCount)
	return a.learner.Act(state, training), state
}

// Reward 计算本周期奖励
// 参数：prev/curr-动作前后的资源快照，stability-稳定度，population-人口
// 返回：截断到[-10, 10]的奖励值
// 算法说明：
// 1. 资源健康度 = (水+粮食+能源各自归一化后)/3，权重3
// 2. 稳定度权重2，人口奖励 = min(人口/500, 1)×0.5
// 3. 饥荒惩罚：粮食<100时-5，能源<100时再-3，两者独立判断
func (a *RegionalAgent) Reward(prev, curr entity.ResourceSnapshot, stability float64, population int32) float64 {
	resourceHealth := (curr.Water/resourceNorm + curr.Food/resourceNorm + curr.Energy/resourceNorm) / 3
	reward := resourceHealth*3 + stability*2 + math.Min(float64(population)/500, 1)*0.5
	if curr.Food < 100 {
		reward -= 5
	}
	if curr.Energy < 100 {
		reward -= 3
	}
	return lo.Clamp(reward, -10.0, 10.0)
}

// Learn 从一次转移中学习
// 功能：经验入池，更新动作与奖励历史，做一次批量回放
// 返回：本次回放损失
func (a *RegionalAgent) Learn(state []float64, action ActionKind, reward float64, next []float64, done bool) float64 {
	a.learner.Remember(Transition{
		State:     state,
		Action:    action,
		Reward:    reward,
		NextState: next,
		Done:      done,
	})
	a.rewardHistory = append(a.rewardHistory, reward)
	a.actionHistory = append(a.actionHistory, action)
	return a.learner.Replay(replayBatchSize)
}

// Stats 获取智能体统计信息
// 返回：动作总数、平均奖励、最近动作名列表、当前探索率
func (a *RegionalAgent) Stats() entity.AgentStats {
	recent := a.actionHistory
	if len(recent) > recentActionCount {
		recent = recent[len(recent)-recentActionCount:]
	}
	avgReward := 0.0
	if len(a.rewardHistory) > 0 {
		avgReward = lo.Sum(a.rewardHistory) / float64(len(a.rewardHistory))
	}
	return entity.AgentStats{
		ActionsTaken: len(a.actionHistory),
		AvgReward:    avgReward,
		RecentActions: lo.Map(recent, func(k ActionKind, _ int) string {
			return k.String()
		}),
		Epsilon: a.learner.Epsilon(),
	}
}

// TopStrategies 获取使用频率最高的n个策略
// 返回：按频率降序排列的策略列表，频率相同时按动作下标升序
func (a *RegionalAgent) TopStrategies(n int) []entity.StrategyFreq {
	counts := make(map[ActionKind]int)
	for _, k := range a.actionHistory {
		counts[k]++
	}
	kinds := lo.Keys(counts)
	sort.Slice(kinds, func(i, j int) bool {
		if counts[kinds[i]] != counts[kinds[j]] {
			return counts[kinds[i]] > counts[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})
	if n < 0 {
		n = 0
	}
	if n > len(kinds) {
		n = len(kinds)
	}
	return lo.Map(kinds[:n], func(k ActionKind, _ int) entity.StrategyFreq {
		return entity.StrategyFreq{Action: k.String(), Frequency: counts[k]}
	})
}

// LearningSteps 获取学习步数（奖励历史长度）
func (a *RegionalAgent) LearningSteps() int {
	return len(a.rewardHistory)
}
