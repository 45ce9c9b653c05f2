package agent

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity"
)

// AgentManager 智能体管理器
// 功能：管理所有区域智能体，驱动每周期的决策、执行、学习流程
// 说明：智能体与区域一一对应，所有遍历都按区域ID升序进行以保证结果可复现
type AgentManager struct {
	ctx entity.ITaskContext

	regionManager entity.IRegionManager
	tradeManager  entity.ITradeManager
	data          map[int32]*RegionalAgent
}

// NewManager 创建智能体管理器实例
// 参数：ctx-任务上下文
// 返回：新创建的智能体管理器实例
func NewManager(ctx entity.ITaskContext) *AgentManager {
	m := &AgentManager{
		ctx:  ctx,
		data: make(map[int32]*RegionalAgent),
	}
	return m
}

// Init 初始化所有智能体
// 功能：按区域ID升序为每个区域创建一个智能体，各自持有独立的学习器
// 参数：regionManager-区域管理器，tradeManager-贸易网络管理器
func (m *AgentManager) Init(regionManager entity.IRegionManager, tradeManager entity.ITradeManager) {
	m.regionManager = regionManager
	m.tradeManager = tradeManager
	for _, id := range regionManager.IDs() {
		m.data[id] = NewAgent(id, NewLearner(m.ctx.Rand()))
	}
	log.Debugf("init %d agents", len(m.data))
}

// Get 查找智能体，如果不存在则panic
func (m *AgentManager) Get(id int32) entity.IRegionalAgent {
	if agent, ok := m.data[id]; ok {
		return agent
	}
	log.Panicf("no id %d in agent data", id)
	return nil
}

// GetOrError 查找智能体，如果不存在则返回error
func (m *AgentManager) GetOrError(id int32) (entity.IRegionalAgent, error) {
	if agent, ok := m.data[id]; ok {
		return agent, nil
	}
	return nil, fmt.Errorf("no id %d in agent data", id)
}

// Update 推进一个周期的决策与学习
// 功能：所有区域依次决策、执行动作、计算奖励、学习
// 返回：按区域ID升序排列的动作记录
// 算法说明：
// 1. 按ID升序遍历区域，记录动作前的资源快照与状态向量
// 2. 决策（训练模式）并应用动作效果
// 3. 奖励基于动作后的资源快照、稳定度与人口计算
// 4. 动作后状态向量与资源危机标志构成完整转移，交给智能体学习
func (m *AgentManager) Update() []entity.ActionRecord {
	records := make([]entity.ActionRecord, 0, m.regionManager.Count())
	for _, id := range m.regionManager.IDs() {
		r := m.regionManager.Get(id)
		agent := m.data[id]
		partnerCount := len(m.tradeManager.PartnersOf(id))

		before := r.Resources()
		action, state := agent.Decide(r, partnerCount, true)
		action.Apply(r)

		reward := agent.Reward(before, r.Resources(), r.Stability(), r.Population())
		next := agent.StateVector(r, partnerCount)
		agent.Learn(state, action, reward, next, r.IsCritical())

		records = append(records, entity.ActionRecord{
			RegionID: id,
			Action:   action.String(),
			Reward:   reward,
		})
	}
	return records
}

// MeanLearningSteps 所有智能体的平均学习步数
func (m *AgentManager) MeanLearningSteps() float64 {
	ids := m.regionManager.IDs()
	if len(ids) == 0 {
		return 0
	}
	total := lo.SumBy(ids, func(id int32) int {
		return m.data[id].LearningSteps()
	})
	return float64(total) / float64(len(ids))
}
