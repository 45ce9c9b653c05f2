package climate

import (
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity"
)

// 事件生成参数
const (
	eventProbability = 0.15 // 每周期发生气候事件的概率
	severityLo       = 0.5  // 事件强度下界
	severityHi       = 1.5  // 事件强度上界（不包含）
)

// ClimateManager 气候事件管理器
// 功能：每周期按概率生成气候事件并应用到波及区域，维护完整事件历史
type ClimateManager struct {
	ctx entity.ITaskContext

	regionManager entity.IRegionManager
	events        []*Event // 按生成顺序排列的事件历史
}

// NewManager 创建气候事件管理器实例
// 参数：ctx-任务上下文
// 返回：新创建的气候事件管理器实例
func NewManager(ctx entity.ITaskContext) *ClimateManager {
	m := &ClimateManager{
		ctx:    ctx,
		events: make([]*Event, 0),
	}
	return m
}

// Init 初始化气候事件管理器
// 参数：regionManager-区域管理器，事件应用时从中查找区域
func (m *ClimateManager) Init(regionManager entity.IRegionManager) {
	m.regionManager = regionManager
}

// Update 推进一个周期的气候演化
// 功能：按概率生成一次气候事件，应用到波及区域并记入历史
// 返回：本周期生成的事件记录（不带时间戳），无事件时返回nil
// 算法说明：
// 1. 掷骰：以eventProbability的概率决定本周期是否发生事件，不发生则直接返回
// 2. 抽取事件参数，顺序固定：类型、波及区域数量[1, max(2, n/2))、
//    不重复的波及区域列表、强度[severityLo, severityHi)
// 3. 按ID升序遍历全部区域并应用事件，波及列表外的区域不受影响
// 4. 事件带当前仿真时间戳记入历史
func (m *ClimateManager) Update() *entity.EventRecord {
	engine := m.ctx.Rand()
	if !engine.PTrue(eventProbability) {
		return nil
	}
	ids := m.regionManager.IDs()
	kind := EventKind(engine.Intn(int(eventKindCount)))
	count := engine.UniformInt(1, max(2, len(ids)/2))
	affected := lo.Map(engine.Perm(len(ids))[:count], func(idx int, _ int) int32 {
		return ids[idx]
	})
	severity := engine.UniformFloat64(severityLo, severityHi)
	event := NewEvent(kind, affected, severity, m.ctx.Clock().String())
	for _, id := range ids {
		event.Apply(m.regionManager.Get(id))
	}
	m.events = append(m.events, event)
	log.Debugf("event %s (severity %.2f) affects regions %v", kind, severity, affected)
	record := event.Record()
	return &record
}

// History 获取全部事件历史
// 返回：按生成顺序排列的事件记录列表，带时间戳
func (m *ClimateManager) History() []entity.EventRecord {
	return lo.Map(m.events, func(e *Event, _ int) entity.EventRecord {
		return e.TimedRecord()
	})
}

// Count 获取历史事件总数
func (m *ClimateManager) Count() int {
	return len(m.events)
}
