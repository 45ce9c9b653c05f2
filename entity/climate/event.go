package climate

import (
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity"
)

// EventKind 气候事件类型
type EventKind int32

// 气候事件类型的封闭枚举
const (
	EventDrought EventKind = iota
	EventFlood
	EventHeatwave
	EventColdsnap
	EventHarvest
	EventPlague
	eventKindCount
)

// EventSpec 单一事件类型的固定效果
// 说明：Resources为基准资源变化量（带符号），PopulationLoss为人口损失比例，
// 两者在应用时都会乘以事件强度
type EventSpec struct {
	Resources      entity.ResourceAmount // 基准资源变化量
	PopulationLoss float64               // 人口损失比例
	Description    string                // 事件描述
}

// eventSpecs 事件类型到固定效果的封闭目录
var eventSpecs = [eventKindCount]EventSpec{
	EventDrought:  {Resources: entity.ResourceAmount{Water: -500, Food: -300}, Description: "Severe Drought"},
	EventFlood:    {Resources: entity.ResourceAmount{Water: 200, Food: -200, Land: -100}, Description: "Flooding"},
	EventHeatwave: {Resources: entity.ResourceAmount{Energy: -200, Food: -150}, Description: "Heatwave"},
	EventColdsnap: {Resources: entity.ResourceAmount{Energy: -400, Food: -100}, Description: "Cold Snap"},
	EventHarvest:  {Resources: entity.ResourceAmount{Food: 300}, Description: "Bountiful Harvest"},
	EventPlague:   {PopulationLoss: 0.1, Description: "Plague Outbreak"},
}

// String 获取事件类型的标签名
func (k EventKind) String() string {
	switch k {
	case EventDrought:
		return "drought"
	case EventFlood:
		return "flood"
	case EventHeatwave:
		return "heatwave"
	case EventColdsnap:
		return "coldsnap"
	case EventHarvest:
		return "harvest"
	case EventPlague:
		return "plague"
	default:
		return "unknown"
	}
}

// Spec 获取事件类型的固定效果
func (k EventKind) Spec() EventSpec {
	return eventSpecs[k]
}

// Event 气候事件
// 功能：描述一次已生成的气候事件，构造后不可变
// 说明：效果量由事件类型决定并乘以强度，时间戳为生成时的仿真时间
type Event struct {
	kind            EventKind
	affectedRegions []int32
	severity        float64
	timestamp       string
}

// NewEvent 创建气候事件
// 参数：kind-事件类型，affected-波及区域ID列表，severity-强度，timestamp-仿真时间
// 返回：气候事件指针
func NewEvent(kind EventKind, affected []int32, severity float64, timestamp string) *Event {
	return &Event{
		kind:            kind,
		affectedRegions: affected,
		severity:        severity,
		timestamp:       timestamp,
	}
}

// Apply 将事件应用到一个区域
// 功能：对波及列表内的区域施加事件效果，列表外的区域完全不受影响
// 参数：r-目标区域
// 算法说明：
// 1. 区域不在波及列表内时直接返回（无任何变更）
// 2. 资源效果：基准变化量×强度，经过账本的截断后生效
// 3. 人口效果：人口 = 人口×(1 - 损失比例×强度)，向下取整
func (e *Event) Apply(r entity.IRegion) {
	if !lo.Contains(e.affectedRegions, r.ID()) {
		return
	}
	spec := eventSpecs[e.kind]
	r.ApplyResourceDelta(entity.ResourceAmount{
		Water:  spec.Resources.Water * e.severity,
		Food:   spec.Resources.Food * e.severity,
		Energy: spec.Resources.Energy * e.severity,
		Land:   spec.Resources.Land * e.severity,
	})
	if spec.PopulationLoss > 0 {
		r.SetPopulation(int32(float64(r.Population()) * (1 - spec.PopulationLoss*e.severity)))
	}
}

// Record 生成周期报告用的事件记录（不带时间戳）
func (e *Event) Record() entity.EventRecord {
	return entity.EventRecord{
		Type:            e.kind.String(),
		AffectedRegions: append([]int32(nil), e.affectedRegions...),
		Severity:        e.severity,
	}
}

// TimedRecord 生成历史查询用的事件记录（带时间戳）
func (e *Event) TimedRecord() entity.EventRecord {
	rec := e.Record()
	rec.Timestamp = e.timestamp
	return rec
}
