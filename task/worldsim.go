package task

import (
	"flag"

	"github.com/tsinghua-fib-lab/worldsim-oss/entity"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔周期数")
)

// CycleReport 单个周期的完整报告
// 说明：时间戳为周期开始时的仿真时间，regions为智能体执行动作后、
// 交易发生前的区域快照
type CycleReport struct {
	Cycle     int32                           `json:"cycle"`
	Timestamp string                          `json:"timestamp"`
	Regions   map[int32]entity.RegionSnapshot `json:"regions"`
	Events    []entity.EventRecord            `json:"events"`
	Actions   []entity.ActionRecord           `json:"actions"`
}

// prepare 准备阶段，每周期执行一次
// 功能：在每个仿真周期开始时进行准备工作
// 算法说明：
// 1. 心跳日志：定期输出当前周期与仿真时间
// 说明：确保所有系统组件在更新阶段前都处于正确状态
func (ctx *Context) prepare() {
	if ctx.clock.Cycle%int32(*heartBeatInterval) == 0 {
		hour, minute, second := ctx.clock.GetHourMinuteSecond()
		log.Infof(
			"CYCLE: %d(%d:%d:%.2f)",
			ctx.clock.Cycle,
			hour, minute, second,
		)
	}
}

// update 更新阶段，每周期执行一次
// 功能：在每个仿真周期中执行主要的仿真逻辑
// 返回：本周期的完整报告
// 算法说明：
// 1. 自然动态：各区域按ID升序完成资源再生、消耗与人口变化
// 2. 气候事件：以固定概率生成一个事件并应用到波及区域，记入报告
// 3. 智能体：各区域依次决策、执行动作、计算奖励、学习
// 4. 区域快照：记录动作后、交易前的全部区域状态
// 5. 交易：每对贸易伙伴以固定概率执行一次交易
// 6. 报告入库，时钟推进到下一周期
// 说明：各管理器依次串行更新，更新顺序是语义的一部分不可调换
func (ctx *Context) update() *CycleReport {
	report := &CycleReport{
		Cycle:     ctx.clock.Cycle,
		Timestamp: ctx.clock.String(),
		Regions:   make(map[int32]entity.RegionSnapshot),
		Events:    make([]entity.EventRecord, 0),
		Actions:   make([]entity.ActionRecord, 0),
	}

	ctx.regionManager.Update() // region

	if record := ctx.climateManager.Update(); record != nil { // climate
		report.Events = append(report.Events, *record)
	}

	report.Actions = ctx.agentManager.Update() // agent

	for _, id := range ctx.regionManager.IDs() {
		report.Regions[id] = ctx.regionManager.Get(id).Snapshot(ctx.tradeManager.PartnersOf(id))
	}

	ctx.tradeManager.Update() // trade

	ctx.history = append(ctx.history, report)
	ctx.clock.Cycle++
	ctx.clock.T = float64(ctx.clock.Cycle) * ctx.clock.DT
	return report
}

// Step 推进一个仿真周期
// 功能：执行一个完整周期并推进时钟，每次调用恰好推进一个周期
// 返回：本周期的完整报告
func (ctx *Context) Step() *CycleReport {
	ctx.prepare()
	return ctx.update()
}

// Run 运行
// 功能：初始化并连续推进仿真，直到到达结束周期
func (ctx *Context) Run() {
	// 初始化
	ctx.Init()
	for ctx.clock.Cycle < ctx.clock.END_STEP {
		ctx.Step()
	}
	log.Infof("engine complete")
}
