package task

import (
	"github.com/tsinghua-fib-lab/worldsim-oss/clock"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity/agent"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity/climate"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity/region"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity/trade"
	"github.com/tsinghua-fib-lab/worldsim-oss/utils/config"
	"github.com/tsinghua-fib-lab/worldsim-oss/utils/randengine"
)

// Context 仿真任务上下文
// 功能：包含一次仿真任务的所有变量和状态，替代原来的全局变量
// 说明：管理仿真系统的所有组件，包括时钟、随机数引擎、各实体管理器、
// 配置与周期报告历史，不支持并发调用，外层服务自行加锁
type Context struct {
	// 时钟
	clock *clock.Clock
	// 随机数引擎，所有随机事件的唯一来源
	engine *randengine.Engine

	// Region管理器
	regionManager entity.IRegionManager
	// Climate管理器
	climateManager entity.IClimateManager
	// Trade管理器
	tradeManager entity.ITradeManager
	// Agent管理器
	agentManager entity.IAgentManager

	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig

	// 周期报告历史
	history []*CycleReport
}

// NewContext 创建新的仿真任务上下文
// 功能：初始化仿真系统的所有组件和配置
// 参数：c-配置对象
// 返回：初始化完成的Context实例
// 算法说明：
// 1. 创建时钟与运行时配置
// 2. 用配置种子创建随机数引擎
// 3. 创建各实体管理器（区域、气候、贸易、智能体）
// 说明：创建后需要调用Init生成初始世界
func NewContext(c config.Config) *Context {
	ctx := &Context{}
	ctx.runtimeConfig = config.NewRuntimeConfig(c)
	ctx.clock = clock.New(ctx.runtimeConfig.C.Step)
	ctx.engine = randengine.New(ctx.runtimeConfig.W.Seed)

	// 新建各类模拟对象
	ctx.regionManager = region.NewManager(ctx)
	ctx.climateManager = climate.NewManager(ctx)
	ctx.tradeManager = trade.NewManager(ctx)
	ctx.agentManager = agent.NewManager(ctx)
	return ctx
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) Rand() *randengine.Engine {
	return ctx.engine
}

func (ctx *Context) RegionManager() entity.IRegionManager {
	return ctx.regionManager
}

func (ctx *Context) ClimateManager() entity.IClimateManager {
	return ctx.climateManager
}

func (ctx *Context) TradeManager() entity.ITradeManager {
	return ctx.tradeManager
}

func (ctx *Context) AgentManager() entity.IAgentManager {
	return ctx.agentManager
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

// Init 初始化
// 功能：生成初始世界
// 算法说明：
// 1. 重置时钟
// 2. 依次初始化区域、气候、贸易、智能体管理器，
//    各管理器从同一个随机数引擎按固定顺序抽取初始化所需的随机数
// 3. 清空周期报告历史
func (ctx *Context) Init() {
	ctx.clock.Init()

	numRegions := ctx.runtimeConfig.W.NumRegions
	ctx.regionManager.Init(numRegions)
	ctx.climateManager.Init(ctx.regionManager)
	ctx.tradeManager.Init(ctx.regionManager)
	ctx.agentManager.Init(ctx.regionManager, ctx.tradeManager)
	ctx.history = make([]*CycleReport, 0)

	log.Infof("Region: %v", ctx.regionManager.Count())
	log.Infof("TradeEdge: %v", ctx.tradeManager.EdgeCount())
}

// Reset 重置仿真
// 功能：以相同的配置重建整个世界，恢复到起始周期
// 返回：重置后的周期序号
// 说明：随机数引擎用配置中的种子重建，重置后的世界与首次初始化逐字节一致
func (ctx *Context) Reset() int32 {
	ctx.engine = randengine.New(ctx.runtimeConfig.W.Seed)
	ctx.regionManager = region.NewManager(ctx)
	ctx.climateManager = climate.NewManager(ctx)
	ctx.tradeManager = trade.NewManager(ctx)
	ctx.agentManager = agent.NewManager(ctx)
	ctx.Init()
	log.Infof("reset to cycle %d", ctx.clock.Cycle)
	return ctx.clock.Cycle
}
