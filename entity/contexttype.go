package entity

import (
	"github.com/tsinghua-fib-lab/worldsim-oss/clock"
	"github.com/tsinghua-fib-lab/worldsim-oss/utils/config"
	"github.com/tsinghua-fib-lab/worldsim-oss/utils/randengine"
)

type ITaskContext interface {
	Clock() *clock.Clock
	Rand() *randengine.Engine
	RegionManager() IRegionManager
	ClimateManager() IClimateManager
	TradeManager() ITradeManager
	AgentManager() IAgentManager
	RuntimeConfig() *config.RuntimeConfig
}
