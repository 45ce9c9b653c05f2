package trade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/worldsim-oss/clock"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity/region"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity/trade"
	"github.com/tsinghua-fib-lab/worldsim-oss/utils/config"
	"github.com/tsinghua-fib-lab/worldsim-oss/utils/randengine"
)

type stubContext struct {
	engine *randengine.Engine
	clk    *clock.Clock
}

func (s *stubContext) Clock() *clock.Clock                    { return s.clk }
func (s *stubContext) Rand() *randengine.Engine               { return s.engine }
func (s *stubContext) RegionManager() entity.IRegionManager   { return nil }
func (s *stubContext) ClimateManager() entity.IClimateManager { return nil }
func (s *stubContext) TradeManager() entity.ITradeManager     { return nil }
func (s *stubContext) AgentManager() entity.IAgentManager     { return nil }
func (s *stubContext) RuntimeConfig() *config.RuntimeConfig   { return nil }

func newWorld(t *testing.T, seed uint64, n int32) (*region.RegionManager, *trade.TradeManager) {
	t.Helper()
	ctx := &stubContext{
		engine: randengine.New(seed),
		clk:    clock.New(config.ControlStep{Start: 0, Total: 1000, Interval: 86400}),
	}
	rm := region.NewManager(ctx)
	rm.Init(n)
	tm := trade.NewManager(ctx)
	tm.Init(rm)
	return rm, tm
}

func TestInitNetwork(t *testing.T) {
	_, tm := newWorld(t, 42, 6)
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5}, tm.Nodes())

	edges := tm.Edges()
	assert.Equal(t, int32(len(edges)), tm.EdgeCount())
	assert.Zero(t, len(edges)%2) // 双向关系成对出现

	for _, e := range edges {
		// 初始建联只发生在向前两个邻居之内
		diff := e.Source - e.Target
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, int32(2))
		assert.GreaterOrEqual(t, e.Weight, 0.3)
		assert.Less(t, e.Weight, 0.8)

		// 反向边存在且强度相同
		assert.Equal(t, e.Weight, tm.PartnersOf(e.Target)[e.Source])
	}
}

func TestEstablishSymmetry(t *testing.T) {
	_, tm := newWorld(t, 42, 2)
	tm.Establish(0, 1, 0.6)

	assert.Equal(t, 0.6, tm.PartnersOf(0)[1])
	assert.Equal(t, 0.6, tm.PartnersOf(1)[0])
	assert.Equal(t, int32(2), tm.EdgeCount())

	// 重复建联覆盖原有强度
	tm.Establish(0, 1, 0.4)
	assert.Equal(t, 0.4, tm.PartnersOf(0)[1])
	assert.Equal(t, int32(2), tm.EdgeCount())
}

func TestPartnersOfCopy(t *testing.T) {
	_, tm := newWorld(t, 42, 2)
	tm.Establish(0, 1, 0.6)

	partners := tm.PartnersOf(0)
	partners[99] = 1.0
	assert.NotContains(t, tm.PartnersOf(0), int32(99))
}

func TestExecuteTrade(t *testing.T) {
	rm, tm := newWorld(t, 42, 2)
	beforeA := rm.Get(0).Resources()
	beforeB := rm.Get(1).Resources()

	// 交易量25：a方粮食-25后+20，b方能源-20后+22.5
	tm.ExecuteTrade(0, 1, 0.5)

	afterA := rm.Get(0).Resources()
	afterB := rm.Get(1).Resources()
	assert.InDelta(t, beforeA.Food-5, afterA.Food, 1e-9)
	assert.InDelta(t, beforeB.Energy+2.5, afterB.Energy, 1e-9)
	assert.Equal(t, beforeA.Energy, afterA.Energy)
	assert.Equal(t, beforeB.Food, afterB.Food)

	records := tm.RecentTrades(10)
	require.Len(t, records, 1)
	assert.Equal(t, int32(0), records[0].RegionA)
	assert.Equal(t, int32(1), records[0].RegionB)
	assert.Equal(t, 0.5, records[0].Strength)
	assert.Equal(t, "Day 0 00:00:00", records[0].Timestamp)
}

func TestUpdateTradeFrequency(t *testing.T) {
	_, tm := newWorld(t, 42, 2)
	tm.Establish(0, 1, 0.5)

	for i := 0; i < 100; i++ {
		tm.Update()
	}

	// 每周期对唯一伙伴对掷骰一次，交易数大致符合概率0.5
	total := len(tm.RecentTrades(1000))
	assert.Greater(t, total, 25)
	assert.Less(t, total, 75)
}

func TestRecentTrades(t *testing.T) {
	_, tm := newWorld(t, 42, 2)
	for i := 0; i < 8; i++ {
		tm.ExecuteTrade(0, 1, float64(i+1)*0.1)
	}

	assert.Empty(t, tm.RecentTrades(0))
	assert.Len(t, tm.RecentTrades(100), 8)

	last3 := tm.RecentTrades(3)
	require.Len(t, last3, 3)
	// 返回日志尾部，按时间顺序排列
	assert.InDelta(t, 0.6, last3[0].Strength, 1e-9)
	assert.InDelta(t, 0.7, last3[1].Strength, 1e-9)
	assert.InDelta(t, 0.8, last3[2].Strength, 1e-9)
}

func TestUpdateDeterminism(t *testing.T) {
	_, tm1 := newWorld(t, 42, 6)
	_, tm2 := newWorld(t, 42, 6)
	for i := 0; i < 50; i++ {
		tm1.Update()
		tm2.Update()
	}
	require.Equal(t, tm1.RecentTrades(10000), tm2.RecentTrades(10000))
	require.Equal(t, tm1.Edges(), tm2.Edges())
}
