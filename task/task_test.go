package task_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/worldsim-oss/task"
	"github.com/tsinghua-fib-lab/worldsim-oss/utils/config"
)

func newConfig(n int32, seed uint64, total int32) config.Config {
	return config.Config{
		World: config.World{NumRegions: n, Seed: seed},
		Control: config.Control{
			Step: config.ControlStep{Start: 0, Total: total, Interval: 86400},
		},
	}
}

func newContext(t *testing.T, n int32, seed uint64) *task.Context {
	t.Helper()
	ctx := task.NewContext(newConfig(n, seed, 1000))
	ctx.Init()
	return ctx
}

func TestStepAdvancesCycle(t *testing.T) {
	ctx := newContext(t, 6, 42)
	assert.Equal(t, int32(0), ctx.WorldState().Cycle)

	report := ctx.Step()
	require.NotNil(t, report)
	assert.Equal(t, int32(0), report.Cycle)
	assert.Equal(t, "Day 0 00:00:00", report.Timestamp)
	assert.Equal(t, int32(1), ctx.WorldState().Cycle)
	assert.Equal(t, 1, ctx.History(10).TotalCycles)

	report = ctx.Step()
	assert.Equal(t, int32(1), report.Cycle)
	assert.Equal(t, "Day 1 00:00:00", report.Timestamp)
	assert.Equal(t, int32(2), ctx.WorldState().Cycle)
	assert.Equal(t, 2, ctx.History(10).TotalCycles)
}

func TestStepReportShape(t *testing.T) {
	ctx := newContext(t, 6, 42)
	report := ctx.Step()

	require.Len(t, report.Regions, 6)
	require.Len(t, report.Actions, 6)
	assert.LessOrEqual(t, len(report.Events), 1)

	for i, rec := range report.Actions {
		assert.Equal(t, int32(i), rec.RegionID)
		assert.GreaterOrEqual(t, rec.Reward, -10.0)
		assert.LessOrEqual(t, rec.Reward, 10.0)
	}
	for id, snap := range report.Regions {
		assert.Equal(t, id, snap.RegionID)
		res := snap.Resources
		for _, v := range []float64{res.Water, res.Food, res.Energy} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 2000.0)
		}
		assert.GreaterOrEqual(t, res.Land, 0.0)
		assert.LessOrEqual(t, res.Land, 1000.0)
		assert.GreaterOrEqual(t, snap.Population, int32(0))
	}
}

func TestDeterministicReports(t *testing.T) {
	ctx1 := newContext(t, 6, 42)
	ctx2 := newContext(t, 6, 42)

	// 相同种子与区域数的两个实例产生逐字节相同的周期报告
	for i := 0; i < 30; i++ {
		b1, err := json.Marshal(ctx1.Step())
		require.NoError(t, err)
		b2, err := json.Marshal(ctx2.Step())
		require.NoError(t, err)
		require.Equal(t, string(b1), string(b2))
	}

	// 不同种子的初始世界不同
	b3, err := json.Marshal(newContext(t, 6, 43).WorldState())
	require.NoError(t, err)
	b4, err := json.Marshal(newContext(t, 6, 42).WorldState())
	require.NoError(t, err)
	assert.NotEqual(t, string(b3), string(b4))
}

func TestStatistics(t *testing.T) {
	ctx := newContext(t, 6, 42)
	for i := 0; i < 5; i++ {
		ctx.Step()
	}

	stats := ctx.Statistics()
	assert.Equal(t, int32(5), stats.Cycle)
	assert.Equal(t, 5.0, stats.AvgLearningSteps)
	assert.Equal(t, 6, stats.CollapsedRegions+stats.ActiveRegions)
	assert.InDelta(t, 0.8, stats.AvgStability, 1e-9) // 稳定度不随周期变化
	assert.GreaterOrEqual(t, stats.AvgDevelopment, 0.0)
	assert.LessOrEqual(t, stats.AvgDevelopment, 1.0)

	ws := ctx.WorldState()
	totalPop := int32(0)
	for _, snap := range ws.Regions {
		totalPop += snap.Population
	}
	assert.Equal(t, totalPop, stats.TotalPopulation)
	assert.Equal(t, int32(len(ws.TradeNetwork.Edges)), stats.TradeConnections)
}

func TestHistoryQuery(t *testing.T) {
	ctx := newContext(t, 4, 7)
	for i := 0; i < 12; i++ {
		ctx.Step()
	}

	h := ctx.History(5)
	assert.Equal(t, 12, h.TotalCycles)
	require.Len(t, h.Cycles, 5)
	for i, rep := range h.Cycles {
		assert.Equal(t, int32(7+i), rep.Cycle) // 尾部5条按周期顺序
	}

	assert.Empty(t, ctx.History(0).Cycles)
	assert.Len(t, ctx.History(100).Cycles, 12)
}

func TestWorldStateEvents(t *testing.T) {
	ctx := newContext(t, 6, 42)
	for i := 0; i < 200; i++ {
		ctx.Step()
	}

	history := ctx.ClimateManager().History()
	require.NotEmpty(t, history)

	ws := ctx.WorldState()
	assert.LessOrEqual(t, len(ws.Events), 10)
	assert.Equal(t, history[len(history)-len(ws.Events):], ws.Events)
	for _, rec := range ws.Events {
		assert.NotEmpty(t, rec.Timestamp)
	}

	// 事件历史查询：最新在前
	eh := ctx.EventHistory(3)
	assert.Equal(t, 3, eh.Count)
	require.Len(t, eh.Events, 3)
	assert.Equal(t, history[len(history)-1], eh.Events[0])
	assert.Equal(t, history[len(history)-2], eh.Events[1])

	assert.Empty(t, ctx.EventHistory(0).Events)
	assert.Equal(t, ctx.ClimateManager().Count(), ctx.EventHistory(100000).Count)
}

func TestTradeNetworkState(t *testing.T) {
	ctx := newContext(t, 6, 42)
	for i := 0; i < 60; i++ {
		ctx.Step()
	}

	tn := ctx.TradeNetworkState()
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5}, tn.Nodes)
	assert.LessOrEqual(t, len(tn.RecentTrades), 20)
	assert.Equal(t, ctx.WorldState().TradeNetwork.Edges, tn.Edges)
	for _, tr := range tn.RecentTrades {
		assert.Less(t, tr.RegionA, tr.RegionB)
		assert.NotEmpty(t, tr.Timestamp)
	}
}

func TestRegionDetail(t *testing.T) {
	ctx := newContext(t, 6, 42)
	ctx.Step()

	detail, err := ctx.RegionDetail(0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), detail.Region.RegionID)
	assert.Equal(t, "Northern Plains", detail.Region.Name)
	assert.Equal(t, 1, detail.AgentStats.ActionsTaken)
	assert.Len(t, detail.AgentStats.RecentActions, 1)

	_, err = ctx.RegionDetail(99)
	assert.Error(t, err)
}

func TestAnalysis(t *testing.T) {
	ctx := newContext(t, 6, 42)
	for i := 0; i < 10; i++ {
		ctx.Step()
	}

	analysis := ctx.Analysis()
	assert.Equal(t, int32(10), analysis.Cycle)
	require.Len(t, analysis.Regions, 6)

	valid := map[string]bool{"critical": true, "stable": true, "fragile": true}
	for _, ra := range analysis.Regions {
		assert.NotEmpty(t, ra.Name)
		assert.True(t, valid[ra.Status])
		assert.Equal(t, 10, ra.TotalActions)
		assert.LessOrEqual(t, len(ra.TopStrategies), 3)
		assert.Equal(t, 1.0, ra.LearningProgress) // 经验不足32条，探索率未衰减
		assert.GreaterOrEqual(t, ra.AvgReward, -10.0)
		assert.LessOrEqual(t, ra.AvgReward, 10.0)
	}

	stats := ctx.Statistics()
	sm := analysis.SustainabilityMetrics
	assert.Equal(t, stats.TotalPopulation, sm.TotalPopulation)
	assert.Equal(t, stats.CollapsedRegions, sm.CollapsedRegions)
	assert.Equal(t, ctx.ClimateManager().Count(), sm.EventsTotal)
	assert.InDelta(t, float64(stats.TradeConnections)/12.0, sm.TradeIntensity, 1e-12)
	assert.GreaterOrEqual(t, sm.AvgResources.Water, 0.0)
	assert.LessOrEqual(t, sm.AvgResources.Water, 2000.0)
}

func TestReset(t *testing.T) {
	ctx := newContext(t, 6, 42)
	for i := 0; i < 10; i++ {
		ctx.Step()
	}

	assert.Equal(t, int32(0), ctx.Reset())
	assert.Equal(t, int32(0), ctx.WorldState().Cycle)
	assert.Equal(t, 0, ctx.History(10).TotalCycles)
	assert.Equal(t, 0, ctx.EventHistory(10).Count)

	// 重置后的世界与同配置的新实例逐字节一致
	fresh := newContext(t, 6, 42)
	b1, err := json.Marshal(ctx.WorldState())
	require.NoError(t, err)
	b2, err := json.Marshal(fresh.WorldState())
	require.NoError(t, err)
	assert.Equal(t, string(b1), string(b2))

	for i := 0; i < 5; i++ {
		r1, err := json.Marshal(ctx.Step())
		require.NoError(t, err)
		r2, err := json.Marshal(fresh.Step())
		require.NoError(t, err)
		require.Equal(t, string(r1), string(r2))
	}
}

func TestRunBatch(t *testing.T) {
	ctx := task.NewContext(newConfig(4, 9, 25))
	ctx.Run()

	assert.Equal(t, int32(25), ctx.WorldState().Cycle)
	assert.Equal(t, 25, ctx.History(1000).TotalCycles)
}
