package api

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
	defaultEventLimit   = 50
	maxEventLimit       = 1000
)

// limitQuery 解析limit查询参数
// 说明：缺省或非法时取fallback，超过upper时截断
func limitQuery(ctx *app.RequestContext, fallback, upper int) int {
	raw := string(ctx.Query("limit"))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	if n > upper {
		return upper
	}
	return n
}

func (s *Server) root(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{
		"name":        "WorldSim API",
		"version":     "1.0",
		"description": "Adaptive Resource Scarcity & Agent Strategy Simulator",
	})
}

// step 推进一个模拟周期并返回周期报告
func (s *Server) step(_ context.Context, ctx *app.RequestContext) {
	s.mtx.Lock()
	report := s.sim.Step()
	s.mtx.Unlock()
	ctx.JSON(consts.StatusOK, report)
}

func (s *Server) state(_ context.Context, ctx *app.RequestContext) {
	s.mtx.RLock()
	resp := s.sim.WorldState()
	s.mtx.RUnlock()
	ctx.JSON(consts.StatusOK, resp)
}

func (s *Server) statistics(_ context.Context, ctx *app.RequestContext) {
	s.mtx.RLock()
	resp := s.sim.Statistics()
	s.mtx.RUnlock()
	ctx.JSON(consts.StatusOK, resp)
}

func (s *Server) history(_ context.Context, ctx *app.RequestContext) {
	limit := limitQuery(ctx, defaultHistoryLimit, maxHistoryLimit)
	s.mtx.RLock()
	resp := s.sim.History(limit)
	s.mtx.RUnlock()
	ctx.JSON(consts.StatusOK, resp)
}

func (s *Server) analysis(_ context.Context, ctx *app.RequestContext) {
	s.mtx.RLock()
	resp := s.sim.Analysis()
	s.mtx.RUnlock()
	ctx.JSON(consts.StatusOK, resp)
}

// reset 丢弃全部状态并以相同配置重建世界
func (s *Server) reset(_ context.Context, ctx *app.RequestContext) {
	s.mtx.Lock()
	cycle := s.sim.Reset()
	s.mtx.Unlock()
	ctx.JSON(consts.StatusOK, map[string]any{
		"status": "Reset successful",
		"cycle":  cycle,
	})
}

func (s *Server) regions(_ context.Context, ctx *app.RequestContext) {
	s.mtx.RLock()
	resp := s.sim.Regions()
	s.mtx.RUnlock()
	ctx.JSON(consts.StatusOK, resp)
}

// region 查询单个区域的快照与智能体统计，未知ID返回404
func (s *Server) region(_ context.Context, ctx *app.RequestContext) {
	id, err := strconv.ParseInt(string(ctx.Param("id")), 10, 32)
	if err != nil {
		writeNotFound(ctx, "Region not found")
		return
	}

	s.mtx.RLock()
	detail, err := s.sim.RegionDetail(int32(id))
	s.mtx.RUnlock()
	if err != nil {
		writeNotFound(ctx, "Region not found")
		return
	}
	ctx.JSON(consts.StatusOK, detail)
}

func (s *Server) tradeNetwork(_ context.Context, ctx *app.RequestContext) {
	s.mtx.RLock()
	resp := s.sim.TradeNetworkState()
	s.mtx.RUnlock()
	ctx.JSON(consts.StatusOK, resp)
}

func (s *Server) events(_ context.Context, ctx *app.RequestContext) {
	limit := limitQuery(ctx, defaultEventLimit, maxEventLimit)
	s.mtx.RLock()
	resp := s.sim.EventHistory(limit)
	s.mtx.RUnlock()
	ctx.JSON(consts.StatusOK, resp)
}

func writeNotFound(ctx *app.RequestContext, detail string) {
	ctx.JSON(consts.StatusNotFound, map[string]string{
		"detail": detail,
	})
}
