package api

import (
	"sync"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/tsinghua-fib-lab/worldsim-oss/task"
)

// Server HTTP服务
// 功能：将模拟上下文封装为HTTP服务，对外提供模拟控制与状态查询接口
// 说明：hertz以多goroutine处理请求，而模拟核心按单线程设计，
// 推进与重置持写锁，全部查询持读锁
type Server struct {
	addr string

	mtx sync.RWMutex
	sim *task.Context
}

// NewServer 创建HTTP服务实例
// 功能：初始化HTTP服务
// 参数：addr-监听地址，sim-已完成Init的模拟上下文
// 返回：新创建的HTTP服务实例
func NewServer(addr string, sim *task.Context) *Server {
	return &Server{
		addr: addr,
		sim:  sim,
	}
}

// RegisterRoutes 注册全部路由
func (s *Server) RegisterRoutes(h *server.Hertz) {
	h.Use(corsMiddleware())

	h.GET("/", s.root)

	sim := h.Group("/simulation")
	sim.POST("/step", s.step)
	sim.GET("/state", s.state)
	sim.GET("/statistics", s.statistics)
	sim.GET("/history", s.history)
	sim.GET("/analysis", s.analysis)
	sim.POST("/reset", s.reset)

	h.GET("/regions", s.regions)
	h.GET("/regions/:id", s.region)
	h.GET("/trade-network", s.tradeNetwork)
	h.GET("/events", s.events)
}

// Serve 启动HTTP服务并阻塞运行
func (s *Server) Serve() {
	h := server.Default(server.WithHostPorts(s.addr))
	s.RegisterRoutes(h)
	log.Infof("listening on %s", s.addr)
	h.Spin()
}
