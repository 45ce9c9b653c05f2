// 随机数引擎，包装了golang.org/x/exp/rand，提供了一些常用的随机数生成方法
package randengine

import (
	"flag"

	"golang.org/x/exp/rand"
)

var (
	seedOffset = flag.Uint64("rand.seed_offset", 0, "seed offset") // 种子偏移量，用于调整随机数生成
)

// Engine 随机数引擎
// 功能：为一次仿真实例提供唯一的随机数来源，保证相同种子产生相同的随机序列
// 说明：基于golang.org/x/exp/rand库，所有随机事件（世界生成、气候事件、
// 探索决策、交易掷骰）都必须从同一个引擎按固定顺序抽取，不允许并发使用
type Engine struct {
	*rand.Rand // 底层随机数生成器
}

// New 创建随机数引擎
// 功能：初始化一个新的随机数引擎实例
// 参数：seed-随机数种子
// 返回：随机数引擎指针
// 算法说明：
// 1. 应用种子偏移量：将种子偏移量加到基础种子上
// 2. 创建随机数源：使用调整后的种子创建rand.NewSource
// 3. 初始化引擎：包装随机数生成器
// 说明：种子偏移量允许在不修改配置的情况下调整随机数序列
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed + *seedOffset))}
}

// PTrue 以指定概率返回true
// 功能：根据给定概率返回布尔值
// 参数：p-返回true的概率（0.0到1.0之间）
// 返回：true或false
// 算法说明：
// 1. 生成随机数：在[0.0, 1.0)范围内生成随机数
// 2. 概率比较：如果随机数小于给定概率则返回true
// 说明：实现伯努利分布，用于模拟概率事件（气候事件触发、交易发生等）
func (e *Engine) PTrue(p float64) bool {
	return e.Float64() < p
}

// UniformFloat64 在[lo, hi)范围内生成均匀分布的浮点数
// 功能：生成指定区间内的随机浮点数
// 参数：lo-下界（包含），hi-上界（不包含）
// 返回：[lo, hi)范围内的随机浮点数
// 说明：用于事件强度、初始资源量等连续分布的抽样
func (e *Engine) UniformFloat64(lo, hi float64) float64 {
	return lo + e.Float64()*(hi-lo)
}

// UniformInt 在[lo, hi)范围内生成均匀分布的整数
// 功能：生成指定区间内的随机整数（左闭右开）
// 参数：lo-下界（包含），hi-上界（不包含）
// 返回：[lo, hi)范围内的随机整数
// 说明：用于初始人口、事件波及区域数量等离散抽样
func (e *Engine) UniformInt(lo, hi int) int {
	return lo + e.Intn(hi-lo)
}
