package clock

import (
	"fmt"

	"github.com/tsinghua-fib-lab/worldsim-oss/utils/config"
)

// Clock 仿真时钟管理器
// 功能：管理仿真系统的时间推进，周期序号与仿真时间一一对应
// 说明：维护当前周期、当前仿真时间等信息，提供确定性的时间格式化输出，
// 周期报告中的时间戳全部来自本时钟而非墙上时钟，保证相同种子产生逐字节相同的输出
type Clock struct {
	DT         float64 // 每个仿真周期的时间间隔（秒）
	START_STEP int32   // 起始周期
	END_STEP   int32   // 结束周期，模拟区间[START, END)

	T     float64 // 当前时间（秒）
	Cycle int32   // 当前周期序号
}

// New 根据配置创建新的时钟实例
// 功能：根据全局配置初始化时钟信息
// 参数：stepConfig-控制步配置，包含时间间隔、周期范围等信息
// 返回：初始化完成的时钟实例
// 算法说明：
// 1. 读取每周期时间间隔
// 2. 计算起始和结束周期
// 3. 初始化时钟状态
func New(stepConfig config.ControlStep) *Clock {
	c := &Clock{
		DT:         stepConfig.Interval,
		START_STEP: stepConfig.Start,
		END_STEP:   stepConfig.Start + stepConfig.Total,
	}
	c.Init()
	return c
}

// Init 初始化时钟状态
// 功能：重置时钟状态
// 说明：重置当前周期为起始周期，重新计算当前时间
func (c *Clock) Init() {
	c.Cycle = c.START_STEP
	c.T = float64(c.Cycle) * c.DT
}

// Day 获取当前仿真天数
// 功能：将当前时间换算为天数
// 返回：从0开始计数的天数
func (c *Clock) Day() int {
	return int(c.T) / 86400
}

// String 获取时钟的字符串表示
// 功能：将当前时间格式化为可读的字符串
// 返回：格式化的时间字符串（Day X HH:MM:SS）
// 算法说明：
// 1. 计算天数并求出一天内的剩余秒数
// 2. 将剩余秒数转换为小时、分钟、秒
// 3. 格式化为标准时间格式
func (c *Clock) String() string {
	t := c.T - float64(c.Day()*86400)
	h := int(t / 3600)
	t -= float64(h * 3600)
	m := int(t / 60)
	t -= float64(m * 60)
	s := int(t)
	return fmt.Sprintf("Day %d %02d:%02d:%02d", c.Day(), h, m, s)
}

// GetHourMinuteSecond 获取当前时间的小时、分钟、秒
// 功能：将当前时间分解为一天内的小时、分钟、秒三个部分
// 返回：小时、分钟、秒（秒为浮点数，支持亚秒级精度）
// 算法说明：
// 1. 求出一天内的剩余秒数
// 2. 计算小时数：剩余秒数除以3600
// 3. 计算分钟数：剩余秒数除以60
// 4. 计算秒数：最终剩余秒数（浮点数）
func (c *Clock) GetHourMinuteSecond() (int, int, float64) {
	t := c.T - float64(c.Day()*86400)
	hour := int(t) / 3600
	minute := int(t) % 3600 / 60
	second := t - float64(hour*3600+minute*60)
	return hour, minute, second
}
