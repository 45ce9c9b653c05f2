package agent

import (
	"math"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/worldsim-oss/utils/container"
	"github.com/tsinghua-fib-lab/worldsim-oss/utils/randengine"
)

// 学习器超参数
const (
	stateSize       = 12    // 状态向量维度
	learningRate    = 0.01  // 学习率
	gamma           = 0.95  // 折扣因子
	epsilonStart    = 1.0   // 初始探索率
	epsilonDecay    = 0.995 // 每次有效回放后的探索率衰减系数
	epsilonMin      = 0.01  // 探索率下限
	memoryCapacity  = 2000  // 经验回放池容量
	replayBatchSize = 32    // 回放批大小
	stateBonusScale = 0.1   // 状态分量和的加成系数
	valueInitScale  = 0.01  // 动作价值表初始噪声幅度
)

// Transition 一次状态转移经验
type Transition struct {
	State     []float64  // 动作前状态向量
	Action    ActionKind // 执行的动作
	Reward    float64    // 获得的奖励
	NextState []float64  // 动作后状态向量
	Done      bool       // 动作后是否处于资源危机状态
}

// Learner ε-greedy表格型学习器
// 功能：维护动作价值表与经验回放池，提供ε-greedy决策与批量回放更新
// 说明：动作价值估计 = value[a] + sum(state)×stateBonusScale，
// 以状态分量和作为线性特征近似，代替完整的函数逼近器
type Learner struct {
	engine *randengine.Engine

	values      [actionKindCount]float64    // 动作价值表
	epsilon     float64                     // 当前探索率
	memory      *container.Ring[Transition] // 经验回放池，满时淘汰最旧经验
	lossHistory []float64                   // 每次有效回放的平均绝对TD误差
}

// NewLearner 创建学习器
// 参数：engine-随机数引擎，决策探索与回放抽样都从该引擎抽取
// 返回：学习器指针
// 说明：动作价值表初始化为小幅高斯噪声（×valueInitScale）
func NewLearner(engine *randengine.Engine) *Learner {
	l := &Learner{
		engine:  engine,
		epsilon: epsilonStart,
		memory:  container.NewRing[Transition](memoryCapacity),
	}
	for i := range l.values {
		l.values[i] = engine.NormFloat64() * valueInitScale
	}
	return l
}

// Act 按ε-greedy策略选择动作
// 参数：state-状态向量，training-是否处于训练模式
// 返回：选中的动作
// 算法说明：
// 1. 训练模式下以ε的概率从全部动作中均匀随机探索
// 2. 否则取argmax(value[a] + sum(state)×stateBonusScale)，并列时取最小下标
func (l *Learner) Act(state []float64, training bool) ActionKind {
	if training && l.engine.PTrue(l.epsilon) {
		return ActionKind(l.engine.Intn(int(actionKindCount)))
	}
	bonus := lo.Sum(state) * stateBonusScale
	best := ActionKind(0)
	bestValue := l.values[0] + bonus
	for a := ActionKind(1); a < actionKindCount; a++ {
		if v := l.values[a] + bonus; v > bestValue {
			best = a
			bestValue = v
		}
	}
	return best
}

// Remember 将一条经验存入回放池
func (l *Learner) Remember(t Transition) {
	l.memory.Push(t)
}

// Replay 批量经验回放
// 参数：batchSize-批大小
// 返回：本次回放的平均绝对TD误差，经验不足时返回0
// 算法说明：
// 1. 回放池长度小于批大小时直接返回，不衰减探索率
// 2. 无放回均匀抽取batchSize条经验
// 3. 逐条更新：target = 奖励（终止转移）或 奖励 + γ×max_a(value[a]+sum(next)×0.1)，
//    value[action] += 学习率×(target−旧值)，后续样本会看到前面样本的更新
// 4. 损失 = 平均|target−旧值|，记入损失历史
// 5. ε ← max(ε下限, ε×衰减系数)，每次有效回放恰好衰减一次
func (l *Learner) Replay(batchSize int) float64 {
	if l.memory.Len() < batchSize {
		return 0
	}
	totalLoss := 0.0
	for _, idx := range l.engine.Perm(l.memory.Len())[:batchSize] {
		t := l.memory.At(idx)
		target := t.Reward
		if !t.Done {
			target += gamma * l.maxEstimate(t.NextState)
		}
		old := l.values[t.Action]
		l.values[t.Action] += learningRate * (target - old)
		totalLoss += math.Abs(target - old)
	}
	loss := totalLoss / float64(batchSize)
	l.lossHistory = append(l.lossHistory, loss)
	l.epsilon = math.Max(epsilonMin, l.epsilon*epsilonDecay)
	return loss
}

// maxEstimate 全部动作的最大价值估计
func (l *Learner) maxEstimate(state []float64) float64 {
	bonus := lo.Sum(state) * stateBonusScale
	best := l.values[0] + bonus
	for a := ActionKind(1); a < actionKindCount; a++ {
		if v := l.values[a] + bonus; v > best {
			best = v
		}
	}
	return best
}

// Epsilon 获取当前探索率
func (l *Learner) Epsilon() float64 {
	return l.epsilon
}

// MemoryLen 获取回放池中的经验数量
func (l *Learner) MemoryLen() int {
	return l.memory.Len()
}
