package container

// Ring 固定容量的先进先出环形缓冲区
// 功能：提供容量受限的FIFO存储，写满后自动覆盖最旧的元素
// 说明：用于经验回放池等只保留最近N条记录的场景，索引0始终指向最旧元素
type Ring[T any] struct {
	data []T // 底层存储
	head int // 最旧元素所在的位置
	size int // 当前元素数量
}

// NewRing 创建环形缓冲区
// 功能：初始化指定容量的环形缓冲区
// 参数：capacity-最大容量，必须为正数
// 返回：新创建的环形缓冲区指针
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("container: Ring capacity must be positive")
	}
	return &Ring[T]{
		data: make([]T, capacity),
	}
}

// Push 追加元素
// 功能：将元素加入缓冲区尾部，缓冲区已满时覆盖最旧的元素
// 参数：v-待加入的元素
// 算法说明：
// 1. 计算写入位置：(head + size) % capacity
// 2. 未满时计数加一，已满时前移head（丢弃最旧元素）
func (r *Ring[T]) Push(v T) {
	r.data[(r.head+r.size)%len(r.data)] = v
	if r.size < len(r.data) {
		r.size++
	} else {
		r.head = (r.head + 1) % len(r.data)
	}
}

// Len 获取当前元素数量
func (r *Ring[T]) Len() int {
	return r.size
}

// Cap 获取缓冲区容量
func (r *Ring[T]) Cap() int {
	return len(r.data)
}

// At 按序访问元素
// 功能：获取从最旧算起第i个元素（0为最旧，Len()-1为最新）
// 参数：i-元素序号
// 返回：对应位置的元素，越界时panic
func (r *Ring[T]) At(i int) T {
	if i < 0 || i >= r.size {
		panic("container: Ring index out of range")
	}
	return r.data[(r.head+i)%len(r.data)]
}
