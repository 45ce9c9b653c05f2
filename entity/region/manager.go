package region

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity"
)

// regionNames 世界生成时依次使用的区域名，超出部分使用"Region <id>"
var regionNames = []string{
	"Northern Plains", "Forest Kingdom", "Coastal Republic",
	"Desert Alliance", "Mountain Federation", "Valley States",
}

// RegionManager Region管理器
// 功能：管理所有Region实体，提供创建、查找、更新等功能
// 说明：区域ID从0开始连续分配，所有遍历都按ID升序进行以保证结果可复现
type RegionManager struct {
	ctx entity.ITaskContext

	data map[int32]*Region
	ids  []int32 // 升序排列的区域ID
}

// NewManager 创建Region管理器实例
// 功能：初始化Region管理器
// 参数：ctx-任务上下文
// 返回：新创建的Region管理器实例
func NewManager(ctx entity.ITaskContext) *RegionManager {
	m := &RegionManager{
		ctx:  ctx,
		data: make(map[int32]*Region),
		ids:  make([]int32, 0),
	}
	return m
}

// Init 初始化所有Region
// 功能：按ID升序生成初始世界的全部区域
// 参数：numRegions-区域数量
// 说明：每个区域的随机属性都从任务上下文持有的随机数引擎顺序抽取
func (m *RegionManager) Init(numRegions int32) {
	e := m.ctx.Rand()
	regions := make([]*Region, 0, numRegions)
	for i := int32(0); i < numRegions; i++ {
		name := fmt.Sprintf("Region %d", i)
		if int(i) < len(regionNames) {
			name = regionNames[i]
		}
		regions = append(regions, newRegion(i, name, e))
	}
	m.data = lo.SliceToMap(regions, func(r *Region) (int32, *Region) {
		return r.id, r
	})
	m.ids = lo.Map(regions, func(r *Region, _ int) int32 {
		return r.id
	})
}

// Get 根据ID获取Region实例
// 功能：通过Region ID查找对应的Region对象，如果不存在则panic
// 参数：id-Region的唯一标识符
// 返回：对应的Region实例，如果不存在则panic
func (m *RegionManager) Get(id int32) entity.IRegion {
	if r, ok := m.data[id]; !ok {
		log.Panicf("no id %d in region data", id)
		return nil
	} else {
		return r
	}
}

// GetOrError 根据ID获取Region实例（带错误处理）
// 功能：通过Region ID查找对应的Region对象，如果不存在则返回错误
// 参数：id-Region的唯一标识符
// 返回：Region实例和错误信息，如果不存在则返回nil和错误
func (m *RegionManager) GetOrError(id int32) (entity.IRegion, error) {
	if r, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in region data", id)
	} else {
		return r, nil
	}
}

// IDs 获取升序排列的全部区域ID
func (m *RegionManager) IDs() []int32 {
	return append([]int32(nil), m.ids...)
}

// Count 获取区域数量
func (m *RegionManager) Count() int32 {
	return int32(len(m.data))
}

// Update 更新阶段
// 功能：按ID升序对所有区域执行自然资源动态与人口变化
func (m *RegionManager) Update() {
	for _, id := range m.ids {
		m.data[id].UpdateNatural()
	}
}
