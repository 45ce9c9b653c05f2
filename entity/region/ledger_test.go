package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity"
	"github.com/tsinghua-fib-lab/worldsim-oss/entity/region"
	"github.com/tsinghua-fib-lab/worldsim-oss/utils/randengine"
)

func TestLedgerDepleteReplenish(t *testing.T) {
	l := region.NewLedger(1000, 1000, 1000, 1000)

	l.Deplete(entity.ResourceAmount{Water: 25, Food: 100})
	assert.Equal(t, 975.0, l.Water())
	assert.Equal(t, 900.0, l.Food())
	assert.Equal(t, 1000.0, l.Energy())

	l.Replenish(entity.ResourceAmount{Water: 50})
	assert.Equal(t, 1025.0, l.Water())

	// 下限截断为0
	l.Deplete(entity.ResourceAmount{Energy: 99999})
	assert.Equal(t, 0.0, l.Energy())

	// 上限截断为容量
	l.Replenish(entity.ResourceAmount{Food: 99999})
	assert.Equal(t, region.FoodCap, l.Food())
	l.Replenish(entity.ResourceAmount{Land: 1})
	assert.Equal(t, region.LandCap, l.Land())
}

func TestLedgerInitClamp(t *testing.T) {
	l := region.NewLedger(5000, -10, 300, 2000)
	assert.Equal(t, region.WaterCap, l.Water())
	assert.Equal(t, 0.0, l.Food())
	assert.Equal(t, 300.0, l.Energy())
	assert.Equal(t, region.LandCap, l.Land())
}

// 任意消耗/补充序列下每类库存始终处于[0, 上限]内
func TestLedgerClampProperty(t *testing.T) {
	e := randengine.New(7)
	l := region.NewLedger(1000, 1000, 1000, 1000)
	for i := 0; i < 5000; i++ {
		a := entity.ResourceAmount{
			Water:  e.UniformFloat64(0, 800),
			Food:   e.UniformFloat64(0, 800),
			Energy: e.UniformFloat64(0, 800),
			Land:   e.UniformFloat64(0, 400),
		}
		if e.PTrue(0.5) {
			l.Deplete(a)
		} else {
			l.Replenish(a)
		}
		assert.GreaterOrEqual(t, l.Water(), 0.0)
		assert.LessOrEqual(t, l.Water(), region.WaterCap)
		assert.GreaterOrEqual(t, l.Food(), 0.0)
		assert.LessOrEqual(t, l.Food(), region.FoodCap)
		assert.GreaterOrEqual(t, l.Energy(), 0.0)
		assert.LessOrEqual(t, l.Energy(), region.EnergyCap)
		assert.GreaterOrEqual(t, l.Land(), 0.0)
		assert.LessOrEqual(t, l.Land(), region.LandCap)
	}
}

func TestLedgerTotalValue(t *testing.T) {
	l := region.NewLedger(100, 200, 300, 1000)
	assert.Equal(t, 100.0+200.0+300.0+1000.0*10, l.TotalValue())
}

func TestLedgerCriticalRecovery(t *testing.T) {
	l := region.NewLedger(1000, 1000, 1000, 1000)
	assert.False(t, l.IsCritical())

	// 任一维持生存的资源跌破阈值即为危机
	l.Deplete(entity.ResourceAmount{Food: 950})
	assert.True(t, l.IsCritical())

	// 恢复到阈值之上后脱离危机
	l.Replenish(entity.ResourceAmount{Food: 60})
	assert.False(t, l.IsCritical())

	l.Deplete(entity.ResourceAmount{Water: 1950, Energy: 1950})
	assert.True(t, l.IsCritical())
	l.Replenish(entity.ResourceAmount{Water: 100, Energy: 100})
	assert.False(t, l.IsCritical())
}
