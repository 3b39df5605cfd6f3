package countstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemCountStoreBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	cs := NewMemCountStore()

	c, err := cs.GetCount(ctx, "report-dupe-spam", "content-1", PeriodTotal)
	assert.NoError(err)
	assert.Equal(0, c)
	assert.NoError(cs.Increment(ctx, "report-dupe-spam", "content-1"))
	assert.NoError(cs.Increment(ctx, "report-dupe-spam", "content-1"))

	for _, period := range []string{PeriodTotal, PeriodDay, PeriodHour} {
		c, err = cs.GetCount(ctx, "report-dupe-spam", "content-1", period)
		assert.NoError(err)
		assert.Equal(2, c)
	}

	c, err = cs.GetCountDistinct(ctx, "reporters", "content-2", PeriodTotal)
	assert.NoError(err)
	assert.Equal(0, c)
	assert.NoError(cs.IncrementDistinct(ctx, "reporters", "content-2", "user-1"))
	assert.NoError(cs.IncrementDistinct(ctx, "reporters", "content-2", "user-1"))
	assert.NoError(cs.IncrementDistinct(ctx, "reporters", "content-2", "user-2"))

	for _, period := range []string{PeriodTotal, PeriodDay, PeriodHour} {
		c, err = cs.GetCountDistinct(ctx, "reporters", "content-2", period)
		assert.NoError(err)
		assert.Equal(2, c)
	}
}

// run with `-race`: reads and writes interleave across goroutines
func TestMemCountStoreConcurrent(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	cs := NewMemCountStore()

	var wg sync.WaitGroup
	fnInc := func(name, val string, times int) {
		defer wg.Done()
		for i := 0; i < times; i++ {
			assert.NoError(cs.Increment(ctx, name, val))
			assert.NoError(cs.IncrementDistinct(ctx, name, name, val))
		}
	}
	fnRead := func(name, val string, times int) {
		for i := 0; i < times; i++ {
			_, err := cs.GetCount(ctx, name, val, PeriodTotal)
			assert.NoError(err)
		}
	}
	wg.Add(4)
	go fnInc("quota", "queue", 10)
	go fnInc("quota", "queue", 10)
	go fnRead("quota", "queue", 10)
	go fnInc("quota", "reject", 6)
	go fnInc("quota", "reject", 6)
	go fnRead("quota", "reject", 6)
	wg.Wait()

	c, err := cs.GetCount(ctx, "quota", "queue", PeriodTotal)
	assert.NoError(err)
	assert.Equal(20, c)
	c, err = cs.GetCount(ctx, "quota", "reject", PeriodTotal)
	assert.NoError(err)
	assert.Equal(12, c)
}
