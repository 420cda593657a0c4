package compoundcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/service/cache"
	"github.com/crossmart/goapi/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im       *impl
	service1 cache.Service
	service2 cache.Service
}

func (ts *testsuite) SetupTest() {
	cache1 := primitive.NewPrimitive("test", 64)
	cache2 := primitive.NewPrimitive("test2", 64)

	ts.service1 = cache.New(cache.ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "test",
		Cache: cache1,
	})

	ts.service2 = cache.New(cache.ServiceConfig{
		Ttl:   2 * time.Second,
		Pfx:   "test",
		Cache: cache2,
	})

	ts.im = NewCompoundCache([]cache.Service{
		ts.service1,
		ts.service2,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.Equal(cache.ErrNotFound, ts.im.Get(mockCtx, k, c))

	// hit in the fast layer
	ts.NoError(ts.service1.Set(mockCtx, k, v))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	time.Sleep(time.Second)

	ts.Equal(cache.ErrNotFound, ts.service1.Get(mockCtx, k, c))

	// hit in the slow layer only
	ts.NoError(ts.service2.Set(mockCtx, k, v))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	// the slow layer hit backfilled the fast layer
	ts.NoError(ts.service1.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestSet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	ts.NoError(ts.service1.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	ts.NoError(ts.service2.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestDel() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))
	ts.NoError(ts.im.Del(mockCtx, k))

	ts.Equal(cache.ErrNotFound, ts.im.Get(mockCtx, k, c))
}
