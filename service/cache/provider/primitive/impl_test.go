package primitive

import (
	"testing"
	"time"

	"github.com/coocood/freecache"
	"github.com/stretchr/testify/suite"

	"github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im *impl
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("", 64).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.im.cache.Clear()
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Second))
	r, e := ts.im.cache.Get([]byte(k))
	ts.NoError(e)
	ts.Equal(v, r)

	time.Sleep(time.Second)
	_, e = ts.im.cache.Get([]byte(k))
	ts.Equal(freecache.ErrNotFound, e)
}

func (ts *testsuite) TestGet() {
	k := "key"
	v := []byte("value")

	_, _, err := ts.im.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, err)

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Minute))
	r, _, err := ts.im.Get(mockCtx, k)
	ts.NoError(err)
	ts.Equal(v, r)
}

func (ts *testsuite) TestDel() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Minute))
	ts.NoError(ts.im.Del(mockCtx, k))

	_, _, err := ts.im.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, err)
}
