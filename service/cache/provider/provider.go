package provider

import (
	"errors"
	"time"

	"github.com/crossmart/goapi/base/ctx"
)

var ErrNotFound = errors.New("cache not found")

// Provider is a raw byte cache.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
