package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	bCtx "github.com/crossmart/goapi/base/ctx"
	"github.com/crossmart/goapi/base/metrics"
)

var ErrNotFound = errors.New("redis: key not found")

// ttl return value when the key does not exist
const retTTLNoKey = -2

// Service is the thin redis surface the cache layer builds on.
type Service interface {
	Get(ctx bCtx.Ctx, key string) ([]byte, error)
	Set(ctx bCtx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(ctx bCtx.Ctx, key string) (int64, error)
	TTL(ctx bCtx.Ctx, key string) (int64, error)
	Exists(ctx bCtx.Ctx, key string) (bool, error)
}

type impl struct {
	name string
	met  metrics.Service
	pool *redis.Pool
}

func New(name string, met metrics.Service, pool *redis.Pool) Service {
	return &impl{
		name: name,
		met:  met,
		pool: pool,
	}
}

// NewPool builds a redigo pool against a single redis endpoint.
func NewPool(uri string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     16,
		MaxActive:   64,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(uri)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

func (im *impl) do(command string, args ...interface{}) (interface{}, error) {
	defer im.met.BumpTime("command.time", "cluster", im.name, "command", command).End()

	conn := im.pool.Get()
	defer conn.Close()
	if err := conn.Err(); err != nil {
		im.met.BumpSum("getConn.err", 1, "cluster", im.name)
		return nil, err
	}

	res, err := conn.Do(command, args...)
	if err != nil {
		im.met.BumpSum("command.err", 1, "cluster", im.name, "command", command)
	}
	return res, err
}

func (im *impl) Get(ctx bCtx.Ctx, key string) ([]byte, error) {
	res, err := redis.Bytes(im.do("GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("redis GET failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Set(ctx bCtx.Ctx, key string, value []byte, ttl time.Duration) error {
	var err error
	if ttl > 0 {
		_, err = im.do("SET", key, value, "EX", int(ttl.Seconds()))
	} else {
		_, err = im.do("SET", key, value)
	}
	if err != nil {
		ctx.WithField("err", err).Error("redis SET failed")
	}
	return err
}

func (im *impl) Del(ctx bCtx.Ctx, key string) (int64, error) {
	res, err := redis.Int64(im.do("DEL", key))
	if err != nil {
		ctx.WithField("err", err).Error("redis DEL failed")
		return 0, err
	}
	return res, nil
}

func (im *impl) TTL(ctx bCtx.Ctx, key string) (int64, error) {
	res, err := redis.Int64(im.do("TTL", key))
	if err != nil {
		ctx.WithField("err", err).Error("redis TTL failed")
		return 0, err
	}
	if res == retTTLNoKey {
		return 0, ErrNotFound
	}
	return res, nil
}

func (im *impl) Exists(ctx bCtx.Ctx, key string) (bool, error) {
	res, err := redis.Int64(im.do("EXISTS", key))
	if err != nil {
		ctx.WithField("err", err).Error("redis EXISTS failed")
		return false, err
	}
	return res > 0, nil
}
