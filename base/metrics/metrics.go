package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/crossmart/goapi/base/log"
)

const (
	// ddRate is the rate to pass metrics to the datadog agent. 1 means always
	ddRate = 1
	// buffer this many counters before flushing to the statsd agent
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}
	ddClient *statsd.Client
)

func initDDClient() {
	host := viper.GetString("datadog_host")
	port := viper.GetInt("datadog_port")
	if port == 0 {
		port = 8125
	}
	addr := fmt.Sprintf("%s:%d", host, port)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")

	var err error
	ddClient, err = statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
	}
}

// Ender finishes a timing started by BumpTime
type Ender interface {
	End()
}

type Service interface {
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	// BumpTime starts a timer. Calling End() on the returned value emits
	// the elapsed milliseconds:
	//
	//     defer met.BumpTime("my.function").End()
	BumpTime(key string, tags ...string) Ender
}

type Metrics struct {
	pkgName string
}

func New(pkgName string) Service {
	initOnce.Do(initDDClient)
	return &Metrics{pkgName: pkgName}
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	if err := ddClient.Count(mt.pkgName+"."+key, int64(val), tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpSum"}).Error("Bump fail")
	}
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	if err := ddClient.Histogram(mt.pkgName+"."+key, val, tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

type timeTracker struct {
	key   string
	tags  []string
	start time.Time
}

func (tt *timeTracker) End() {
	dur := float64(time.Since(tt.start) / time.Millisecond)
	if err := ddClient.TimeInMilliseconds(tt.key, dur, tt.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": tt.key, "val": dur, "func": "BumpTime"}).Error("Bump fail")
	}
}

func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		key:   mt.pkgName + "." + key,
		tags:  tags,
		start: time.Now(),
	}
}
