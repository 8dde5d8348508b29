/**
* Name: 			guard.go
* Description: 		키 단위 시딩 작업 중복 방지
* Workflow: 		sync.Map LoadOrStore로 프로세스 내 선점, redis SETNX로 프로세스 간 선점
 */

package seeding

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const lockPrefix = "seeding:"

// 소유자 토큰이 일치할 때만 해제
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Job reports the outcome of one background seeding run.
type Job struct {
	Key      string
	done     chan struct{}
	err      error
	inserted int
}

func (j *Job) Done() <-chan struct{} { return j.done }

// Err and Inserted are valid after Done is closed.
func (j *Job) Err() error    { <-j.done; return j.err }
func (j *Job) Inserted() int { <-j.done; return j.inserted }

type Guard struct {
	jobs    sync.Map
	rdb     *redis.Client
	lockTTL time.Duration
	log     *zap.Logger
}

// rdb may be nil; the guard is then process-local only.
func NewGuard(rdb *redis.Client, lockTTL time.Duration, log *zap.Logger) *Guard {
	return &Guard{rdb: rdb, lockTTL: lockTTL, log: log}
}

func (g *Guard) Running(key string) bool {
	_, ok := g.jobs.Load(key)
	return ok
}

// Start runs fn in the background unless a job for key is already running
// here or in another process holding the redis lock. It returns the live
// job and whether this call started it; the job is nil when another
// process owns the key.
func (g *Guard) Start(pipeline, key string, fn func(ctx context.Context) (int, error)) (*Job, bool) {
	job := &Job{Key: key, done: make(chan struct{})}
	if existing, loaded := g.jobs.LoadOrStore(key, job); loaded {
		return existing.(*Job), false
	}

	token := uuid.NewString()
	if g.rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		ok, err := g.rdb.SetNX(ctx, lockPrefix+key, token, g.lockTTL).Result()
		cancel()
		switch {
		case err != nil:
			g.log.Warn("seeding lock unavailable, continuing in-process", zap.String("key", key), zap.Error(err))
		case !ok:
			g.jobs.Delete(key)
			metrics.SeedingRuns.WithLabelValues(pipeline, "skipped").Inc()
			return nil, false
		}
	}

	go g.run(pipeline, job, token, fn)
	return job, true
}

func (g *Guard) run(pipeline string, job *Job, token string, fn func(ctx context.Context) (int, error)) {
	defer func() {
		if r := recover(); r != nil {
			job.err = errors.New("seeding panicked")
			g.log.Error("seeding panic", zap.String("key", job.Key), zap.Any("panic", r))
		}
		g.jobs.Delete(job.Key)
		g.release(job.Key, token)

		outcome := "ok"
		if job.err != nil {
			outcome = "error"
		}
		metrics.SeedingRuns.WithLabelValues(pipeline, outcome).Inc()
		metrics.SeededQuestions.WithLabelValues(pipeline).Add(float64(job.inserted))
		close(job.done)
	}()

	g.log.Info("seeding started", zap.String("key", job.Key))
	job.inserted, job.err = fn(context.Background())
	g.log.Info("seeding finished", zap.String("key", job.Key), zap.Int("inserted", job.inserted), zap.Error(job.err))
}

func (g *Guard) release(key, token string) {
	if g.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, g.rdb, []string{lockPrefix + key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		g.log.Warn("seeding lock release failed", zap.String("key", key), zap.Error(err))
	}
}
