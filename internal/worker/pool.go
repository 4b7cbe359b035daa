package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueEmail = "jobs:email"

	JobTypeEmail = "email"

	// MaxAttempts bounds how often a failing job runs before it is
	// moved to the dead letter queue.
	MaxAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
	Attempt int             `json:"attempt"`
}

// ErrPermanent marks handler failures a retry cannot fix. Such jobs go
// straight to the dead letter queue.
var ErrPermanent = errors.New("permanent failure")

// Handler runs one job. A returned error schedules a retry.
type Handler interface {
	Process(ctx context.Context, payload json.RawMessage) error
}

// pusher is the slice of Redis the pool writes through.
type pusher interface {
	push(ctx context.Context, key string, data []byte) error
}

type redisPusher struct{ rdb *redis.Client }

func (p redisPusher) push(ctx context.Context, key string, data []byte) error {
	return p.rdb.LPush(ctx, key, data).Err()
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	q pusher
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{q: redisPusher{rdb: rdb}}
}

// EnqueueEmail pushes an email job to Redis.
func (d *Dispatcher) EnqueueEmail(ctx context.Context, payload EmailJobPayload) error {
	return enqueue(ctx, d.q, QueueEmail, JobTypeEmail, payload)
}

func enqueue(ctx context.Context, q pusher, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: jobType, Payload: data})
	if err != nil {
		return err
	}
	return q.push(ctx, queue, encoded)
}

// StartWorkerPool launches numWorkers goroutines consuming QueueEmail.
// Each goroutine blocks on BRPOP, so idle workers cost nothing. The
// returned WaitGroup completes once every worker has seen ctx end.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int, handlers map[string]Handler) *sync.WaitGroup {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	wg := &sync.WaitGroup{}
	q := redisPusher{rdb: rdb}
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runWorker(ctx, rdb, q, handlers, id)
		}(i)
	}
	log.Info().Int("workers", numWorkers).Msg("worker pool started")
	return wg
}

func runWorker(ctx context.Context, rdb *redis.Client, q pusher, handlers map[string]Handler, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Int("worker", id).Msg("worker shutting down")
			return
		default:
			// Blocking pop: waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueEmail).Result()
			if err != nil {
				continue
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, q, handlers, result[0], result[1])
		}
	}
}

// processJob runs one raw job. Failures are pushed back onto queue with
// the attempt counter bumped until MaxAttempts, then dead-lettered.
func processJob(ctx context.Context, q pusher, handlers map[string]Handler, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		quoted, _ := json.Marshal(raw)
		deadLetter(ctx, q, queue, Job{Payload: quoted}, "malformed job: "+err.Error())
		return
	}
	job.Attempt++

	logger := log.With().Str("queue", queue).Str("job_type", job.Type).Int("attempt", job.Attempt).Logger()
	h, ok := handlers[job.Type]
	if !ok {
		logger.Error().Msg("no handler for job type")
		deadLetter(ctx, q, queue, job, "no handler")
		return
	}

	err := h.Process(ctx, job.Payload)
	if err == nil {
		logger.Info().Msg("job processed")
		return
	}
	if errors.Is(err, ErrPermanent) || job.Attempt >= MaxAttempts {
		deadLetter(ctx, q, queue, job, err.Error())
		return
	}

	logger.Warn().Err(err).Msg("job failed, requeueing")
	encoded, mErr := json.Marshal(job)
	if mErr != nil {
		logger.Error().Err(mErr).Msg("failed to re-encode job")
		return
	}
	if pErr := q.push(ctx, queue, encoded); pErr != nil {
		logger.Error().Err(pErr).Msg("failed to requeue job")
	}
}
