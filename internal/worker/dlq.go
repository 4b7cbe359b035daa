package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DLQPrefix namespaces the dead letter list of each queue: dlq:<queue>.
const DLQPrefix = "dlq:"

// DLQEntry is what an operator finds in a dead letter list. Email jobs
// also name the document so the failed send can be found without
// decoding the payload.
type DLQEntry struct {
	OriginalQueue string          `json:"original_queue"`
	JobType       string          `json:"job_type"`
	Document      string          `json:"document,omitempty"`
	DocumentID    uint            `json:"document_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
	Reason        string          `json:"reason"`
	FailedAt      time.Time       `json:"failed_at"`
	Attempts      int             `json:"attempts"`
}

var dlqNow = time.Now

func newDLQEntry(queue string, job Job, reason string) DLQEntry {
	entry := DLQEntry{
		OriginalQueue: queue,
		JobType:       job.Type,
		Payload:       job.Payload,
		Reason:        reason,
		FailedAt:      dlqNow().UTC(),
		Attempts:      job.Attempt,
	}
	if job.Type == JobTypeEmail {
		var p EmailJobPayload
		if json.Unmarshal(job.Payload, &p) == nil {
			entry.Document, entry.DocumentID = p.Document, p.DocumentID
		}
	}
	return entry
}

// deadLetter parks job under dlq:<queue>. Failures here are only logged:
// the job has already been taken off its queue.
func deadLetter(ctx context.Context, q pusher, queue string, job Job, reason string) {
	entry := newDLQEntry(queue, job, reason)
	logger := log.With().Str("queue", queue).Str("job_type", job.Type).Int("attempt", job.Attempt).Logger()

	data, err := json.Marshal(entry)
	if err != nil {
		logger.Error().Err(err).Msg("dead letter encode failed, job dropped")
		return
	}
	if err := q.push(ctx, DLQPrefix+queue, data); err != nil {
		logger.Error().Err(err).Msg("dead letter push failed, job dropped")
		return
	}
	logger.Warn().Str("reason", reason).Str("document", entry.Document).Uint("document_id", entry.DocumentID).
		Msg("job dead-lettered")
}

// DLQLength reports how many jobs of queue are parked; the health check shows it.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}
