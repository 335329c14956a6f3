package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// RedisQueueKeyPrefix namespaces the per-doctor daily queue counters.
	RedisQueueKeyPrefix = "queue:doctor:"

	// Pipeline is created and executed per batch
	syncBatchSize = 500

	expiredKeyTTL = time.Minute
)

// QueueCounterService caches the last queue number issued for each doctor on a day,
// i.e. MAX(queue_number) over that doctor's tickets, so readers can skip the query.
type QueueCounterService interface {
	SyncCounters(ctx context.Context, day time.Time, counters []entity.DoctorQueueCounter) (int, error)
}

type queueCounterService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	now         func() time.Time
}

func NewQueueCounterService(redisClient *redis.Client, log *logrus.Logger) QueueCounterService {
	return &queueCounterService{
		redisClient: redisClient,
		log:         log,
		now:         time.Now,
	}
}

// QueueCounterKey returns the Redis key holding a doctor's queue counter for day.
func QueueCounterKey(doctorID string, day time.Time) string {
	return fmt.Sprintf("%s%s:%s", RedisQueueKeyPrefix, doctorID, day.Format("2006-01-02"))
}

// SyncCounters overwrites each doctor's counter for day with its MAX(queue_number).
func (s *queueCounterService) SyncCounters(ctx context.Context, day time.Time, counters []entity.DoctorQueueCounter) (int, error) {
	if len(counters) == 0 {
		s.log.Info("No queue counters to sync")
		return 0, nil
	}

	ttl := counterTTL(day, s.now())
	synced := 0

	for start := 0; start < len(counters); start += syncBatchSize {
		end := start + syncBatchSize
		if end > len(counters) {
			end = len(counters)
		}
		batch := counters[start:end]

		pipe := s.redisClient.TxPipeline()
		for _, c := range batch {
			pipe.Set(ctx, QueueCounterKey(c.DoctorID, day), c.MaxQueueNumber, ttl)
		}

		if _, err := pipe.Exec(ctx); err != nil {
			s.log.Errorf("Failed to execute pipeline for batch at offset %d: %+v", start, err)
			return synced, fmt.Errorf("pipeline exec at offset %d: %w", start, err)
		}

		synced += len(batch)
		s.log.Debugf("Synced batch: %d queue counters", len(batch))
	}

	s.log.Infof("Queue counters synced for %s: %d doctors, TTL %v", day.Format("2006-01-02"), synced, ttl)
	return synced, nil
}

// counterTTL keeps a counter until 24 hours after the end of day.
func counterTTL(day, now time.Time) time.Duration {
	y, m, d := day.Date()
	expireAt := time.Date(y, m, d, 0, 0, 0, 0, day.Location()).AddDate(0, 0, 2)
	ttl := expireAt.Sub(now)

	if ttl <= 0 {
		return expiredKeyTTL
	}

	return ttl
}
