package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"sparklean/config"
	scheduleRepo "sparklean/database/repository/schedule"
	"sparklean/models"
	"sparklean/services/recurring"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeScheduleGenerate = "schedules:generate"

// GeneratePayload identifies one schedule/month generation task.
type GeneratePayload struct {
	ScheduleID string `json:"scheduleId"`
	MonthKey   string `json:"monthKey"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitGenerationWorker runs the async worker in background. It consumes
// generation tasks and, on a daily tick, enqueues the next pending month
// for every active schedule.
func InitGenerationWorker(gen *recurring.Generator, schedules scheduleRepo.ScheduleRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeScheduleGenerate, handleGenerateTask(gen))

	go monitorRedisConnection()
	go enqueueDueSchedules(schedules)

	go func() {
		log.Println("[GenerationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[GenerationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[GenerationWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleGenerateTask(gen *recurring.Generator) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p GeneratePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[GenerationHandler] invalid payload: %v", err)
			return err
		}

		year, month, err := models.ParseMonthKey(p.MonthKey)
		if err != nil {
			log.Printf("[GenerationHandler] bad month key %q: %v", p.MonthKey, err)
			return nil // not retryable
		}

		result, err := gen.GenerateForMonth(ctx, p.ScheduleID, year, month)
		if err != nil {
			log.Printf("[GenerationHandler] generation failed for %s %s: %v", p.ScheduleID, p.MonthKey, err)
			return err
		}

		log.Printf("[GenerationHandler] schedule %s month %s: created=%d skipped=%d",
			p.ScheduleID, p.MonthKey, result.Created, result.SkippedExisting)
		return nil
	}
}

// EnqueueGeneration queues one generation task. Tasks are deduplicated per
// schedule and month so the daily sweep can re-enqueue safely.
func EnqueueGeneration(scheduleID, monthKey string) error {
	payload, err := json.Marshal(GeneratePayload{ScheduleID: scheduleID, MonthKey: monthKey})
	if err != nil {
		return err
	}

	client := asynq.NewClient(redisOpts())
	defer client.Close()

	task := asynq.NewTask(TypeScheduleGenerate, payload)
	_, err = client.Enqueue(task,
		asynq.TaskID(TypeScheduleGenerate+":"+scheduleID+":"+monthKey),
		asynq.MaxRetry(5),
	)
	if err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		return err
	}
	return nil
}

// enqueueDueSchedules sweeps active schedules daily and queues whichever
// month each one should generate next. The generation itself is idempotent,
// so a schedule that is already up to date turns into a no-op task.
func enqueueDueSchedules(schedules scheduleRepo.ScheduleRepository) {
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		active, err := schedules.ListActive(ctx)
		cancel()
		if err != nil {
			log.Printf("[GenerationWorker] failed to list active schedules: %v", err)
		} else {
			now := time.Now().UTC()
			for _, s := range active {
				monthKey := s.NextGeneratingMonth(now)
				if err := EnqueueGeneration(s.ID, monthKey); err != nil {
					log.Printf("[GenerationWorker] failed to enqueue %s %s: %v", s.ID, monthKey, err)
				}
			}
		}
		time.Sleep(24 * time.Hour)
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[GenerationWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
