package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"wardsched/config"
	"wardsched/services/scheduler"

	"github.com/hibiken/asynq"
)

// TypeOccupancyWarm precomputes a room's occupancy grid for the coming window
// so calendar views hit a warm cache.
const TypeOccupancyWarm = "occupancy:warm"

// OccupancyWarmPayload identifies the room and window to precompute.
type OccupancyWarmPayload struct {
	RoomID     string `json:"roomId"`
	WindowDays int    `json:"windowDays"`
}

// InitOccupancyWorker runs the async worker in background.
func InitOccupancyWorker(svc scheduler.SchedulingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOccupancyWarm, handleOccupancyWarmTask(svc))

	go func() {
		log.Println("[OccupancyWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[OccupancyWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[OccupancyWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// EnqueueOccupancyWarm schedules a warm-up task for one room.
func EnqueueOccupancyWarm(client *asynq.Client, roomID string, windowDays int) error {
	payload, err := json.Marshal(OccupancyWarmPayload{RoomID: roomID, WindowDays: windowDays})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeOccupancyWarm, payload)
	_, err = client.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(30*time.Second))
	return err
}

func handleOccupancyWarmTask(svc scheduler.SchedulingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p OccupancyWarmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[OccupancyWarm] invalid payload: %v", err)
			return err
		}

		days := p.WindowDays
		if days <= 0 {
			days = config.AppConfig.WarmWindowDays
		}
		start := time.Now()
		end := start.AddDate(0, 0, days-1)

		if _, err := svc.GetWindowGrid(ctx, p.RoomID, start, end); err != nil {
			log.Printf("[OccupancyWarm] failed to warm grid for room %s: %v", p.RoomID, err)
			return err
		}
		return nil
	}
}
