package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/redis/go-redis/v9"
)

// =============================================================================
// REDIS QUEUE - LPUSH producer, BRPOP consumer
// =============================================================================

// RedisQueue pushes and pops tasks on one Redis list.
type RedisQueue struct {
	client *redis.Client
	name   string
}

// Options configures NewRedisQueue.
type Options struct {
	Addr     string
	Password string
	DB       int
	Name     string // list name, DefaultName when empty
}

// NewRedisQueue builds a queue on a new client. It does not connect; call Ping.
func NewRedisQueue(opts Options) *RedisQueue {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return NewRedisQueueWithClient(client, opts.Name)
}

// NewRedisQueueWithClient wraps an existing client.
func NewRedisQueueWithClient(client *redis.Client, name string) *RedisQueue {
	if name == "" {
		name = DefaultName
	}
	return &RedisQueue{client: client, name: name}
}

// Name returns the list name.
func (q *RedisQueue) Name() string { return q.name }

// Ping checks that the server is reachable.
func (q *RedisQueue) Ping(ctx context.Context) error {
	if err := q.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", generic.ErrQueueUnavailable, err)
	}
	return nil
}

// Enqueue pushes task onto the head of the list.
func (q *RedisQueue) Enqueue(ctx context.Context, task Task) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to encode task %s: %w", task.ID, err)
	}
	if err := q.client.LPush(ctx, q.name, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue task %s: %w", task.ID, err)
	}
	return nil
}

// Dequeue blocks up to timeout for the oldest task. Returns
// generic.ErrQueueEmpty when nothing arrived in time. A zero timeout
// blocks until a task arrives or ctx is done.
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (Task, error) {
	res, err := q.client.BRPop(ctx, timeout, q.name).Result()
	if errors.Is(err, redis.Nil) {
		return Task{}, generic.ErrQueueEmpty
	}
	if err != nil {
		return Task{}, fmt.Errorf("failed to dequeue: %w", err)
	}

	// res is [list, value]
	var task Task
	if err := json.Unmarshal([]byte(res[1]), &task); err != nil {
		return Task{}, fmt.Errorf("failed to decode task: %w", err)
	}
	if _, err := ParseReportType(string(task.ReportType)); err != nil {
		return Task{}, fmt.Errorf("task %s: %w", task.ID, err)
	}
	return task, nil
}

// Len returns the number of queued tasks.
func (q *RedisQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.name).Result()
}

// Close releases the client.
func (q *RedisQueue) Close() error {
	return q.client.Close()
}
