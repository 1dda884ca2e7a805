package queue_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/PedroMissola/analisador-relatorios/queue"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueue(t *testing.T) (*queue.RedisQueue, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	q := queue.NewRedisQueue(queue.Options{Addr: mr.Addr()})
	t.Cleanup(func() { q.Close() })
	return q, mr
}

func TestParseReportType(t *testing.T) {
	for _, rt := range queue.ReportTypes() {
		got, err := queue.ParseReportType(string(rt))
		require.NoError(t, err)
		assert.Equal(t, rt, got)
	}

	_, err := queue.ParseReportType("gastos_por_departamento")
	assert.ErrorIs(t, err, generic.ErrUnknownReportType)
	_, err = queue.ParseReportType("")
	assert.ErrorIs(t, err, generic.ErrUnknownReportType)
}

func TestNewTask(t *testing.T) {
	task := queue.NewTask(queue.PendingPayments, nil)

	parsed, err := uuid.Parse(task.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, "relatorio_PAGAMENTOS_PENDENTES_"+task.ID+".csv", task.OutputFilename)
	assert.NotNil(t, task.Params)

	other := queue.NewTask(queue.PendingPayments, nil)
	assert.NotEqual(t, task.ID, other.ID)
}

func TestTask_WireFormat(t *testing.T) {
	task := queue.NewTask(queue.ExpensesByDepartment, map[string]any{"departamento": "Jurídico"})

	raw, err := json.Marshal(task)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, task.ID, fields["task_id"])
	assert.Equal(t, "GASTOS_POR_DEPARTAMENTO", fields["tipo_relatorio"])
	assert.Equal(t, map[string]any{"departamento": "Jurídico"}, fields["parametros"])
	assert.Equal(t, task.OutputFilename, fields["output_filename"])
	assert.Len(t, fields, 4)
}

func TestRedisQueue_EnqueuePushesOntoHead(t *testing.T) {
	q, mr := newQueue(t)
	ctx := context.Background()

	first := queue.NewTask(queue.DivisionSummary, nil)
	second := queue.NewTask(queue.PendingPayments, nil)
	require.NoError(t, q.Enqueue(ctx, first))
	require.NoError(t, q.Enqueue(ctx, second))

	items, err := mr.List(queue.DefaultName)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, strings.Contains(items[0], second.ID), "LPUSH puts the newest first")

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestRedisQueue_DequeueIsFIFO(t *testing.T) {
	q, _ := newQueue(t)
	ctx := context.Background()

	first := queue.NewTask(queue.DivisionSummary, map[string]any{"mes_referencia": "2025-10"})
	second := queue.NewTask(queue.PendingPayments, nil)
	require.NoError(t, q.Enqueue(ctx, first))
	require.NoError(t, q.Enqueue(ctx, second))

	got, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "2025-10", got.Params["mes_referencia"])

	got, err = q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func TestRedisQueue_DequeueTimesOut(t *testing.T) {
	q, _ := newQueue(t)

	_, err := q.Dequeue(context.Background(), 50*time.Millisecond)
	assert.ErrorIs(t, err, generic.ErrQueueEmpty)
}

func TestRedisQueue_DequeueRejectsUnknownType(t *testing.T) {
	q, mr := newQueue(t)
	_, err := mr.Lpush(queue.DefaultName, `{"task_id":"x","tipo_relatorio":"OUTRO","parametros":{},"output_filename":"a.csv"}`)
	require.NoError(t, err)

	_, err = q.Dequeue(context.Background(), time.Second)
	assert.ErrorIs(t, err, generic.ErrUnknownReportType)
}

func TestRedisQueue_PingFailsWhenServerIsDown(t *testing.T) {
	q, mr := newQueue(t)
	require.NoError(t, q.Ping(context.Background()))

	mr.Close()
	err := q.Ping(context.Background())
	assert.ErrorIs(t, err, generic.ErrQueueUnavailable)
}

func TestRedisQueue_CustomName(t *testing.T) {
	mr := miniredis.RunT(t)
	q := queue.NewRedisQueue(queue.Options{Addr: mr.Addr(), Name: "relatorios_teste"})
	defer q.Close()

	require.NoError(t, q.Enqueue(context.Background(), queue.NewTask(queue.DivisionSummary, nil)))
	assert.Equal(t, "relatorios_teste", q.Name())
	assert.True(t, mr.Exists("relatorios_teste"))
	assert.False(t, mr.Exists(queue.DefaultName))
}
