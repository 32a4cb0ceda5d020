package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "kickmyb/internal/errors"
)

func TestLoggingTaskService(t *testing.T) {
	f := newTaskFixture(t)
	core, logs := observer.New(zap.DebugLevel)
	svc := NewLoggingTaskService(zap.New(core), f.svc)
	ctx := context.Background()
	alice := f.createUser(t, "alice")

	task, err := svc.AddOne(ctx, AddTaskRequest{Name: "Tâche 1", Deadline: inOneHour()}, alice)
	require.NoError(t, err)

	err = svc.DeleteTask(ctx, 9999, alice)
	require.ErrorIs(t, err, apperrors.ErrTaskNotFound)

	entries := logs.All()
	require.Len(t, entries, 2)

	added := entries[0].ContextMap()
	assert.Equal(t, "AddOne", added["method"])
	assert.Equal(t, uint64(task.ID), added["task_id"])
	assert.Equal(t, uint64(alice.ID), added["user_id"])

	failed := entries[1].ContextMap()
	assert.Equal(t, "DeleteTask", failed["method"])
	assert.Equal(t, "task not found", failed["error"])
}
