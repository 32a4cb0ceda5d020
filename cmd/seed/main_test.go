package main

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kickmyb/internal/auth"
	"kickmyb/internal/db"
	apperrors "kickmyb/internal/errors"
	"kickmyb/internal/repository"
	"kickmyb/internal/service"
)

func TestSeed_IsIdempotent(t *testing.T) {
	gormDB, err := db.NewSQLiteMemory(uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB, false))

	userRepo := repository.NewUserRepository(gormDB)
	accounts := service.NewAccountService(userRepo, auth.NewJWTService("test-secret"), auth.NewTokenStore(nil))
	tasks := service.NewTaskService(repository.NewTaskRepository(gormDB), userRepo, nil)
	ctx := context.Background()

	opts := &seedOptions{
		username: "alice",
		password: "password",
		tasks:    []string{"Tâche 1", "Tâche 2"},
		deadline: time.Hour,
	}

	require.NoError(t, seed(ctx, zap.NewNop(), accounts, tasks, opts))
	require.NoError(t, seed(ctx, zap.NewNop(), accounts, tasks, opts))

	user, err := tasks.UserFromUsername(ctx, "alice")
	require.NoError(t, err)
	home, err := tasks.Home(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, home, 2)
}

func TestSeed_RejectsInvalidTask(t *testing.T) {
	gormDB, err := db.NewSQLiteMemory(uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB, false))

	userRepo := repository.NewUserRepository(gormDB)
	accounts := service.NewAccountService(userRepo, auth.NewJWTService("test-secret"), auth.NewTokenStore(nil))
	tasks := service.NewTaskService(repository.NewTaskRepository(gormDB), userRepo, nil)

	err = seed(context.Background(), zap.NewNop(), accounts, tasks, &seedOptions{
		username: "alice",
		password: "password",
		tasks:    []string{"t"},
		deadline: time.Hour,
	})
	assert.ErrorIs(t, err, apperrors.ErrTooShort)
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-u", "bob", "--task", "one", "--task", "two", "--deadline", "2h"}))

	username, err := cmd.Flags().GetString("username")
	require.NoError(t, err)
	assert.Equal(t, "bob", username)

	names, err := cmd.Flags().GetStringArray("task")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, names)
}
