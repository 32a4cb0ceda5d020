package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kickmyb/internal/auth"
	"kickmyb/internal/config"
	"kickmyb/internal/db"
	apperrors "kickmyb/internal/errors"
	"kickmyb/internal/logger"
	"kickmyb/internal/repository"
	"kickmyb/internal/service"
)

type seedOptions struct {
	username string
	password string
	tasks    []string
	deadline time.Duration
	timeout  time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo account and its tasks",
		Long: `Seed creates the given account if it does not exist yet and adds every
task passed with --task. Tasks the account already owns are skipped, so the
command can be re-run safely.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			gormDB, err := db.Open(cfg)
			if err != nil {
				return err
			}
			if err := db.Migrate(gormDB, false); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			userRepo := repository.NewUserRepository(gormDB)
			accounts := service.NewAccountService(userRepo, auth.NewJWTService(cfg.JWTSecret), auth.NewTokenStore(nil))
			tasks := service.NewTaskService(repository.NewTaskRepository(gormDB), userRepo, nil)

			return seed(ctx, log, accounts, tasks, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.username, "username", "u", "alice", "account username")
	cmd.Flags().StringVarP(&opts.password, "password", "p", "password", "account password")
	cmd.Flags().StringArrayVarP(&opts.tasks, "task", "t", nil, "task name to add (repeatable)")
	cmd.Flags().DurationVar(&opts.deadline, "deadline", 24*time.Hour, "deadline of each task relative to now")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall timeout")

	return cmd
}

func seed(ctx context.Context, log *zap.Logger, accounts service.AccountService, tasks service.TaskService, opts *seedOptions) error {
	_, err := accounts.Signup(ctx, opts.username, opts.password)
	switch {
	case err == nil:
		log.Info("account created", zap.String("username", opts.username))
	case errors.Is(err, apperrors.ErrUsernameTaken):
		log.Info("account exists", zap.String("username", opts.username))
	default:
		return fmt.Errorf("signup %s: %w", opts.username, err)
	}

	user, err := tasks.UserFromUsername(ctx, strings.TrimSpace(opts.username))
	if err != nil {
		return fmt.Errorf("load %s: %w", opts.username, err)
	}

	deadline := time.Now().Add(opts.deadline)
	for _, name := range opts.tasks {
		if user.HasTaskNamed(strings.TrimSpace(name)) {
			log.Info("task exists", zap.String("name", name))
			continue
		}
		task, err := tasks.AddOne(ctx, service.AddTaskRequest{Name: name, Deadline: deadline}, user)
		if err != nil {
			return fmt.Errorf("add task %q: %w", name, err)
		}
		log.Info("task added", zap.Uint("task_id", task.ID), zap.String("name", task.Name))
	}
	return nil
}
