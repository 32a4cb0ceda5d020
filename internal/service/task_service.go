package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"kickmyb/internal/cache"
	apperrors "kickmyb/internal/errors"
	"kickmyb/internal/model"
	"kickmyb/internal/repository"
)

const (
	minTaskNameLength = 2
	homeCacheTTL      = 5 * time.Minute
)

// AddTaskRequest carries the fields of a task to create.
type AddTaskRequest struct {
	Name     string
	Deadline time.Time
}

// TaskService handles task creation, listing and deletion for a user.
type TaskService interface {
	AddOne(ctx context.Context, req AddTaskRequest, user *model.User) (*model.Task, error)
	Home(ctx context.Context, userID uint) ([]model.Task, error)
	Detail(ctx context.Context, taskID uint, user *model.User) (*model.Task, error)
	DeleteTask(ctx context.Context, taskID uint, user *model.User) error
	UserFromUsername(ctx context.Context, username string) (*model.User, error)
}

type taskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewTaskService creates a new task service. cache may be nil.
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, cache *cache.Client) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		cache:    cache,
	}
}

func (s *taskService) cacheKey(userID uint) string {
	return fmt.Sprintf("tasks:user:%d", userID)
}

func (s *taskService) generationKey(userID uint) string {
	return fmt.Sprintf("tasks:user:%d:gen", userID)
}

// homeEntry is the cached Home list, tagged with the generation it was read under.
// A Home call racing a write may store a list older than the write; the
// generation bump done by the write makes that entry unreadable.
type homeEntry struct {
	Generation int64        `json:"generation"`
	Tasks      []model.Task `json:"tasks"`
}

func (s *taskService) invalidateHome(ctx context.Context, userID uint) {
	_ = s.cache.Bump(ctx, s.generationKey(userID))
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
}

// validateTaskName returns the trimmed name or the first rule it breaks.
func validateTaskName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperrors.ErrEmpty
	}
	if utf8.RuneCountInString(trimmed) < minTaskNameLength {
		return "", apperrors.ErrTooShort
	}
	return trimmed, nil
}

// AddOne validates and persists a new task owned by user.
func (s *taskService) AddOne(ctx context.Context, req AddTaskRequest, user *model.User) (*model.Task, error) {
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	name, err := validateTaskName(req.Name)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		Name:     name,
		Deadline: req.Deadline,
		UserID:   user.ID,
	}

	err = s.taskRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.TaskRepository) error {
		exists, err := repo.ExistsByName(ctx, user.ID, name)
		if err != nil {
			return fmt.Errorf("check task name: %w", err)
		}
		if exists {
			return apperrors.ErrExisting
		}
		if err := repo.Create(ctx, task); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrExisting
			}
			return fmt.Errorf("create task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	user.Tasks = append(user.Tasks, *task)
	s.invalidateHome(ctx, user.ID)
	return task, nil
}

// Home lists every task owned by userID in id order.
func (s *taskService) Home(ctx context.Context, userID uint) ([]model.Task, error) {
	generation := s.cache.Generation(ctx, s.generationKey(userID))

	var cached homeEntry
	if s.cache.GetJSON(ctx, s.cacheKey(userID), &cached) && cached.Generation == generation && cached.Tasks != nil {
		return cached.Tasks, nil
	}

	tasks, err := s.taskRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	_ = s.cache.SetJSON(ctx, s.cacheKey(userID), homeEntry{Generation: generation, Tasks: tasks}, homeCacheTTL)
	return tasks, nil
}

// Detail returns one task if user owns it.
func (s *taskService) Detail(ctx context.Context, taskID uint, user *model.User) (*model.Task, error) {
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return ownedTask(ctx, s.taskRepo, taskID, user)
}

// DeleteTask removes a task owned by user.
func (s *taskService) DeleteTask(ctx context.Context, taskID uint, user *model.User) error {
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	err := s.taskRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.TaskRepository) error {
		task, err := ownedTask(ctx, repo, taskID, user)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, task); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	user.DetachTask(taskID)
	s.invalidateHome(ctx, user.ID)
	return nil
}

// UserFromUsername resolves a user with its tasks preloaded.
func (s *taskService) UserFromUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func ownedTask(ctx context.Context, repo repository.TaskRepository, taskID uint, user *model.User) (*model.Task, error) {
	task, err := repo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	if !task.OwnedBy(user) {
		return nil, apperrors.ErrAccessDenied
	}
	return task, nil
}
