package repository

import (
	"context"

	"gorm.io/gorm"

	"kickmyb/internal/model"
)

// TaskRepository defines task persistence operations.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id uint) (*model.Task, error)
	FindByUserID(ctx context.Context, userID uint) ([]model.Task, error)
	ExistsByName(ctx context.Context, userID uint, name string) (bool, error)
	Delete(ctx context.Context, task *model.Task) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo TaskRepository) error) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create inserts a task and assigns its ID.
func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by ID.
func (r *taskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByUserID lists the tasks owned by a user in id order.
func (r *taskRepository) FindByUserID(ctx context.Context, userID uint) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ExistsByName reports whether the user owns a task with exactly this name.
func (r *taskRepository) ExistsByName(ctx context.Context, userID uint, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a task row.
func (r *taskRepository) Delete(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Delete(task).Error
}

// WithTransaction executes a function within a database transaction.
func (r *taskRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo TaskRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &taskRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
