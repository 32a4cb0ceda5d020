package service

import (
	"context"

	"go.uber.org/zap"

	"kickmyb/internal/model"
)

type loggingTaskService struct {
	logger *zap.Logger
	next   TaskService
}

// NewLoggingTaskService logs every call to next.
func NewLoggingTaskService(logger *zap.Logger, next TaskService) TaskService {
	return &loggingTaskService{logger: logger, next: next}
}

func (mw *loggingTaskService) log(method string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("method", method))
	if err != nil {
		mw.logger.Info("task service call failed", append(fields, zap.Error(err))...)
		return
	}
	mw.logger.Debug("task service call", fields...)
}

func userIDField(user *model.User) zap.Field {
	if user == nil {
		return zap.Skip()
	}
	return zap.Uint("user_id", user.ID)
}

func (mw *loggingTaskService) AddOne(ctx context.Context, req AddTaskRequest, user *model.User) (task *model.Task, err error) {
	defer func() {
		fields := []zap.Field{userIDField(user), zap.String("name", req.Name)}
		if task != nil {
			fields = append(fields, zap.Uint("task_id", task.ID))
		}
		mw.log("AddOne", err, fields...)
	}()
	return mw.next.AddOne(ctx, req, user)
}

func (mw *loggingTaskService) Home(ctx context.Context, userID uint) (tasks []model.Task, err error) {
	defer func() {
		mw.log("Home", err, zap.Uint("user_id", userID), zap.Int("count", len(tasks)))
	}()
	return mw.next.Home(ctx, userID)
}

func (mw *loggingTaskService) Detail(ctx context.Context, taskID uint, user *model.User) (task *model.Task, err error) {
	defer func() {
		mw.log("Detail", err, userIDField(user), zap.Uint("task_id", taskID))
	}()
	return mw.next.Detail(ctx, taskID, user)
}

func (mw *loggingTaskService) DeleteTask(ctx context.Context, taskID uint, user *model.User) (err error) {
	defer func() {
		mw.log("DeleteTask", err, userIDField(user), zap.Uint("task_id", taskID))
	}()
	return mw.next.DeleteTask(ctx, taskID, user)
}

func (mw *loggingTaskService) UserFromUsername(ctx context.Context, username string) (user *model.User, err error) {
	defer func() {
		mw.log("UserFromUsername", err, zap.String("username", username))
	}()
	return mw.next.UserFromUsername(ctx, username)
}
