package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"kickmyb/internal/auth"
	"kickmyb/internal/errors"
	"kickmyb/internal/model"
	"kickmyb/internal/service"
)

// TaskHandler handles task endpoints for the authenticated user.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// AddTaskRequest represents a task creation request.
type AddTaskRequest struct {
	Name     string    `json:"name"`
	Deadline time.Time `json:"deadline" validate:"required"`
}

// Home godoc
// @Summary List the caller's tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Task
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) Home(c echo.Context) error {
	user, err := h.actingUser(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.Home(c.Request().Context(), user.ID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// AddOne godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddTaskRequest true "Task"
// @Success 201 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) AddOne(c echo.Context) error {
	var req AddTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.actingUser(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.AddOne(c.Request().Context(), service.AddTaskRequest{
		Name:     req.Name,
		Deadline: req.Deadline,
	}, user)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, task)
}

// Detail godoc
// @Summary Get one of the caller's tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) Detail(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	user, err := h.actingUser(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.Detail(c.Request().Context(), taskID, user)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// DeleteTask godoc
// @Summary Delete one of the caller's tasks
// @Tags tasks
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	user, err := h.actingUser(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), taskID, user); err != nil {
		return respondError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// actingUser resolves the user named by the JWT the middleware stored under "user".
func (h *TaskHandler) actingUser(c echo.Context) (*model.User, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "missing token",
			Code:  "UNAUTHORIZED",
		})
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.Username == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token claims",
			Code:  "UNAUTHORIZED",
		})
	}

	user, err := h.taskService.UserFromUsername(c.Request().Context(), claims.Username)
	if err != nil {
		return nil, respondError(err)
	}
	return user, nil
}

func taskIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid task id",
			Code:  "INVALID_TASK_ID",
		})
	}
	return uint(id), nil
}
