package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kickmyb/internal/model"
	"kickmyb/internal/service"
)

// Metrics holds the task service collectors.
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	gatherer prometheus.Gatherer
}

// New registers the task service collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kickmyb",
			Subsystem: "task_service",
			Name:      "requests_total",
			Help:      "Number of task service calls.",
		}, []string{"method", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "kickmyb",
			Subsystem: "task_service",
			Name:      "request_duration_seconds",
			Help:      "Duration of task service calls in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		gatherer: reg,
	}
	reg.MustRegister(m.requests, m.latency)
	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Instrument wraps next so that every call is counted and timed.
func (m *Metrics) Instrument(next service.TaskService) service.TaskService {
	return &instrumentingTaskService{metrics: m, next: next}
}

func (m *Metrics) observe(method string, begin time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.requests.WithLabelValues(method, outcome).Inc()
	m.latency.WithLabelValues(method).Observe(time.Since(begin).Seconds())
}

type instrumentingTaskService struct {
	metrics *Metrics
	next    service.TaskService
}

func (mw *instrumentingTaskService) AddOne(ctx context.Context, req service.AddTaskRequest, user *model.User) (task *model.Task, err error) {
	defer func(begin time.Time) {
		mw.metrics.observe("add_one", begin, err)
	}(time.Now())
	return mw.next.AddOne(ctx, req, user)
}

func (mw *instrumentingTaskService) Home(ctx context.Context, userID uint) (tasks []model.Task, err error) {
	defer func(begin time.Time) {
		mw.metrics.observe("home", begin, err)
	}(time.Now())
	return mw.next.Home(ctx, userID)
}

func (mw *instrumentingTaskService) Detail(ctx context.Context, taskID uint, user *model.User) (task *model.Task, err error) {
	defer func(begin time.Time) {
		mw.metrics.observe("detail", begin, err)
	}(time.Now())
	return mw.next.Detail(ctx, taskID, user)
}

func (mw *instrumentingTaskService) DeleteTask(ctx context.Context, taskID uint, user *model.User) (err error) {
	defer func(begin time.Time) {
		mw.metrics.observe("delete_task", begin, err)
	}(time.Now())
	return mw.next.DeleteTask(ctx, taskID, user)
}

func (mw *instrumentingTaskService) UserFromUsername(ctx context.Context, username string) (user *model.User, err error) {
	defer func(begin time.Time) {
		mw.metrics.observe("user_from_username", begin, err)
	}(time.Now())
	return mw.next.UserFromUsername(ctx, username)
}
