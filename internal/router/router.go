package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"kickmyb/internal/auth"
	"kickmyb/internal/errors"
	"kickmyb/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	log *zap.Logger,
	metrics http.Handler,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(metrics))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/signin", authHandler.Signin)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/signout", authHandler.Signout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		// only access tokens authenticate; refresh tokens are for /auth/refresh
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ParseAccessToken(token)
		},
		// echojwt's own errors are *echo.HTTPError (400 for a missing token),
		// so none of them are attached as the internal error.
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "invalid or missing access token",
				Code:  "UNAUTHORIZED",
			})
		},
	}))

	secured.GET("/tasks", taskHandler.Home)
	secured.POST("/tasks", taskHandler.AddOne)
	secured.GET("/tasks/:id", taskHandler.Detail)
	secured.DELETE("/tasks/:id", taskHandler.DeleteTask)
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			switch {
			case v.Status >= http.StatusInternalServerError:
				log.Error("request failed", append(fields, zap.Error(v.Error))...)
			case v.Error != nil:
				log.Warn("request rejected", append(fields, zap.Error(v.Error))...)
			default:
				log.Info("request", fields...)
			}
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
