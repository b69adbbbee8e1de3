// Package api serves the comfort calculator over HTTP with Fiber. It shares
// the enrichment path with the pipeline, so a query returns the same report
// body a Kafka consumer would see, minus station fields.
package api

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/couchcryptid/meteocalc/internal/domain"
	"github.com/couchcryptid/meteocalc/internal/observability"
)

var validate = validator.New()

// NewApp builds the Fiber app with the centralized JSON error handler,
// panic recovery, request logging, and all routes registered.
func NewApp(logger *slog.Logger, metrics *observability.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "meteocalc",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestLogger(logger, metrics))

	RegisterRoutes(app)
	return app
}

// RegisterRoutes wires the calculator handlers into the Fiber app.
func RegisterRoutes(app *fiber.App) {
	v1 := app.Group("/api/v1")

	v1.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "meteocalc",
		})
	})

	v1.Get("/comfort", func(c *fiber.Ctx) error {
		q, err := parseComfortQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		obs := domain.NewReading(q.temperatureC, q.humidityPct, q.windSpeedMS)
		return c.JSON(domain.EnrichObservation(obs))
	})
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

func requestLogger(logger *slog.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		route := c.Route().Path
		if metrics != nil {
			metrics.APIRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		}
		logger.Debug("api request",
			"method", c.Method(),
			"route", route,
			"status", status,
			"duration", time.Since(start),
		)
		return err
	}
}

// comfortQuery holds the raw query parameters for the comfort endpoint.
// Units are fixed by parameter name.
type comfortQuery struct {
	TemperatureC string `validate:"required,numeric"`
	HumidityPct  string `validate:"omitempty,numeric"`
	WindSpeedMS  string `validate:"omitempty,numeric"`

	temperatureC float64
	humidityPct  *float64
	windSpeedMS  *float64
}

var queryParams = map[string]string{
	"TemperatureC": "temperature_c",
	"HumidityPct":  "humidity_pct",
	"WindSpeedMS":  "wind_speed_ms",
}

func parseComfortQuery(c *fiber.Ctx) (comfortQuery, error) {
	q := comfortQuery{
		TemperatureC: c.Query("temperature_c"),
		HumidityPct:  c.Query("humidity_pct"),
		WindSpeedMS:  c.Query("wind_speed_ms"),
	}

	if err := validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Tag() == "required" {
				return q, errors.New(queryParams[fe.Field()] + " is required")
			}
			return q, errors.New(queryParams[fe.Field()] + " must be a number")
		}
		return q, err
	}

	var err error
	if q.temperatureC, err = strconv.ParseFloat(q.TemperatureC, 64); err != nil {
		return q, errors.New("temperature_c must be a number")
	}
	if q.humidityPct, err = optionalFloat(q.HumidityPct); err != nil {
		return q, errors.New("humidity_pct must be a number")
	}
	if q.windSpeedMS, err = optionalFloat(q.WindSpeedMS); err != nil {
		return q, errors.New("wind_speed_ms must be a number")
	}
	return q, nil
}

func optionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
