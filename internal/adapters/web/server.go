// Package web exposes the skill as an HTTPS endpoint for platforms that
// call a web service instead of a Lambda function.
package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"videoskill/internal/domain"
	"videoskill/internal/ports/input"
)

const appName = "videoskill"

// Server is the fiber adapter.
type Server struct {
	app    *fiber.App
	skill  input.SkillUseCase
	logger *zap.Logger
}

// NewServer wires routes: POST / for skill requests, GET /health and
// GET /metrics (served from gatherer).
func NewServer(skill input.SkillUseCase, gatherer prometheus.Gatherer, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})
	app.Use(recover.New())

	s := &Server{app: app, skill: skill, logger: logger}

	app.Post("/", s.handleSkillRequest)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	metrics := fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metrics(c.Context())
		return nil
	})

	return s
}

// App exposes the fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks until the server stops.
func (s *Server) Listen(addr string) error {
	s.logger.Info("✅ Skill endpoint listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleSkillRequest(c *fiber.Ctx) error {
	env, err := domain.ParseEnvelope(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(s.skill.Handle(c.UserContext(), env))
}

func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("❌ Internal Server Error", zap.Error(err), zap.String("path", c.Path()))
		} else {
			logger.Warn("⚠️ Rejected request", zap.Int("status", code), zap.Error(err), zap.String("path", c.Path()))
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
