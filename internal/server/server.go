package server

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/dmuturi/pesatrack-be/internal/config"
	"github.com/dmuturi/pesatrack-be/internal/handler"
	"github.com/dmuturi/pesatrack-be/internal/middleware"
	"github.com/dmuturi/pesatrack-be/pkg/logger"
)

type Server struct {
	echo             *echo.Echo
	cfg              *config.Config
	logger           *logger.Logger
	smsHandler       *handler.SMSHandler
	statementHandler *handler.StatementHandler
	expenseHandler   *handler.ExpenseHandler
	healthHandler    *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	smsHandler *handler.SMSHandler,
	statementHandler *handler.StatementHandler,
	expenseHandler *handler.ExpenseHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		echo:             e,
		cfg:              cfg,
		logger:           log,
		smsHandler:       smsHandler,
		statementHandler: statementHandler,
		expenseHandler:   expenseHandler,
		healthHandler:    healthHandler,
	}
}

func (s *Server) Start() error {
	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server", "address", addr)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	s.echo.POST("/sms/parse", s.smsHandler.Parse)
	s.echo.POST("/sms/expenses", s.smsHandler.Save)

	s.echo.POST("/expenses", s.expenseHandler.Add)
	s.echo.GET("/expenses", s.expenseHandler.List)
	s.echo.GET("/expenses/summary", s.expenseHandler.Summary)
	s.echo.GET("/expenses/:id", s.expenseHandler.Get)
	s.echo.GET("/charges/total", s.expenseHandler.TotalFees)

	s.echo.POST("/statements", s.statementHandler.Upload)
	s.echo.GET("/statements/:id", s.statementHandler.GetStatus)
}

func (s *Server) Handler() *echo.Echo {
	s.setupMiddleware()
	s.setupRoutes()
	return s.echo
}
