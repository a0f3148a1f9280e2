package appbuilder

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"investments-api/pkg/logger"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type Application struct {
	Logger         *logger.Logger
	Addr           string
	Conn           *amqp.Connection
	StartupTasks   []WorkerService
	WorkerServices []WorkerService
	Engine         *gin.Engine
	ShutdownHooks  []func() error
}

type ApplicationInterface interface {
	Start()
	Run(ctx context.Context) error
	Serve(ctx context.Context, ln net.Listener) error
	Handler() http.Handler
	Address() string
}

// Start runs the application until SIGINT or SIGTERM.
func (a *Application) Start() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		a.Logger.Fatal(err, "REST API stopped unexpectedly")
	}
}

func (a *Application) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.Addr)
	if err != nil {
		return err
	}
	return a.Serve(ctx, ln)
}

func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	a.Logger.Info("Starting Application runtime...")
	defer a.runShutdownHooks()

	for _, task := range a.StartupTasks {
		a.Logger.Infof("Running %s startup task", task.GetServiceName())
		task.StartService()
	}

	for _, ws := range a.WorkerServices {
		a.Logger.Infof("Starting %s WorkerService", ws.GetServiceName())
		go ws.StartService()
	}

	srv := &http.Server{
		Handler:           a.Engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()
	a.Logger.Infof("REST API is now listening on: %s", ln.Addr().String())

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		a.Logger.Info("Shutting down REST API...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (a *Application) Handler() http.Handler {
	return a.Engine
}

func (a *Application) Address() string {
	return a.Addr
}

func (a *Application) runShutdownHooks() {
	for _, hook := range a.ShutdownHooks {
		if err := hook(); err != nil {
			a.Logger.Error(err, "Shutdown hook failed")
		}
	}
}
