package appbuilder

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"

	"investments-api/pkg/logger"
	"investments-api/pkg/rabbitmq"
	"investments-api/pkg/rest"
	"investments-api/pkg/utilities"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ErrBuilderSealed is raised when registration is attempted after Build.
var ErrBuilderSealed = errors.New("app builder already built: no further registration allowed")

const DefaultPort = "8080"

type AppConfig interface {
	GetLoggerConfig() logger.LoggerConfig
	GetRabbitmqConfig() rabbitmq.RabbitmqConfig
	GetRestApiPort() uint16
	GetServiceName() string
}

// WorkerService is a unit of background work started by the Application.
type WorkerService interface {
	GetServiceName() string
	StartService()
}

type AppBuilder[T utilities.JsonConfigObj[U], U AppConfig] struct {
	Logger      *logger.Logger
	Config      U
	Environment Environment

	lookupEnv      func(string) (string, bool)
	conn           *amqp.Connection
	startupTasks   []WorkerService
	workerServices []WorkerService
	middlewares    []rest.Middleware
	routes         []rest.Route
	shutdownHooks  []func() error
	engine         *gin.Engine
	sealed         bool
}

type AppBuilderInterface[T utilities.JsonConfigObj[U], U AppConfig] interface {
	InitLogger(loggerArgs logger.GlobalLoggerConfig) AppBuilderInterface[T, U]
	ResolveEnvironment() AppBuilderInterface[T, U]
	LoadConfig(configPath string) AppBuilderInterface[T, U]
	WithOption(option func(a *AppBuilder[T, U])) AppBuilderInterface[T, U]
	InitRabbitmqConnection() AppBuilderInterface[T, U]
	AddStartupTasks(tasks ...WorkerService) AppBuilderInterface[T, U]
	AddWorkerServices(workerServices ...WorkerService) AppBuilderInterface[T, U]
	AddShutdownHook(hook func() error) AppBuilderInterface[T, U]
	AddGinMiddleware(middlewares ...rest.Middleware) AppBuilderInterface[T, U]
	AddGinRoutes(routes ...rest.Route) AppBuilderInterface[T, U]
	AddSwagger() AppBuilderInterface[T, U]
	InitGinRouter() AppBuilderInterface[T, U]
	Build() ApplicationInterface
}

func New[T utilities.JsonConfigObj[U], U AppConfig]() AppBuilderInterface[T, U] {
	return &AppBuilder[T, U]{lookupEnv: os.LookupEnv}
}

// NewWithEnv is New with a custom environment lookup, used by tests.
func NewWithEnv[T utilities.JsonConfigObj[U], U AppConfig](lookupEnv func(string) (string, bool)) AppBuilderInterface[T, U] {
	return &AppBuilder[T, U]{lookupEnv: lookupEnv}
}

func (a *AppBuilder[T, U]) InitLogger(loggerArgs logger.GlobalLoggerConfig) AppBuilderInterface[T, U] {
	a.ensureOpen()
	logger.InitDefaultLogger(loggerArgs)
	a.Logger = logger.Default()
	a.Logger.Info("Logger initialized")

	return a
}

func (a *AppBuilder[T, U]) ResolveEnvironment() AppBuilderInterface[T, U] {
	a.ensureOpen()
	a.Environment = ResolveEnvironmentFrom(a.lookupEnv)

	a.Logger.Infof("Environment: %s", a.Environment.Name)
	a.Logger.Infof("PORT: %s", utilities.Ternary(a.Environment.Port != "", a.Environment.Port, "<unset>"))
	a.Logger.Infof("%s exists: %t", DatabaseURLEnvKey, a.Environment.DatabaseURL != "")
	a.Logger.Infof("Public URL: %s", utilities.Ternary(a.Environment.PublicURL != "", a.Environment.PublicURL, "<unset>"))

	return a
}

func (a *AppBuilder[T, U]) LoadConfig(filePath string) AppBuilderInterface[T, U] {
	a.ensureOpen()
	a.Logger.Infof("Preparing to load config from %s ...", filePath)
	jsonConfig, err := utilities.ReadConfig[T, U](filePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		a.Logger.Warnf("Config file %s not found, continuing with defaults and environment", filePath)
		jsonConfig = utilities.ReadEmptyConfig[T, U]()
	case err != nil:
		a.Logger.Error(err, "Failed to load config")
		panic(err)
	}

	a.Config = jsonConfig
	a.Logger.WithLevel(a.Config.GetLoggerConfig().LogLevel)
	a.Logger.Info("Config successfully loaded.")
	return a
}

func (a *AppBuilder[T, U]) WithOption(option func(a *AppBuilder[T, U])) AppBuilderInterface[T, U] {
	a.ensureOpen()
	option(a)
	return a
}

// InitRabbitmqConnection attaches the Rabbitmq log sink when enabled. The
// sink is optional, so a broker that cannot be reached only produces a warning.
func (a *AppBuilder[T, U]) InitRabbitmqConnection() AppBuilderInterface[T, U] {
	a.ensureOpen()
	rabbitmqConfig := a.Config.GetRabbitmqConfig()
	if !rabbitmqConfig.Enabled {
		a.Logger.Info("Rabbitmq log sink disabled.")
		return a
	}

	a.Logger.Info("Preparing to connect to Rabbitmq server...")
	conn, err := rabbitmq.ConnectToRabbitmq(context.Background(), rabbitmqConfig.URL, rabbitmqConfig.ConnectRetries)
	if err != nil {
		a.Logger.Error(err, "Could not connect to Rabbitmq, continuing without log sink")
		return a
	}

	publisher, err := rabbitmq.NewPublisherFromConnection(conn, rabbitmqConfig)
	if err != nil {
		a.Logger.Error(err, "Could not open Rabbitmq channel, continuing without log sink")
		_ = conn.Close()
		return a
	}

	a.Logger.WithSink(rabbitmq.CreateRabbitmqLoggerSink(publisher, a.Config.GetServiceName()))
	a.conn = conn
	a.shutdownHooks = append(a.shutdownHooks, publisher.Close, conn.Close)
	a.Logger.Info("Connection with Rabbitmq server established")

	return a
}

// AddStartupTasks registers work that runs to completion before the
// listener starts accepting connections.
func (a *AppBuilder[T, U]) AddStartupTasks(tasks ...WorkerService) AppBuilderInterface[T, U] {
	a.ensureOpen()
	a.startupTasks = append(a.startupTasks, tasks...)
	return a
}

func (a *AppBuilder[T, U]) AddWorkerServices(workerServices ...WorkerService) AppBuilderInterface[T, U] {
	a.ensureOpen()
	a.Logger.Info("Adding Worker Services to Application...")
	a.workerServices = append(a.workerServices, workerServices...)
	return a
}

func (a *AppBuilder[T, U]) AddShutdownHook(hook func() error) AppBuilderInterface[T, U] {
	a.ensureOpen()
	a.shutdownHooks = append(a.shutdownHooks, hook)
	return a
}

func (a *AppBuilder[T, U]) AddGinMiddleware(middlewares ...rest.Middleware) AppBuilderInterface[T, U] {
	a.ensureOpen()
	a.Logger.Info("Adding Gin middleware to Application...")
	a.middlewares = append(a.middlewares, middlewares...)
	return a
}

func (a *AppBuilder[T, U]) AddGinRoutes(routes ...rest.Route) AppBuilderInterface[T, U] {
	a.ensureOpen()
	a.Logger.Info("Adding Gin REST API routes to Application...")
	a.routes = append(a.routes, routes...)
	return a
}

func (a *AppBuilder[T, U]) AddSwagger() AppBuilderInterface[T, U] {
	a.ensureOpen()
	a.Logger.Info("Adding SwaggerUI...")
	a.routes = append(a.routes, rest.NewRoute(
		rest.GET,
		"swagger",
		"*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.DocExpansion("list"),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DeepLinking(true),
		),
	))

	return a
}

func (a *AppBuilder[T, U]) InitGinRouter() AppBuilderInterface[T, U] {
	a.ensureOpen()
	a.Logger.Info("Initializing Gin Router...")
	gin.SetMode(utilities.Ternary(a.Environment.IsDevelopment(), gin.DebugMode, gin.ReleaseMode))
	router := gin.New()

	// engine-wide middleware has to be installed before any route exists
	for _, m := range a.middlewares {
		if m.Group == rest.GlobalGroup {
			router.Use(m.Handler)
		}
	}

	groups := map[string]*gin.RouterGroup{}
	group := func(name string) *gin.RouterGroup {
		if g, exists := groups[name]; exists {
			return g
		}
		g := router.Group("/" + name)
		for _, m := range a.middlewares {
			if m.Group == name {
				g.Use(m.Handler)
			}
		}
		groups[name] = g
		return g
	}

	a.Logger.Info("Registering REST API routes...")
	for _, r := range a.routes {
		g := group(r.Group)

		switch r.Method {
		case rest.GET:
			g.GET(r.Path, r.HandlerFunc)
		case rest.POST:
			g.POST(r.Path, r.HandlerFunc)
		case rest.PUT:
			g.PUT(r.Path, r.HandlerFunc)
		case rest.PATCH:
			g.PATCH(r.Path, r.HandlerFunc)
		case rest.DELETE:
			g.DELETE(r.Path, r.HandlerFunc)
		default:
			a.Logger.Warnf("Unrecognized HTTP method: %s", r.Method)
		}
	}

	a.engine = router
	a.Logger.Info("Successfully registered REST API routes.")
	return a
}

func (a *AppBuilder[T, U]) Build() ApplicationInterface {
	a.ensureOpen()
	if a.engine == nil {
		a.InitGinRouter()
	}
	a.sealed = true

	port := ResolvePort(a.Environment.Port, a.Config.GetRestApiPort())
	return &Application{
		Logger:         a.Logger,
		Addr:           BindAddress(a.Environment, port),
		Conn:           a.conn,
		StartupTasks:   a.startupTasks,
		WorkerServices: a.workerServices,
		Engine:         a.engine,
		ShutdownHooks:  a.shutdownHooks,
	}
}

func (a *AppBuilder[T, U]) ensureOpen() {
	if a.sealed {
		panic(ErrBuilderSealed)
	}
}

// ResolvePort prefers the environment port, then the configured one, then 8080.
func ResolvePort(envPort string, configPort uint16) string {
	return utilities.FirstNonBlank(
		envPort,
		utilities.Ternary(configPort != 0, fmt.Sprint(configPort), ""),
		DefaultPort,
	)
}

// BindAddress is loopback-only in Development and all interfaces elsewhere.
func BindAddress(env Environment, port string) string {
	host := utilities.Ternary(env.IsDevelopment(), "127.0.0.1", "0.0.0.0")
	return net.JoinHostPort(host, port)
}
