package main

import (
	"flag"
	"strings"

	appbuilder "investments-api/pkg/app_builder"
	"investments-api/pkg/logger"
	"investments-api/pkg/rest"
	"investments-api/src/database"
	"investments-api/src/diagnostics"
	"investments-api/src/docs"
	"investments-api/src/health"
	"investments-api/src/investment"
	"investments-api/src/middleware"
	"investments-api/src/userprofile"

	"github.com/joho/godotenv"
)

const apiVersion = "1.0.0"

type Builder = appbuilder.AppBuilder[ApiConfigJson, ApiConfig]

// api holds everything the routes need once the database side is wired.
type api struct {
	redactor    diagnostics.Redactor
	diagnostics *diagnostics.Handler
	health      *health.Handler
	investments *investment.Handler
	profiles    *userprofile.Handler
}

// @title           Investments API
// @version         1.0
// @description     Investment records, user profiles and database diagnostics
// @BasePath        /
func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config file")
	flag.Parse()

	// a missing .env is the normal case outside local development
	_ = godotenv.Load()

	a := &api{}

	builder := appbuilder.New[ApiConfigJson, ApiConfig]().
		InitLogger(logger.GlobalLoggerConfig{
			Args: []logger.LoggerArg{{Key: "service", Value: defaultServiceName}},
		}).
		ResolveEnvironment().
		LoadConfig(*configPath).
		WithOption(a.wireDatabase).
		InitRabbitmqConnection()

	log := logger.Default()
	builder.
		AddGinMiddleware(
			rest.Global(middleware.RequestIdMiddleware()),
			rest.Global(middleware.RequestLoggerMiddleware(log)),
			rest.Global(middleware.ErrorMiddleware(log, a.redactor.Redact)),
			rest.Global(middleware.CORSMiddleware()),
		).
		AddGinRoutes(a.routes()...).
		AddSwagger().
		InitGinRouter().
		Build().
		Start()
}

func (a *api) wireDatabase(b *Builder) {
	resolved, err := database.ResolveConnectionString(b.Environment.DatabaseURL, b.Config.GetDatabaseConnectionString())
	if err != nil {
		b.Logger.Fatal(err, "Cannot start without a database connection string")
	}
	b.Logger.Infof("Connection string source: %s", resolved.Source)

	a.redactor = diagnostics.NewConnectionRedactor(resolved.ConnectionString, b.Config.DiagnosticsConf.Secret)
	b.Logger.WithRedactor(a.redactor.Redact)

	dbConf := b.Config.DatabaseConf
	db, err := database.OpenPostgres(resolved.ConnectionString, dbConf.Options, b.Logger)
	if err != nil {
		b.Logger.Fatal(err, "Invalid database configuration")
	}
	b.AddShutdownHook(db.Close)
	b.Logger.Infof("Database pool configured (retries: %d, max delay: %s, command timeout: %s)",
		dbConf.Options.Retry.MaxRetries, dbConf.Options.Retry.MaxDelay, dbConf.Options.CommandTimeout)

	candidates := b.Config.DiagnosticsConf.ProbeCandidates
	if len(candidates) == 0 {
		if candidates, err = diagnostics.DeriveCandidates(resolved.ConnectionString); err != nil {
			b.Logger.Warnf("Could not derive probe candidates: %s", a.redactor.Redact(err.Error()))
		}
	}

	diagnosticsService := diagnostics.NewService(resolved.ConnectionString, b.Logger, func(s *diagnostics.Service) {
		s.Redactor = a.redactor
		s.Candidates = candidates
		s.Timeout = dbConf.Options.CommandTimeout
	})
	a.diagnostics = diagnostics.NewHandler(diagnosticsService)

	investmentService, investmentHandler := investment.Build(db, b.Logger)
	a.investments = investmentHandler
	a.profiles = userprofile.Build(db, investmentService, b.Logger)
	a.health = health.NewHandler(db, apiVersion, b.Environment.Name, a.redactor.Redact, b.Logger)

	if host := publicHost(b.Environment.PublicURL); host != "" {
		docs.SwaggerInfo.Host = host
	}

	mode, err := database.ParsePrewarmMode(dbConf.PrewarmMode)
	if err != nil {
		b.Logger.Warnf("%s, falling back to %s", err, database.PrewarmDetached)
		mode = database.PrewarmDetached
	}
	switch mode {
	case database.PrewarmInline:
		b.AddStartupTasks(database.NewPrewarmWorker(db, 0, b.Logger))
	case database.PrewarmDetached:
		b.AddWorkerServices(database.NewPrewarmWorker(db, dbConf.PrewarmDelay, b.Logger))
	default:
		b.Logger.Info("Database pre-warm disabled")
	}
}

func (a *api) routes() []rest.Route {
	return []rest.Route{
		// ----- SYSTEM -----
		rest.NewRoute(rest.GET, "", "", a.health.Root),
		rest.NewRoute(rest.GET, "", "health", a.health.Health),
		rest.NewRoute(rest.GET, "", "health/database", a.health.DatabaseHealth),
		rest.NewRoute(rest.GET, "", "ping", a.health.Ping),
		rest.NewRoute(rest.GET, "", "error", a.health.Error),

		// ----- DIAGNOSTICS -----
		rest.NewRoute(rest.GET, "api/TestConnection", "test-connection", a.diagnostics.TestConnection),
		rest.NewRoute(rest.GET, "api/TestConnection", "test-tables", a.diagnostics.TestTables),
		rest.NewRoute(rest.GET, "api/TestConnection", "test-different-formats", a.diagnostics.TestDifferentFormats),

		// ----- INVESTMENTS -----
		rest.NewRoute(rest.GET, "api", "investments", a.investments.ListInvestments),
		rest.NewRoute(rest.POST, "api", "investments", a.investments.CreateInvestment),
		rest.NewRoute(rest.GET, "api", "investments/:id", a.investments.GetInvestment),
		rest.NewRoute(rest.PUT, "api", "investments/:id", a.investments.UpdateInvestment),
		rest.NewRoute(rest.DELETE, "api", "investments/:id", a.investments.DeleteInvestment),

		// ----- USER PROFILES -----
		rest.NewRoute(rest.GET, "api", "user-profiles", a.profiles.ListUserProfiles),
		rest.NewRoute(rest.POST, "api", "user-profiles", a.profiles.CreateUserProfile),
		rest.NewRoute(rest.GET, "api", "user-profiles/:id", a.profiles.GetUserProfile),
		rest.NewRoute(rest.PUT, "api", "user-profiles/:id", a.profiles.UpdateUserProfile),
		rest.NewRoute(rest.DELETE, "api", "user-profiles/:id", a.profiles.DeleteUserProfile),
		rest.NewRoute(rest.GET, "api", "user-profiles/:id/investments", a.profiles.ListUserInvestments),
	}
}

// publicHost strips the scheme and any path from RAILWAY_STATIC_URL.
func publicHost(publicURL string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(publicURL, "https://"), "http://")
	host, _, _ = strings.Cut(host, "/")
	return host
}
