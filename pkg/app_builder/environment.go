package appbuilder

import "strings"

const (
	EnvironmentEnvKey = "APP_ENVIRONMENT"
	PortEnvKey        = "PORT"
	DatabaseURLEnvKey = "DATABASE_URL"
	PublicURLEnvKey   = "RAILWAY_STATIC_URL"

	DevelopmentEnvironment = "Development"
	ProductionEnvironment  = "Production"
)

// Environment is the process environment, captured once during startup.
type Environment struct {
	Name        string
	Port        string
	DatabaseURL string
	PublicURL   string
}

func (e Environment) IsDevelopment() bool {
	return e.Name == DevelopmentEnvironment
}

func ResolveEnvironmentFrom(lookupEnv func(string) (string, bool)) Environment {
	get := func(key string) string {
		v, _ := lookupEnv(key)
		return strings.TrimSpace(v)
	}

	name := get(EnvironmentEnvKey)
	if name == "" {
		name = ProductionEnvironment
	}

	return Environment{
		Name:        name,
		Port:        get(PortEnvKey),
		DatabaseURL: get(DatabaseURLEnvKey),
		PublicURL:   get(PublicURLEnvKey),
	}
}
