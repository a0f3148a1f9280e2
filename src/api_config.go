package main

import (
	"time"

	"investments-api/pkg/logger"
	"investments-api/pkg/rabbitmq"
	"investments-api/pkg/utilities"
	"investments-api/src/database"
)

const defaultServiceName = "investments-api"

type ApiConfigJson struct {
	ServiceName     string                     `json:"service_name"`
	LoggerConf      logger.LoggerConfigJson    `json:"logger"`
	RabbitmqConf    rabbitmq.RabbimqConfigJson `json:"rabbitmq"`
	RestConf        ApiRestConfigJson          `json:"rest"`
	DatabaseConf    ApiDatabaseConfigJson      `json:"database"`
	DiagnosticsConf ApiDiagnosticsConfigJson   `json:"diagnostics"`
}

func (acj ApiConfigJson) ConvertToDomain() ApiConfig {
	return ApiConfig{
		ServiceName:     utilities.Ternary(acj.ServiceName != "", acj.ServiceName, defaultServiceName),
		LoggerConf:      acj.LoggerConf.ConvertToDomain(),
		RabbitmqConf:    acj.RabbitmqConf.ConvertToDomain(),
		RestConf:        acj.RestConf.ConvertToDomain(),
		DatabaseConf:    acj.DatabaseConf.ConvertToDomain(),
		DiagnosticsConf: acj.DiagnosticsConf.ConvertToDomain(),
	}
}

type ApiConfig struct {
	ServiceName     string
	LoggerConf      logger.LoggerConfig
	RabbitmqConf    rabbitmq.RabbitmqConfig
	RestConf        ApiRestConfig
	DatabaseConf    ApiDatabaseConfig
	DiagnosticsConf ApiDiagnosticsConfig
}

func (ac ApiConfig) GetLoggerConfig() logger.LoggerConfig {
	return ac.LoggerConf
}

func (ac ApiConfig) GetRabbitmqConfig() rabbitmq.RabbitmqConfig {
	return ac.RabbitmqConf
}

func (ac ApiConfig) GetRestApiPort() uint16 {
	return ac.RestConf.Port
}

func (ac ApiConfig) GetServiceName() string {
	return ac.ServiceName
}

func (ac ApiConfig) GetDatabaseConnectionString() string {
	return ac.DatabaseConf.DefaultConnection
}

type ApiRestConfigJson struct {
	Port uint16 `json:"port"`
}

type ApiRestConfig struct {
	Port uint16
}

func (arcj ApiRestConfigJson) ConvertToDomain() ApiRestConfig {
	return ApiRestConfig{
		Port: arcj.Port,
	}
}

type ApiDatabaseConfigJson struct {
	DefaultConnection     string  `json:"default_connection"`
	MaxRetryCount         *uint64 `json:"max_retry_count"`
	MaxRetryDelaySeconds  *int    `json:"max_retry_delay_seconds"`
	CommandTimeoutSeconds *int    `json:"command_timeout_seconds"`
	PrewarmMode           string  `json:"prewarm_mode"`
	PrewarmDelaySeconds   *int    `json:"prewarm_delay_seconds"`
	Verbose               bool    `json:"verbose"`
}

type ApiDatabaseConfig struct {
	DefaultConnection string
	Options           database.Options
	PrewarmMode       string
	PrewarmDelay      time.Duration
}

const defaultPrewarmDelay = 2 * time.Second

// ConvertToDomain fills every absent field from database.DefaultOptions.
func (adcj ApiDatabaseConfigJson) ConvertToDomain() ApiDatabaseConfig {
	opts := database.DefaultOptions()
	if adcj.MaxRetryCount != nil {
		opts.Retry.MaxRetries = *adcj.MaxRetryCount
	}
	if adcj.MaxRetryDelaySeconds != nil {
		opts.Retry.MaxDelay = time.Duration(*adcj.MaxRetryDelaySeconds) * time.Second
	}
	if adcj.CommandTimeoutSeconds != nil {
		opts.CommandTimeout = time.Duration(*adcj.CommandTimeoutSeconds) * time.Second
	}
	opts.Verbose = adcj.Verbose

	delay := defaultPrewarmDelay
	if adcj.PrewarmDelaySeconds != nil {
		delay = time.Duration(*adcj.PrewarmDelaySeconds) * time.Second
	}

	return ApiDatabaseConfig{
		DefaultConnection: adcj.DefaultConnection,
		Options:           opts,
		PrewarmMode:       adcj.PrewarmMode,
		PrewarmDelay:      delay,
	}
}

type ApiDiagnosticsConfigJson struct {
	Secret          string   `json:"secret"`
	ProbeCandidates []string `json:"probe_candidates"`
}

type ApiDiagnosticsConfig struct {
	Secret          string
	ProbeCandidates []string
}

func (adcj ApiDiagnosticsConfigJson) ConvertToDomain() ApiDiagnosticsConfig {
	return ApiDiagnosticsConfig{
		Secret:          adcj.Secret,
		ProbeCandidates: adcj.ProbeCandidates,
	}
}
