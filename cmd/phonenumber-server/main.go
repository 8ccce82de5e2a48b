// Copyright (c) 2025 A Bit of Help, Inc.

// Command phonenumber-server is the thin gRPC facade §1 calls out as an
// out-of-scope external collaborator: it exposes Parse, Format,
// IsValidNumber, and FindNumbers (§6.4) as RPCs over the core packages,
// with no business logic of its own.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abitofhelp/phonenumber/classify"
	"github.com/abitofhelp/phonenumber/config"
	"github.com/abitofhelp/phonenumber/env"
	"github.com/abitofhelp/phonenumber/format"
	"github.com/abitofhelp/phonenumber/logging"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/parse"
	"github.com/abitofhelp/phonenumber/regexcache"
	"github.com/abitofhelp/phonenumber/scan"
	"github.com/abitofhelp/phonenumber/telemetry"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// defaultConfigYAML mirrors the teacher's own
// examples/telemetry/initialization_example.go inline-YAML pattern: a
// ready-to-run default, overridable by pointing PHONENUMBER_CONFIG at a
// real file.
const defaultConfigYAML = `
telemetry:
  enabled: true
  service_name: "phonenumber-server"
  environment: "development"
  version: "1.0.0"
  shutdown_timeout: 5
  otlp:
    endpoint: "localhost:4317"
    insecure: true
    timeout_seconds: 5
  tracing:
    enabled: false
  metrics:
    enabled: true
    reporting_frequency_seconds: 15
    prometheus:
      enabled: true
      listen: "0.0.0.0:9090"
      path: "/metrics"
  http:
    tracing_enabled: false
`

func main() {
	zapLogger, err := logging.NewLogger(env.GetEnv("LOG_LEVEL", "info"), true)
	if err != nil {
		fmt.Fprintln(os.Stderr, "phonenumber-server: failed to create logger:", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()
	logger := logging.NewContextLogger(zapLogger)
	ctx := context.Background()

	k := koanf.New(".")
	configBytes := []byte(defaultConfigYAML)
	if path := env.GetEnv("PHONENUMBER_CONFIG", ""); path != "" {
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			logger.Fatal(ctx, "failed to read config file", zap.Error(readErr), zap.String("path", path))
		}
		configBytes = raw
	}
	if err := k.Load(rawbytes.Provider(configBytes), yaml.Parser()); err != nil {
		logger.Fatal(ctx, "failed to load configuration", zap.Error(err))
	}

	telemetryProvider, err := telemetry.NewTelemetryProvider(ctx, logger, k)
	if err != nil {
		logger.Fatal(ctx, "failed to create telemetry provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = telemetryProvider.Shutdown(shutdownCtx)
	}()

	// appConfig exposes the same service_name/version/environment keys
	// telemetry loaded from k, through the adapter's generic AppConfig
	// surface, for the startup log line and the /version endpoint below.
	appConfig := config.NewGenericConfigAdapter(koanfAppConfig{k: k}).GetApp()
	logger.Info(ctx, "starting phonenumber-server",
		zap.String("name", appConfig.GetName()),
		zap.String("version", appConfig.GetVersion()),
		zap.String("environment", appConfig.GetEnvironment()))

	store := metadata.NewDefaultStore(logger)
	regexes := regexcache.New(logger)
	svc := &phonenumberService{
		parser:     parse.New(store, regexes),
		classifier: classify.New(store, regexes),
		formatter:  format.New(store, regexes),
		scanner:    scan.New(store, regexes),
		logger:     logger,
	}

	grpcAddr := env.GetEnv("PHONENUMBER_GRPC_ADDR", ":50051")
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		logger.Fatal(ctx, "failed to listen", zap.Error(err), zap.String("addr", grpcAddr))
	}

	grpcServer := grpc.NewServer()
	grpcServer.RegisterService(&serviceDesc, svc)

	metricsAddr := k.String("telemetry.metrics.prometheus.listen")
	if metricsAddr == "" {
		metricsAddr = ":9090"
	}
	metricsMux := http.NewServeMux()
	metricsMux.Handle(pathOrDefault(k.String("telemetry.metrics.prometheus.path")), telemetryProvider.CreatePrometheusHandler())
	metricsMux.HandleFunc("/version", versionHandler(appConfig))
	metricsServer := &http.Server{Addr: metricsAddr, Handler: metricsMux}

	go func() {
		logger.Info(ctx, "metrics server listening", zap.String("addr", metricsAddr))
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		logger.Info(ctx, "gRPC server listening", zap.String("addr", grpcAddr))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error(ctx, "gRPC server failed", zap.Error(err))
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	logger.Info(ctx, "shutting down")
	grpcServer.GracefulStop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = metricsServer.Shutdown(shutdownCtx)
}

func pathOrDefault(p string) string {
	if p == "" {
		return "/metrics"
	}
	return p
}

// koanfAppConfig implements config.AppConfigProvider over the same *koanf.Koanf
// telemetry already loaded, so the two never disagree about the service's
// identity.
type koanfAppConfig struct {
	k *koanf.Koanf
}

func (c koanfAppConfig) GetAppName() string        { return c.k.String("telemetry.service_name") }
func (c koanfAppConfig) GetAppVersion() string     { return c.k.String("telemetry.version") }
func (c koanfAppConfig) GetAppEnvironment() string { return c.k.String("telemetry.environment") }

// versionHandler reports the running build's identity, the way
// examples/health/custom_health_status_example.go exposes config.Config
// fields over HTTP.
func versionHandler(app config.AppConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(struct {
			Name        string `json:"name"`
			Version     string `json:"version"`
			Environment string `json:"environment"`
		}{
			Name:        app.GetName(),
			Version:     app.GetVersion(),
			Environment: app.GetEnvironment(),
		})
	}
}
