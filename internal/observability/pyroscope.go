package observability

import (
	"github.com/grafana/pyroscope-go"

	"github.com/riskibarqy/thursday-league/internal/config"
	"github.com/riskibarqy/thursday-league/internal/platform/logging"
)

// The service is request bound and mostly idle, so block and mutex
// profiles are left out.
var profileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

// InitPyroscope starts continuous profiling when enabled.
func InitPyroscope(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags:              profileTags(cfg),
		ProfileTypes:      profileTypes,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("pyroscope enabled",
		"server_address", cfg.PyroscopeServerAddress,
		"application", cfg.PyroscopeAppName,
	)
	return profiler.Stop, nil
}

func profileTags(cfg config.Config) map[string]string {
	return map[string]string{
		"env":     cfg.AppEnv,
		"service": cfg.ServiceName,
		"version": cfg.ServiceVersion,
		"store":   cfg.StoreDriver,
	}
}
