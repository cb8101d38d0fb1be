package observability

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/thursday-league/internal/config"
	"github.com/riskibarqy/thursday-league/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "thursday-league-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSNIsNoop(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  "}

	shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestProfilingDisabled(t *testing.T) {
	logger := logging.NewNop()

	stop, err := InitPyroscope(config.Config{}, logger)
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}

	srv, err := StartPprofServer(config.Config{}, logger)
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected no pprof server when disabled")
	}
	if err := StopPprofServer(nil, logger, time.Second); err != nil {
		t.Fatalf("stop nil pprof server: %v", err)
	}
}
