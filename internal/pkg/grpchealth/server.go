package grpchealth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"battery-delivery/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

const (
	ServiceName = "battery-delivery"

	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second

	checkInterval = 10 * time.Second
	pingTimeout   = time.Second
)

// Server отдает grpc.health.v1 для оркестратора. Статус пересчитывается по пингу БД,
// при остановке сервиса переводится в NOT_SERVING до закрытия соединений.
type Server struct {
	log    handlerLogger
	port   string
	store  Pinger
	health *health.Server
	server *grpc.Server
}

func New(log handlerLogger, port string, store Pinger) *Server {
	healthServer := health.NewServer()

	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
	)
	healthpb.RegisterHealthServer(server, healthServer)

	return &Server{
		log: log.With(
			logger.NewField("component", "grpc-health"),
			logger.NewField("port", port),
		),
		port:   port,
		store:  store,
		health: healthServer,
		server: server,
	}
}

// Start блокируется до отмены ctx или ошибки Serve.
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", fmt.Sprintf(":%s", s.port))
	if err != nil {
		return fmt.Errorf("grpc health listen: %w", err)
	}

	s.Refresh(ctx)
	go s.watch(ctx)

	s.log.Info("grpc health server starting")

	err = s.server.Serve(listener)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc health serve: %w", err)
	}
	return nil
}

// Refresh пингует хранилище и выставляет статус общего и именованного сервиса.
func (s *Server) Refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING

	if s.store != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := s.store.Ping(pingCtx)
		cancel()
		if err != nil {
			s.log.With(logger.NewField("error", err)).Warn("storage ping failed")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Check тот же ответ, что получает внешний клиент grpc.health.v1.
func (s *Server) Check(ctx context.Context, service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

// Shutdown NOT_SERVING для всех сервисов, затем GracefulStop.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.server.GracefulStop()
	s.log.Info("grpc health server stopped")
}

func (s *Server) watch(ctx context.Context) {
	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}
