package container

import (
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"go-image-intensity/internal/backend"
	"go-image-intensity/internal/cache"
	"go-image-intensity/internal/config"
	"go-image-intensity/internal/service"
	"go-image-intensity/internal/transport"
)

// Container holds the gateway's long-lived dependencies: the Redis and gRPC
// connections are created once at startup and injected down the graph, never
// reached for as ambient singletons.
type Container struct {
	config      *config.Config
	redisClient *redis.Client
	grpcConn    *grpc.ClientConn
	handler     http.Handler
}

// NewContainer builds the dependency graph for the HTTP gateway
func NewContainer(cfg *config.Config) (*Container, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	resultCache := cache.NewRedisCache(redisClient)

	conn, err := grpc.NewClient(cfg.BackendAddress,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to set up backend connection: %w", err)
	}
	analyzer := backend.NewGRPCAnalyzer(conn, cfg.AnalysisTimeout)

	svc := service.NewIntensityService(resultCache, analyzer, cfg.AllowedFormats, cfg.CacheTTL)
	handler := transport.NewHandler(svc, cfg)

	return &Container{
		config:      cfg,
		redisClient: redisClient,
		grpcConn:    conn,
		handler:     handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Close releases the shared connections
func (c *Container) Close() error {
	if err := c.grpcConn.Close(); err != nil {
		return err
	}
	return c.redisClient.Close()
}
