package grpcapi

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"

	"project-catalog/internal/metrics"
	"project-catalog/internal/services"
)

func init() {
	encoding.RegisterCodec(JSONCodec{})
}

// NewServer builds the gRPC server with all catalogue services registered
// and the JSON codec forced, so clients do not need protobuf descriptors.
func NewServer(projects *services.ProjectService, releases *services.ReleaseService, tags *services.TagService, reg *metrics.Registry, log zerolog.Logger) *grpc.Server {
	server := grpc.NewServer(
		grpc.ForceServerCodec(JSONCodec{}),
		grpc.ChainUnaryInterceptor(
			loggingInterceptor(log),
			metricsInterceptor(reg),
		),
	)

	projectsServer := NewProjectsServer(projects)
	releasesServer := NewReleasesServer(releases)
	tagsServer := NewTagsServer(tags)

	server.RegisterService(projectsServer.ServiceDesc(), projectsServer)
	server.RegisterService(releasesServer.ServiceDesc(), releasesServer)
	server.RegisterService(tagsServer.ServiceDesc(), tagsServer)

	return server
}

func loggingInterceptor(log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		event := log.Info()
		if err != nil {
			event = log.Warn().Err(err)
		}
		event.
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Msg("grpc request")
		return resp, err
	}
}

func metricsInterceptor(reg *metrics.Registry) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)

		code := codes.OK
		if err != nil {
			code = status.Code(err)
		}
		reg.GRPCRequestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
		return resp, err
	}
}
