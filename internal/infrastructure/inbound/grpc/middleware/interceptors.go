package middleware

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	ports "studentoffice-service/internal/domain/ports/output"
)

func UnaryLoggerInterceptor(log ports.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		if err != nil {
			log.Warn("gRPC request failed",
				slog.String("method", info.FullMethod),
				slog.String("code", code.String()),
				slog.Duration("duration", time.Since(start)),
				slog.String("error", err.Error()))
			return resp, err
		}

		log.Debug("gRPC request handled",
			slog.String("method", info.FullMethod),
			slog.String("code", code.String()),
			slog.Duration("duration", time.Since(start)))
		return resp, nil
	}
}

func UnaryMetricsInterceptor(metrics ports.MetricsProvider) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err).String()
		metrics.IncrementGRPCRequests(info.FullMethod, code)
		metrics.RecordGRPCRequestDuration(info.FullMethod, code, time.Since(start))
		return resp, err
	}
}
