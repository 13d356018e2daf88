package grpc

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"salon/backend/internal/api/salonv1"
	"salon/backend/internal/auth"
	"salon/backend/internal/domain"
)

func RequestTimeoutInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := ctx.Deadline(); ok {
			return handler(ctx, req)
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		return handler(ctx, req)
	}
}

type TokenParser interface {
	Parse(token string) (domain.Session, error)
}

// PublicMethods can be called without a session token.
var PublicMethods = map[string]bool{
	salonv1.FullMethod(salonv1.MethodRegister):         true,
	salonv1.FullMethod(salonv1.MethodLogin):            true,
	salonv1.FullMethod(salonv1.MethodBrowseServices):   true,
	salonv1.FullMethod(salonv1.MethodListLocations):    true,
	salonv1.FullMethod(salonv1.MethodListServiceNames): true,
	salonv1.FullMethod(salonv1.MethodAvailableSlots):   true,
}

// AuthInterceptor requires a bearer token on every salon API method that is
// not public and stores the resulting session in the context. Other services
// on the server, such as health, pass through.
func AuthInterceptor(tokens TokenParser, public map[string]bool) grpc.UnaryServerInterceptor {
	prefix := "/" + salonv1.ServiceName + "/"
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !strings.HasPrefix(info.FullMethod, prefix) || public[info.FullMethod] {
			return handler(ctx, req)
		}
		token := bearerToken(ctx)
		if token == "" {
			return nil, status.Error(codes.Unauthenticated, "missing bearer token")
		}
		sess, err := tokens.Parse(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		return handler(auth.WithSession(ctx, sess), req)
	}
}

func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return ""
	}
	v := strings.TrimSpace(values[0])
	if len(v) < 7 || !strings.EqualFold(v[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(v[7:])
}

type RPCObserver interface {
	ObserveRPC(method, code string, elapsed time.Duration)
}

func MetricsInterceptor(obs RPCObserver) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		obs.ObserveRPC(info.FullMethod, status.Code(err).String(), time.Since(start))
		return resp, err
	}
}
