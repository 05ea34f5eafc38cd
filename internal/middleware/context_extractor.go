// internal/middleware/context_extractor.go
package middleware

import (
	"context"
	"net"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
)

// ContextKeys for storing request metadata
type ContextKey string

const (
	ContextKeyIPAddress ContextKey = "ip_address"
	ContextKeyUserAgent ContextKey = "user_agent"
	ContextKeyRequestID ContextKey = "request_id"
)

// MetadataExtractorInterceptor extracts client metadata and adds it to context
type MetadataExtractorInterceptor struct{}

// NewMetadataExtractorInterceptor creates a new metadata extractor interceptor
func NewMetadataExtractorInterceptor() *MetadataExtractorInterceptor {
	return &MetadataExtractorInterceptor{}
}

// Unary returns a unary server interceptor for metadata extraction
func (m *MetadataExtractorInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		enrichedCtx := m.enrichContext(ctx)
		return handler(enrichedCtx, req)
	}
}

// Stream returns a stream server interceptor for metadata extraction
func (m *MetadataExtractorInterceptor) Stream() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		stream grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		enrichedCtx := m.enrichContext(stream.Context())

		wrappedStream := &enrichedServerStream{
			ServerStream: stream,
			ctx:          enrichedCtx,
		}

		return handler(srv, wrappedStream)
	}
}

// enrichContext attaches client ip, user agent and a request id.
func (m *MetadataExtractorInterceptor) enrichContext(ctx context.Context) context.Context {
	if ipAddress := extractIPAddress(ctx); ipAddress != "" {
		ctx = context.WithValue(ctx, ContextKeyIPAddress, ipAddress)
	}

	if userAgent := extractUserAgent(ctx); userAgent != "" {
		ctx = context.WithValue(ctx, ContextKeyUserAgent, userAgent)
	}

	// Correlation id for log lines; clients may supply their own.
	requestID := extractMetadataValue(ctx, "x-request-id")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx = context.WithValue(ctx, ContextKeyRequestID, requestID)

	return ctx
}

func extractIPAddress(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}

	host, _, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		return p.Addr.String()
	}
	return host
}

func extractUserAgent(ctx context.Context) string {
	return extractMetadataValue(ctx, "user-agent")
}

func extractMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// ClientInfo carries the extracted request metadata.
type ClientInfo struct {
	IPAddress string
	UserAgent string
	RequestID string
}

// GetClientInfoFromContext reads back what the interceptor stored.
func GetClientInfoFromContext(ctx context.Context) ClientInfo {
	info := ClientInfo{}

	if v, ok := ctx.Value(ContextKeyIPAddress).(string); ok {
		info.IPAddress = v
	}
	if v, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		info.UserAgent = v
	}
	if v, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		info.RequestID = v
	}

	return info
}

// enrichedServerStream overrides the context of the wrapped stream.
type enrichedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *enrichedServerStream) Context() context.Context {
	return s.ctx
}
