package grpcapi

import (
	"context"

	"google.golang.org/grpc"
)

// methodDesc builds a unary grpc.MethodDesc around a typed method. The
// handler mirrors what protoc-generated code emits, with the service
// method captured in a closure instead of asserted from srv.
func methodDesc[Req any, Resp any](service, name string, method func(context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return method(ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return method(ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
