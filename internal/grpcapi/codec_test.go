package grpcapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

func TestJSONCodecRoundTrip(t *testing.T) {
	codec := JSONCodec{}
	assert.Equal(t, "json", codec.Name())

	in := &GetProjectRequest{Id: "abc", Slug: "orion"}
	data, err := codec.Marshal(in)
	require.NoError(t, err)

	out := &GetProjectRequest{}
	require.NoError(t, codec.Unmarshal(data, out))
	assert.Equal(t, in, out)
}

func TestMethodDescInvokesMethod(t *testing.T) {
	desc := methodDesc("catalog.v1.TestService", "Echo", func(_ context.Context, req *GetTagRequest) (*Tag, error) {
		return &Tag{Id: req.Id, Name: "echo"}, nil
	})
	assert.Equal(t, "Echo", desc.MethodName)

	dec := func(v interface{}) error {
		v.(*GetTagRequest).Id = "tag-1"
		return nil
	}

	resp, err := desc.Handler(nil, context.Background(), dec, nil)
	require.NoError(t, err)
	tag := resp.(*Tag)
	assert.Equal(t, "tag-1", tag.Id)
	assert.Equal(t, "echo", tag.Name)
}

func TestMethodDescRunsInterceptor(t *testing.T) {
	desc := methodDesc("catalog.v1.TestService", "Echo", func(_ context.Context, req *GetTagRequest) (*Tag, error) {
		return &Tag{Id: req.Id}, nil
	})

	var gotMethod string
	interceptor := func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		gotMethod = info.FullMethod
		return handler(ctx, req)
	}

	dec := func(v interface{}) error { return nil }
	_, err := desc.Handler(nil, context.Background(), dec, interceptor)
	require.NoError(t, err)
	assert.Equal(t, "/catalog.v1.TestService/Echo", gotMethod)
}
