package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "equipment.v1alpha1.ItemService"

// Full method names
const (
	CreateItemFullMethodName       = "/" + ServiceName + "/CreateItem"
	GetItemFullMethodName          = "/" + ServiceName + "/GetItem"
	ListCreatedItemsFullMethodName = "/" + ServiceName + "/ListCreatedItems"
	ListPrototypesFullMethodName   = "/" + ServiceName + "/ListPrototypes"
)

// ItemServiceServer is the server API for the item service. Requests and
// responses travel as google.protobuf.Struct.
type ItemServiceServer interface {
	CreateItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListCreatedItems(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListPrototypes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterItemServiceServer registers srv on s
func RegisterItemServiceServer(s grpc.ServiceRegistrar, srv ItemServiceServer) {
	s.RegisterService(&ItemServiceDesc, srv)
}

// ItemServiceDesc describes the item service for grpc.Server
var ItemServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ItemServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateItem", Handler: unaryHandler(CreateItemFullMethodName, ItemServiceServer.CreateItem)},
		{MethodName: "GetItem", Handler: unaryHandler(GetItemFullMethodName, ItemServiceServer.GetItem)},
		{MethodName: "ListCreatedItems", Handler: unaryHandler(ListCreatedItemsFullMethodName, ItemServiceServer.ListCreatedItems)},
		{MethodName: "ListPrototypes", Handler: unaryHandler(ListPrototypesFullMethodName, ItemServiceServer.ListPrototypes)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "equipment/v1alpha1/item.proto",
}

type unaryMethod func(ItemServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unaryHandler builds the decode and intercept wrapper protoc would generate
func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ItemServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ItemServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ItemServiceClient is the client API for the item service
type ItemServiceClient interface {
	CreateItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListCreatedItems(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListPrototypes(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type itemServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewItemServiceClient creates a client on an existing connection
func NewItemServiceClient(cc grpc.ClientConnInterface) ItemServiceClient {
	return &itemServiceClient{cc: cc}
}

func (c *itemServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *itemServiceClient) CreateItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, CreateItemFullMethodName, in, opts)
}

func (c *itemServiceClient) GetItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetItemFullMethodName, in, opts)
}

func (c *itemServiceClient) ListCreatedItems(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListCreatedItemsFullMethodName, in, opts)
}

func (c *itemServiceClient) ListPrototypes(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListPrototypesFullMethodName, in, opts)
}
