package w2apb

import (
	"context"

	"google.golang.org/grpc"
)

// Word2Animal_GetAnimal_FullMethodName is the full RPC method path.
const Word2Animal_GetAnimal_FullMethodName = "/word2animal.Word2Animal/GetAnimal"

// Word2AnimalClient is the client API for the Word2Animal service.
type Word2AnimalClient interface {
	GetAnimal(ctx context.Context, in *GetAnimalRequest, opts ...grpc.CallOption) (*GetAnimalResponse, error)
}

type word2AnimalClient struct {
	cc grpc.ClientConnInterface
}

// NewWord2AnimalClient returns a client stub bound to cc.
func NewWord2AnimalClient(cc grpc.ClientConnInterface) Word2AnimalClient {
	return &word2AnimalClient{cc: cc}
}

func (c *word2AnimalClient) GetAnimal(ctx context.Context, in *GetAnimalRequest, opts ...grpc.CallOption) (*GetAnimalResponse, error) {
	out := new(GetAnimalResponse)
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := c.cc.Invoke(ctx, Word2Animal_GetAnimal_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Word2AnimalServer is the server API for the Word2Animal service.
type Word2AnimalServer interface {
	GetAnimal(context.Context, *GetAnimalRequest) (*GetAnimalResponse, error)
}

// RegisterWord2AnimalServer registers srv on s. The server must be built with
// grpc.ForceServerCodec(Codec{}) so inbound frames decode through this package.
func RegisterWord2AnimalServer(s grpc.ServiceRegistrar, srv Word2AnimalServer) {
	s.RegisterService(&Word2Animal_ServiceDesc, srv)
}

func _Word2Animal_GetAnimal_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetAnimalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Word2AnimalServer).GetAnimal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Word2Animal_GetAnimal_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(Word2AnimalServer).GetAnimal(ctx, req.(*GetAnimalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Word2Animal_ServiceDesc is the grpc.ServiceDesc for the Word2Animal service.
var Word2Animal_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "word2animal.Word2Animal",
	HandlerType: (*Word2AnimalServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetAnimal",
			Handler:    _Word2Animal_GetAnimal_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "word2animal.proto",
}
