package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// SolverServiceName is the fully qualified gRPC service name.
	SolverServiceName = "quadsolver.v1.Solver"
	// SolveFullMethodName is the full method name of Solver.Solve.
	SolveFullMethodName = "/quadsolver.v1.Solver/Solve"
)

// Field names used in Solve requests and responses.
const (
	FieldA     = "a"
	FieldB     = "b"
	FieldC     = "c"
	FieldRoot1 = "root1"
	FieldRoot2 = "root2"
)

// SolverServer is the server API for the Solver service.
type SolverServer interface {
	Solve(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// SolverClient is the client API for the Solver service.
type SolverClient interface {
	Solve(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type solverClient struct {
	cc grpc.ClientConnInterface
}

// NewSolverClient creates a Solver client on top of cc.
func NewSolverClient(cc grpc.ClientConnInterface) SolverClient {
	return &solverClient{cc: cc}
}

func (c *solverClient) Solve(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, SolveFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterSolverServer registers srv on s.
func RegisterSolverServer(s grpc.ServiceRegistrar, srv SolverServer) {
	s.RegisterService(&SolverServiceDesc, srv)
}

func solveHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SolverServer).Solve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SolveFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SolverServer).Solve(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// SolverServiceDesc is the grpc.ServiceDesc for the Solver service.
var SolverServiceDesc = grpc.ServiceDesc{
	ServiceName: SolverServiceName,
	HandlerType: (*SolverServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Solve",
			Handler:    solveHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "quadsolver/v1/solver.proto",
}
