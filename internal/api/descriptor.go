package api

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/structpb"
)

// SolverFile is the descriptor of quadsolver/v1/solver.proto, registered in
// protoregistry.GlobalFiles so reflection clients can describe the service.
var SolverFile protoreflect.FileDescriptor

func solverFileProto() *descriptorpb.FileDescriptorProto {
	structName := "." + string((&structpb.Struct{}).ProtoReflect().Descriptor().FullName())

	return &descriptorpb.FileDescriptorProto{
		Name:       proto.String(SolverServiceDesc.Metadata.(string)),
		Package:    proto.String("quadsolver.v1"),
		Dependency: []string{"google/protobuf/struct.proto"},
		Syntax:     proto.String("proto3"),
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: proto.String("Solver"),
				Method: []*descriptorpb.MethodDescriptorProto{
					{
						Name:       proto.String("Solve"),
						InputType:  proto.String(structName),
						OutputType: proto.String(structName),
					},
				},
			},
		},
	}
}

func init() {
	fd, err := protodesc.NewFile(solverFileProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic("api: building solver descriptor: " + err.Error())
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic("api: registering solver descriptor: " + err.Error())
	}
	SolverFile = fd
}
