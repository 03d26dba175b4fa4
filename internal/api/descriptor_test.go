package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

func TestSolverFile_Registered(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName(SolverServiceName)
	require.NoError(t, err)

	sd, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok, "%s is not a service", SolverServiceName)

	m := sd.Methods().ByName("Solve")
	require.NotNil(t, m)
	assert.Equal(t, protoreflect.FullName("google.protobuf.Struct"), m.Input().FullName())
	assert.Equal(t, protoreflect.FullName("google.protobuf.Struct"), m.Output().FullName())
	assert.Equal(t, SolveFullMethodName, "/"+string(sd.FullName())+"/"+string(m.Name()))
}

func TestSolverFile_MatchesServiceDesc(t *testing.T) {
	fd, err := protoregistry.GlobalFiles.FindFileByPath(SolverServiceDesc.Metadata.(string))
	require.NoError(t, err)
	assert.Same(t, SolverFile, fd)
	assert.Equal(t, 1, fd.Services().Len())
	assert.Equal(t, SolverServiceName, string(fd.Services().Get(0).FullName()))
}
