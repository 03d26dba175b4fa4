// Package api defines the quadsolver.v1.Solver gRPC service. Messages are
// google.protobuf.Struct values, so the service needs no generated stubs:
// requests carry the numeric fields "a", "b" and "c", responses carry
// "root1" and "root2".
package api
