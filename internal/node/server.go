package node

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"quadsolver/internal/metrics"
	"quadsolver/internal/quadratic"
)

// Server implements the Solver gRPC service.
type Server struct {
	nodeID  string
	metrics *metrics.Metrics
}

// NewServer creates a new gRPC server instance. m may be nil.
func NewServer(nodeID string, m *metrics.Metrics) *Server {
	return &Server{
		nodeID:  nodeID,
		metrics: m,
	}
}

// Solve handles Solve requests.
func (s *Server) Solve(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	start := time.Now()

	a, b, c, err := structToCoefficients(req)
	if err != nil {
		log.Printf("[%s] Solve rejected: %v", s.nodeID, err)
		s.metrics.Observe(metrics.OutcomeInvalidArgument, start)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	log.Printf("[%s] Solve request: a=%g, b=%g, c=%g", s.nodeID, a, b, c)

	root1, root2, err := quadratic.Solve(a, b, c)
	if err != nil {
		s.metrics.Observe(metrics.OutcomeDomainError, start)
		return nil, status.Error(codes.OutOfRange, err.Error())
	}

	outcome := metrics.OutcomeOK
	if !quadratic.IsFinite(root1, root2) {
		outcome = metrics.OutcomeNonFinite
	}
	s.metrics.Observe(outcome, start)

	return rootsToStruct(root1, root2), nil
}
