package node

import (
	"fmt"
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"quadsolver/internal/api"
	"quadsolver/internal/metrics"
)

// Node is a single solver process: one gRPC server exposing the Solver
// and health services.
type Node struct {
	nodeID     string
	listenAddr string
	grpcServer *grpc.Server
	health     *health.Server
}

// NewNode creates a node and registers its services. m may be nil.
func NewNode(nodeID, listenAddr string, m *metrics.Metrics) *Node {
	n := &Node{
		nodeID:     nodeID,
		listenAddr: listenAddr,
		grpcServer: grpc.NewServer(),
		health:     health.NewServer(),
	}

	api.RegisterSolverServer(n.grpcServer, NewServer(nodeID, m))
	healthpb.RegisterHealthServer(n.grpcServer, n.health)

	// Enable gRPC reflection for grpcurl
	reflection.Register(n.grpcServer)

	return n
}

// Start listens on the configured address and serves until Stop is called.
func (n *Node) Start() error {
	lis, err := net.Listen("tcp", n.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", n.listenAddr, err)
	}
	return n.Serve(lis)
}

// Serve serves on lis until Stop is called.
func (n *Node) Serve(lis net.Listener) error {
	n.health.SetServingStatus(api.SolverServiceName, healthpb.HealthCheckResponse_SERVING)
	n.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	log.Printf("[%s] Starting node on %s", n.nodeID, lis.Addr())

	if err := n.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop gracefully stops the node.
func (n *Node) Stop() {
	log.Printf("[%s] Stopping node", n.nodeID)
	n.health.Shutdown()
	n.grpcServer.GracefulStop()
}
