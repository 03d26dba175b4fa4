package node

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"quadsolver/internal/api"
	"quadsolver/internal/quadratic"
)

// Client calls the Solver service on a single node.
type Client struct {
	conn   *grpc.ClientConn
	solver api.SolverClient
	health healthpb.HealthClient
}

// NewClient creates a client for target. The connection is insecure;
// opts are appended after the transport credentials.
func NewClient(target string, opts ...grpc.DialOption) (*Client, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", target, err)
	}

	return &Client{
		conn:   conn,
		solver: api.NewSolverClient(conn),
		health: healthpb.NewHealthClient(conn),
	}, nil
}

// Solve asks the node for the roots of a·x² + b·x + c = 0.
// A negative discriminant is reported as an error wrapping
// quadratic.ErrNegativeDiscriminant.
func (cl *Client) Solve(ctx context.Context, a, b, c float64) (float64, float64, error) {
	resp, err := cl.solver.Solve(ctx, coefficientsToStruct(a, b, c))
	if err != nil {
		if st, ok := status.FromError(err); ok && st.Code() == codes.OutOfRange {
			return 0, 0, fmt.Errorf("%w: %s", quadratic.ErrNegativeDiscriminant, st.Message())
		}
		return 0, 0, err
	}
	return structToRoots(resp)
}

// Healthy reports whether the node's Solver service is serving.
func (cl *Client) Healthy(ctx context.Context) error {
	resp, err := cl.health.Check(ctx, &healthpb.HealthCheckRequest{Service: api.SolverServiceName})
	if err != nil {
		return err
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("service %s is %s", api.SolverServiceName, resp.GetStatus())
	}
	return nil
}

// Close closes the underlying connection.
func (cl *Client) Close() error {
	return cl.conn.Close()
}
