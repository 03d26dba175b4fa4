package it

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadsolver/internal/quadratic"
)

func TestSmoke_SolveOverTCP(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cluster := NewCluster()
	defer cluster.Stop()

	_, err := cluster.StartNode(ctx, "n1")
	require.NoError(t, err, "Failed to start node")

	node1 := cluster.GetNode("n1")
	require.NotNil(t, node1)
	client := node1.GetClient()

	// Two real roots
	r1, r2, err := client.Solve(ctx, 1, -3, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, r1)
	assert.Equal(t, 1.0, r2)

	// Double root
	r1, r2, err = client.Solve(ctx, 1, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, -1.0, r1)
	assert.Equal(t, -1.0, r2)

	// No real roots
	_, _, err = client.Solve(ctx, 1, 0, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, quadratic.ErrNegativeDiscriminant))

	// Zero leading coefficient
	r1, r2, err = client.Solve(ctx, 0, 2, 4)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r1))
	assert.True(t, math.IsInf(r2, -1))

	expected := `
# HELP quadsolver_solve_requests_total Solve requests by outcome.
# TYPE quadsolver_solve_requests_total counter
quadsolver_solve_requests_total{outcome="domain_error"} 1
quadsolver_solve_requests_total{outcome="invalid_argument"} 0
quadsolver_solve_requests_total{outcome="non_finite"} 1
quadsolver_solve_requests_total{outcome="ok"} 2
`
	err = testutil.GatherAndCompare(node1.Registry, strings.NewReader(expected), "quadsolver_solve_requests_total")
	assert.NoError(t, err)
}

func TestSmoke_ConcurrentClients(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cluster := NewCluster()
	defer cluster.Stop()

	for i := 1; i <= 2; i++ {
		_, err := cluster.StartNode(ctx, fmt.Sprintf("n%d", i))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 40; i++ {
		n := cluster.GetNode(fmt.Sprintf("n%d", i%2+1))
		wg.Add(1)
		go func(k float64) {
			defer wg.Done()
			// (x - k)(x + 1) = x^2 + (1-k)x - k
			r1, r2, err := n.GetClient().Solve(ctx, 1, 1-k, -k)
			if err != nil {
				errs <- err
				return
			}
			if r1 != k || r2 != -1 {
				errs <- fmt.Errorf("k=%g: got (%g, %g)", k, r1, r2)
			}
		}(float64(i))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
