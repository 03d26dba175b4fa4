package it

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"quadsolver/internal/metrics"
	"quadsolver/internal/node"
)

// Cluster represents a set of in-process solver nodes listening on
// loopback TCP ports.
type Cluster struct {
	nodes []*Node
	mu    sync.Mutex
}

// Node represents a single node in the test cluster
type Node struct {
	ID       string
	Addr     string
	Registry *prometheus.Registry
	node     *node.Node
	client   *node.Client
	done     chan error
}

// NewCluster creates a new test cluster harness
func NewCluster() *Cluster {
	return &Cluster{
		nodes: make([]*Node, 0),
	}
}

// StartNode starts a single node on an ephemeral loopback port
func (c *Cluster) StartNode(ctx context.Context, nodeID string) (*Node, error) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to listen for node %s: %w", nodeID, err)
	}

	reg := prometheus.NewRegistry()
	addr := lis.Addr().String()
	n := &Node{
		ID:       nodeID,
		Addr:     addr,
		Registry: reg,
		node:     node.NewNode(nodeID, addr, metrics.New(reg)),
		done:     make(chan error, 1),
	}

	go func() {
		n.done <- n.node.Serve(lis)
	}()

	client, err := node.NewClient(addr)
	if err != nil {
		n.node.Stop()
		return nil, fmt.Errorf("failed to dial node %s: %w", nodeID, err)
	}
	n.client = client

	c.mu.Lock()
	c.nodes = append(c.nodes, n)
	c.mu.Unlock()

	if err := c.waitForReady(ctx, n, 10*time.Second); err != nil {
		return nil, fmt.Errorf("node %s failed to become ready: %w", nodeID, err)
	}
	return n, nil
}

// waitForReady waits for a node to be ready by checking health endpoint
func (c *Cluster) waitForReady(ctx context.Context, n *Node, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if time.Now().After(deadline) {
				return fmt.Errorf("timeout waiting for node %s to be ready", n.ID)
			}

			healthCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			err := n.client.Healthy(healthCtx)
			cancel()

			if err == nil {
				return nil
			}
		}
	}
}

// Stop stops all nodes in the cluster
func (c *Cluster) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.nodes {
		n.Stop()
	}
	c.nodes = nil
}

// Stop stops a single node
func (n *Node) Stop() {
	if n.client != nil {
		n.client.Close()
	}
	n.node.Stop()
	<-n.done
}

// GetClient returns the Solver client for a node
func (n *Node) GetClient() *node.Client {
	return n.client
}

// GetNode returns a node by ID
func (c *Cluster) GetNode(nodeID string) *Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.nodes {
		if n.ID == nodeID {
			return n
		}
	}
	return nil
}
