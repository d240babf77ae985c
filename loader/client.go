package loader

import (
	"context"
	"errors"
)

// Client is the minimal read contract loader needs from a graph database.
type Client interface {
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Result is a simplified query response.
type Result struct {
	Records []Record
}

// Record maps returned column names to values.
type Record map[string]any

// Neo4jOptions configures NewNeo4jClient.
type Neo4jOptions struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// ErrMissingURI indicates that no database URI was given.
var ErrMissingURI = errors.New("loader: graph URI is required")
