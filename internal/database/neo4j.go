package database

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yishak-cs/calboost/internal/logger"
)

// Neo4jClient owns the driver used by the graph food store and the CSV importer
type Neo4jClient struct {
	driver   neo4j.DriverWithContext
	database string
	log      *logger.Logger
}

// Config holds the Neo4j connection configuration
type Config struct {
	URI      string
	Username string
	Password string
	Database string // typically "neo4j" for AuraDB
}

// NewNeo4jClient dials and verifies the configured instance
func NewNeo4jClient(config Config, log *logger.Logger) (*Neo4jClient, error) {
	if config.URI == "" {
		return nil, fmt.Errorf("missing NEO4J_URI")
	}

	driver, err := neo4j.NewDriverWithContext(config.URI, neo4j.BasicAuth(config.Username, config.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create Neo4j driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("failed to verify Neo4j connectivity: %w", err)
	}

	log.Info("connected to Neo4j", "uri", config.URI, "database", config.Database)
	return &Neo4jClient{
		driver:   driver,
		database: config.Database,
		log:      log,
	}, nil
}

// Close closes the Neo4j driver connection
func (c *Neo4jClient) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// ExecuteWrite runs a statement on the writers and drops its rows
func (c *Neo4jClient) ExecuteWrite(ctx context.Context, query string, params map[string]interface{}) error {
	_, err := c.run(ctx, "write", query, params, neo4j.ExecuteQueryWithWritersRouting())
	return err
}

// ExecuteWriteWithResult runs a statement on the writers and returns its rows as maps
func (c *Neo4jClient) ExecuteWriteWithResult(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	return c.run(ctx, "write", query, params, neo4j.ExecuteQueryWithWritersRouting())
}

// ExecuteRead runs a query on the readers and returns its rows as maps
func (c *Neo4jClient) ExecuteRead(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	return c.run(ctx, "read", query, params, neo4j.ExecuteQueryWithReadersRouting())
}

func (c *Neo4jClient) run(ctx context.Context, mode, query string, params map[string]interface{}, routing neo4j.ExecuteQueryConfigurationOption) ([]map[string]interface{}, error) {
	start := time.Now()
	result, err := neo4j.ExecuteQuery(ctx, c.driver, query, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(c.database),
		routing,
	)
	if err != nil {
		return nil, fmt.Errorf("neo4j %s query failed: %w", mode, err)
	}
	c.log.Debug("neo4j query", "mode", mode, "rows", len(result.Records), "duration_ms", time.Since(start).Milliseconds())
	return recordsToMaps(result.Records), nil
}

// Health pings the database with a trivial read
func (c *Neo4jClient) Health(ctx context.Context) error {
	if _, err := c.ExecuteRead(ctx, "RETURN 1 AS ok", nil); err != nil {
		return fmt.Errorf("neo4j health check failed: %w", err)
	}
	return nil
}

func recordsToMaps(records []*neo4j.Record) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		row := make(map[string]interface{}, len(record.Keys))
		for i, key := range record.Keys {
			row[key] = record.Values[i]
		}
		rows = append(rows, row)
	}
	return rows
}
