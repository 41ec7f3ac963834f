// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the aggregation pipeline

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache receives optional aggregation dumps
	Cache Cache

	// HTTPClient performs feed requests
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
