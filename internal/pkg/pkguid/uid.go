package pkguid

import "fmt"

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string.
	Generate() string
}

// Strategy names accepted by New.
const (
	StrategyUUID      = "uuid"
	StrategySnowflake = "snowflake"
)

// New returns the generator registered under strategy. An empty strategy
// selects UUID.
func New(strategy string) (StringID, error) {
	switch strategy {
	case "", StrategyUUID:
		return NewUUID(), nil
	case StrategySnowflake:
		return NewSnowflake()
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
