package utilities

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/segmentio/ksuid"
)

// NewKSUID generates a new globally unique KSUID string. Generated row
// identifiers (sessions, notifications) use this form.
func NewKSUID() string {
	return ksuid.New().String()
}

// NewRunID generates a snowflake ID string identifying one generation run,
// using a node ID from the environment variable SNOWFLAKE_NODE. If node
// setup fails it falls back to node 1.
func NewRunID() string {
	nodeEnv := os.Getenv("SNOWFLAKE_NODE")
	if nodeEnv == "" {
		return NewRunIDWithNode(1)
	}
	nodeID, err := strconv.ParseInt(nodeEnv, 10, 64)
	if err != nil {
		return NewRunIDWithNode(1)
	}
	return NewRunIDWithNode(nodeID)
}

// NewRunIDWithNode generates a snowflake ID string using the provided node ID.
// If the node cannot be initialized, it falls back to a KSUID string.
func NewRunIDWithNode(nodeID int64) string {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return NewKSUID()
	}
	return node.Generate().String()
}
