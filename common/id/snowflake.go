package id

import (
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
// Only the first call has any effect.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a time-ordered unique int64 ID. Init must have been called.
func New() int64 {
	return node.Generate().Int64()
}

// NewString is New formatted in base 10, the form used in headers and logs.
func NewString() string {
	return strconv.FormatInt(New(), 10)
}
