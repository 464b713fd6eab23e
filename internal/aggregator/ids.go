package aggregator

import (
	"strconv"
	"sync/atomic"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// IDGenerator hands out list-entry ids. Ids must never repeat within one
// session, independent of clock resolution.
type IDGenerator interface {
	NextID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NextID() string { return uuid.NewString() }

// SequenceGenerator returns "1", "2", ... in order.
type SequenceGenerator struct {
	n atomic.Int64
}

func (g *SequenceGenerator) NextID() string {
	return strconv.FormatInt(g.n.Add(1), 10)
}

type SnowflakeGenerator struct {
	node *snowflake.Node
}

func NewSnowflakeGenerator(node int64) (*SnowflakeGenerator, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, errors.Wrapf(err, "snowflake node %d", node)
	}
	return &SnowflakeGenerator{node: n}, nil
}

func (g *SnowflakeGenerator) NextID() string { return g.node.Generate().String() }

// NewIDGenerator picks a generator by strategy name: "uuid" (default),
// "snowflake" or "sequence".
func NewIDGenerator(strategy string, node int64) (IDGenerator, error) {
	switch strategy {
	case "", "uuid":
		return UUIDGenerator{}, nil
	case "snowflake":
		return NewSnowflakeGenerator(node)
	case "sequence":
		return &SequenceGenerator{}, nil
	default:
		return nil, errors.Errorf("unknown id strategy %q", strategy)
	}
}
