package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/bjaus/textfmt"
	"github.com/bjaus/textfmt/internal/render"
)

var _ Command = (*ChunksCommand)(nil)

var (
	// ErrNegativeSize is returned for a negative --size.
	ErrNegativeSize = errors.New("size must not be negative")

	// ErrTooManyWrites is returned when a plan would exceed MaxPlanWrites rows.
	ErrTooManyWrites = errors.New("too many writes to plan")
)

// MaxPlanWrites bounds the rows a chunk plan may render.
const MaxPlanWrites = 1 << 16

// lengthTypes maps a stream length type name to its largest chunk.
var lengthTypes = map[string]int{
	"int8":  textfmt.MaxChunk[int8](),
	"int16": textfmt.MaxChunk[int16](),
	"int32": textfmt.MaxChunk[int32](),
	"int64": textfmt.MaxChunk[int64](),
}

// ChunkRow is one raw write of a chunk plan.
type ChunkRow struct {
	Index  int `json:"index" yaml:"index"`
	Offset int `json:"offset" yaml:"offset"`
	Length int `json:"length" yaml:"length"`
}

func (r ChunkRow) Row() []string {
	return []string{strconv.Itoa(r.Index), strconv.Itoa(r.Offset), strconv.Itoa(r.Length)}
}

func (r ChunkRow) Header() []string {
	return []string{"INDEX", "OFFSET", "LENGTH"}
}

func (r ChunkRow) Alignments() []render.Alignment {
	return []render.Alignment{render.AlignRight, render.AlignRight, render.AlignRight}
}

// PlanChunks lists the raw writes a buffer of size bytes needs when no
// write may exceed limit bytes.
func PlanChunks(size, limit int) []ChunkRow {
	var rows []ChunkRow
	for off, n := range textfmt.Chunks(size, limit) {
		rows = append(rows, ChunkRow{Index: len(rows), Offset: off, Length: n})
	}
	return rows
}

// ChunksCommand renders the chunk plan for a buffer written to a stream
// with the given length type.
type ChunksCommand struct {
	*SharedOptions

	// Size is the buffer size in bytes.
	Size int

	// Type names the stream's signed length type.
	Type string

	limit int
}

// NewChunksCommand creates a ChunksCommand sharing opts.
func NewChunksCommand(opts *SharedOptions) *ChunksCommand {
	return &ChunksCommand{SharedOptions: opts, Type: "int32"}
}

// AddFlags registers the chunks flags.
func (c *ChunksCommand) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "Buffer size in bytes")
	fs.StringVar(&c.Type, "type", c.Type, "Stream length type (int8|int16|int32|int64)")
}

// Complete resolves the chunk limit of the length type.
func (c *ChunksCommand) Complete() error {
	if err := c.SharedOptions.Complete(); err != nil {
		return err
	}
	c.limit = lengthTypes[c.Type]
	return nil
}

// Validate checks the size and length type.
func (c *ChunksCommand) Validate() error {
	if err := c.SharedOptions.Validate(); err != nil {
		return err
	}
	if c.Size < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, c.Size)
	}
	if _, ok := lengthTypes[c.Type]; !ok {
		names := make([]string, 0, len(lengthTypes))
		for name := range lengthTypes {
			names = append(names, name)
		}
		slices.Sort(names)
		return fmt.Errorf("invalid length type: %s (must be one of %v)", c.Type, names)
	}
	if writes := planWrites(c.Size, c.limit); writes > MaxPlanWrites {
		return fmt.Errorf("%w: %d bytes as %s needs %d, limit is %d", ErrTooManyWrites, c.Size, c.Type, writes, MaxPlanWrites)
	}
	return nil
}

// planWrites counts the raw writes for size bytes without building them.
func planWrites(size, limit int) int {
	if size == 0 {
		return 0
	}
	return (size-1)/limit + 1
}

// Run renders the chunk plan.
func (c *ChunksCommand) Run(_ context.Context) error {
	rows := PlanChunks(c.Size, c.limit)
	c.Log.WithFields(logrus.Fields{
		"size":   c.Size,
		"type":   c.Type,
		"limit":  c.limit,
		"writes": len(rows),
	}).Debug("planning chunks")
	return render.Write(c.IO.Out, c.format(), rows...)
}
