package graph

import "github.com/cx-luo/go-selfies/attribution"

// Order is a bond order: 1, 2, or 3 for single/double/triple, or 1.5 for
// an aromatic bond not yet kekulized.
type Order float64

const (
	OrderSingle   Order = 1
	OrderDouble   Order = 2
	OrderTriple   Order = 3
	OrderAromatic Order = 1.5
)

// Bond is a directed edge source -> destination. Spec §3: non-ring bonds
// are stored once with Source < Destination; ring bonds are stored twice,
// once per direction, with matching Order.
type Bond struct {
	Source    int
	Dest      int
	Order     Order
	Stereo    string // "/", "\\", or ""
	RingBond  bool
	Handle    attribution.Handle
}

// Reversed returns a copy of b with its endpoints swapped, used to
// synthesize the reverse-direction view of a non-ring bond on read.
func (b Bond) Reversed() Bond {
	b.Source, b.Dest = b.Dest, b.Source
	return b
}
