package node

import (
	"log"

	"precisely.dev/real/config"
	"precisely.dev/real/interval"
)

// Iterator walks a Node's enclosures from coarse to tight, one
// precision step at a time, up to the node's resolved maximum
// precision. It holds no lower-level state of its own: each step
// simply re-evaluates the node at the next precision, since Binary
// nodes need the whole subtree re-combined anyway once either child's
// bound changes.
type Iterator struct {
	node      *Node
	precision int
	ceiling   int
	current   interval.Interval
}

// Begin starts an Iterator for n at its coarsest precision (1) and
// computes its first enclosure. It returns an error immediately if n's
// maximum precision cannot be resolved, or if the first enclosure
// itself cannot be computed (e.g. an immediately provable division by
// zero).
func (n *Node) Begin() (*Iterator, error) {
	ceiling, err := n.resolveMaxPrecision()
	if err != nil {
		return nil, err
	}
	it := &Iterator{node: n, ceiling: ceiling}
	iv, err := n.intervalAt(1, ceiling)
	if err != nil {
		return nil, err
	}
	it.precision = 1
	it.current = iv
	if config.Debug("iterator") {
		log.Printf("node: iterator begun at precision 1/%d", ceiling)
	}
	return it, nil
}

// Advance tightens the iterator by one precision step. It returns
// ErrPrecisionExceeded, leaving the iterator's value unchanged, once
// the node's resolved ceiling has already been reached.
func (it *Iterator) Advance() error {
	if it.precision >= it.ceiling {
		return ErrPrecisionExceeded
	}
	next := it.precision + 1
	iv, err := it.node.intervalAt(next, it.ceiling)
	if err != nil {
		return err
	}
	it.precision = next
	it.current = iv
	if config.Debug("iterator") {
		log.Printf("node: iterator advanced to precision %d/%d", it.precision, it.ceiling)
	}
	return nil
}

// AdvanceN calls Advance up to n times, stopping early (and returning
// the error) if any step fails.
func (it *Iterator) AdvanceN(n int) error {
	for i := 0; i < n; i++ {
		if err := it.Advance(); err != nil {
			return err
		}
	}
	return nil
}

// Value returns the iterator's current enclosure.
func (it *Iterator) Value() interval.Interval {
	return it.current
}

// Precision returns the iterator's current precision step.
func (it *Iterator) Precision() int {
	return it.precision
}

// AtCeiling reports whether the iterator has reached its node's
// resolved maximum precision.
func (it *Iterator) AtCeiling() bool {
	return it.precision >= it.ceiling
}
