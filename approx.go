// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

import "github.com/sirupsen/logrus"

// OffSet scans a Diagram for round-up victim candidates: non-terminal
// nodes with one child at the 0-sink and the other at the 1-sink. It
// returns the first such candidate found in index order.
//
// The frequency map this is grounded on is keyed by node Pointer, so every
// candidate is tallied at count exactly 1; with every count equal,
// "maximum count" reduces to "first candidate in index order," which is
// exactly what this returns.
func OffSet(d *Diagram) (Pointer, bool) {
	if d.IsTrue() {
		return 0, false
	}
	if d.IsFalse() {
		return d.Root(), true
	}
	for _, p := range d.Indices() {
		if p.IsTerminal() {
			continue
		}
		low, high := d.Low(p), d.High(p)
		if low.IsZero() && high.IsOne() {
			return p, true
		}
		if high.IsZero() && low.IsOne() {
			return p, true
		}
	}
	return 0, false
}

// RoundUp monotonically shrinks d by turning one 0-path into a 1-path: it
// picks a victim via OffSet, redirects its 0-child to the 1-sink (making
// the victim itself equivalent to the 1-sink), then removes it and
// cascades the removal through every node this redirection also collapsed
// to the 1-sink. Weakening is safe here because the CDCL side is the
// authoritative decision procedure; d only ever grows logically weaker
// (over-approximating), never stronger. A constant diagram has no decision
// node to pick as a victim and is left unchanged.
func RoundUp(d *Diagram, c *Coordinator) {
	p, ok := OffSet(d)
	if !ok || p.IsTerminal() {
		return
	}

	if d.Low(p).IsZero() {
		d.ReplaceLow(p, 1)
	} else {
		d.ReplaceHigh(p, 1)
	}

	before := d.Size()
	update(d, p, 1, c)
	logrus.WithFields(logrus.Fields{"component": "approx", "removed": before - d.Size()}).Debug("round-up")

	ReduceTautologies(d)
}

// update removes the node at pointer from d, redirects every remaining
// node's low/high child that pointed at it to replace, shift-compensates
// every child pointer above the removed index, and cascades the removal
// through every node this rewrite makes redundant in turn (equal low/high,
// or a duplicate of an already-seen triple). A node whose low and high both
// end up pointing at replace falls out of the same low==high check that
// catches every other redundant node, so the whole cascade runs as one
// worklist inside cascadeDelete rather than as a second pass over indices
// that the first pass has already shifted.
func update(d *Diagram, pointer, replace Pointer, c *Coordinator) {
	d.remove(pointer)

	existing := map[Node]Pointer{}
	var toReplace []replacement

	for idx := 0; idx < d.Size(); idx++ {
		p := Pointer(idx)
		n := d.nodeAt(p)

		if n.Low == pointer {
			n.Low = replace
			d.setNode(p, n)
		}
		if n.High == pointer {
			n.High = replace
			d.setNode(p, n)
		}
		n = d.nodeAt(p)
		if n.Low > pointer {
			n.Low--
			d.setNode(p, n)
		}
		if n.High > pointer {
			n.High--
			d.setNode(p, n)
		}
		n = d.nodeAt(p)
		if n.Low == n.High && !p.IsTerminal() {
			toReplace = appendUnique(toReplace, replacement{index: idx, with: n.Low})
		}
		if i, ok := existing[n]; ok {
			toReplace = appendUnique(toReplace, replacement{index: idx, with: i})
		}
		existing[n] = p
	}

	cascadeDelete(d, toReplace, c)
}

type replacement struct {
	index int
	with  Pointer
}

func appendUnique(list []replacement, r replacement) []replacement {
	for _, existing := range list {
		if existing == r {
			return list
		}
	}
	return append(list, r)
}

// cascadeDelete is update's worklist-based removal pass: it pops a
// (index, replacement) pair, deletes the node at index, redirects any
// reference to it, shift-compensates, and queues further redundant nodes
// the same way update does, until the worklist drains. Every index it
// touches is recomputed against d's current state on each iteration, so
// unlike a list of indices carried across a removal, nothing here can go
// stale.
//
// It polls c's approximator cancellation signal between worklist entries
// and stops early, leaving d in a consistent (if incompletely cascaded)
// state, exactly like every other cooperative loop in this package.
func cascadeDelete(d *Diagram, toReplace []replacement, c *Coordinator) {
	for len(toReplace) > 0 {
		if c.Cancelled(SignalApprox) {
			logrus.WithField("component", "approx").Info("terminating the approximation")
			return
		}

		r := toReplace[len(toReplace)-1]
		toReplace = toReplace[:len(toReplace)-1]

		removed := Pointer(r.index)
		d.remove(removed)

		existing := map[Node]Pointer{}
		for idx := 0; idx < d.Size(); idx++ {
			p := Pointer(idx)
			n := d.nodeAt(p)

			if n.Low == removed {
				n.Low = r.with
				d.setNode(p, n)
			}
			if n.High == removed {
				n.High = r.with
				d.setNode(p, n)
			}
			n = d.nodeAt(p)
			if n.Low > removed {
				n.Low--
				d.setNode(p, n)
			}
			if n.High > removed {
				n.High--
				d.setNode(p, n)
			}
			n = d.nodeAt(p)
			if n.Low == n.High && !p.IsTerminal() {
				toReplace = appendUnique(toReplace, replacement{index: idx, with: n.Low})
			}
			if i, ok := existing[n]; ok {
				toReplace = appendUnique(toReplace, replacement{index: idx, with: i})
			}
			existing[n] = p
		}
	}
}

// remove deletes the node at p, shifting every later node down one index.
func (d *Diagram) remove(p Pointer) {
	d.nodes = append(d.nodes[:p], d.nodes[p+1:]...)
}

func (d *Diagram) nodeAt(p Pointer) Node {
	return d.nodes[p]
}

func (d *Diagram) setNode(p Pointer, n Node) {
	d.nodes[p] = n
}

// ReduceTautologies removes nodes that are redundant because the same
// variable is decided the same way twice along a root-to-node path: if a
// node's low (resp. high) child decides a variable already fixed to false
// (resp. true) earlier on the path, that child is provably equal to
// whatever comes after it and can be skipped. This supplements round-up:
// round-up's own rewrites can leave such redundancies behind on a diagram
// that was already built and reduced once, and reducing them keeps it as
// tight as possible after approximation. Grounded on the original
// implementation's own tauto_reduction.
func ReduceTautologies(d *Diagram) {
	if d.IsTrue() || d.IsFalse() {
		return
	}
	reduceTautologiesFrom(d, nil, d.Root())
}

type pathStep struct {
	p    Pointer
	high bool
}

func reduceTautologiesFrom(d *Diagram, path []pathStep, node Pointer) {
	low := d.Low(node)
	if !low.IsTerminal() {
		pathLow := append(append([]pathStep{}, path...), pathStep{p: node, high: false})
		curLow := low
		if redundantOnPath(d, pathLow, curLow, false) {
			d.ReplaceLow(node, d.Low(curLow))
			deleteRedundant(d, curLow, pathLow)
		} else {
			reduceTautologiesFrom(d, pathLow, curLow)
		}
	}

	high := d.High(node)
	if !high.IsTerminal() {
		pathHigh := append(append([]pathStep{}, path...), pathStep{p: node, high: true})
		curHigh := high
		if redundantOnPath(d, pathHigh, curHigh, true) {
			d.ReplaceHigh(node, d.High(curHigh))
			deleteRedundant(d, curHigh, pathHigh)
		} else {
			reduceTautologiesFrom(d, pathHigh, curHigh)
		}
	}
}

func redundantOnPath(d *Diagram, path []pathStep, candidate Pointer, wantHigh bool) bool {
	cv := d.VarOf(candidate)
	for _, step := range path {
		if d.VarOf(step.p) == cv && step.high == wantHigh {
			return true
		}
	}
	return false
}

// deleteRedundant removes the node found redundant by ReduceTautologies
// and shift-compensates every pointer on the path that was recorded above
// it, mirroring the original's delete_node (a simpler, path-scoped cousin
// of cascadeDelete, which instead has to consider the whole diagram since
// round-up's rewrites are not confined to one root-to-node path).
func deleteRedundant(d *Diagram, toDelete Pointer, path []pathStep) {
	d.remove(toDelete)
	for _, step := range path[1:] {
		if step.high {
			if d.High(step.p) > toDelete {
				d.ReplaceHigh(step.p, d.High(step.p)-1)
			}
		} else {
			if d.Low(step.p) > toDelete {
				d.ReplaceLow(step.p, d.Low(step.p)-1)
			}
		}
	}
}
