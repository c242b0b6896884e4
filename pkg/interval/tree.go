// Package interval provides an interval tree over genome features, keyed by
// interval center with cached subtree maximum end positions.
//
// The tree is a plain binary search tree with no rebalancing: a pathological
// insertion order (for example, features sorted by position) degrades lookups
// to O(n). Callers that need balanced behavior should shuffle their inserts.
package interval

import "github.com/ha1tch/genomap/pkg/genome"

type node struct {
	feature *genome.Feature
	center  float64
	maxEnd  int
	left    *node
	right   *node
}

// Tree is an interval tree of features supporting overlap queries.
type Tree struct {
	root *node
	byID map[string]*genome.Feature
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{byID: make(map[string]*genome.Feature)}
}

// Len returns the number of features in the tree.
func (t *Tree) Len() int {
	return len(t.byID)
}

// Insert adds a feature. Inserting a feature whose id is already present
// replaces the mapping used by Remove but still stores the new node.
func (t *Tree) Insert(f *genome.Feature) {
	if f == nil {
		return
	}
	t.byID[f.ID] = f
	n := &node{feature: f, center: f.Center(), maxEnd: f.End}
	if t.root == nil {
		t.root = n
		return
	}
	cur := t.root
	for {
		if f.End > cur.maxEnd {
			cur.maxEnd = f.End
		}
		if n.center < cur.center {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				return
			}
			cur = cur.right
		}
	}
}

// Query returns all features overlapping the inclusive range [start, end],
// i.e. those with feature.End >= start && feature.Start <= end.
func (t *Tree) Query(start, end int) []*genome.Feature {
	var out []*genome.Feature
	query(t.root, start, end, &out)
	return out
}

func query(n *node, start, end int, out *[]*genome.Feature) {
	if n == nil || n.maxEnd < start {
		return
	}
	query(n.left, start, end, out)
	if n.feature.Overlaps(start, end) {
		*out = append(*out, n.feature)
	}
	// The tree is ordered by center, which does not bound feature starts,
	// so the right subtree can only be pruned through its own maxEnd.
	query(n.right, start, end, out)
}

// Contains reports whether a feature with the given id is present.
func (t *Tree) Contains(id string) bool {
	_, ok := t.byID[id]
	return ok
}

// Remove deletes the feature with the given id. It is a no-op when the id is
// unknown.
func (t *Tree) Remove(id string) {
	f, ok := t.byID[id]
	if !ok {
		return
	}
	delete(t.byID, id)
	t.root = remove(t.root, f)
}

func remove(n *node, f *genome.Feature) *node {
	if n == nil {
		return nil
	}
	if n.feature == f {
		switch {
		case n.left == nil:
			return fixMax(n.right)
		case n.right == nil:
			return fixMax(n.left)
		default:
			// Promote the in-order successor.
			succ := n.right
			for succ.left != nil {
				succ = succ.left
			}
			n.feature = succ.feature
			n.center = succ.center
			n.right = remove(n.right, succ.feature)
		}
	} else if f.Center() < n.center {
		// Insert sends equal centers right, so strictly-less means left.
		n.left = remove(n.left, f)
	} else {
		n.right = remove(n.right, f)
	}
	return fixMax(n)
}

// fixMax reasserts the cached subtree max-end invariant at n.
func fixMax(n *node) *node {
	if n == nil {
		return nil
	}
	n.maxEnd = n.feature.End
	if n.left != nil && n.left.maxEnd > n.maxEnd {
		n.maxEnd = n.left.maxEnd
	}
	if n.right != nil && n.right.maxEnd > n.maxEnd {
		n.maxEnd = n.right.maxEnd
	}
	return n
}

// Clear empties the tree.
func (t *Tree) Clear() {
	t.root = nil
	t.byID = make(map[string]*genome.Feature)
}

// Rebuild clears the tree and indexes every feature of every track.
func (t *Tree) Rebuild(g *genome.Genome) {
	t.Clear()
	if g == nil {
		return
	}
	for _, tr := range g.Tracks {
		for _, f := range tr.Features {
			t.Insert(f)
		}
	}
}
