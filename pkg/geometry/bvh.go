package geometry

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"slices"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// ErrEmptyScene is returned when a BVH is built over no objects
var ErrEmptyScene = errors.New("geometry: BVH requires at least one object")

// BVHNode is either an internal node with two children or a leaf holding one object
type BVHNode struct {
	Bound  core.Bound
	Left   *BVHNode
	Right  *BVHNode
	Object AnyObject // Set for leaves only
}

// IsLeaf reports whether the node holds an object
func (n *BVHNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root *BVHNode
	size int
}

// NewBVH builds a balanced hierarchy over objects. The input slice is not modified.
func NewBVH(objects ...SceneObject) (*BVH, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyScene
	}

	handles := make([]AnyObject, len(objects))
	for i, o := range objects {
		handles[i] = NewAnyObject(o)
	}

	// Sorted once by the lower x bound, then split by count
	slices.SortStableFunc(handles, func(a, b AnyObject) int {
		ax, bx := a.Bounds().X.Min, b.Bounds().X.Min
		switch {
		case ax < bx:
			return -1
		case ax > bx:
			return 1
		}
		return 0
	})

	bvh := &BVH{Root: buildBVH(handles), size: len(handles)}
	if logger := core.Logger(); logger.Enabled(context.Background(), slog.LevelDebug) {
		stats := bvh.getStats()
		logger.Debug("bvh built",
			"objects", bvh.size,
			"nodes", stats.totalNodes,
			"maxDepth", stats.maxDepth,
			"avgDepth", stats.avgDepth,
		)
	}
	return bvh, nil
}

// NewBVHFromList builds a hierarchy over the objects of a list
func NewBVHFromList(list *ObjectList) (*BVH, error) {
	return NewBVH(list.SceneObjects()...)
}

func buildBVH(objects []AnyObject) *BVHNode {
	if len(objects) == 1 {
		return &BVHNode{Bound: objects[0].Bounds(), Object: objects[0]}
	}

	mid := len(objects) / 2
	return &BVHNode{
		Bound: rangeBound(objects),
		Left:  buildBVH(objects[:mid]),
		Right: buildBVH(objects[mid:]),
	}
}

// rangeBound folds the bounds of a range of objects
func rangeBound(objects []AnyObject) core.Bound {
	b := core.EmptyBound
	for _, o := range objects {
		b = b.Union(o.Bounds())
	}
	return b
}

// Hit returns the closest hit in the hierarchy. On equal distance the left subtree wins.
func (bvh *BVH) Hit(ray core.Ray, interval core.Interval, random *rand.Rand) (HitContext, bool) {
	return hitNode(bvh.Root, ray, interval, random)
}

func hitNode(node *BVHNode, ray core.Ray, interval core.Interval, random *rand.Rand) (HitContext, bool) {
	if !node.Bound.Hit(ray) {
		return HitContext{}, false
	}
	if node.IsLeaf() {
		return node.Object.Hit(ray, interval, random)
	}

	left, hitLeft := hitNode(node.Left, ray, interval, random)

	search := interval
	if hitLeft {
		search.Max = left.T
	}
	right, hitRight := hitNode(node.Right, ray, search, random)

	if hitRight && (!hitLeft || right.T < left.T) {
		return right, true
	}
	return left, hitLeft
}

// Bounds returns the bound of the whole hierarchy
func (bvh *BVH) Bounds() core.Bound {
	return bvh.Root.Bound
}

// Len returns the number of objects in the hierarchy
func (bvh *BVH) Len() int {
	return bvh.size
}

// getStats returns statistics about the BVH structure
func (bvh *BVH) getStats() bvhStats {
	stats := bvhStats{}
	collectStats(bvh.Root, 0, &stats)
	if stats.leafNodes > 0 {
		stats.avgDepth /= float64(stats.leafNodes)
	}
	return stats
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes int
	leafNodes  int
	maxDepth   int
	avgDepth   float64
}

func collectStats(node *BVHNode, depth int, stats *bvhStats) {
	stats.totalNodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	if node.IsLeaf() {
		stats.leafNodes++
		stats.avgDepth += float64(depth)
		return
	}
	collectStats(node.Left, depth+1, stats)
	collectStats(node.Right, depth+1, stats)
}
