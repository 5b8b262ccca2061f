package ml

import "sort"

// Node is one node of a regression tree. Nodes are stored flat; Left and
// Right index into the owning tree's node slice.
type Node struct {
	Feature   int
	Threshold float64
	Left      int
	Right     int
	Value     float64
	Leaf      bool
}

// Tree is a least-squares regression tree of bounded depth.
type Tree struct {
	Nodes []Node
}

func (t *Tree) predict(x []float64) float64 {
	i := 0
	for !t.Nodes[i].Leaf {
		n := t.Nodes[i]
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return t.Nodes[i].Value
}

// fitTree grows a regression tree on the samples selected by idx.
// X is row-major (samples x features), y holds the regression targets.
func fitTree(X [][]float64, y []float64, idx []int, maxDepth, minLeaf int) *Tree {
	t := &Tree{}
	t.grow(X, y, idx, 0, maxDepth, minLeaf)
	return t
}

// grow appends the subtree for idx and returns its root index.
func (t *Tree) grow(X [][]float64, y []float64, idx []int, depth, maxDepth, minLeaf int) int {
	self := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{Leaf: true, Value: meanAt(y, idx)})

	if depth >= maxDepth || len(idx) < 2*minLeaf {
		return self
	}
	feature, threshold, ok := bestSplit(X, y, idx, minLeaf)
	if !ok {
		return self
	}

	var left, right []int
	for _, i := range idx {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < minLeaf || len(right) < minLeaf {
		return self
	}

	t.Nodes[self].Leaf = false
	t.Nodes[self].Feature = feature
	t.Nodes[self].Threshold = threshold
	leftIdx := t.grow(X, y, left, depth+1, maxDepth, minLeaf)
	rightIdx := t.grow(X, y, right, depth+1, maxDepth, minLeaf)
	t.Nodes[self].Left = leftIdx
	t.Nodes[self].Right = rightIdx
	return self
}

// bestSplit scans every feature for the split that minimizes the summed
// squared error of the two children. Minimizing SSE is equivalent to
// maximizing sumL^2/nL + sumR^2/nR, which a single sorted pass computes.
func bestSplit(X [][]float64, y []float64, idx []int, minLeaf int) (int, float64, bool) {
	n := len(idx)
	if n < 2*minLeaf {
		return 0, 0, false
	}
	nFeatures := len(X[idx[0]])

	total := 0.0
	for _, i := range idx {
		total += y[i]
	}

	bestScore := 0.0
	bestFeature := -1
	bestThreshold := 0.0

	order := make([]int, n)
	for f := 0; f < nFeatures; f++ {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool {
			return X[order[a]][f] < X[order[b]][f]
		})

		sumL := 0.0
		for k := 0; k < n-1; k++ {
			sumL += y[order[k]]
			if X[order[k]][f] == X[order[k+1]][f] {
				continue
			}
			nL := k + 1
			nR := n - nL
			if nL < minLeaf || nR < minLeaf {
				continue
			}
			sumR := total - sumL
			score := sumL*sumL/float64(nL) + sumR*sumR/float64(nR)
			if bestFeature < 0 || score > bestScore {
				bestScore = score
				bestFeature = f
				bestThreshold = (X[order[k]][f] + X[order[k+1]][f]) / 2
			}
		}
	}

	if bestFeature < 0 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}

func meanAt(y []float64, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	sum := 0.0
	for _, i := range idx {
		sum += y[i]
	}
	return sum / float64(len(idx))
}
