package metric

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyInput indicates a nil or zero-sized point set.
	ErrEmptyInput = errors.New("metric: point set must be non-empty")

	// ErrDimMismatch indicates that two point sets disagree on sample count.
	ErrDimMismatch = errors.New("metric: point sets must have equal sample counts")

	// ErrBadNeighbors indicates a neighbor count outside [1, (n-1)/2].
	ErrBadNeighbors = errors.New("metric: neighbor count must be in [1, (n-1)/2]")

	// ErrBadLabels indicates a label slice that does not match the point
	// set or carries fewer than two distinct labels.
	ErrBadLabels = errors.New("metric: labels must match sample count and contain at least two clusters")
)

// Pairwise returns the n×n symmetric Euclidean distance matrix of the
// rows of x, with a zero diagonal.
//
// Complexity: O(n²·d) time, O(n²) space.
func Pairwise(x *mat.Dense) *mat.Dense {
	var (
		n, _ = x.Dims()
		out  = mat.NewDense(n, n, nil)
		i, j int
		dist float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dist = floats.Distance(x.RawRowView(i), x.RawRowView(j), 2)
			out.Set(i, j, dist)
			out.Set(j, i, dist)
		}
	}

	return out
}

// Distortion returns the mean squared entrywise difference between the
// pairwise distance matrices of x (original space) and z (embedded
// space). Zero when the embedding preserves all distances exactly.
func Distortion(x, z *mat.Dense) (float64, error) {
	var n, err = sameSamples(x, z)
	if err != nil {
		return 0, err
	}

	var (
		dx   = Pairwise(x)
		dz   = Pairwise(z)
		sum  float64
		diff float64
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			diff = dx.At(i, j) - dz.At(i, j)
			sum += diff * diff
		}
	}

	return sum / float64(n*n), nil
}

// Trustworthiness scores how faithful the k-nearest neighborhoods of the
// embedding z are to the original space x, in [0, 1]:
//
//	T(k) = 1 - 2/(n·k·(2n-3k-1)) · Σ_i Σ_{j ∈ U_i} (rank(i,j) - k)
//
// where U_i is the set of points among the k nearest of i in z that are
// not among the k nearest of i in x, and rank(i,j) is the 1-based rank
// of j in the original-space ordering around i. Ranks tie-break on the
// smaller sample index, so the score is deterministic.
func Trustworthiness(x, z *mat.Dense, k int) (float64, error) {
	var n, err = sameSamples(x, z)
	if err != nil {
		return 0, err
	}
	if k < 1 || 2*k > n-1 {
		return 0, ErrBadNeighbors
	}

	var (
		dx      = Pairwise(x)
		dz      = Pairwise(z)
		penalty float64
		i       int
		j       int
		p       int
	)

	for i = 0; i < n; i++ {
		var (
			origOrder = neighborOrder(dx, i)
			embOrder  = neighborOrder(dz, i)
			origRank  = make([]int, n) // 1-based rank of j around i in x
			origNear  = make([]bool, n)
		)
		for p, j = range origOrder {
			origRank[j] = p + 1
			if p < k {
				origNear[j] = true
			}
		}
		for p = 0; p < k; p++ {
			j = embOrder[p]
			if !origNear[j] {
				penalty += float64(origRank[j] - k)
			}
		}
	}

	norm := 2.0 / (float64(n*k) * float64(2*n-3*k-1))

	return 1 - norm*penalty, nil
}

// Silhouette returns the mean silhouette coefficient of the rows of z
// under the given cluster labels, in [-1, 1]. Members of singleton
// clusters contribute 0. At least two distinct labels are required.
func Silhouette(z *mat.Dense, labels []int) (float64, error) {
	if z == nil {
		return 0, ErrEmptyInput
	}
	var n, _ = z.Dims()
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if len(labels) != n {
		return 0, ErrBadLabels
	}

	// Group sample indices by label.
	var clusters = make(map[int][]int)
	for i, lab := range labels {
		clusters[lab] = append(clusters[lab], i)
	}
	if len(clusters) < 2 {
		return 0, ErrBadLabels
	}

	var (
		d     = Pairwise(z)
		total float64
		i     int
	)
	for i = 0; i < n; i++ {
		var (
			own   = labels[i]
			a     float64
			b     float64
			first = true
		)
		if len(clusters[own]) < 2 {
			continue // singleton: s_i = 0 by convention
		}
		for lab, members := range clusters {
			var (
				sum float64
				cnt int
			)
			for _, j := range members {
				if j == i {
					continue
				}
				sum += d.At(i, j)
				cnt++
			}
			if lab == own {
				a = sum / float64(cnt)
				continue
			}
			mean := sum / float64(cnt)
			if first || mean < b {
				b = mean
				first = false
			}
		}

		denom := a
		if b > denom {
			denom = b
		}
		if denom > 0 {
			total += (b - a) / denom
		}
	}

	return total / float64(n), nil
}

// neighborOrder returns the indices j != i sorted by ascending distance
// d.At(i, j), ties broken by smaller index for determinism.
func neighborOrder(d *mat.Dense, i int) []int {
	var (
		n, _  = d.Dims()
		order = make([]int, 0, n-1)
		j     int
	)
	for j = 0; j < n; j++ {
		if j != i {
			order = append(order, j)
		}
	}
	sort.Slice(order, func(a, b int) bool {
		da, db := d.At(i, order[a]), d.At(i, order[b])
		if da != db {
			return da < db
		}

		return order[a] < order[b]
	})

	return order
}

// sameSamples validates that x and z are non-empty and agree on the
// number of samples, returning that count.
func sameSamples(x, z *mat.Dense) (int, error) {
	if x == nil || z == nil {
		return 0, ErrEmptyInput
	}
	var (
		nx, dx = x.Dims()
		nz, _  = z.Dims()
	)
	if nx == 0 || dx == 0 || nz == 0 {
		return 0, ErrEmptyInput
	}
	if nx != nz {
		return 0, ErrDimMismatch
	}

	return nx, nil
}
