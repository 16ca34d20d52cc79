package bloom

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// noiseOp tags a node of the noise composition tree.
type noiseOp uint8

const (
	noisePerlin noiseOp = iota
	noiseSimplex
	noiseAbs
	noiseNegate
	noiseFreq
	noiseAdd
	noiseMul
	noiseMin
	noiseMax
)

// noiseNode is one node of the composition tree. Children are stored by
// index into the owning Noise's arena, so trees clone structurally and
// never share ownership.
type noiseNode struct {
	op          noiseOp
	left, right int32
	freq        float64
	perlin      *perlin.Perlin
	simplex     opensimplex.Noise
}

// Noise is a composed 2D noise function: source leaves (Perlin, OpenSimplex)
// combined by unary decorations and binary merges. Evaluation is pure and
// deterministic for a fixed tree.
type Noise struct {
	nodes []noiseNode
	root  int32
}

// At evaluates the noise at (x, y). Non-finite values collapse to zero so a
// pathological composition can never poison the colorizer's normalization.
func (n *Noise) At(x, y float64) float64 {
	v := n.eval(n.root, x, y)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (n *Noise) eval(i int32, x, y float64) float64 {
	node := &n.nodes[i]
	switch node.op {
	case noisePerlin:
		return node.perlin.Noise2D(x, y)
	case noiseSimplex:
		return node.simplex.Eval2(x, y)
	case noiseAbs:
		return math.Abs(n.eval(node.left, x, y))
	case noiseNegate:
		return -n.eval(node.left, x, y)
	case noiseFreq:
		return n.eval(node.left, x*node.freq, y*node.freq)
	case noiseAdd:
		return n.eval(node.left, x, y) + n.eval(node.right, x, y)
	case noiseMul:
		return n.eval(node.left, x, y) * n.eval(node.right, x, y)
	case noiseMin:
		return math.Min(n.eval(node.left, x, y), n.eval(node.right, x, y))
	case noiseMax:
		return math.Max(n.eval(node.left, x, y), n.eval(node.right, x, y))
	}
	return 0
}

func (n *Noise) push(node noiseNode) int32 {
	n.nodes = append(n.nodes, node)
	return int32(len(n.nodes) - 1)
}

// RandomNoise composes a random noise tree: one to four source chains, each
// a Perlin or OpenSimplex leaf with optional decorations, merged pairwise
// by random binary operations. The same seed always yields the same tree
// for the same random stream position.
func RandomNoise(seed int64, r *Rand) *Noise {
	n := &Noise{}

	// A single decoration chance for the whole tree biases it toward either
	// plain or heavily decorated chains, which reads much better than
	// uniform decoration.
	decorationChance := r.Float64()

	chains := r.IntRange(1, 4)
	ids := make([]int32, 0, chains)
	for i := 0; i < chains; i++ {
		id := n.randomLeaf(seed+int64(i), r)
		id = n.decorate(id, decorationChance, r)
		ids = append(ids, id)
	}

	for len(ids) > 1 {
		last := len(ids) - 1
		ops := []noiseOp{noiseAdd, noiseMul, noiseMin, noiseMax}
		merged := n.push(noiseNode{
			op:    ops[r.IntN(len(ops))],
			left:  ids[last],
			right: ids[last-1],
		})
		ids[last-1] = merged
		ids = ids[:last]
	}

	n.root = ids[0]
	return n
}

func (n *Noise) randomLeaf(seed int64, r *Rand) int32 {
	if r.Bool() {
		octaves := int32(r.IntRange(2, 6))
		return n.push(noiseNode{
			op: noisePerlin,
			perlin: perlin.NewPerlin(
				r.Float64Range(1.5, 3.5), // alpha: smoothness
				r.Float64Range(1.8, 2.2), // beta: frequency growth per octave
				octaves,
				seed,
			),
		})
	}
	return n.push(noiseNode{
		op:      noiseSimplex,
		simplex: opensimplex.New(seed),
	})
}

func (n *Noise) decorate(id int32, chance float64, r *Rand) int32 {
	if r.Float64() < chance {
		return id
	}
	switch r.IntN(3) {
	case 0:
		return n.push(noiseNode{op: noiseAbs, left: id})
	case 1:
		return n.push(noiseNode{op: noiseNegate, left: id})
	default:
		return n.push(noiseNode{
			op:   noiseFreq,
			left: id,
			freq: r.Float64Range(0.01, 7.5),
		})
	}
}
