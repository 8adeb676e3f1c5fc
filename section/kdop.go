package section

import (
	"math"

	"github.com/arloliu/mapitem/encoding"
)

// KDOP is a discrete oriented bounding polytope: the minimum and maximum
// extent of an item along five fixed axes.
type KDOP struct {
	Min [KDOPAxes]float32 `yaml:"min,flow"`
	Max [KDOPAxes]float32 `yaml:"max,flow"`
}

// Read decodes the five minimums followed by the five maximums.
func (k *KDOP) Read(r *encoding.Reader) {
	for i := range k.Min {
		k.Min[i] = r.Float32("kdop.min")
	}
	for i := range k.Max {
		k.Max[i] = r.Float32("kdop.max")
	}
}

// Write encodes the five minimums followed by the five maximums.
func (k *KDOP) Write(w *encoding.Writer) {
	for _, v := range k.Min {
		w.Float32(v)
	}
	for _, v := range k.Max {
		w.Float32(v)
	}
}

// Empty returns a polytope whose minimums are +Inf and maximums -Inf, the
// identity for Extend.
func Empty() KDOP {
	var k KDOP
	for i := range KDOPAxes {
		k.Min[i] = float32(math.Inf(1))
		k.Max[i] = float32(math.Inf(-1))
	}

	return k
}

// Extend grows k to contain o.
func (k KDOP) Extend(o KDOP) KDOP {
	for i := range KDOPAxes {
		k.Min[i] = min(k.Min[i], o.Min[i])
		k.Max[i] = max(k.Max[i], o.Max[i])
	}

	return k
}

// IsEmpty reports whether any axis has a minimum above its maximum.
func (k KDOP) IsEmpty() bool {
	for i := range KDOPAxes {
		if k.Min[i] > k.Max[i] {
			return true
		}
	}

	return false
}
