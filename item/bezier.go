package item

import (
	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/format"
)

// BezierControlPoints is the number of control points of a bezier patch.
const BezierControlPoints = 16

// BezierPatch is a bicubic terrain patch. ControlPoints is a fixed 4x4 grid
// in row-major order and carries no count on the wire.
type BezierPatch struct {
	Base              `yaml:",inline"`
	ControlPoints     [BezierControlPoints]Vec3 `yaml:"control_points,flow"`
	TessellationX     uint16                    `yaml:"tessellation_x"`
	TessellationZ     uint16                    `yaml:"tessellation_z"`
	Seed              uint32                    `yaml:"seed"`
	VegetationSpheres []VegetationSphere        `yaml:"vegetation_spheres,omitempty"`
}

func (*BezierPatch) Kind() format.ItemType { return format.ItemBezierPatch }

func (b *BezierPatch) decodeBody(r *encoding.Reader, _ Codec) {
	for i := range b.ControlPoints {
		b.ControlPoints[i].read(r)
	}
	b.TessellationX = r.Uint16("bezier_patch.tessellation_x")
	b.TessellationZ = r.Uint16("bezier_patch.tessellation_z")
	b.Seed = r.Uint32("bezier_patch.seed")
	b.VegetationSpheres = readElems[VegetationSphere](r, "bezier_patch.vegetation_spheres", vegetationSphereSize)
}

func (b *BezierPatch) encodeBody(w *encoding.Writer, _ Codec) {
	w.Grow(BezierControlPoints * vec3Size)
	for i := range b.ControlPoints {
		b.ControlPoints[i].write(w)
	}
	w.Uint16(b.TessellationX)
	w.Uint16(b.TessellationZ)
	w.Uint32(b.Seed)
	writeElems(w, "bezier_patch.vegetation_spheres", b.VegetationSpheres)
}
