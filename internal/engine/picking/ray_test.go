package picking

import (
	"testing"

	"github.com/buildsight/bimview/pkg/math"
)

func TestIntersectPlane(t *testing.T) {
	r := Ray{Origin: math.Vec3{X: 0, Y: 5, Z: 0}, Direction: math.Vec3{X: 0, Y: -1, Z: 0}}
	pl := math.PlaneFromPointNormal(math.Vec3{X: 0, Y: 1, Z: 0}, math.Vec3{X: 0, Y: 1, Z: 0})

	p, ok := r.IntersectPlane(pl)
	if !ok {
		t.Fatal("expected intersection")
	}
	want := math.Vec3{X: 0, Y: 1, Z: 0}
	if p.Distance(want) > 1e-5 {
		t.Errorf("intersection = %v, want %v", p, want)
	}
}

func TestIntersectPlaneParallel(t *testing.T) {
	r := Ray{Origin: math.Vec3{X: 0, Y: 5, Z: 0}, Direction: math.Vec3{X: 1, Y: 0, Z: 0}}
	pl := math.PlaneFromPointNormal(math.Vec3{X: 0, Y: 1, Z: 0}, math.Vec3{X: 0, Y: 1, Z: 0})

	if _, ok := r.IntersectPlane(pl); ok {
		t.Error("parallel ray should not intersect")
	}
}

func TestIntersectPlaneBehind(t *testing.T) {
	r := Ray{Origin: math.Vec3{X: 0, Y: 5, Z: 0}, Direction: math.Vec3{X: 0, Y: 1, Z: 0}}
	pl := math.PlaneFromPointNormal(math.Vec3{X: 0, Y: 1, Z: 0}, math.Vec3{X: 0, Y: 1, Z: 0})

	if _, ok := r.IntersectPlane(pl); ok {
		t.Error("plane behind ray origin should not intersect")
	}
}

func TestIntersectAABB(t *testing.T) {
	box := AABB{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}

	tests := []struct {
		name  string
		ray   Ray
		hit   bool
		wantT float32
	}{
		{
			name:  "straight on",
			ray:   Ray{Origin: math.Vec3{X: 0, Y: 0, Z: 5}, Direction: math.Vec3{X: 0, Y: 0, Z: -1}},
			hit:   true,
			wantT: 4,
		},
		{
			name: "miss",
			ray:  Ray{Origin: math.Vec3{X: 5, Y: 5, Z: 5}, Direction: math.Vec3{X: 0, Y: 0, Z: -1}},
			hit:  false,
		},
		{
			name:  "from inside returns exit",
			ray:   Ray{Origin: math.Vec3{X: 0, Y: 0, Z: 0}, Direction: math.Vec3{X: 0, Y: 0, Z: -1}},
			hit:   true,
			wantT: 1,
		},
		{
			name: "behind origin",
			ray:  Ray{Origin: math.Vec3{X: 0, Y: 0, Z: 5}, Direction: math.Vec3{X: 0, Y: 0, Z: 1}},
			hit:  false,
		},
		{
			name: "axis-parallel outside slab",
			ray:  Ray{Origin: math.Vec3{X: 3, Y: 0, Z: 5}, Direction: math.Vec3{X: 0, Y: 0, Z: -1}},
			hit:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, hit := tt.ray.IntersectAABB(box)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && absf(gotT-tt.wantT) > 1e-5 {
				t.Errorf("t = %f, want %f", gotT, tt.wantT)
			}
		})
	}
}

func TestAABBHelpers(t *testing.T) {
	box := AABB{Min: math.Vec3{X: -2, Y: 0, Z: 2}, Max: math.Vec3{X: 2, Y: 4, Z: 6}}
	if box.IsEmpty() {
		t.Error("box should not be empty")
	}
	if got := box.Size(); got != (math.Vec3{X: 4, Y: 4, Z: 4}) {
		t.Errorf("Size() = %v", got)
	}
	if got := box.Center(); got != (math.Vec3{X: 0, Y: 2, Z: 4}) {
		t.Errorf("Center() = %v", got)
	}

	flat := AABB{Min: math.Vec3{X: 0, Y: 0, Z: 0}, Max: math.Vec3{X: 1, Y: 0, Z: 1}}
	if !flat.IsEmpty() {
		t.Error("zero-thickness box should be empty")
	}
	if !(AABB{}).IsEmpty() {
		t.Error("zero value box should be empty")
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
