package axis

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// component-wise absolute tolerance, mgl32's own helpers are relative
func vecNear(a, b mgl32.Vec3, tolerance float64) bool {
	for i := range 3 {
		if math.Abs(float64(a[i]-b[i])) > tolerance {
			return false
		}
	}
	return true
}

func quatNear(a, b mgl32.Quat, tolerance float64) bool {
	return math.Abs(float64(a.W-b.W)) <= tolerance && vecNear(a.V, b.V, tolerance)
}

func TestDomains(t *testing.T) {
	lo, hi := Unit.Domain()
	if lo != 0 || hi != 1 {
		t.Fatalf("Unit domain = [%v, %v]", lo, hi)
	}
	lo, hi = Signed.Domain()
	if lo != -1 || hi != 1 {
		t.Fatalf("Signed domain = [%v, %v]", lo, hi)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		sem  Semantics
		in   float64
		want float64
	}{
		{Unit, -0.3, 0},
		{Unit, 0.4, 0.4},
		{Unit, 1.7, 1},
		{Signed, -1.5, -1.5},
		{Signed, 1.5, 1.5},
	}
	for _, tc := range cases {
		if got := tc.sem.Clamp(tc.in); got != tc.want {
			t.Errorf("Clamp(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestComposeVec(t *testing.T) {
	ref := mgl32.Vec3{1, 2, 3}
	cur := mgl32.Vec3{10, 10, 10}
	delta := mgl32.Vec3{0.5, -0.5, 0}

	if got := Override.ComposeVec(ref, cur, delta); got != delta {
		t.Errorf("Override = %v", got)
	}
	if got := Reference.ComposeVec(ref, cur, delta); got != (mgl32.Vec3{1.5, 1.5, 3}) {
		t.Errorf("Reference = %v", got)
	}
	if got := Additive.ComposeVec(ref, cur, delta); got != (mgl32.Vec3{10.5, 9.5, 10}) {
		t.Errorf("Additive = %v", got)
	}
}

func TestComposeQuat(t *testing.T) {
	ref := EulerToQuat(mgl32.Vec3{0, 90, 0})
	delta := EulerToQuat(mgl32.Vec3{0, 0, 0})
	if got := Reference.ComposeQuat(ref, mgl32.QuatIdent(), delta); !quatNear(got, ref, 1e-5) {
		t.Fatalf("identity delta changed the reference: %v", got)
	}
	if got := Override.ComposeQuat(ref, ref, delta); !quatNear(got, mgl32.QuatIdent(), 1e-5) {
		t.Fatalf("override should return the delta: %v", got)
	}
}

func TestEulerSingleAxis(t *testing.T) {
	q := EulerToQuat(mgl32.Vec3{0, 0, 90})
	v := q.Rotate(mgl32.Vec3{1, 0, 0})
	if !vecNear(v, mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Fatalf("90° around Z moved X to %v", v)
	}
}

func TestModeYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]Mode{"mode": Additive})
	if err != nil {
		t.Fatal(err)
	}
	var back map[string]Mode
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back["mode"] != Additive {
		t.Fatalf("round trip gave %v", back["mode"])
	}
	if _, err := ParseMode("Sideways"); err == nil {
		t.Fatal("expected error")
	}
}
