package jitter

import (
	"math"
	"strings"
	"testing"

	"github.com/edwinsyarief/jitter/axis"
	"github.com/edwinsyarief/jitter/curve"
)

func newTestBlendShape(mesh *SimpleMesh, morphs ...string) *BlendShape {
	blend := NewBlendShape(mesh, fixedRand(0))
	blend.PlayOnInit = false
	blend.Loop = fixedLoopParam(1, 0.8, 0, curve.Triangle())
	for _, name := range morphs {
		blend.Morphs = append(blend.Morphs, NewMorph(name, MorphScale))
	}
	return blend
}

func TestBlendShapeScenario(t *testing.T) {
	mesh := NewSimpleMesh("blink")
	blend := NewBlendShape(mesh, seeded(11))
	blend.Morphs = []*Morph{NewMorph("blink", MorphScale)}
	blend.Loop = NewParameter(curve.Triangle(), axis.Unit, true)
	blend.Loop.Interval.Min, blend.Loop.Interval.Max = 0, 1
	blend.Loop.Amplitude.Min, blend.Loop.Amplitude.Max = 0, 1
	blend.Loop.Offset.Min, blend.Loop.Offset.Max = 0, 0.3

	rollovers := 0
	blend.Hooks.CycleStarted = func(int) { rollovers += 1 }
	blend.OnInit()
	if blend.State() != Playing {
		t.Fatalf("PlayOnInit didn't start the loop: %v", blend.State())
	}
	for range 600 {
		blend.OnTick(1.0 / 60.0)
		w := mesh.MorphWeight(0)
		if math.IsNaN(w) || w < 0 || w > MorphScale {
			t.Fatalf("morph weight out of range: %v", w)
		}
	}
	if rollovers == 0 {
		t.Fatal("no cycle rollover in 10 seconds")
	}
}

func TestBlendShapeDamperProduct(t *testing.T) {
	mesh := NewSimpleMesh("main", "d1", "d2")
	mesh.SetMorphWeight(1, 40)
	mesh.SetMorphWeight(2, 50)

	blend := newTestBlendShape(mesh, "main")
	blend.Dampers = []*Damper{NewDamper("d1", 1), NewDamper("d2", 0.5)}
	blend.OnInit()
	blend.PlayLoop()
	blend.OnTick(0.5)

	// 0.8 * (1 - 0.4) * (1 - 0.25)
	want := 0.8 * 0.6 * 0.75 * MorphScale
	if got := mesh.MorphWeight(0); !approx(got, want, 1e-9) {
		t.Fatalf("damped weight = %v, want %v", got, want)
	}
	if mesh.MorphWeight(1) != 40 || mesh.MorphWeight(2) != 50 {
		t.Fatal("dampers modified the morphs they sample")
	}
}

func TestBlendShapeSync(t *testing.T) {
	tests := []struct {
		name      string
		damping   float64
		magnified float64
		wantMain  float64
		wantOther float64
	}{
		// synced morphs copy the weight before damping
		{"half damped", 0.5, 50, 0.4 * MorphScale, 0.8 * 50},
		{"fully damped", 1, MorphScale, 0, 0.8 * MorphScale},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mesh := NewSimpleMesh("main", "other", "d")
			mesh.SetMorphWeight(2, 100)
			blend := newTestBlendShape(mesh, "main", "other")
			blend.Morphs[1].Magnification = test.magnified
			blend.Dampers = []*Damper{NewDamper("d", test.damping)}
			blend.Sync = true
			blend.OnInit()
			blend.PlayLoop()
			blend.OnTick(0.5)

			if !approx(mesh.MorphWeight(0), test.wantMain, 1e-9) {
				t.Fatalf("main = %v, want %v", mesh.MorphWeight(0), test.wantMain)
			}
			if !approx(mesh.MorphWeight(1), test.wantOther, 1e-9) {
				t.Fatalf("synced morph = %v, want %v", mesh.MorphWeight(1), test.wantOther)
			}
		})
	}
}

func TestBlendShapeDamperFollowsTarget(t *testing.T) {
	first := NewSimpleMesh("main", "d")
	first.SetMorphWeight(1, 100)
	blend := newTestBlendShape(first, "main")
	blend.Dampers = []*Damper{NewDamper("d", 1)}
	blend.OnInit()
	blend.PlayLoop()
	blend.OnTick(0.5)
	if first.MorphWeight(0) != 0 {
		t.Fatalf("main = %v, want fully damped", first.MorphWeight(0))
	}

	// same morph names, damper morph at rest
	second := NewSimpleMesh("d", "main")
	blend.Target = second
	blend.OnTick(0)
	if blend.Dampers[0].Index() != 0 {
		t.Fatalf("damper index = %d after the target swap", blend.Dampers[0].Index())
	}
	if !approx(second.MorphWeight(1), 0.8*MorphScale, 1e-9) {
		t.Fatalf("main = %v, still damped by the old target", second.MorphWeight(1))
	}
}

func TestBlendShapeStopWritesRest(t *testing.T) {
	mesh := NewSimpleMesh("main")
	blend := newTestBlendShape(mesh, "main")
	blend.OnInit()
	blend.PlayLoop()
	blend.OnTick(0.25)
	if mesh.MorphWeight(0) == 0 {
		t.Fatal("nothing written")
	}
	blend.StopLoop()
	if mesh.MorphWeight(0) != 0 {
		t.Fatalf("weight after StopLoop = %v", mesh.MorphWeight(0))
	}
}

func TestBlendShapeRenameMorph(t *testing.T) {
	mesh := NewSimpleMesh("a", "b")
	blend := newTestBlendShape(mesh, "a")
	blend.OnInit()
	blend.PlayLoop()
	blend.OnTick(0.25)
	first := mesh.MorphWeight(0)

	blend.Morphs[0].Name = "b"
	blend.OnTick(0.25)
	if mesh.MorphWeight(0) != first {
		t.Fatal("old morph kept receiving weights")
	}
	if mesh.MorphWeight(1) == 0 || blend.Morphs[0].Index() != 1 {
		t.Fatal("renamed morph not resolved")
	}

	blend.Morphs[0].Name = "missing"
	blend.OnTick(0.25)
	if blend.Morphs[0].Index() != -1 {
		t.Fatal("missing morph should stay unresolved")
	}
}

func TestBlendShapeWithoutTarget(t *testing.T) {
	blend := newTestBlendShape(nil, "main")
	blend.Target = nil
	blend.OnInit()
	blend.PlayLoop()
	blend.PlayOnce()
	for range 10 {
		blend.OnTick(0.1)
	}
	blend.OnTeardown()
}

func TestBlendShapeBeforeInit(t *testing.T) {
	blend := newTestBlendShape(NewSimpleMesh("main"), "main")
	blend.PlayLoop()
	blend.OnTick(1)
	blend.FadeOut(1)
	if blend.State() != Stopped || blend.IsOnceProcessing() {
		t.Fatal("component did something before OnInit")
	}
}

func TestBlendShapeCollect(t *testing.T) {
	mesh := NewSimpleMesh("a", "b", "c", "d")
	mesh.SetMorphWeight(1, 30)
	mesh.SetMorphWeight(3, 70)

	blend := newTestBlendShape(mesh)
	blend.OnInit()
	blend.CollectMorphs()
	if len(blend.Morphs) != 2 || blend.Morphs[0].Name != "b" || blend.Morphs[1].Magnification != 70 {
		t.Fatalf("collected %+v", blend.Morphs)
	}
	if blend.Channel().Len() != 2 {
		t.Fatalf("channel has %d pairs", blend.Channel().Len())
	}

	blend.CollectDampers()
	if len(blend.Dampers) != 2 || blend.Dampers[1].Magnification != defaultDamperMagnification {
		t.Fatalf("collected dampers %+v", blend.Dampers)
	}
	if got := blend.Dampers[0].Weight(); !approx(got, 0.3*defaultDamperMagnification, 1e-12) {
		t.Fatalf("damper weight = %v", got)
	}
}

func TestBlendShapeCollectWarns(t *testing.T) {
	buffer := captureLog(t)
	blend := newTestBlendShape(NewSimpleMesh("a"))
	blend.CollectMorphs()
	if !strings.Contains(buffer.String(), "no morphs") {
		t.Fatalf("missing warning, log: %q", buffer.String())
	}
}

func TestBlendShapeOnceOverride(t *testing.T) {
	mesh := NewSimpleMesh("main")
	blend := newTestBlendShape(mesh, "main")
	blend.OnInit()

	blend.PlayOnce()
	blend.OnTick(0.2)
	timer := blend.Channel().Once(0).Timer()
	blend.PlayOnce()
	if blend.Channel().Once(0).Timer() != timer {
		t.Fatal("once restarted without override")
	}

	blend.OverrideOnce = true
	blend.OnConfigChanged()
	blend.PlayOnce()
	if blend.Channel().Once(0).Timer() != 0 {
		t.Fatal("once not restarted with override")
	}
}
