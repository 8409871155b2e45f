package jitter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/edwinsyarief/jitter/axis"
	"github.com/edwinsyarief/jitter/curve"
	"github.com/edwinsyarief/jitter/easing"
)

func TestBlendShapeAssetRoundTrip(t *testing.T) {
	source := NewBlendShape(NewSimpleMesh("a", "b", "c"), fixedRand(0))
	source.Sync = true
	source.PlayOnInit = false
	source.Loop.Period.Min, source.Loop.Period.Max = 0.5, 2
	source.Loop.AmplitudeEasing = easing.SinInOut
	source.Loop.Shape = curve.Triangle()
	source.Morphs = []*Morph{NewMorph("a", 50), NewMorph("b", MorphScale)}
	source.Dampers = []*Damper{NewDamper("c", 0.3)}

	var asset BlendShapeAsset
	if err := source.Export(&asset); err != nil {
		t.Fatal(err)
	}
	var buffer bytes.Buffer
	if err := asset.Save(&buffer); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadBlendShapeAsset(&buffer)
	if err != nil {
		t.Fatal(err)
	}

	target := NewBlendShape(NewSimpleMesh("a", "b", "c"), fixedRand(0))
	if err := target.Import(loaded); err != nil {
		t.Fatal(err)
	}
	if !target.Sync || target.PlayOnInit {
		t.Fatal("flags not imported")
	}
	if target.Loop.Period.Min != 0.5 || target.Loop.Period.Max != 2 {
		t.Fatalf("period = %+v", target.Loop.Period)
	}
	if target.Loop.AmplitudeEasing != easing.SinInOut {
		t.Fatalf("amplitude easing = %v", target.Loop.AmplitudeEasing)
	}
	if len(target.Loop.Shape) != 3 || target.Loop.Shape[1].Value != 1 {
		t.Fatalf("shape = %+v", target.Loop.Shape)
	}
	if len(target.Morphs) != 2 || target.Morphs[0].Name != "a" || target.Morphs[0].Magnification != 50 {
		t.Fatalf("morphs = %+v", target.Morphs)
	}
	if len(target.Dampers) != 1 || target.Dampers[0].Magnification != 0.3 {
		t.Fatalf("dampers = %+v", target.Dampers)
	}
}

func TestTransformAssetRoundTrip(t *testing.T) {
	source := NewTransform(NewSimpleNode(), Rotation, fixedRand(0))
	source.Mode = axis.Additive
	source.SyncPeriod = true
	source.Magnification = 45
	source.Loops[0].Period.SetFixed(2)

	var asset TransformAsset
	if err := source.Export(&asset); err != nil {
		t.Fatal(err)
	}
	var buffer bytes.Buffer
	if err := asset.Save(&buffer); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buffer.String(), "Rotation") || !strings.Contains(buffer.String(), "Additive") {
		t.Fatalf("enums not encoded by name:\n%s", buffer.String())
	}
	loaded, err := LoadTransformAsset(&buffer)
	if err != nil {
		t.Fatal(err)
	}

	target := NewTransform(NewSimpleNode(), Rotation, fixedRand(0))
	if err := target.Import(loaded); err != nil {
		t.Fatal(err)
	}
	if target.Mode != axis.Additive || !target.SyncPeriod || target.Magnification != 45 {
		t.Fatalf("imported %+v", target)
	}
	for i := range 3 {
		if target.Loops[i].Period.Max != 2 {
			t.Fatalf("loop %d period = %+v", i, target.Loops[i].Period)
		}
	}
}

func TestImportNilAsset(t *testing.T) {
	buffer := captureLog(t)
	blend := NewBlendShape(nil, fixedRand(0))
	blend.Sync = true
	if err := blend.Import(nil); !errors.Is(err, ErrNoAsset) {
		t.Fatalf("err = %v", err)
	}
	if !blend.Sync {
		t.Fatal("blend shape modified")
	}

	transform := NewTransform(nil, Position, fixedRand(0))
	if err := transform.Export(nil); !errors.Is(err, ErrNoAsset) {
		t.Fatalf("err = %v", err)
	}
	if strings.Count(buffer.String(), "no asset") != 2 {
		t.Fatalf("log: %q", buffer.String())
	}
}

func TestTransformImportPropertyMismatch(t *testing.T) {
	buffer := captureLog(t)
	var asset TransformAsset
	if err := NewTransform(nil, Scale, fixedRand(0)).Export(&asset); err != nil {
		t.Fatal(err)
	}
	transform := NewTransform(nil, Position, fixedRand(0))
	if err := transform.Import(&asset); err != nil {
		t.Fatal(err)
	}
	if transform.Property != Position {
		t.Fatal("property overwritten")
	}
	if !strings.Contains(buffer.String(), "Scale") {
		t.Fatalf("log: %q", buffer.String())
	}
}

func TestLoadAssetErrors(t *testing.T) {
	if _, err := LoadBlendShapeAsset(strings.NewReader("loop: [")); err == nil {
		t.Fatal("expected decoding error")
	}
	if _, err := LoadTransformAsset(strings.NewReader("property: Skew")); err == nil {
		t.Fatal("expected unknown property error")
	}
}
