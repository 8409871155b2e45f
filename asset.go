package jitter

import (
	"errors"
	"fmt"
	"io"

	"github.com/edwinsyarief/jitter/axis"
	"gopkg.in/yaml.v3"
)

// Returned by Import and Export when no asset is given.
var ErrNoAsset = errors.New("jitter: no asset")

// Serializable configuration of a [BlendShape].
type BlendShapeAsset struct {
	PlayOnInit       bool `yaml:"play_on_init"`
	Sync             bool `yaml:"sync"`
	OverrideOnce     bool `yaml:"override_once"`
	LoopGroupEnabled bool `yaml:"loop_group_enabled"`
	OnceGroupEnabled bool `yaml:"once_group_enabled"`

	Loop    Parameter `yaml:"loop"`
	Once    Parameter `yaml:"once"`
	Morphs  []Morph   `yaml:"morphs"`
	Dampers []Damper  `yaml:"dampers"`
}

// Serializable configuration of a [Transform].
type TransformAsset struct {
	Property         Property  `yaml:"property"`
	Mode             axis.Mode `yaml:"mode"`
	PlayOnInit       bool      `yaml:"play_on_init"`
	SyncPeriod       bool      `yaml:"sync_period"`
	SyncAmplitude    bool      `yaml:"sync_amplitude"`
	SyncEasing       bool      `yaml:"sync_easing"`
	OverrideOnce     bool      `yaml:"override_once"`
	LoopGroupEnabled bool      `yaml:"loop_group_enabled"`
	OnceGroupEnabled bool      `yaml:"once_group_enabled"`
	Magnification    float64   `yaml:"magnification"`

	Loops [3]Parameter `yaml:"loops"`
	Onces [3]Parameter `yaml:"onces"`
}

// --- yaml ---

// Decodes a blend shape asset from YAML. Values are not validated
// here: limits come from the component the asset is imported into.
func LoadBlendShapeAsset(reader io.Reader) (*BlendShapeAsset, error) {
	var asset BlendShapeAsset
	if err := yaml.NewDecoder(reader).Decode(&asset); err != nil {
		return nil, fmt.Errorf("decoding blend shape asset: %w", err)
	}
	return &asset, nil
}

// Encodes the asset as YAML.
func (self *BlendShapeAsset) Save(writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(self); err != nil {
		return fmt.Errorf("encoding blend shape asset: %w", err)
	}
	return encoder.Close()
}

// Decodes a transform asset from YAML.
func LoadTransformAsset(reader io.Reader) (*TransformAsset, error) {
	var asset TransformAsset
	if err := yaml.NewDecoder(reader).Decode(&asset); err != nil {
		return nil, fmt.Errorf("decoding transform asset: %w", err)
	}
	return &asset, nil
}

// Encodes the asset as YAML.
func (self *TransformAsset) Save(writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(self); err != nil {
		return fmt.Errorf("encoding transform asset: %w", err)
	}
	return encoder.Close()
}

// --- blend shape ---

// Copies the configuration from the asset and applies it. With a nil
// asset a warning is logged and nothing changes.
func (self *BlendShape) Import(asset *BlendShapeAsset) error {
	if asset == nil {
		warnf("blend shape import: no asset given")
		return ErrNoAsset
	}
	self.PlayOnInit = asset.PlayOnInit
	self.Sync = asset.Sync
	self.OverrideOnce = asset.OverrideOnce
	self.LoopGroupEnabled = asset.LoopGroupEnabled
	self.OnceGroupEnabled = asset.OnceGroupEnabled
	importParameter(self.Loop, &asset.Loop)
	importParameter(self.Once, &asset.Once)

	self.Morphs = make([]*Morph, len(asset.Morphs))
	for i, morph := range asset.Morphs {
		self.Morphs[i] = NewMorph(morph.Name, morph.Magnification)
	}
	self.Dampers = make([]*Damper, len(asset.Dampers))
	for i, damper := range asset.Dampers {
		self.Dampers[i] = NewDamper(damper.Name, damper.Magnification)
	}
	self.OnConfigChanged()
	return nil
}

// Copies the current configuration into the asset. With a nil asset a
// warning is logged and nothing changes.
func (self *BlendShape) Export(asset *BlendShapeAsset) error {
	if asset == nil {
		warnf("blend shape export: no asset given")
		return ErrNoAsset
	}
	asset.PlayOnInit = self.PlayOnInit
	asset.Sync = self.Sync
	asset.OverrideOnce = self.OverrideOnce
	asset.LoopGroupEnabled = self.LoopGroupEnabled
	asset.OnceGroupEnabled = self.OnceGroupEnabled
	asset.Loop = *self.Loop.Clone()
	asset.Once = *self.Once.Clone()

	asset.Morphs = make([]Morph, len(self.Morphs))
	for i, morph := range self.Morphs {
		asset.Morphs[i] = Morph{Name: morph.Name, Magnification: morph.Magnification}
	}
	asset.Dampers = make([]Damper, len(self.Dampers))
	for i, damper := range self.Dampers {
		asset.Dampers[i] = Damper{Name: damper.Name, Magnification: damper.Magnification}
	}
	return nil
}

// --- transform ---

// Copies the configuration from the asset and applies it. With a nil
// asset a warning is logged and nothing changes. The asset property
// is ignored, a component always keeps the property it was created
// for.
func (self *Transform) Import(asset *TransformAsset) error {
	if asset == nil {
		warnf("transform import: no asset given")
		return ErrNoAsset
	}
	if asset.Property != self.Property {
		warnf("transform import: asset is for %s, applying it to %s", asset.Property, self.Property)
	}
	self.Mode = asset.Mode
	self.PlayOnInit = asset.PlayOnInit
	self.SyncPeriod = asset.SyncPeriod
	self.SyncAmplitude = asset.SyncAmplitude
	self.SyncEasing = asset.SyncEasing
	self.OverrideOnce = asset.OverrideOnce
	self.LoopGroupEnabled = asset.LoopGroupEnabled && !self.IsChild()
	self.OnceGroupEnabled = asset.OnceGroupEnabled
	self.Magnification = asset.Magnification
	for i := range 3 {
		importParameter(self.Loops[i], &asset.Loops[i])
		importParameter(self.Onces[i], &asset.Onces[i])
	}
	self.OnConfigChanged()
	return nil
}

// Copies the current configuration into the asset. With a nil asset a
// warning is logged and nothing changes.
func (self *Transform) Export(asset *TransformAsset) error {
	if asset == nil {
		warnf("transform export: no asset given")
		return ErrNoAsset
	}
	asset.Property = self.Property
	asset.Mode = self.Mode
	asset.PlayOnInit = self.PlayOnInit
	asset.SyncPeriod = self.SyncPeriod
	asset.SyncAmplitude = self.SyncAmplitude
	asset.SyncEasing = self.SyncEasing
	asset.OverrideOnce = self.OverrideOnce
	asset.LoopGroupEnabled = self.LoopGroupEnabled
	asset.OnceGroupEnabled = self.OnceGroupEnabled
	asset.Magnification = self.Magnification
	for i := range 3 {
		asset.Loops[i] = *self.Loops[i].Clone()
		asset.Onces[i] = *self.Onces[i].Clone()
	}
	return nil
}

// copies everything but the limits, which stay the ones of dst
func importParameter(dst, src *Parameter) {
	dst.CopyFrom(src, true, true, true, true)
	dst.Enabled = src.Enabled
	dst.Adjust()
}
