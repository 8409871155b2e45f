// Command jitterview shows a tiny face animated by jitter components:
// a blinking blend shape, a bobbing head transform and eye saccades.
//
// Keys: space plays a once cycle on the head, F toggles fading the
// loops, P pauses, up and down change the tick rate, S saves the
// current configuration as YAML in the working directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/jitter"
	"github.com/edwinsyarief/jitter/ebitenhost"
	"github.com/edwinsyarief/jitter/utils"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

const (
	screenWidth  = 320
	screenHeight = 240
	traceLength  = 240
)

var (
	blendShapePath = flag.String("blendshape", "", "YAML blend shape asset to load")
	transformPath  = flag.String("transform", "", "YAML position transform asset to load")
	seed           = flag.Int64("seed", 0, "random seed, 0 uses the current time")
	zoom           = flag.Int("zoom", 3, "window zoom factor")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: jitterview [flags]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	jitter.SetLogger(log.New(os.Stderr, "jitterview: ", 0))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	v := newViewer(rng)
	if err := v.loadAssets(); err != nil {
		log.Fatal(err)
	}

	host := ebitenhost.New(screenWidth, screenHeight)
	host.SetUpdateFunc(v.update)
	host.SetDrawFunc(v.draw)
	host.Add(v.blink, v.head, v.eyes)
	v.host = host

	ebiten.SetWindowTitle("jitterview")
	ebiten.SetWindowSize(screenWidth*(*zoom), screenHeight*(*zoom))
	if err := host.Run(); err != nil {
		log.Fatal(err)
	}
}

type viewer struct {
	host *ebitenhost.Host

	mesh     *jitter.SimpleMesh
	headNode *jitter.SimpleNode
	leftEye  *jitter.SimpleNode
	rightEye *jitter.SimpleNode

	blink *jitter.BlendShape
	head  *jitter.Transform
	eyes  *jitter.Eye

	blinkTrace *utils.Trace
	headTrace  *utils.Trace
	fading     bool
}

func newViewer(rng *rand.Rand) *viewer {
	self := &viewer{
		mesh:       jitter.NewSimpleMesh("blink"),
		headNode:   jitter.NewSimpleNode(),
		leftEye:    jitter.NewSimpleNode(),
		rightEye:   jitter.NewSimpleNode(),
		blinkTrace: utils.NewTrace(traceLength),
		headTrace:  utils.NewTrace(traceLength),
	}

	self.blink = jitter.NewBlendShape(self.mesh, rng)
	self.blink.Morphs = []*jitter.Morph{jitter.NewMorph("blink", jitter.MorphScale)}
	self.blink.Loop.Interval.Min, self.blink.Loop.Interval.Max = 1, 4
	self.blink.Loop.Period.Min, self.blink.Loop.Period.Max = 0.15, 0.3

	self.head = jitter.NewTransform(self.headNode, jitter.Position, rng)
	self.head.Magnification = 6

	self.eyes = jitter.NewEye(self.leftEye, self.rightEye, rng)
	self.eyes.Range = ebimath.V(8, 5)
	return self
}

func (self *viewer) loadAssets() error {
	if *blendShapePath != "" {
		asset, err := loadAsset(*blendShapePath, jitter.LoadBlendShapeAsset)
		if err != nil {
			return err
		}
		if err := self.blink.Import(asset); err != nil {
			return err
		}
	}
	if *transformPath != "" {
		asset, err := loadAsset(*transformPath, jitter.LoadTransformAsset)
		if err != nil {
			return err
		}
		if err := self.head.Import(asset); err != nil {
			return err
		}
	}
	return nil
}

func loadAsset[T any](path string, load func(io.Reader) (*T, error)) (*T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening asset: %w", err)
	}
	defer file.Close()
	return load(file)
}

func (self *viewer) saveAssets() error {
	var blendAsset jitter.BlendShapeAsset
	var headAsset jitter.TransformAsset
	if err := self.blink.Export(&blendAsset); err != nil {
		return err
	}
	if err := self.head.Export(&headAsset); err != nil {
		return err
	}
	if err := saveAsset("blendshape.yaml", blendAsset.Save); err != nil {
		return err
	}
	return saveAsset("transform.yaml", headAsset.Save)
}

func saveAsset(path string, save func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating asset: %w", err)
	}
	if err := save(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (self *viewer) update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		self.head.PlayOnce()
		self.blink.PlayOnce()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		self.fading = !self.fading
		for _, player := range []jitter.Player{self.blink, self.head, self.eyes} {
			if self.fading {
				player.FadeOut(1)
			} else {
				player.FadeIn(1)
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		self.host.SetPaused(!self.host.IsPaused())
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		self.host.SetTickRate(min(self.host.TickRate()*2, 8))
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		self.host.SetTickRate(self.host.TickRate() / 2)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := self.saveAssets(); err != nil {
			jitter.GetLogger().Printf("saving assets: %v", err)
		}
	}

	if !self.host.IsPaused() {
		self.blinkTrace.Push(self.mesh.MorphWeight(0))
		self.headTrace.Push(float64(self.head.Delta().Y()))
	}
	return nil
}

func (self *viewer) draw(screen *ebiten.Image) {
	screen.Fill(utils.RGB(32, 30, 40))

	// head
	offset := self.headNode.Position()
	center := ebimath.V(screenWidth/2+float64(offset.X()), 100+float64(offset.Y()))
	vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), 48, utils.RGB(236, 200, 160), true)

	// eyes, squashed by the blink weight
	openness := float32(1 - self.mesh.MorphWeight(0)/jitter.MorphScale)
	for i, node := range []*jitter.SimpleNode{self.leftEye, self.rightEye} {
		eye := ebimath.V(center.X-18+36*float64(i), center.Y-8)
		vector.DrawFilledRect(screen, float32(eye.X)-8, float32(eye.Y)-6*openness, 16, 12*openness, utils.RGB(250, 250, 250), true)
		if openness > 0.2 {
			gaze := pupilOffset(node.Rotation(), 5)
			vector.DrawFilledCircle(screen, float32(eye.X+gaze.X), float32(eye.Y+gaze.Y), 3*openness, utils.RGB(20, 20, 30), true)
		}
	}

	// weights
	utils.DrawWeightBar(screen, image.Rect(8, 176, 156, 184), self.mesh.MorphWeight(0), 0, jitter.MorphScale, utils.RGB(60, 60, 70), utils.RGB(120, 200, 255))
	utils.DrawWeightBar(screen, image.Rect(164, 176, 312, 184), float64(self.head.Delta().Y()), -2*self.head.Magnification, 2*self.head.Magnification, utils.RGB(60, 60, 70), utils.RGB(255, 160, 90))
	self.blinkTrace.Draw(screen, image.Rect(8, 190, 156, 232), 0, jitter.MorphScale, utils.RGB(120, 200, 255))
	self.headTrace.Draw(screen, image.Rect(164, 190, 312, 232), -2*self.head.Magnification, 2*self.head.Magnification, utils.RGB(255, 160, 90))

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"loop %v  rate x%.2g  paused %v\nspace: once  f: fade  s: save",
		self.blink.State(), self.host.TickRate(), self.host.IsPaused(),
	))
}

// projects the eye's forward direction onto the screen plane
func pupilOffset(rotation mgl32.Quat, radius float64) ebimath.Vector {
	forward := rotation.Rotate(mgl32.Vec3{0, 0, 1})
	return ebimath.V(float64(forward.X())*radius*4, -float64(forward.Y())*radius*4)
}
