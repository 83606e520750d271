package walljump

import "math/rand"

// BitSource supplies the wall choice for each spawned obstacle.
type BitSource interface {
	Bit() bool
}

// BitFunc adapts a function to BitSource.
type BitFunc func() bool

func (f BitFunc) Bit() bool { return f() }

// RandBits is a seeded BitSource.
type RandBits struct {
	rng *rand.Rand
}

// NewRandBits creates a deterministic bit source.
func NewRandBits(seed int64) *RandBits {
	return &RandBits{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandBits) Bit() bool {
	return r.rng.Intn(2) == 0
}

// spawnObstacle places a new obstacle just above the top edge on the
// wall picked by bits.
func spawnObstacle(bits BitSource, vp Viewport, p Params) Obstacle {
	left := bits.Bit()
	o := Obstacle{
		Width:      p.ObstacleWidth,
		Height:     p.ObstacleHeight,
		Y:          -p.ObstacleHeight,
		OnLeftWall: left,
	}
	if left {
		o.X = p.WallThickness
	} else {
		o.X = vp.Width - p.WallThickness - o.Width
	}
	return o
}
