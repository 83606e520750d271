package walljump

import "github.com/vovakirdan/wall-jump/internal/core"

// Advance computes the next state from s. It is pure: s and its
// obstacle slice are left untouched. A finished run is returned as is.
func Advance(s State, dt float64, cmds []Command, vp Viewport, bits BitSource, p Params) State {
	if s.GameOver {
		return s
	}
	if dt < 0 {
		dt = 0
	}

	next := s
	next.Obstacles = make([]Obstacle, len(s.Obstacles), len(s.Obstacles)+1)
	copy(next.Obstacles, s.Obstacles)

	for _, cmd := range cmds {
		next = apply(next, cmd, vp, p)
	}

	// Vertical position.
	if p.Variant.Climbing {
		next.PlayerY -= p.ClimbSpeed * dt
		if next.PlayerY <= 0 {
			next.ElapsedTime += dt
			next.GameOver = true
			next.Cause = CauseCeiling
			return next
		}
	} else {
		next.PlayerY = vp.Height * p.YFraction
	}

	// Jump interpolation.
	if next.Jumping {
		next.JumpProgress += dt * p.JumpRate
		if next.JumpProgress >= 1 {
			next.JumpProgress = 1
			next.Jumping = false
			if !next.Returning {
				next.OnLeftWall = !next.OnLeftWall
			}
			next.Returning = false
			next.Pivoted = false
		} else {
			next.PlayerX = core.Lerp(jumpStartX(next, vp, p), jumpEndX(next, vp, p), next.JumpProgress)
		}
	}

	// Resting position.
	if !next.Jumping {
		next.PlayerX = p.RestX(next.OnLeftWall, vp)
	}

	next.ElapsedTime += dt

	// Spawn.
	if next.ElapsedTime-next.LastSpawnTime > p.Difficulty.SpawnInterval(next.ElapsedTime) {
		next.Obstacles = append(next.Obstacles, spawnObstacle(bits, vp, p))
		next.LastSpawnTime = next.ElapsedTime
	}

	// Advance and cull.
	speed := p.Difficulty.ObstacleSpeed(p.ObstacleSpeed, next.ElapsedTime)
	limit := vp.Height + p.CullMargin
	kept := next.Obstacles[:0]
	for _, o := range next.Obstacles {
		o.Y += speed * dt
		if o.Y > limit {
			continue
		}
		kept = append(kept, o)
	}
	next.Obstacles = kept

	if collides(next, p) {
		next.GameOver = true
		next.Cause = CauseObstacle
	}
	return next
}

// apply folds one routed command into the state. Commands are gated
// again here so that a recorded command stream can be replayed safely.
func apply(s State, cmd Command, vp Viewport, p Params) State {
	switch cmd {
	case CommandJump:
		if s.Jumping && !p.Variant.AirJump {
			return s
		}
		if s.Jumping {
			s.Pivoted = true
			s.JumpPivotX = s.PlayerX
		} else {
			s.Pivoted = false
		}
		s.Jumping = true
		s.JumpProgress = 0
		s.Returning = false
	case CommandReturn:
		if !p.Variant.AllowReturn || !s.Jumping || s.Returning || !s.InReturnBand(p, vp) {
			return s
		}
		s.Returning = true
		s.Pivoted = true
		s.JumpPivotX = s.PlayerX
		s.JumpProgress = 0
	}
	return s
}

func jumpStartX(s State, vp Viewport, p Params) float64 {
	if s.Pivoted {
		return s.JumpPivotX
	}
	return p.RestX(s.OnLeftWall, vp)
}

func jumpEndX(s State, vp Viewport, p Params) float64 {
	if s.Returning {
		return p.RestX(s.OnLeftWall, vp)
	}
	return p.RestX(!s.OnLeftWall, vp)
}
