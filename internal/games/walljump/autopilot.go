package walljump

// Autopilot is a scripted player for headless runs. It jumps away from
// obstacles about to reach it and, where the variant allows, turns a
// jump around when the landing wall is blocked.
type Autopilot struct {
	// Slack is extra reaction time, in seconds, added to the jump time.
	Slack float64
}

// Decide returns the events to feed the router this frame.
func (a Autopilot) Decide(s State, vp Viewport, p Params) []Event {
	if s.GameOver || p.JumpRate <= 0 {
		return nil
	}
	jumpTime := 1/p.JumpRate + a.Slack

	if !s.Jumping {
		if a.threat(s, s.OnLeftWall, jumpTime, p) && !a.threat(s, !s.OnLeftWall, 2*jumpTime, p) {
			return []Event{{Kind: EventPrimary}}
		}
		return nil
	}

	target := !s.OnLeftWall
	if s.Returning {
		target = s.OnLeftWall
	}
	remaining := (1 - s.JumpProgress) / p.JumpRate
	if !a.threat(s, target, remaining+a.Slack, p) {
		return nil
	}
	if p.Variant.AirJump && !s.Returning {
		// A fresh jump from mid-air buys time before landing.
		if s.JumpProgress > 0.5 {
			return []Event{{Kind: EventPrimary}}
		}
		return nil
	}
	if p.Variant.AllowReturn && !s.Returning && s.InReturnBand(p, vp) &&
		!a.threat(s, s.OnLeftWall, 1/p.JumpRate, p) {
		return []Event{{Kind: EventSecondary}}
	}
	return nil
}

// threat reports whether an obstacle on the given wall will overlap the
// player's rows within the next window seconds.
func (a Autopilot) threat(s State, left bool, window float64, p Params) bool {
	speed := p.Difficulty.ObstacleSpeed(p.ObstacleSpeed, s.ElapsedTime)
	if p.Variant.Climbing {
		speed += p.ClimbSpeed
	}
	top := s.PlayerY
	bottom := s.PlayerY + p.PlayerSize
	for _, o := range s.Obstacles {
		if o.OnLeftWall != left {
			continue
		}
		if o.Y > bottom {
			continue // already passed
		}
		if o.Y+o.Height >= top-speed*window {
			return true
		}
	}
	return false
}
