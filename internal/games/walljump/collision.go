package walljump

// collides reports whether the player's box touches an obstacle that
// counts against it. Side variants only test obstacles on the wall the
// player currently belongs to; climbing tests every obstacle.
func collides(s State, p Params) bool {
	player := s.PlayerRect(p)
	for _, o := range s.Obstacles {
		if !p.Variant.Climbing && o.OnLeftWall != s.OnLeftWall {
			continue
		}
		if player.Overlaps(o.Rect()) {
			return true
		}
	}
	return false
}
