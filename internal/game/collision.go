package game

// Collides reports whether the claw's grabbers catch the player. Pure
// predicate over current positions: the bottom claw line must be within
// the vertical hit window of the player row, and the player's center must
// touch either grabber or sit strictly between the two (being between the
// arms counts even without touching one). Applying the life loss — and
// making sure one overlap costs at most one life — is the caller's job.
func Collides(clawX, clawBottom, playerCenter int) bool {
	if clawBottom < HitWindowTop || clawBottom > HitWindowBottom {
		return false
	}

	left := clawX + GrabberLeftOffset
	right := clawX + GrabberRightOffset

	leftHit := playerCenter >= left-PlayerRadius && playerCenter <= left+GrabberWidth+PlayerRadius
	rightHit := playerCenter >= right-PlayerRadius && playerCenter <= right+GrabberWidth+PlayerRadius
	caughtBetween := playerCenter > left+GrabberWidth && playerCenter < right

	return leftHit || rightHit || caughtBetween
}
