package follow

import "time"

// Edge is a directed follow relationship: follower -> following. Edges carry
// no state beyond the pair; deleting the edge is the unfollow.
//
// The repository itself does not guard against self-loops or duplicate
// edges; the reconciliation layer is responsible for preventing duplicate
// follow calls.
type Edge struct {
	ID          string    `json:"id"`
	FollowerID  string    `json:"followerId"`
	FollowingID string    `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}
