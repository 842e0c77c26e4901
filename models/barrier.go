package models

// FollowerBarrier is the opt-in passcode gate a user can set so that new
// followers must supply the correct passcode. At most one per username.
type FollowerBarrier struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Passcode string `json:"-"`
}

// FollowerBarrierResponse never carries the passcode.
type FollowerBarrierResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
