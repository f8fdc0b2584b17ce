package models

// UnlockRequest is the body of POST /api/unlock.
type UnlockRequest struct {
	Credential string `json:"credential"`
}

// View is what the serving layer hands to the renderer: either the unlocked
// private record or the public one. It deliberately carries no reason for a
// failed unlock.
type View struct {
	Private bool   `json:"private"`
	Record  Record `json:"record"`
}
