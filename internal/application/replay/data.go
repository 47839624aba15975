// Package replay records per-frame input and re-simulates it headlessly.
// The engine has no randomness and no delta time, so the same inputs on
// the same level always produce the same session.
package replay

// Version is written into every recording
const Version = "1.0"

// Session actions a player triggers from the overlays. They are recorded
// against the frame they happened on.
const (
	ActionRetry   = "retry"
	ActionRestart = "restart"
)

// FrameInput records input state for a single frame
type FrameInput struct {
	F int    `json:"f"`           // Frame number
	L bool   `json:"l,omitempty"` // Left
	R bool   `json:"r,omitempty"` // Right
	U bool   `json:"u,omitempty"` // Up (jump)
	P bool   `json:"p,omitempty"` // Pause pressed
	A string `json:"a,omitempty"` // Overlay action applied before the tick
}

// ReplayData contains all data needed to replay a level session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	Lives     int          `json:"lives"` // Lives at session start
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
