// Package replay defines the recorded input format and plays it back.
package replay

// Version is the current replay format version
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	DT float32 `json:"dt"`           // Seconds since previous frame
	P  bool    `json:"p,omitempty"`  // Pointer active
	PX float64 `json:"px,omitempty"` // Pointer X (window pixels)
	PY float64 `json:"py,omitempty"` // Pointer Y (window pixels)
	L  bool    `json:"l,omitempty"`  // Left
	R  bool    `json:"r,omitempty"`  // Right
	W  int     `json:"w,omitempty"`  // Window width, set on frames where it changed
	H  int     `json:"h,omitempty"`  // Window height, set on frames where it changed
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
