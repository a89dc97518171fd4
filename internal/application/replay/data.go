package replay

// FrameInput records logical button state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	Q  bool `json:"q,omitempty"`  // Quit
	S  bool `json:"s,omitempty"`  // Select
	CA bool `json:"ca,omitempty"` // ContextAction
	CX int  `json:"cx"`           // Last click X
	CY int  `json:"cy"`           // Last click Y
}

// ReplayData contains all data needed to replay a walking session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	DT        float64      `json:"dt"` // Fixed tick length in seconds
	Frames    []FrameInput `json:"frames"`
}
