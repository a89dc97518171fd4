package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/tilewalk/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the button state for the current frame and advances
func (r *Replayer) Next() (system.Buttons, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.Buttons{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return fi.Buttons(), true
}

// Buttons converts the recorded frame back to logical button state
func (fi FrameInput) Buttons() system.Buttons {
	var b system.Buttons
	b.Set(system.ButtonLeft, fi.L)
	b.Set(system.ButtonRight, fi.R)
	b.Set(system.ButtonUp, fi.U)
	b.Set(system.ButtonDown, fi.D)
	b.Set(system.ButtonQuit, fi.Q)
	b.Set(system.ButtonSelect, fi.S)
	b.Set(system.ButtonContextAction, fi.CA)
	b.Click(fi.CX, fi.CY)
	return b
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// DT returns the tick length the session was recorded with
func (r *Replayer) DT() float64 {
	return r.data.DT
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, clickX, clickY int) ReplayData {
	data := ReplayData{
		Version:   "1.0",
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		DT:        1.0 / 60.0,
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			CX: clickX,
			CY: clickY,
		}
	}

	return data
}
