package subtitle

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTooFewTimestamps is returned when the data doesn't contain enough
	// timestamps to calculate the delay growth.
	ErrTooFewTimestamps = errors.New("need at least two subtitle cues to calculate delay")
	// ErrDelaySignMismatch is returned when the delay changes sign through
	// the video, which has no growth-factor solution.
	ErrDelaySignMismatch = errors.New("subtitle delay changes sign through the video, growth factor undefined")
)

// Delay describes how far behind the video a subtitle file runs.
type Delay struct {
	InitialMS float64 // Delay of the first subtitle, in milliseconds
	Growth    float64 // Per-millisecond growth factor of the delay
}

// CalcDelay derives the initial delay and growth factor from the times (in
// milliseconds) of the first and last spoken lines in the video.
//
// With f(t) = delay at time t and f(t) = d1 * g^t, two observations give
// d1/d2 = g^(t1-t2), so g = (d1/d2)^(1/(t1-t2)). The start time of the last
// cue is the second-to-last timestamp in the file, since every cue carries a
// start and an end time.
func CalcDelay(data string, time1, time2 int64) (Delay, error) {
	if time1 < 0 || time2 < 0 {
		return Delay{}, errors.New("spoken line times can't be negative")
	}
	if time1 >= time2 {
		return Delay{}, errors.New("first spoken line must be before the last")
	}

	times, err := Timestamps(data)
	if err != nil {
		return Delay{}, err
	}
	if len(times) < 4 {
		return Delay{}, ErrTooFewTimestamps
	}

	firstSub := times[0]
	lastSub := times[len(times)-2]

	delay1 := float64(time1 - firstSub)
	delay2 := float64(time2 - lastSub)
	if delay2 == 0 {
		return Delay{}, fmt.Errorf("last subtitle already in sync, growth factor undefined")
	}
	if delay1 == 0 || delay1*delay2 < 0 {
		return Delay{}, fmt.Errorf("%w (first line %.0fms, last line %.0fms)",
			ErrDelaySignMismatch, delay1, delay2)
	}

	growth := math.Pow(delay1/delay2, 1/float64(time1-time2))

	return Delay{InitialMS: delay1, Growth: growth}, nil
}
