package subtitle

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoTimestamps is returned when the data contains no SRT timestamps.
	ErrNoTimestamps = errors.New("no SRT timestamps found")
	// ErrDelayUnderflow is returned when a negative delay would push the
	// first subtitle before the start of the video.
	ErrDelayUnderflow = errors.New("delay underflow: negative delay magnitude exceeds time of first subtitle")
	// ErrGrowthTooSmall is returned for growth factors below 1.0.
	ErrGrowthTooSmall = errors.New("minimum growth factor is 1.0")
)

// Shift rewrites every timestamp t in the SRT data to t + delay*growth^t,
// where t is measured in milliseconds. A growth factor of 1.0 applies a
// constant delay; factors above 1.0 let the delay grow through the video,
// compensating for subtitles authored against a different frame rate.
func Shift(data string, delayMS int64, growth float64) (string, error) {
	if growth < 1.0 {
		return "", ErrGrowthTooSmall
	}

	times, err := Timestamps(data)
	if err != nil {
		return "", err
	}
	if len(times) == 0 {
		return "", ErrNoTimestamps
	}

	if times[0]+delayMS < 0 {
		return "", fmt.Errorf("%w (first subtitle at %s, delay %dms)",
			ErrDelayUnderflow, FormatTimestamp(times[0]), delayMS)
	}

	shifted := timestampRe.ReplaceAllStringFunc(data, func(match string) string {
		ms, err := ParseTimestamp(match)
		if err != nil {
			return match
		}
		return FormatTimestamp(applyDelay(ms, delayMS, growth))
	})

	return shifted, nil
}

// applyDelay computes the shifted time in milliseconds, rounding to the
// nearest millisecond.
func applyDelay(ms, delayMS int64, growth float64) int64 {
	delay := float64(delayMS) * math.Pow(growth, float64(ms))
	return int64(math.Round(float64(ms) + delay))
}
