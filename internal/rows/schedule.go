package rows

import (
	"errors"
	"fmt"
)

// ErrInvalidSchedule is returned when period and offset cannot produce a
// schedule.
var ErrInvalidSchedule = errors.New("invalid schedule")

type slot struct {
	step int
	set  bool
}

// Schedule builds the backward offset sequence for a pattern with the given
// period and per-period translation.
//
// Starting at index 0, each index i is assigned the smallest step j >= offset
// whose target (i+j) mod period is still unassigned, and the walk moves to
// that target. When no such target remains, the current index gets
// period-i, which closes the cycle back to 0. Following
// i = (i + backOff[i]) mod period from 0 therefore visits every index once.
//
// The returned slice has length period and every entry lies in [1, period].
func Schedule(period, offset int) ([]int, error) {
	if period <= 0 || offset <= 0 {
		return nil, fmt.Errorf("%w: period %d and offset %d must be positive", ErrInvalidSchedule, period, offset)
	}
	if period <= offset {
		return nil, fmt.Errorf("%w: period %d must be greater than offset %d", ErrInvalidSchedule, period, offset)
	}

	slots := make([]slot, period)
	i := 0
	for {
		j := offset
		for j < period && slots[(i+j)%period].set {
			j++
		}
		if j == period {
			slots[i] = slot{step: period - i, set: true}
			break
		}
		slots[i] = slot{step: j, set: true}
		i = (i + j) % period
	}

	backOff := make([]int, period)
	for idx, s := range slots {
		if !s.set {
			return nil, fmt.Errorf("%w: index %d unreachable for period %d offset %d", ErrInvalidSchedule, idx, period, offset)
		}
		backOff[idx] = s.step
	}
	return backOff, nil
}
