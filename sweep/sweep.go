package sweep

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/nadav-alali/fairsweep/dataset"
	"github.com/nadav-alali/fairsweep/eventqueue"
	"github.com/nadav-alali/fairsweep/oracle"
)

const halfPi = math.Pi / 2

// Run performs the rotational sweep over ds using o as the fairness
// oracle, and returns the sorted boundary list delimiting the satisfactory
// regions of [0, π/2], along with sweep statistics.
//
// Preconditions and validation:
//  1. ds must be non-nil and contain at least two items (dataset.ErrEmptyDataset).
//  2. ctx is checked for cancellation before the loop starts and between
//     every oracle evaluation; a cancelled ctx aborts the sweep and
//     returns ctx.Err().
//
// An error from o.Evaluate is fatal: Run wraps it in ErrOracleFailure and
// returns immediately, discarding its in-progress ordering and queue. The
// caller observes no partial boundary list in that case.
func Run(ctx context.Context, ds *dataset.Dataset, o oracle.Oracle) ([]Boundary, Stats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if ds == nil || ds.Len() < 2 {
		return nil, Stats{}, dataset.ErrEmptyDataset
	}
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}

	r := &runner{
		ordering: ds.Snapshot(),
		oracle:   o,
		queue:    eventqueue.New(),
		ctx:      ctx,
	}
	r.init()

	boundaries, err := r.run()
	stats := Stats{Swaps: r.swaps, RunID: uuid.NewString()}
	if err != nil {
		return nil, stats, err
	}

	return boundaries, stats, nil
}

// runner holds the mutable state of a single sweep invocation: the
// current ordering, the event queue, and the swap counter. It is
// discarded when Run returns.
type runner struct {
	ordering []*dataset.Item
	oracle   oracle.Oracle
	queue    *eventqueue.Queue
	ctx      context.Context
	swaps    int
}

// exchangeAngle computes the exchange angle for the pair (left, right),
// assuming left currently precedes right in the ordering. It returns
// ok=false when the pair generates no event within [0, π/2]: left.Y >=
// right.Y (dominated or tied — no exchange in this domain), or the
// resulting angle falls outside [0, π/2].
func exchangeAngle(left, right *dataset.Item) (theta float64, ok bool) {
	if left.Y >= right.Y {
		return 0, false
	}

	ratio := (right.X - left.X) / (left.Y - right.Y)
	theta = math.Atan(ratio)
	if theta < 0 || theta > halfPi {
		return 0, false
	}

	return theta, true
}

// pushEventAt computes and pushes the event for the adjacent pair at
// positions (i, i+1), if one exists. Out-of-range i is a no-op so callers
// can push unconditionally around a swap site.
func (r *runner) pushEventAt(i int) {
	if i < 0 || i+1 >= len(r.ordering) {
		return
	}

	left, right := r.ordering[i], r.ordering[i+1]
	theta, ok := exchangeAngle(left, right)
	if !ok {
		return
	}

	r.queue.PushEvent(&eventqueue.Event{Theta: theta, Index: i, Left: left, Right: right})
}

// init sorts the ordering descending by X (the ranking at θ = 0) and seeds
// the event queue with every adjacent pair's exchange event.
func (r *runner) init() {
	sort.SliceStable(r.ordering, func(i, j int) bool {
		return r.ordering[i].X > r.ordering[j].X
	})
	for i := 0; i+1 < len(r.ordering); i++ {
		r.pushEventAt(i)
	}
}

// popValid pops events until a non-stale one is found or the queue empties
// (nil, no error).
func (r *runner) popValid() *eventqueue.Event {
	for {
		ev, err := r.queue.PopMin()
		if err != nil {
			return nil
		}
		if r.ordering[ev.Index] != ev.Left || r.ordering[ev.Index+1] != ev.Right {
			continue // stale: one of the two items has already moved
		}

		return ev
	}
}

// swap exchanges the pair named by ev and recomputes the (up to two)
// events for the pairs now adjacent to the swap site.
func (r *runner) swap(ev *eventqueue.Event) {
	i := ev.Index
	r.ordering[i], r.ordering[i+1] = r.ordering[i+1], r.ordering[i]
	r.swaps++

	r.pushEventAt(i - 1)
	r.pushEventAt(i + 1)
}

// evaluate runs the oracle against the current ordering, wrapping any
// error with ErrOracleFailure.
func (r *runner) evaluate() (bool, error) {
	sat, err := r.oracle.Evaluate(r.ordering)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrOracleFailure, err)
	}

	return sat, nil
}

// run executes the two-phase boundary-recording algorithm.
func (r *runner) run() ([]Boundary, error) {
	var boundaries []Boundary

	sat, err := r.evaluate()
	if err != nil {
		return nil, err
	}

	if sat {
		boundaries = append(boundaries, Boundary{Theta: 0, Kind: Start})
	} else {
		for {
			if err := r.ctx.Err(); err != nil {
				return nil, err
			}

			ev := r.popValid()
			if ev == nil {
				return boundaries, nil // queue exhausted, no satisfactory region exists
			}

			r.swap(ev)
			sat, err = r.evaluate()
			if err != nil {
				return nil, err
			}
			if sat {
				boundaries = append(boundaries, Boundary{Theta: ev.Theta, Kind: Start})

				break
			}
		}
	}

	flag := sat
	for {
		if err := r.ctx.Err(); err != nil {
			return nil, err
		}

		ev := r.popValid()
		if ev == nil {
			break
		}

		r.swap(ev)
		now, err := r.evaluate()
		if err != nil {
			return nil, err
		}

		switch {
		case flag && !now:
			boundaries = append(boundaries, Boundary{Theta: ev.Theta, Kind: End})
		case !flag && now:
			boundaries = append(boundaries, Boundary{Theta: ev.Theta, Kind: Start})
		}
		flag = now
	}

	if flag {
		boundaries = append(boundaries, Boundary{Theta: halfPi, Kind: End})
	}

	return boundaries, nil
}
