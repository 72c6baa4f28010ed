// File: run.go
// Role: Replay a Script against a vector.Vector[int] and collect a Trace.
// Logging:
//   - One debug record per step; failing steps are logged at warn level.

package script

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/dynarray/vector"
)

// OpInit labels the record that captures the state before the first step.
const OpInit Op = "init"

// Record is the vector state observed right after one step.
type Record struct {
	Step     int    // 0 for the initial state, then 1..len(Steps)
	Op       Op     // operation applied
	Args     string // rendered arguments, e.g. "index=1 value=9"
	Result   string // value read by at/front/back or offset returned by insert/erase
	Err      error  // vector error of a failing step, nil on success
	Contents string // vector.String() after the step
	Size     int
	Cap      int
}

// Trace is the ordered list of Records produced by one run.
type Trace struct {
	Name    string
	Records []Record
}

// Failed returns the number of failing steps.
func (t *Trace) Failed() int {
	n := 0
	for _, r := range t.Records {
		if r.Err != nil {
			n++
		}
	}

	return n
}

// Runner executes scripts.
//
// Fields:
//   - Logger: receives per-step records; nil discards them.
//   - ContinueOnError: keep running after a failing step instead of stopping.
type Runner struct {
	Logger          *slog.Logger
	ContinueOnError bool
}

// Run validates s, builds the vector and applies each step in order.
//
// Implementation:
//   - Stage 1: Validate the script (ErrEmptyScript, ErrUnknownOp).
//   - Stage 2: Construct with WithCapacity(s.Capacity) and push s.Initial.
//   - Stage 3: Apply steps; record state after each one.
//
// Returns:
//   - *Trace: every record produced so far, also on failure.
//   - error: the first *StepError, or ctx.Err() if ctx is cancelled between steps.
func (r *Runner) Run(ctx context.Context, s *Script) (*Trace, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	log := r.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log = log.With("script", s.Name)

	v := vector.WithCapacity[int](s.Capacity)
	for _, x := range s.Initial {
		v.PushBack(x)
	}
	trace := &Trace{Name: s.Name}
	trace.Records = append(trace.Records, snapshot(v, 0, OpInit, "", "", nil))
	log.Debug("initialized", "contents", v.String(), "size", v.Size(), "cap", v.Cap())

	var first error
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return trace, err
		}
		n := i + 1
		res, err := apply(v, st)
		rec := snapshot(v, n, st.Op, formatArgs(st), res, err)
		trace.Records = append(trace.Records, rec)

		if err != nil {
			log.Warn("step failed", "step", n, "op", string(st.Op), "error", err)
			if first == nil {
				first = &StepError{Step: n, Op: st.Op, Err: err}
			}
			if !r.ContinueOnError {
				return trace, first
			}
			continue
		}
		log.Debug("step", "step", n, "op", string(st.Op), "contents", rec.Contents, "size", rec.Size, "cap", rec.Cap)
	}

	return trace, first
}

func snapshot(v *vector.Vector[int], n int, op Op, args, res string, err error) Record {
	return Record{
		Step:     n,
		Op:       op,
		Args:     args,
		Result:   res,
		Err:      err,
		Contents: v.String(),
		Size:     v.Size(),
		Cap:      v.Cap(),
	}
}

// apply runs one step. Insert and erase take their position as an offset
// from Begin(), which is how the container itself translates iterators.
func apply(v *vector.Vector[int], st Step) (string, error) {
	switch st.Op {
	case OpPushBack:
		v.PushBack(st.Value)
	case OpPopBack:
		return "", v.PopBack()
	case OpInsert:
		it, err := v.Insert(v.Begin().Add(st.Index), st.Value)
		if err != nil {
			return "", err
		}
		return "@" + strconv.Itoa(it.Index()), nil
	case OpErase:
		it, err := v.Erase(v.Begin().Add(st.Index))
		if err != nil {
			return "", err
		}
		return "@" + strconv.Itoa(it.Index()), nil
	case OpAt:
		return read(v.At(st.Index))
	case OpSet:
		return "", v.Set(st.Index, st.Value)
	case OpFront:
		return read(v.Front())
	case OpBack:
		return read(v.Back())
	case OpReserve:
		return "", v.Reserve(st.Capacity)
	case OpShrinkToFit:
		v.ShrinkToFit()
	case OpClear:
		v.Clear()
	default:
		return "", ErrUnknownOp
	}

	return "", nil
}

func read(x int, err error) (string, error) {
	if err != nil {
		return "", err
	}

	return strconv.Itoa(x), nil
}

func formatArgs(st Step) string {
	switch st.Op {
	case OpPushBack:
		return fmt.Sprintf("value=%d", st.Value)
	case OpInsert, OpSet:
		return fmt.Sprintf("index=%d value=%d", st.Index, st.Value)
	case OpErase, OpAt:
		return fmt.Sprintf("index=%d", st.Index)
	case OpReserve:
		return fmt.Sprintf("capacity=%d", st.Capacity)
	}

	return ""
}
