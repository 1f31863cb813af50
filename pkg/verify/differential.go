// Package verify menjalankan IndexedMinHeap & SortedList dengan urutan operasi yang sama
// lalu membandingkan hasilnya setiap step (differential testing).
package verify

import (
	"errors"
	"fmt"
	"lintang/minpq/pkg/datastructure"

	"golang.org/x/exp/rand"
)

type OpType int

const (
	OpInsert OpType = iota
	OpRemoveMin
	OpChangePriority
	OpPeekMin
	OpContains
)

func (o OpType) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpRemoveMin:
		return "removeMin"
	case OpChangePriority:
		return "changePriority"
	case OpPeekMin:
		return "peekMin"
	case OpContains:
		return "contains"
	}
	return fmt.Sprintf("OpType(%d)", int(o))
}

type Op struct {
	Type     OpType
	Item     int
	Priority float64
}

func (o Op) String() string {
	switch o.Type {
	case OpInsert, OpChangePriority:
		return fmt.Sprintf("%s(%d, %v)", o.Type, o.Item, o.Priority)
	case OpContains:
		return fmt.Sprintf("%s(%d)", o.Type, o.Item)
	}
	return fmt.Sprintf("%s()", o.Type)
}

const maxPriority = 1000

// GenerateOps random operation stream untuk item di [0, keySpace). insert lebih sering supaya heap tidak selalu kosong.
func GenerateOps(rng *rand.Rand, n, keySpace int) []Op {
	if keySpace < 1 {
		keySpace = 1
	}
	ops := make([]Op, n)
	for i := range ops {
		op := Op{Item: rng.Intn(keySpace)}
		switch r := rng.Intn(10); {
		case r < 4:
			op.Type = OpInsert
			op.Priority = rng.Float64() * maxPriority
		case r < 6:
			op.Type = OpRemoveMin
		case r < 8:
			op.Type = OpChangePriority
			op.Priority = rng.Float64() * maxPriority
		case r < 9:
			op.Type = OpPeekMin
		default:
			op.Type = OpContains
		}
		ops[i] = op
	}
	return ops
}

// Divergence hasil heap beda dengan oracle di step tertentu.
type Divergence struct {
	Step   int
	Op     Op
	Reason string
}

func (d *Divergence) Error() string {
	return fmt.Sprintf("step %d %s: %s", d.Step, d.Op, d.Reason)
}

type Report struct {
	Ops     int
	Inserts int
	Removes int
	Changes int
	Errors  int
	MaxSize int
}

type Options struct {
	// Progress dipanggil setelah setiap step.
	Progress func(step int)
}

var errorKinds = []error{
	datastructure.ErrDuplicateItem,
	datastructure.ErrEmptyQueue,
	datastructure.ErrItemNotFound,
}

func errorKind(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range errorKinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return err
}

// Run apply ops ke IndexedMinHeap & SortedList. return *Divergence untuk perbedaan pertama.
func Run(ops []Op, opts Options) (Report, error) {
	h := datastructure.NewIndexedMinHeap[int]()
	oracle := NewSortedList[int]()
	report := Report{}

	for step, op := range ops {
		diverged := func(format string, a ...interface{}) (Report, error) {
			return report, &Divergence{Step: step, Op: op, Reason: fmt.Sprintf(format, a...)}
		}

		var gotErr, wantErr error
		switch op.Type {
		case OpInsert:
			gotErr = h.Insert(op.Item, op.Priority)
			wantErr = oracle.Insert(op.Item, op.Priority)
			if gotErr == nil {
				report.Inserts++
			}
		case OpChangePriority:
			gotErr = h.ChangePriority(op.Item, op.Priority)
			wantErr = oracle.ChangePriority(op.Item, op.Priority)
			if gotErr == nil {
				report.Changes++
			}
		case OpPeekMin, OpRemoveMin:
			var rec datastructure.PriorityRecord[int]
			if op.Type == OpPeekMin {
				rec, gotErr = h.PeekMinRecord()
			} else {
				rec, gotErr = h.RemoveMinRecord()
			}
			var want datastructure.PriorityRecord[int]
			want, wantErr = oracle.Min()
			if gotErr != nil || wantErr != nil {
				break
			}
			// tie-break tidak dijamin, cukup priority sama & item memang punya priority itu di oracle
			if rec.Priority != want.Priority {
				return diverged("got priority %v for item %d, oracle minimum is %v (item %d)",
					rec.Priority, rec.Item, want.Priority, want.Item)
			}
			p, ok := oracle.Priority(rec.Item)
			if !ok || p != rec.Priority {
				return diverged("item %d is not queued at priority %v in oracle", rec.Item, rec.Priority)
			}
			if op.Type == OpRemoveMin {
				if err := oracle.RemoveItem(rec.Item); err != nil {
					return diverged("oracle remove %d: %v", rec.Item, err)
				}
				report.Removes++
			}
		case OpContains:
		default:
			return diverged("unknown op type")
		}

		if errorKind(gotErr) != errorKind(wantErr) {
			return diverged("heap error %v, oracle error %v", gotErr, wantErr)
		}
		if gotErr != nil {
			report.Errors++
		}

		if got, want := h.Contains(op.Item), oracle.Contains(op.Item); got != want {
			return diverged("contains(%d) = %v, oracle %v", op.Item, got, want)
		}
		if h.Size() != oracle.Len() {
			return diverged("size %d, oracle size %d", h.Size(), oracle.Len())
		}
		if err := h.Validate(); err != nil {
			return diverged("%v", err)
		}

		if h.Size() > report.MaxSize {
			report.MaxSize = h.Size()
		}
		report.Ops++
		if opts.Progress != nil {
			opts.Progress(step)
		}
	}
	return report, nil
}
