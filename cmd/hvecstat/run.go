package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/webbmaffian/go-headervec/alloc"
	"github.com/webbmaffian/go-headervec/headervec"
	"go.uber.org/zap"
)

type options struct {
	count     int
	capacity  int
	allocator string
	workload  string
	every     int
	delay     time.Duration
	seed      uint64
}

// counters is the header of the driven vector. It holds no pointers, so the
// vector can live in an anonymous mapping.
type counters struct {
	Ops     uint64
	Pushes  uint64
	Inserts uint64
	Removes uint64
}

type sample struct {
	Seq   uint64
	Value float64
}

func compareSamples(a, b sample) int {
	switch {
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	}

	return 0
}

type workload func(v *headervec.Vec[counters, sample], rng *rand.Rand, seq uint64)

var workloads = map[string]workload{
	"push":   pushWorkload,
	"churn":  churnWorkload,
	"insert": insertWorkload,
	"mixed":  mixedWorkload,
}

func pushWorkload(v *headervec.Vec[counters, sample], rng *rand.Rand, seq uint64) {
	v.Push(sample{Seq: seq, Value: rng.Float64()})
	v.Head().Pushes++
}

func churnWorkload(v *headervec.Vec[counters, sample], rng *rand.Rand, seq uint64) {
	if v.Len() > 0 && rng.IntN(2) == 0 {
		v.Pop()
		v.Head().Removes++
		return
	}

	pushWorkload(v, rng, seq)
}

func insertWorkload(v *headervec.Vec[counters, sample], rng *rand.Rand, seq uint64) {
	headervec.InsertSortedFunc(v, sample{Seq: seq, Value: rng.Float64()}, compareSamples)
	v.Head().Inserts++
}

func mixedWorkload(v *headervec.Vec[counters, sample], rng *rand.Rand, seq uint64) {
	if v.Len() == 0 {
		pushWorkload(v, rng, seq)
		return
	}

	switch rng.IntN(8) {
	case 0, 1, 2:
		pushWorkload(v, rng, seq)
	case 3:
		v.Insert(rng.IntN(v.Len()+1), sample{Seq: seq, Value: rng.Float64()})
		v.Head().Inserts++
	case 4:
		v.Pop()
		v.Head().Removes++
	case 5:
		v.Remove(rng.IntN(v.Len()))
		v.Head().Removes++
	case 6:
		v.SwapRemove(rng.IntN(v.Len()))
		v.Head().Removes++
	case 7:
		if rng.IntN(64) == 0 {
			v.Head().Removes += uint64(v.Len() - v.Len()/2)
			v.Truncate(v.Len() / 2)
		} else {
			pushWorkload(v, rng, seq)
		}
	}
}

var errNegativeOption = errors.New("count, capacity and every must not be negative")

func newAllocator(name string) (alloc.Allocator, error) {
	switch name {
	case "heap":
		return alloc.Heap{}, nil
	case "mmap":
		return alloc.NewMmap(), nil
	}

	return nil, fmt.Errorf("unknown allocator %q", name)
}

func run(ctx context.Context, opts options, out io.Writer, log *zap.Logger) (err error) {
	step, ok := workloads[opts.workload]

	if !ok {
		return fmt.Errorf("unknown workload %q", opts.workload)
	}

	if opts.count < 0 || opts.capacity < 0 || opts.every < 0 {
		return errNegativeOption
	}

	inner, err := newAllocator(opts.allocator)

	if err != nil {
		return
	}

	checked := alloc.NewChecked(inner)
	v := headervec.WithCapacityIn[counters, sample](checked, counters{}, opts.capacity)
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))
	r := newRenderer(out)

	log.Info("starting workload",
		zap.String("workload", opts.workload),
		zap.String("allocator", opts.allocator),
		zap.Int("count", opts.count),
		zap.Uint64("seed", opts.seed),
	)

	defer func() {
		s := snapshotOf(v, checked, inner)
		v.Drop()
		r.render(s)
		r.stop()

		if checked.Live() != 0 {
			log.Error("allocations leaked", zap.Int("live", checked.Live()))
		}
	}()

	for i := range opts.count {
		if ctx.Err() != nil {
			log.Info("interrupted", zap.Int("ops", i))
			break
		}

		step(v, rng, uint64(i))
		v.Head().Ops++

		if opts.every > 0 && (i+1)%opts.every == 0 {
			r.render(snapshotOf(v, checked, inner))
			sleep(ctx, opts.delay)
		}
	}

	return
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
