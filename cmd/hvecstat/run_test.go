package main

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webbmaffian/go-headervec/alloc"
	"github.com/webbmaffian/go-headervec/headervec"
	"go.uber.org/zap/zaptest"
)

func TestRunWorkloads(t *testing.T) {
	for _, allocator := range []string{"heap", "mmap"} {
		for name := range workloads {
			t.Run(allocator+"/"+name, func(t *testing.T) {
				var out bytes.Buffer

				err := run(context.Background(), options{
					count:     500,
					allocator: allocator,
					workload:  name,
					every:     100,
					seed:      1,
				}, &out, zaptest.NewLogger(t))

				require.NoError(t, err)

				lines := strings.Split(strings.TrimSpace(out.String()), "\n")
				require.Len(t, lines, 6)
				assert.True(t, strings.HasPrefix(lines[len(lines)-1], "ops=500 "))
				assert.Equal(t, allocator == "mmap", strings.Contains(lines[0], "mappings="))
			})
		}
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	log := zaptest.NewLogger(t)

	err := run(context.Background(), options{allocator: "heap", workload: "nope"}, &bytes.Buffer{}, log)
	assert.ErrorContains(t, err, "unknown workload")

	err = run(context.Background(), options{allocator: "arena", workload: "push"}, &bytes.Buffer{}, log)
	assert.ErrorContains(t, err, "unknown allocator")

	err = run(context.Background(), options{allocator: "heap", workload: "push", count: -1}, &bytes.Buffer{}, log)
	assert.ErrorIs(t, err, errNegativeOption)
}

func TestRunStopsWhenCancelled(t *testing.T) {
	var out bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, options{
		count:     1_000_000,
		allocator: "heap",
		workload:  "push",
		every:     10,
	}, &out, zaptest.NewLogger(t))

	require.NoError(t, err)
	assert.Equal(t, "ops=0 len=0 cap=0 size=40 B allocs=1 frees=0 live=40 B\n", out.String())
}

func TestInsertWorkloadKeepsOrder(t *testing.T) {
	a := alloc.NewChecked(alloc.Heap{})
	v := headervec.NewIn[counters, sample](a, counters{})
	rng := rand.New(rand.NewPCG(7, 7))

	for i := range 200 {
		insertWorkload(v, rng, uint64(i))
	}

	assert.Equal(t, uint64(200), v.Head().Inserts)
	assert.IsNonDecreasing(t, values(v.Body()))

	v.Drop()
	assert.Zero(t, a.Live())
}

func TestMixedWorkloadCounters(t *testing.T) {
	a := alloc.NewChecked(alloc.NewMmap())
	v := headervec.WithCapacityIn[counters, sample](a, counters{}, 4)
	rng := rand.New(rand.NewPCG(3, 9))

	for i := range 5000 {
		mixedWorkload(v, rng, uint64(i))
	}

	head := *v.Head()
	assert.Equal(t, int(head.Pushes+head.Inserts-head.Removes), v.Len())

	v.Drop()
	assert.Zero(t, a.Live())
}

func TestRootCommandFlags(t *testing.T) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--count", "50", "--every", "0", "--workload", "churn", "--seed", "5"})

	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "ops=50 "))
}

func values(items []sample) []float64 {
	res := make([]float64, len(items))

	for i, item := range items {
		res[i] = item.Value
	}

	return res
}
