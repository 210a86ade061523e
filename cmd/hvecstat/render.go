package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"github.com/webbmaffian/go-headervec/alloc"
	"github.com/webbmaffian/go-headervec/headervec"
)

type snapshot struct {
	head      counters
	len       int
	cap       int
	size      uintptr
	allocs    int
	frees     int
	liveBytes uintptr
	mappings  int
	mapped    int
	isMmap    bool
}

func snapshotOf(v *headervec.Vec[counters, sample], checked *alloc.Checked, inner alloc.Allocator) (s snapshot) {
	s = snapshot{
		head:      *v.Head(),
		len:       v.Len(),
		cap:       v.Cap(),
		size:      headervec.LayoutFor[counters, sample](v.Cap()).Size,
		allocs:    checked.Allocs(),
		frees:     checked.Frees(),
		liveBytes: checked.LiveBytes(),
	}

	if m, ok := inner.(*alloc.Mmap); ok {
		s.isMmap = true
		s.mappings = m.Mappings()
		s.mapped = m.Mapped()
	}

	return
}

type renderer interface {
	render(s snapshot)
	stop()
}

// newRenderer redraws in place when out is a terminal, and prints one line
// per snapshot otherwise.
func newRenderer(out io.Writer) renderer {
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return newLiveRenderer(f)
	}

	return lineRenderer{out: out}
}

type lineRenderer struct {
	out io.Writer
}

func (r lineRenderer) render(s snapshot) {
	fmt.Fprintf(r.out, "ops=%d len=%d cap=%d size=%s allocs=%d frees=%d live=%s",
		s.head.Ops, s.len, s.cap, humanize.IBytes(uint64(s.size)), s.allocs, s.frees, humanize.IBytes(uint64(s.liveBytes)))

	if s.isMmap {
		fmt.Fprintf(r.out, " mappings=%d mapped=%s", s.mappings, humanize.IBytes(uint64(s.mapped)))
	}

	fmt.Fprintln(r.out)
}

func (lineRenderer) stop() {}

type liveRenderer struct {
	writer     *uilive.Writer
	operations io.Writer
	length     io.Writer
	capacity   io.Writer
	size       io.Writer
	allocs     io.Writer
	mapped     io.Writer
}

func newLiveRenderer(out io.Writer) *liveRenderer {
	writer := uilive.New()
	writer.Out = out

	r := &liveRenderer{
		writer:     writer,
		operations: writer,
		length:     writer.Newline(),
		capacity:   writer.Newline(),
		size:       writer.Newline(),
		allocs:     writer.Newline(),
		mapped:     writer.Newline(),
	}

	writer.Start()
	return r
}

func (r *liveRenderer) render(s snapshot) {
	fmt.Fprintf(r.operations, "Operations: %d (pushes %d, inserts %d, removes %d)\n",
		s.head.Ops, s.head.Pushes, s.head.Inserts, s.head.Removes)
	fmt.Fprintf(r.length, "Length: %d\n", s.len)
	fmt.Fprintf(r.capacity, "Capacity: %d\n", s.cap)
	fmt.Fprintf(r.size, "Allocation size: %s\n", humanize.IBytes(uint64(s.size)))
	fmt.Fprintf(r.allocs, "Allocations: %d (freed %d, live %s)\n", s.allocs, s.frees, humanize.IBytes(uint64(s.liveBytes)))

	if s.isMmap {
		fmt.Fprintf(r.mapped, "Mappings: %d (%s)\n", s.mappings, humanize.IBytes(uint64(s.mapped)))
	} else {
		fmt.Fprintf(r.mapped, "Mappings: none\n")
	}
}

func (r *liveRenderer) stop() {
	r.writer.Stop()
}
