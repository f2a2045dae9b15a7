// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package par

import (
	"sync/atomic"
	"testing"
)

func TestForCoversAllIndices(t *testing.T) {
	p := NewPool(4)
	defer p.Close()
	for _, n := range []int{0, 1, 3, 4, 7, 100} {
		seen := make([]int32, n)
		p.For(n, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i, c := range seen {
			if c != 1 {
				t.Errorf("n=%d: index %d visited %d times", n, i, c)
			}
		}
	}
}

func TestForChunksAreDisjoint(t *testing.T) {
	p := NewPool(3)
	defer p.Close()
	out := make([]int, 1000)
	p.For(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = i * i
		}
	})
	for i, v := range out {
		if v != i*i {
			t.Fatalf("index %d: got %d want %d", i, v, i*i)
		}
	}
}

func TestDoAfterSetWorkers(t *testing.T) {
	SetWorkers(1)
	defer SetWorkers(0)
	var count int64
	Do(64, func(start, end int) {
		atomic.AddInt64(&count, int64(end-start))
	})
	if count != 64 {
		t.Errorf("covered %d indices, want 64", count)
	}
}

func TestPoolReuse(t *testing.T) {
	p := NewPool(2)
	defer p.Close()
	for round := 0; round < 50; round++ {
		var count int64
		p.For(17, func(start, end int) {
			atomic.AddInt64(&count, int64(end-start))
		})
		if count != 17 {
			t.Fatalf("round %d: covered %d indices, want 17", round, count)
		}
	}
}
