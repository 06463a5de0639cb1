package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"

	"github.com/g-m-twostay/go-ordered/Sets/AASet"
)

// unordered baselines: when only membership matters a hash map is the
// alternative to a sorted set, so these keep the cost of ordering visible.
// compares with https://github.com/cornelk/hashmap and
// https://github.com/alphadose/haxmap used as sets.

// the same put/remove sequence must leave all three with the same members.
func TestCrossMembership(t *testing.T) {
	u := AASet.New[int]()
	hx := haxmap.New[int, struct{}]()
	hm := hashmap.New[int, struct{}]()
	content := make(map[int]struct{})
	for range 4096 {
		v := rg.Intn(512)
		if rg.Uint32()&1 == 0 {
			u.Put(v)
			hx.Set(v, struct{}{})
			hm.Set(v, struct{}{})
			content[v] = struct{}{}
		} else {
			u.Remove(v)
			hx.Del(v)
			hm.Del(v)
			delete(content, v)
		}
	}
	for v := 0; v < 512; v++ {
		_, in := content[v]
		if u.Has(v) != in {
			t.Errorf("aa set disagrees on key %v", v)
		}
		if _, ok := hx.Get(v); ok != in {
			t.Errorf("haxmap disagrees on key %v", v)
		}
		if _, ok := hm.Get(v); ok != in {
			t.Errorf("hashmap disagrees on key %v", v)
		}
	}
}

func setupHaxSet(b *testing.B) *haxmap.Map[int, struct{}] {
	b.Helper()
	m := haxmap.New[int, struct{}]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Set(i, struct{}{})
	}
	return m
}

func setupHashSet(b *testing.B) *hashmap.Map[int, struct{}] {
	b.Helper()
	m := hashmap.New[int, struct{}]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Set(i, struct{}{})
	}
	return m
}

// reads may run in parallel on all three; the AA set allows concurrent
// readers as long as no writer runs.
func Benchmark3ReadAASet(b *testing.B) {
	u := setupAASet(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := 0; i < benchmarkItemCount; i++ {
				if !u.Has(i) {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark3ReadHaxMap(b *testing.B) {
	m := setupHaxSet(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := 0; i < benchmarkItemCount; i++ {
				if _, ok := m.Get(i); !ok {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark3ReadHashMap(b *testing.B) {
	m := setupHashSet(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := 0; i < benchmarkItemCount; i++ {
				if _, ok := m.Get(i); !ok {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark3WriteAASet(b *testing.B) {
	u := AASet.New[int]()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			u.Put(i)
		}
	}
}

func Benchmark3WriteHaxMap(b *testing.B) {
	m := haxmap.New[int, struct{}]()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			m.Set(i, struct{}{})
		}
	}
}

func Benchmark3WriteHashMap(b *testing.B) {
	m := hashmap.New[int, struct{}]()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			m.Set(i, struct{}{})
		}
	}
}
