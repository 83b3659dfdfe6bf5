package Trees

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	bSize = 1 << 15
)

var sideEff bool

func BenchmarkTree_Insert(b *testing.B) {
	for _, s := range strategies {
		b.Run(s.String(), func(b *testing.B) {
			var tree *Tree[int, uint32]
			for range b.N {
				tree = NewOrdered[int, uint32](s)
				for _, v := range rand.Perm(bSize) {
					_ = tree.Insert(v)
				}
			}
			b.Log(tree.Depth())
		})
	}
}

func BenchmarkTree_Delete(b *testing.B) {
	for _, s := range strategies {
		b.Run(s.String(), func(b *testing.B) {
			for range b.N {
				b.StopTimer()
				tree := NewOrdered[int, uint32](s)
				for _, v := range rand.Perm(bSize) {
					_ = tree.Insert(v)
				}
				b.StartTimer()
				for v := range bSize {
					_ = tree.Delete(v)
				}
			}
		})
	}
}

func BenchmarkTree_Has(b *testing.B) {
	for _, s := range strategies {
		b.Run(s.String(), func(b *testing.B) {
			tree := NewOrdered[int, uint32](s)
			for _, v := range rand.Perm(bSize) {
				_ = tree.Insert(v)
			}
			b.ResetTimer()
			for i := range b.N {
				sideEff = tree.Has(i % (2 * bSize))
			}
		})
	}
}

func BenchmarkGodsAVL_Insert(b *testing.B) {
	for range b.N {
		tree := avltree.NewWithIntComparator()
		for _, v := range rand.Perm(bSize) {
			tree.Put(v, nil)
		}
	}
}

func BenchmarkGodsRedBlack_Insert(b *testing.B) {
	for range b.N {
		tree := redblacktree.NewWithIntComparator()
		for _, v := range rand.Perm(bSize) {
			tree.Put(v, nil)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	for range b.N {
		tree := btree.NewOrderedG[int](32)
		for _, v := range rand.Perm(bSize) {
			tree.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for range b.N {
		tree := llrb.New()
		for _, v := range rand.Perm(bSize) {
			tree.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

func BenchmarkLLRB_Delete(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := llrb.New()
		for _, v := range rand.Perm(bSize) {
			tree.ReplaceOrInsert(llrb.Int(v))
		}
		b.StartTimer()
		for v := range bSize {
			tree.Delete(llrb.Int(v))
		}
	}
}

// Unordered lookups as a baseline for Tree.Has.
func BenchmarkHashMap_Has(b *testing.B) {
	m := hashmap.New[int, struct{}]()
	for _, v := range rand.Perm(bSize) {
		m.Set(v, struct{}{})
	}
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = m.Get(i % (2 * bSize))
	}
}

func BenchmarkHaxMap_Has(b *testing.B) {
	m := haxmap.New[int, struct{}](bSize)
	for _, v := range rand.Perm(bSize) {
		m.Set(v, struct{}{})
	}
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = m.Get(i % (2 * bSize))
	}
}
