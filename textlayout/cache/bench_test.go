package cache

import (
	"testing"
)

func BenchmarkLRUList_PushFront(b *testing.B) {
	l := newLRUList[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.PushFront(i)
	}
}

func BenchmarkLRUList_MoveToFront(b *testing.B) {
	l := newLRUList[int]()
	nodes := make([]*lruNode[int], 1000)
	for i := 0; i < 1000; i++ {
		nodes[i] = l.PushFront(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.MoveToFront(nodes[i%1000])
	}
}

func BenchmarkHashRunes(b *testing.B) {
	text := []rune("the quick brown fox jumps over the lazy dog")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = HashRunes(text)
	}
}

func BenchmarkRunCache_Hit(b *testing.B) {
	c := DefaultRunCache()
	key := testKey(1)
	c.Set(key, testOutput(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get(key)
	}
}

func BenchmarkRunCache_Miss(b *testing.B) {
	c := DefaultRunCache()
	key := testKey(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get(key)
	}
}

func BenchmarkRunCache_Parallel(b *testing.B) {
	c := DefaultRunCache()
	for i := 0; i < 64; i++ {
		c.Set(testKey(i), testOutput(i))
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = c.Get(testKey(i % 64))
			i++
		}
	})
}
