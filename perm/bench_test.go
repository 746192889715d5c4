package perm_test

import (
	"testing"

	"github.com/katalvlaran/kirby/perm"
)

func BenchmarkCompose(b *testing.B) {
	p := perm.NthPerm(7, 1234)
	q := perm.NthPerm(7, 4321)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p = p.Compose(q)
	}
	_ = p
}

func BenchmarkSnIndex(b *testing.B) {
	p := perm.NthPerm(7, 1234)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.SnIndex()
	}
}

func BenchmarkNthPerm_Tabulated(b *testing.B) {
	_ = perm.Precompute(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = perm.NthPerm(8, int64(i)%perm.NPerms(8))
	}
}

func BenchmarkIsConjugacyMinimal(b *testing.B) {
	p := perm.NthPerm(7, 1234)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = perm.IsConjugacyMinimal(p)
	}
}
