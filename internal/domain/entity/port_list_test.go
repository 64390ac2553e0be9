package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsedPortList_Prepend(t *testing.T) {
	list := UsedPortList{3000, 8080, 5173}

	t.Run("new port goes to the front", func(t *testing.T) {
		got := list.Prepend(9000)
		assert.Equal(t, UsedPortList{9000, 3000, 8080, 5173}, got)
	})

	t.Run("existing port moves to the front once", func(t *testing.T) {
		got := list.Prepend(8080)
		assert.Equal(t, UsedPortList{8080, 3000, 5173}, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := list.Prepend(4200)
		twice := once.Prepend(4200)
		assert.Equal(t, once, twice)
	})

	t.Run("does not alias the receiver", func(t *testing.T) {
		_ = list.Prepend(1)
		assert.Equal(t, UsedPortList{3000, 8080, 5173}, list)
	})

	t.Run("every port lands at the front exactly once", func(t *testing.T) {
		for _, p := range []Port{1, 80, 443, 3000, 8080, 65535} {
			got := list.Prepend(p)
			assert.Equal(t, p, got[0])
			count := 0
			for _, q := range got {
				if q == p {
					count++
				}
			}
			assert.Equal(t, 1, count, "port %d", p)
		}
	})
}

func TestUsedPortList_Matching(t *testing.T) {
	list := UsedPortList{3000, 8080, 3001, 13000, 5173, 30}

	tests := []struct {
		name  string
		text  string
		limit int
		want  UsedPortList
	}{
		{"substring not prefix", "300", 3, UsedPortList{3000, 3001, 13000}},
		{"truncated to limit", "0", 3, UsedPortList{3000, 8080, 3001}},
		{"no limit", "0", 0, UsedPortList{3000, 8080, 3001, 13000, 30}},
		{"no match", "999", 3, UsedPortList{}},
		{"stored order preserved", "30", 2, UsedPortList{3000, 3001}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := list.Matching(tt.text, tt.limit)
			assert.Equal(t, tt.want, got)
			if tt.limit > 0 {
				assert.LessOrEqual(t, len(got), tt.limit)
			}
		})
	}
}

func TestUsedPortList_WithoutSuffixesOf(t *testing.T) {
	tests := []struct {
		name string
		list UsedPortList
		text string
		want UsedPortList
	}{
		{"exact match removed", UsedPortList{3000, 8080}, "3000", UsedPortList{8080}},
		{"suffix port removed too", UsedPortList{80, 3080, 8080}, "3080", UsedPortList{8080}},
		{"nothing matches", UsedPortList{3000}, "4000", UsedPortList{3000}},
		{"empty list", UsedPortList{}, "3000", UsedPortList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.list.WithoutSuffixesOf(tt.text))
		})
	}
}

func TestUsedPortList_Dedupe(t *testing.T) {
	assert.Equal(t, UsedPortList{3000, 8080}, UsedPortList{3000, 8080, 3000}.Dedupe())
	assert.True(t, UsedPortList{1, 2}.Contains(2))
	assert.False(t, UsedPortList{1, 2}.Contains(3))
}
