package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "nil", in: nil, want: []string{}},
		{name: "blank entries", in: []string{"", "   "}, want: []string{}},
		{name: "case and spacing", in: []string{"  Summer   Sale ", "summer sale"}, want: []string{"summer sale"}},
		{name: "sorted set", in: []string{"b", "A", "a", "c"}, want: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.in))
		})
	}
}
