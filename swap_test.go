package hxclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSwapMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want SwapMode
	}{
		{"", SwapInner},
		{"innerHTML", SwapInner},
		{"outerHTML", SwapOuter},
		{"append", SwapAppend},
		{"prepend", SwapPrepend},
		{"none", SwapNone},
		{"beforeend", SwapAppend},
		{"afterbegin", SwapPrepend},
		{"  outerHTML swap:1s", SwapOuter},
		{"morph", SwapInner},
		{"OUTERHTML", SwapInner},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSwapMode(tt.in))
		})
	}
}
