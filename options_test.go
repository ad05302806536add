package texmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	cases := []struct {
		name string
		opts []Option
		want config
	}{
		{"default", nil, config{}},
		{"defaults-explicit", []Option{IgnoreUnknownSymbols(true), StrictMode(true), PadPlusMinusSigns(true)}, config{}},
		{"strict-symbols", []Option{IgnoreUnknownSymbols(false)}, config{strictSymbols: true}},
		{"lax", []Option{StrictMode(false)}, config{lax: true}},
		{"nopad", []Option{PadPlusMinusSigns(false)}, config{nopad: true}},
		{"last-wins", []Option{StrictMode(false), StrictMode(true)}, config{}},
		{"preset", []Option{Preset(StrictMode(false), PadPlusMinusSigns(false))}, config{lax: true, nopad: true}},
		{"preset-then", []Option{Preset(StrictMode(false)), IgnoreUnknownSymbols(false)}, config{lax: true, strictSymbols: true}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, newConfig(c.opts))
		})
	}
}

func TestPresetPanics(t *testing.T) {
	p := Preset(StrictMode(false))
	assert.PanicsWithValue(t, "texmath: preset applied to non-default config", func() {
		newConfig([]Option{PadPlusMinusSigns(false), p})
	})
	assert.NotPanics(t, func() {
		newConfig([]Option{PadPlusMinusSigns(true), p})
	})
}
