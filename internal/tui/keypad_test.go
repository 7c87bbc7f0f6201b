package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeypadAppend(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		key    string
		want   string
	}{
		{name: "digit replaces leading zero", amount: "0", key: "5", want: "5"},
		{name: "decimal keeps leading zero", amount: "0", key: ".", want: "0."},
		{name: "appends digit", amount: "12", key: "3", want: "123"},
		{name: "second decimal ignored", amount: "1.5", key: ".", want: "1.5"},
		{name: "caps at ten characters", amount: "1234567890", key: "1", want: "1234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keypadAppend(tt.amount, tt.key))
		})
	}
}

func TestKeypadDelete(t *testing.T) {
	assert.Equal(t, "12", keypadDelete("123"))
	assert.Equal(t, "0", keypadDelete("5"))
	assert.Equal(t, "0", keypadDelete("0"))
}

func TestKeypadClear(t *testing.T) {
	assert.Equal(t, "0", keypadClear())
}
