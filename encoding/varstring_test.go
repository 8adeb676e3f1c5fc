package encoding

import (
	"testing"

	"github.com/arloliu/mapitem/errs"
	"github.com/stretchr/testify/require"
)

func TestString_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"ascii", "sign_template_01"},
		{"unicode", "Praha – Brno"},
		{"not a token", "Has Spaces & Symbols!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			defer w.Release()
			w.String("text", tt.text)
			require.Equal(t, SizeCount+len(tt.text), w.Len())

			r := NewReader(w.Bytes())
			require.Equal(t, tt.text, r.String("text"))
			require.NoError(t, r.Err())
			require.True(t, r.Done())
		})
	}
}

func TestString_Layout(t *testing.T) {
	w := NewWriter()
	defer w.Release()
	w.String("text", "ab")

	require.Equal(t, []byte{0x02, 0x00, 0x00, 0x00, 'a', 'b'}, w.Bytes())
}

func TestString_Oversized(t *testing.T) {
	data := []byte{0x10, 0x00, 0x00, 0x00, 'a', 'b'}

	r := NewReader(data)
	require.Equal(t, "", r.String("text"))
	require.ErrorIs(t, r.Err(), errs.ErrOversizedCount)
	require.ErrorIs(t, r.Err(), errs.ErrTruncatedInput)
}

func TestString_CopiesInput(t *testing.T) {
	data := []byte{0x01, 0x00, 0x00, 0x00, 'x'}

	r := NewReader(data)
	s := r.String("text")
	data[4] = 'y'

	require.Equal(t, "x", s)
}
