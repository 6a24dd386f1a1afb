package input_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/raintrap/internal/input"
	"github.com/katalvlaran/raintrap/trap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		permissive bool
		want       []int
		wantErr    error
	}{
		{name: "one line", in: "6 4 2 0 3 2 5", want: []int{4, 2, 0, 3, 2, 5}},
		{name: "one height per line", in: "3\n1\n0\n1\n", want: []int{1, 0, 1}},
		{name: "zero bars", in: "0\n", want: []int{}},
		{name: "extra tokens ignored", in: "2 1 1 99 100", want: []int{1, 1}},
		{name: "empty stream", in: "", wantErr: input.ErrBadCount},
		{name: "count not integer", in: "three 1 2 3", wantErr: input.ErrBadCount},
		{name: "negative count", in: "-1", wantErr: input.ErrBadCount},
		{name: "negative count permissive", in: "-1", permissive: true, wantErr: input.ErrBadCount},
		{name: "short input", in: "4 1 2", wantErr: input.ErrShortInput},
		{name: "short input permissive", in: "4 1 2", permissive: true, want: []int{1, 2, 0, 0}},
		{name: "huge count short input", in: "9223372036854775807 1 2", wantErr: input.ErrShortInput},
		{name: "large count short input", in: "100000000000 1", wantErr: input.ErrShortInput},
		{name: "huge count short input permissive", in: "9223372036854775807 1 2", permissive: true, wantErr: input.ErrShortInput},
		{name: "height not integer", in: "2 1 x", wantErr: input.ErrNotInteger},
		{name: "height not integer permissive", in: "2 1 1.5", permissive: true, wantErr: input.ErrNotInteger},
		{name: "negative height", in: "3 2 -1 2", wantErr: trap.ErrNegativeHeight},
		{name: "negative height permissive", in: "3 2 -1 2", permissive: true, want: []int{2, -1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got []int
				err error
			)
			require.NotPanics(t, func() {
				got, err = input.Read(strings.NewReader(tt.in), input.Options{Permissive: tt.permissive})
			})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, input.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_PermissivePadLimit(t *testing.T) {
	got, err := input.Read(strings.NewReader(strconv.Itoa(input.MaxPaddedBars)+" 7"), input.Options{Permissive: true})
	require.NoError(t, err)
	require.Len(t, got, input.MaxPaddedBars)
	assert.Equal(t, 7, got[0])
	assert.Zero(t, got[len(got)-1])

	_, err = input.Read(strings.NewReader(strconv.Itoa(input.MaxPaddedBars+2)+" 7"), input.Options{Permissive: true})
	assert.ErrorIs(t, err, input.ErrShortInput)
}

func TestRead_Prompts(t *testing.T) {
	var out bytes.Buffer
	got, err := input.Read(strings.NewReader("2\n5 5\n"), input.Options{Prompt: &out})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 5}, got)
	assert.Equal(t, "Enter the number of bars: Enter the heights of the bars:\n", out.String())
}

func TestRead_NoPromptAfterBadCount(t *testing.T) {
	var out bytes.Buffer
	_, err := input.Read(strings.NewReader("x"), input.Options{Prompt: &out})
	assert.ErrorIs(t, err, input.ErrBadCount)
	assert.Equal(t, "Enter the number of bars: ", out.String())
}

func TestParseHeights(t *testing.T) {
	got, err := input.ParseHeights([]string{"0", "1", "0", "2"}, false)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 2}, got)

	got, err = input.ParseHeights(nil, false)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = input.ParseHeights([]string{"1", "a"}, false)
	assert.ErrorIs(t, err, input.ErrNotInteger)
	assert.ErrorIs(t, err, input.ErrInvalidInput)

	_, err = input.ParseHeights([]string{"1", "-3"}, false)
	assert.ErrorIs(t, err, trap.ErrNegativeHeight)

	got, err = input.ParseHeights([]string{"1", "-3"}, true)
	require.NoError(t, err)
	assert.Equal(t, []int{1, -3}, got)
}
