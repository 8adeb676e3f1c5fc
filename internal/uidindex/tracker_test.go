package uidindex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker(0)

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasDuplicates())
	require.Empty(t, tracker.Duplicates())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker(4)

	require.False(t, tracker.Track(0xA1, 0))
	require.False(t, tracker.Track(0xB2, 1))
	require.Equal(t, 2, tracker.Count())
	require.Equal(t, 2, tracker.Unique())

	pos, ok := tracker.Lookup(0xB2)
	require.True(t, ok)
	require.Equal(t, 1, pos)

	_, ok = tracker.Lookup(0xC3)
	require.False(t, ok)
	require.Nil(t, tracker.Positions(0xC3))
}

func TestTracker_Duplicates(t *testing.T) {
	tracker := NewTracker(8)

	tracker.Track(1, 0)
	tracker.Track(2, 1)
	require.True(t, tracker.Track(2, 2))
	require.True(t, tracker.Track(1, 3))
	require.True(t, tracker.Track(2, 4))

	require.True(t, tracker.HasDuplicates())
	require.Equal(t, []uint64{2, 1}, tracker.Duplicates())
	require.Equal(t, []int{1, 2, 4}, tracker.Positions(2))
	require.Equal(t, []int{0, 3}, tracker.Positions(1))
	require.Equal(t, 5, tracker.Count())
	require.Equal(t, 2, tracker.Unique())

	pos, _ := tracker.Lookup(2)
	require.Equal(t, 1, pos, "lookup returns the first occurrence")
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker(2)
	tracker.Track(1, 0)
	tracker.Track(1, 1)

	tracker.Reset()
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasDuplicates())
	require.False(t, tracker.Track(1, 0))
}
