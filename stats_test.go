package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsStore(t *testing.T) {
	s, err := openStats(":memory:")
	require.NoError(t, err)
	defer s.Close()

	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	visits := []struct {
		ip   string
		path string
		at   time.Time
	}{
		{"10.0.0.1", "/", now.Add(-time.Hour)},
		{"10.0.0.1", "/contact-form", now.Add(-2 * time.Hour)},
		{"10.0.0.2", "/", now.Add(-3 * 24 * time.Hour)},
		{"10.0.0.3", "/", now.Add(-30 * 24 * time.Hour)},
	}
	for _, v := range visits {
		require.NoError(t, s.RecordVisit(v.ip, "test-agent", v.path, v.at))
	}
	require.NoError(t, s.RecordContact("a", ChannelMailto, now))
	require.NoError(t, s.RecordContact("b", ChannelSMTP, now))
	require.NoError(t, s.RecordContact("c", ChannelMailto, now.Add(time.Minute)))

	stats, err := s.Stats(now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalVisitors)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitorsToday)
	assert.Equal(t, int64(3), stats.VisitorsThisWeek)
	assert.Equal(t, []Count{{"/", 3}, {"/contact-form", 1}}, stats.TopPaths)
	assert.Equal(t, int64(3), stats.TotalContacts)
	assert.Equal(t, []Count{{ChannelMailto, 2}, {ChannelSMTP, 1}}, stats.ContactsByChannel)
	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, "/", stats.RecentVisitors[0].Path)
	assert.Equal(t, now.Add(-time.Hour), stats.RecentVisitors[0].Timestamp)

	contacts, err := s.Contacts(10)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "c", contacts[0].ID)

	t.Run("cleanup", func(t *testing.T) {
		n, err := s.Cleanup(7*24*time.Hour, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		stats, err := s.Stats(now)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalVisitors)
	})
}

func TestHashIP(t *testing.T) {
	a, err := openStats(":memory:")
	require.NoError(t, err)
	defer a.Close()
	b, err := openStats(":memory:")
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, a.hashIP("10.0.0.1"), a.hashIP("10.0.0.1"))
	assert.NotEqual(t, a.hashIP("10.0.0.1"), a.hashIP("10.0.0.2"))
	assert.NotEqual(t, a.hashIP("10.0.0.1"), b.hashIP("10.0.0.1"), "salt is per process")
	assert.Len(t, a.hashIP("10.0.0.1"), 16)
}
