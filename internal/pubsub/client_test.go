package pubsub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	LeagueID string
	Score    *int
	At       time.Time
}

func TestEncodeDecode(t *testing.T) {
	score := 3
	in := payload{LeagueID: "l1", Score: &score, At: time.Date(2025, 9, 1, 15, 0, 0, 0, time.UTC)}

	data, err := Encode(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, Decode(data, &out))
	assert.Equal(t, "l1", out.LeagueID)
	require.NotNil(t, out.Score)
	assert.Equal(t, 3, *out.Score)
	assert.True(t, in.At.Equal(out.At))
}

func TestDecode_InvalidData(t *testing.T) {
	var out payload
	assert.Error(t, Decode([]byte{0xc1}, &out))
}

func TestMock_RecordsAndDecodes(t *testing.T) {
	m := NewMock("TEST")
	require.NoError(t, m.SendMessage(EventStandingsUpdated, "hello"))
	sent := m.SentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, "standings-updated", sent[0].Topic)

	data, err := Encode(payload{LeagueID: "l2"})
	require.NoError(t, err)
	var out payload
	require.NoError(t, m.ProcessMessage(data, &out))
	assert.Equal(t, "l2", out.LeagueID)
	assert.Len(t, m.ProcessMessageCalls, 1)
}

func TestDisabledClient(t *testing.T) {
	c := NewDisabled()
	assert.NoError(t, c.SendMessage(EventStandingsUpdated, map[string]int{"a": 1}))

	data, err := Encode(map[string]int{"a": 1})
	require.NoError(t, err)
	var out map[string]int
	require.NoError(t, c.ProcessMessage(data, &out))
	assert.Equal(t, 1, out["a"])
}
