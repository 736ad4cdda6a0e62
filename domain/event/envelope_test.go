package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEnvelope_WireShape(t *testing.T) {
	evt := RoundAdvanced{ID: "s1", Round: 3, At: time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)}

	payload, err := Envelope(evt)
	require.NoError(t, err)

	var decoded struct {
		Event string          `json:"event"`
		Data  json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.Equal(t, "round_advanced", decoded.Event)

	var data map[string]any
	require.NoError(t, json.Unmarshal(decoded.Data, &data))
	require.Equal(t, "s1", data["session_id"])
	require.Equal(t, float64(3), data["round"])
}

func TestExcluder_IsTheCausingParticipant(t *testing.T) {
	joined := ParticipantJoined{ID: "s1", ParticipantID: "alice"}
	left := ParticipantLeft{ID: "s1", ParticipantID: "bob"}

	require.Equal(t, "alice", joined.ExcludedParticipant())
	require.Equal(t, "bob", left.ExcludedParticipant())

	// Submit events exclude nobody
	_, excludes := any(IdeasSubmitted{ID: "s1"}).(Excluder)
	require.False(t, excludes)
}
