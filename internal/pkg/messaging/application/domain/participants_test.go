package messaging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeParticipantsOrderIndependent(t *testing.T) {
	ab := EncodeParticipants([]string{"alice", "bob"})
	ba := EncodeParticipants([]string{"bob", "alice"})
	assert.Equal(t, ab, ba)
	assert.Equal(t, "alice,bob", ab)
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	pairs := [][]string{
		{"alice", "bob"},
		{"u2", "u1"},
		{"9f3c", "0a1b"},
	}
	for _, pair := range pairs {
		decoded := DecodeParticipants(EncodeParticipants(pair))
		reversed := DecodeParticipants(EncodeParticipants([]string{pair[1], pair[0]}))
		assert.Equal(t, decoded, reversed)
	}
}

func TestDecodeParticipantsSortsLegacyData(t *testing.T) {
	// Records written before canonical sorting still decode sorted.
	assert.Equal(t, []string{"alice", "bob"}, DecodeParticipants("bob,alice"))
}

func TestEncodeParticipantsDoesNotMutateInput(t *testing.T) {
	in := []string{"zoe", "adam"}
	_ = EncodeParticipants(in)
	assert.Equal(t, []string{"zoe", "adam"}, in)
}

func TestPreview(t *testing.T) {
	short := "Hello"
	assert.Equal(t, short, Preview(short))

	long := "Hello world, this is a long message exceeding fifty characters total"
	got := Preview(long)
	assert.Equal(t, long[:50]+"...", got)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestValidateContent(t *testing.T) {
	assert.NoError(t, ValidateContent("hi"))
	assert.ErrorIs(t, ValidateContent("   "), ErrEmptyContent)
	assert.NoError(t, ValidateContent(strings.Repeat("a", 500)))
	assert.ErrorIs(t, ValidateContent(strings.Repeat("a", 501)), ErrContentTooLong)
}

func TestCounterpart(t *testing.T) {
	conv := Conversation{Participants: []string{"alice", "bob"}}

	assert.Equal(t, "bob", conv.Counterpart("alice"))
	assert.Equal(t, "alice", conv.Counterpart("bob"))

	// A viewer outside the pair gets the first participant.
	assert.Equal(t, "alice", conv.Counterpart("carol"))
}
