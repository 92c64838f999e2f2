package msg_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/msg"
	"github.com/stretchr/testify/require"
)

func TestActionLog(t *testing.T) {
	log := msg.NewActionLog()
	require.Empty(t, log.Recent())

	for _, entry := range []string{"a", "b"} {
		log.Add(entry)
	}
	require.Equal(t, []string{"a", "b"}, log.Recent())

	for _, entry := range []string{"c", "d", "e", "f", "g"} {
		log.Add(entry)
	}
	require.Equal(t, []string{"c", "d", "e", "f", "g"}, log.Entries())
	require.Equal(t, []string{"e", "f", "g"}, log.Recent())

	log.Clear()
	require.Empty(t, log.Entries())
}
