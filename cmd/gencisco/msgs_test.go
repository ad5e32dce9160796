package gencisco

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedMessages(t *testing.T) {
	for name, msg := range map[string]string{
		"root long":     MsgRootLong,
		"root example":  MsgRootExample,
		"init long":     MsgInitLong,
		"profiles long": MsgProfilesLong,
	} {
		assert.NotEmpty(t, msg, name)
		assert.False(t, strings.HasSuffix(msg, "\n"), name)
	}
	assert.True(t, strings.HasPrefix(MsgRootExample, "  # "))
}
