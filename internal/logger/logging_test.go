package logger

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewUsesGlobalLevel(t *testing.T) {
	prev := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	defer log.SetLevel(prev)

	l := New("trainer")
	assert.Equal(t, "trainer", l.GetPrefix())
	assert.Equal(t, log.DebugLevel, l.GetLevel())
}

func TestNewWithConfigOverrides(t *testing.T) {
	l := NewWithConfig("ipc", log.ErrorLevel, false, false, log.TextFormatter)

	assert.Equal(t, "ipc", l.GetPrefix())
	assert.Equal(t, log.ErrorLevel, l.GetLevel())
}
