package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLevel(t *testing.T) {
	Init("skyton-backend", false)
	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())

	Init("skyton-backend", true)
	assert.Equal(t, zerolog.DebugLevel, log.Logger.GetLevel())
}
