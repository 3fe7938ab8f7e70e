package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmolchanov/feedback-service/internal/config"
	"github.com/kmolchanov/feedback-service/internal/handler"
	"github.com/kmolchanov/feedback-service/internal/handler/http"
	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/internal/service"
)

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{}

	srv, err := NewServer(handlers, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_HTTP(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: http.NewHandler(&service.Services{}, logger.Nop()),
	}

	srv, err := NewServer(handlers, config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, srv)
}
