package objectstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinioClient_Close(t *testing.T) {
	t.Run("should stop the health check", func(t *testing.T) {
		stopped := 0
		m := &MinioClient{stopHealthCheck: func() { stopped++ }}
		m.Close()
		assert.Equal(t, 1, stopped)
	})

	t.Run("a client without health check closes quietly", func(t *testing.T) {
		assert.NotPanics(t, func() { (&MinioClient{}).Close() })
	})
}
