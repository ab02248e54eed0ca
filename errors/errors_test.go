package errors

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errKind = New("kind")

func TestWrap(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "context %d", 1))
	})

	t.Run("should keep the cause reachable", func(t *testing.T) {
		a := assert.New(t)
		err := Wrap(fs.ErrNotExist, "cannot open %s", "a.json")
		a.True(Is(err, fs.ErrNotExist))
		a.Equal("cannot open a.json: file does not exist", err.Error())
	})
}

func TestMark(t *testing.T) {
	t.Run("should match both the kind and the cause", func(t *testing.T) {
		a := assert.New(t)
		err := Mark(fs.ErrPermission, errKind, "writing %s", "x")
		a.True(Is(err, errKind))
		a.True(Is(err, fs.ErrPermission))
		a.Equal("kind: writing x: permission denied", err.Error())
	})

	t.Run("nil error stays nil", func(t *testing.T) {
		assert.Nil(t, Mark(nil, errKind, "noop"))
	})
}
