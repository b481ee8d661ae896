package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/sdltest"
)

func TestZeroHandles(t *testing.T) {
	_, err := Open(0)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	_, err = FromID(0)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	assert.Equal(t, TypeInvalid, TypeForID(0))
	assert.Equal(t, -1, NonPortableTypeForID(0))

	var s *Sensor
	_, err = s.Data(3)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
	assert.Equal(t, TypeInvalid, s.Type())
	s.Close()
}

func TestDataCountValidation(t *testing.T) {
	s := &Sensor{s: nil}
	_, err := s.Data(0)
	assert.ErrorIs(t, err, sdl.ErrInvalidHandle)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "gyro-left", TypeGyroL.String())
	assert.Equal(t, "invalid", Type(77).String())
}

func TestEnumerate(t *testing.T) {
	sdltest.Init(t, uint32(sdl.InitSensor))

	ids, err := IDs()
	require.NoError(t, err)
	for _, id := range ids {
		name, err := NameForID(id)
		require.NoError(t, err)
		assert.NotEmpty(t, name)
		assert.NotEqual(t, TypeInvalid, TypeForID(id))
	}
	if len(ids) == 0 {
		return
	}

	s, err := Open(ids[0])
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Data(maxValues + 1)
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
	vals, err := s.Data(3)
	require.NoError(t, err)
	assert.Len(t, vals, 3)
}
