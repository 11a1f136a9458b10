package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatReadWrite(t *testing.T) {
	f := NewFlat(nil)
	assert.Equal(t, uint8(0), f.Read(0x1234))
	f.Write(0x1234, 0x42)
	assert.Equal(t, uint8(0x42), f.Read(0x1234))
}

func TestFlatPreload(t *testing.T) {
	image := make([]uint8, 1<<16)
	image[0] = 0xA9
	image[1] = 0x42
	f := NewFlat(image)
	assert.Equal(t, uint8(0xA9), f.Read(0))
	assert.Equal(t, uint8(0x42), f.Read(1))
}

func TestFlatPowerOnZeroes(t *testing.T) {
	f := NewFlat([]uint8{0xFF, 0xFF})
	f.PowerOn()
	assert.Equal(t, uint8(0), f.Read(0))
	assert.Equal(t, uint8(0), f.Read(1))
}

func TestFlatShortImagePadsZero(t *testing.T) {
	f := NewFlat([]uint8{0x01, 0x02})
	assert.Equal(t, uint8(0), f.Read(2))
}
