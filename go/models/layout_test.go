package models

import (
	"encoding/binary"
	"testing"

	"github.com/lunixbochs/struc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	A    uint16
	Pad  []byte `struc:"[2]pad"`
	B    struc.Off_t
	C    struc.Size_t
	Tail []byte `struc:"[4]pad"`
	priv int
}

func TestLayoutDescriptor(t *testing.T) {
	l, err := NewLayout("test", &testRecord{}, binary.LittleEndian, 32)
	require.NoError(t, err)
	assert.Equal(t, 16, l.Size)
	assert.Equal(t, []string{"A", "B", "C"}, l.Logical())
	require.Len(t, l.Fields, 5)
	assert.Equal(t, Field{Name: "B", Type: "int32", Offset: 4, Size: 4}, l.Fields[2])
	assert.True(t, l.Fields[1].Padding)
	assert.False(t, l.Has("Pad"))
	assert.False(t, l.Has("priv"))

	l64, err := NewLayout("test", testRecord{}, binary.BigEndian, 64)
	require.NoError(t, err)
	assert.Equal(t, 24, l64.Size)
	assert.Equal(t, 12, l64.Fields[3].Offset)
}

func TestLayoutRejectsNonStruct(t *testing.T) {
	_, err := NewLayout("bad", 5, binary.LittleEndian, 64)
	assert.Error(t, err)
	assert.Panics(t, func() { MustLayout("bad", "x", binary.LittleEndian, 64) })
}

func TestLayoutRoundTrip(t *testing.T) {
	l := MustLayout("test", &testRecord{}, binary.BigEndian, 32)
	buf, err := l.Encode(map[string]uint64{"A": 0xbeef, "B": uint64(0xffffffffffffffff), "C": 7})
	require.NoError(t, err)
	require.Len(t, buf, l.Size)
	assert.Equal(t, []byte{0xbe, 0xef, 0, 0, 0xff, 0xff, 0xff, 0xff, 0, 0, 0, 7, 0, 0, 0, 0}, buf)

	rec, err := l.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xbeef), rec.Uint("A"))
	assert.Equal(t, int64(-1), rec.Int("B"))
	assert.Equal(t, uint64(7), rec.Uint("C"))
	assert.Equal(t, uint64(0), rec.Uint("Missing"))
	assert.Same(t, l, rec.Layout())
}

func TestLayoutPaddingIgnored(t *testing.T) {
	l := MustLayout("test", &testRecord{}, binary.LittleEndian, 32)
	buf := make([]byte, l.Size)
	for i := range buf {
		buf[i] = 0xff
	}
	rec, err := l.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xffff), rec.Uint("A"))

	_, err = l.Encode(map[string]uint64{"Pad": 1})
	assert.Error(t, err)
}

func TestLayoutShortBuffer(t *testing.T) {
	l := MustLayout("test", &testRecord{}, binary.LittleEndian, 32)
	_, err := l.Decode(make([]byte, l.Size-1))
	assert.Error(t, err)
	_, err = l.Decode(make([]byte, l.Size+10))
	assert.NoError(t, err)
}

func TestSyscallTable(t *testing.T) {
	tab := NewSyscallTable(map[string]int{"ioprio_get": 31, "ioprio_set": 30})
	nr, ok := tab.Lookup("ioprio_get")
	assert.True(t, ok)
	assert.Equal(t, 31, nr)
	name, ok := tab.Name(30)
	assert.True(t, ok)
	assert.Equal(t, "ioprio_set", name)
	assert.Equal(t, []string{"ioprio_get", "ioprio_set"}, tab.Names())

	var empty *SyscallTable
	_, ok = empty.Lookup("ioprio_get")
	assert.False(t, ok)
	assert.Nil(t, empty.Names())
}
