package posix

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunixbochs/goposix/go/arch/m68k"
	"github.com/lunixbochs/goposix/go/arch/x86"
	"github.com/lunixbochs/goposix/go/arch/x86_64"
)

func TestMsgHdrPack64(t *testing.T) {
	p := newTestPOSIX(x86_64.Arch, newFakeLibC(x86_64.Arch))
	m := p.AllocateMsgHdr()
	assert.Equal(t, 56, m.Size())
	m.Name = 0x1000
	m.Namelen = 16
	m.Iovlen = 2
	m.Flags = -1
	buf, err := m.Pack()
	require.NoError(t, err)
	require.Len(t, buf, 56)
	assert.Equal(t, uint64(0x1000), binary.LittleEndian.Uint64(buf[0:]))
	assert.Equal(t, uint32(16), binary.LittleEndian.Uint32(buf[8:]))
	assert.Equal(t, []byte{0, 0, 0, 0}, buf[12:16])
	assert.Equal(t, uint64(2), binary.LittleEndian.Uint64(buf[24:]))
	assert.Equal(t, uint32(0xffffffff), binary.LittleEndian.Uint32(buf[48:]))

	var back MsgHdr
	back.layout = m.layout
	require.NoError(t, back.Unpack(buf))
	assert.Equal(t, int32(-1), back.Flags)
	assert.Equal(t, uint64(0x1000), back.Name)
}

func TestMsgHdrPack32BigEndian(t *testing.T) {
	p := newTestPOSIX(m68k.Arch, newFakeLibC(m68k.Arch))
	m := p.AllocateMsgHdr()
	assert.Equal(t, 28, m.Size())
	m.Controllen = 24
	buf, err := m.Pack()
	require.NoError(t, err)
	assert.Equal(t, uint32(24), binary.BigEndian.Uint32(buf[20:]))
}

func TestSocketMacros(t *testing.T) {
	m64 := newTestPOSIX(x86_64.Arch, newFakeLibC(x86_64.Arch)).SocketMacros()
	assert.Equal(t, 16, m64.DataOffset())
	assert.Equal(t, 24, m64.Space(4))
	assert.Equal(t, 20, m64.Len(4))
	assert.Equal(t, 8, m64.Align(1))

	m32 := newTestPOSIX(x86.Arch, newFakeLibC(x86.Arch)).SocketMacros()
	assert.Equal(t, 12, m32.DataOffset())
	assert.Equal(t, 16, m32.Space(4))
	assert.Equal(t, 16, m32.Len(4))
	assert.Equal(t, 4, m32.Align(3))

	cmsg := make([]byte, m64.Space(4))
	cmsg[16] = 0xaa
	assert.Equal(t, byte(0xaa), m64.Data(cmsg)[0])
	assert.Nil(t, m64.Data(cmsg[:4]))
}
