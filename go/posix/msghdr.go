package posix

import (
	"github.com/lunixbochs/goposix/go/models"
)

// MsgHdr is struct msghdr for the active architecture. Pointer members are
// addresses in the target's address space.
type MsgHdr struct {
	Name       uint64
	Namelen    uint32
	Iov        uint64
	Iovlen     uint64
	Control    uint64
	Controllen uint64
	Flags      int32

	layout *models.Layout
}

func (p *POSIX) AllocateMsgHdr() *MsgHdr {
	return &MsgHdr{layout: p.arch.MsgHdr}
}

// Size is sizeof(struct msghdr).
func (m *MsgHdr) Size() int { return m.layout.Size }

// Pack encodes the header with the architecture's byte order and padding.
func (m *MsgHdr) Pack() ([]byte, error) {
	return m.layout.Encode(map[string]uint64{
		"Name":       m.Name,
		"Namelen":    uint64(m.Namelen),
		"Iov":        m.Iov,
		"Iovlen":     m.Iovlen,
		"Control":    m.Control,
		"Controllen": m.Controllen,
		"Flags":      uint64(int64(m.Flags)),
	})
}

// Unpack fills the header from an encoded record.
func (m *MsgHdr) Unpack(buf []byte) error {
	rec, err := m.layout.Decode(buf)
	if err != nil {
		return err
	}
	m.Name = rec.Uint("Name")
	m.Namelen = uint32(rec.Uint("Namelen"))
	m.Iov = rec.Uint("Iov")
	m.Iovlen = rec.Uint("Iovlen")
	m.Control = rec.Uint("Control")
	m.Controllen = rec.Uint("Controllen")
	m.Flags = int32(rec.Int("Flags"))
	return nil
}

// SocketMacros are the CMSG_* helpers for the architecture's word size.
type SocketMacros struct {
	wordSize int
}

func (p *POSIX) SocketMacros() SocketMacros {
	return SocketMacros{wordSize: p.arch.Bits / 8}
}

// cmsghdr is a size_t length followed by two ints
func (s SocketMacros) headerSize() int { return s.Align(s.wordSize + 8) }

func (s SocketMacros) Align(n int) int {
	return (n + s.wordSize - 1) &^ (s.wordSize - 1)
}

func (s SocketMacros) Space(n int) int { return s.headerSize() + s.Align(n) }

func (s SocketMacros) Len(n int) int { return s.headerSize() + n }

// DataOffset is CMSG_DATA as an offset from the start of a cmsghdr.
func (s SocketMacros) DataOffset() int { return s.headerSize() }

// Data returns the payload of one control message.
func (s SocketMacros) Data(cmsg []byte) []byte {
	if len(cmsg) < s.headerSize() {
		return nil
	}
	return cmsg[s.headerSize():]
}
