// Package generic holds the kernel records shared by several architectures:
// the asm-generic struct stat, struct msghdr and struct tms.
package generic

import (
	"encoding/binary"

	"github.com/lunixbochs/struc"

	"github.com/lunixbochs/goposix/go/models"
)

// Stat is include/uapi/asm-generic/stat.h struct stat, as used by the
// 64-bit architectures that adopted the generic syscall table.
type Stat struct {
	Dev       struc.Size_t
	Ino       struc.Size_t
	Mode      uint32
	Nlink     uint32
	Uid       uint32
	Gid       uint32
	Rdev      struc.Size_t
	Pad1      []byte `struc:"[8]pad"`
	Size      struc.Off_t
	Blksize   int32
	Pad2      []byte `struc:"[4]pad"`
	Blocks    struc.Off_t
	Atime     struc.Off_t
	AtimeNsec struc.Size_t
	Mtime     struc.Off_t
	MtimeNsec struc.Size_t
	Ctime     struc.Off_t
	CtimeNsec struc.Size_t
	Unused    []byte `struc:"[8]pad"`
}

type MsgHdr64 struct {
	Name       struc.Size_t
	Namelen    uint32
	Pad1       []byte `struc:"[4]pad"`
	Iov        struc.Size_t
	Iovlen     struc.Size_t
	Control    struc.Size_t
	Controllen struc.Size_t
	Flags      int32
	Pad2       []byte `struc:"[4]pad"`
}

// MsgHdr32 has no holes: every member is 4 bytes wide.
type MsgHdr32 struct {
	Name       struc.Size_t
	Namelen    uint32
	Iov        struc.Size_t
	Iovlen     struc.Size_t
	Control    struc.Size_t
	Controllen struc.Size_t
	Flags      int32
}

// Tms is struct tms; clock_t is a long everywhere.
type Tms struct {
	Utime  struc.Off_t
	Stime  struc.Off_t
	Cutime struc.Off_t
	Cstime struc.Off_t
}

// MsgHdrLayout returns the msghdr layout for a word size and byte order.
func MsgHdrLayout(bits int, order binary.ByteOrder) *models.Layout {
	if bits == 64 {
		return models.MustLayout("msghdr", &MsgHdr64{}, order, 64)
	}
	return models.MustLayout("msghdr", &MsgHdr32{}, order, 32)
}

func TmsLayout(bits int, order binary.ByteOrder) *models.Layout {
	return models.MustLayout("tms", &Tms{}, order, bits)
}

// IoprioNumbers is the asm-generic unistd.h numbering shared by arm64,
// riscv64 and loongarch64.
var IoprioNumbers = map[string]int{
	"ioprio_set": 30,
	"ioprio_get": 31,
}
