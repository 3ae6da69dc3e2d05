package m68k

import (
	"encoding/binary"

	"github.com/lunixbochs/struc"

	"github.com/lunixbochs/goposix/go/arch/generic"
	"github.com/lunixbochs/goposix/go/models"
)

// LinuxStat is the old m68k struct stat: 16-bit ids and whole-second
// timestamps. The slots after each time were never filled in.
type LinuxStat struct {
	Dev     uint16
	Pad1    []byte `struc:"[2]pad"`
	Ino     struc.Size_t
	Mode    uint16
	Nlink   uint16
	Uid     uint16
	Gid     uint16
	Rdev    uint16
	Pad2    []byte `struc:"[2]pad"`
	Size    struc.Size_t
	Blksize struc.Size_t
	Blocks  struc.Size_t
	Atime   struc.Size_t
	Unused1 []byte `struc:"[4]pad"`
	Mtime   struc.Size_t
	Unused2 []byte `struc:"[4]pad"`
	Ctime   struc.Size_t
	Unused3 []byte `struc:"[12]pad"`
}

func init() {
	Arch.Stat = models.MustLayout("m68k.stat", &LinuxStat{}, binary.BigEndian, 32)
	Arch.MsgHdr = generic.MsgHdrLayout(32, binary.BigEndian)
	Arch.Tms = generic.TmsLayout(32, binary.BigEndian)
	Arch.PinnedStatVersion = 3
	Arch.HasPinned = true
}
