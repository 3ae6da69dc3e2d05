package arm

import (
	"encoding/binary"

	sysnum "github.com/lunixbochs/ghostrace/ghost/sys/num"
	"github.com/lunixbochs/struc"

	"github.com/lunixbochs/goposix/go/arch/generic"
	"github.com/lunixbochs/goposix/go/models"
)

// LinuxStat64 is the EABI struct stat64. EABI aligns long long to 8
// bytes, which opens holes before st_size and st_blocks.
type LinuxStat64 struct {
	Dev       uint64
	Pad0      []byte `struc:"[4]pad"`
	OldIno    []byte `struc:"[4]pad"`
	Mode      uint32
	Nlink     uint32
	Uid       struc.Size_t
	Gid       struc.Size_t
	Rdev      uint64
	Pad3      []byte `struc:"[8]pad"`
	Size      int64
	Blksize   struc.Size_t
	Pad4      []byte `struc:"[4]pad"`
	Blocks    uint64
	Atime     struc.Size_t
	AtimeNsec struc.Size_t
	Mtime     struc.Size_t
	MtimeNsec struc.Size_t
	Ctime     struc.Size_t
	CtimeNsec struc.Size_t
	Ino       uint64
}

func init() {
	Arch.Stat = models.MustLayout("arm.stat64", &LinuxStat64{}, binary.LittleEndian, 32)
	Arch.MsgHdr = generic.MsgHdrLayout(32, binary.LittleEndian)
	Arch.Tms = generic.TmsLayout(32, binary.LittleEndian)
	// ioprio is left out on 32-bit arm: callers get unimplemented
	Arch.SysNames = sysnum.Linux_arm
	Arch.PinnedStatVersion = 3
	Arch.HasPinned = true
}
