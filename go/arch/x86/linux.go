package x86

import (
	"encoding/binary"

	sysnum "github.com/lunixbochs/ghostrace/ghost/sys/num"
	"github.com/lunixbochs/struc"

	"github.com/lunixbochs/goposix/go/arch/generic"
	"github.com/lunixbochs/goposix/go/models"
)

// LinuxStat64 is asm/stat.h struct stat64. 32-bit x86 always goes
// through the stat64 calls, so the plain struct stat is never used.
type LinuxStat64 struct {
	Dev       uint64
	Pad0      []byte `struc:"[4]pad"`
	OldIno    []byte `struc:"[4]pad"` // __st_ino, truncated
	Mode      uint32
	Nlink     uint32
	Uid       struc.Size_t
	Gid       struc.Size_t
	Rdev      uint64
	Pad3      []byte `struc:"[4]pad"`
	Size      int64
	Blksize   struc.Size_t
	Blocks    uint64
	Atime     struc.Off_t
	AtimeNsec struc.Size_t
	Mtime     struc.Off_t
	MtimeNsec struc.Size_t
	Ctime     struc.Off_t
	CtimeNsec struc.Size_t
	Ino       uint64
}

func init() {
	Arch.Stat = models.MustLayout("x86.stat64", &LinuxStat64{}, binary.LittleEndian, 32)
	Arch.MsgHdr = generic.MsgHdrLayout(32, binary.LittleEndian)
	Arch.Tms = generic.TmsLayout(32, binary.LittleEndian)
	// asm/unistd_32.h
	Arch.Syscalls = models.NewSyscallTable(map[string]int{
		"ioprio_set": 289,
		"ioprio_get": 290,
	})
	Arch.SysNames = sysnum.Linux_x86
	Arch.PinnedStatVersion = 3
	Arch.HasPinned = true
}
