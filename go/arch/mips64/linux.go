package mips64

import (
	"github.com/lunixbochs/struc"

	"github.com/lunixbochs/goposix/go/arch/generic"
	"github.com/lunixbochs/goposix/go/models"
)

// LinuxStat is the n64 struct stat. Timestamps are 32-bit and st_blocks
// comes last.
type LinuxStat struct {
	Dev       uint32
	Pad0      []byte `struc:"[12]pad"`
	Ino       struc.Size_t
	Mode      uint32
	Nlink     uint32
	Uid       uint32
	Gid       uint32
	Rdev      uint32
	Pad1      []byte `struc:"[12]pad"`
	Size      struc.Off_t
	Atime     uint32
	AtimeNsec uint32
	Mtime     uint32
	MtimeNsec uint32
	Ctime     uint32
	CtimeNsec uint32
	Blksize   uint32
	Pad2      []byte `struc:"[4]pad"`
	Blocks    struc.Size_t
}

func linuxInit(a *models.Arch) {
	a.Stat = models.MustLayout(a.Name+".stat", &LinuxStat{}, a.Order, 64)
	a.MsgHdr = generic.MsgHdrLayout(64, a.Order)
	a.Tms = generic.TmsLayout(64, a.Order)
	// n64 numbers, asm/unistd.h
	a.Syscalls = models.NewSyscallTable(map[string]int{
		"ioprio_set": 5273,
		"ioprio_get": 5274,
	})
	a.PinnedStatVersion = 3
	a.HasPinned = true
}

func init() {
	linuxInit(Arch)
	linuxInit(ArchLE)
}
