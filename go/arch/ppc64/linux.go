package ppc64

import (
	"github.com/lunixbochs/struc"

	"github.com/lunixbochs/goposix/go/arch/generic"
	"github.com/lunixbochs/goposix/go/models"
)

type LinuxStat struct {
	Dev       struc.Size_t
	Ino       struc.Size_t
	Nlink     struc.Size_t
	Mode      uint32
	Uid       uint32
	Gid       uint32
	Pad2      []byte `struc:"[4]pad"`
	Rdev      struc.Size_t
	Size      struc.Off_t
	Blksize   struc.Size_t
	Blocks    struc.Size_t
	Atime     struc.Size_t
	AtimeNsec struc.Size_t
	Mtime     struc.Size_t
	MtimeNsec struc.Size_t
	Ctime     struc.Size_t
	CtimeNsec struc.Size_t
	Unused    []byte `struc:"[24]pad"`
}

func linuxInit(a *models.Arch) {
	a.Stat = models.MustLayout(a.Name+".stat", &LinuxStat{}, a.Order, 64)
	a.MsgHdr = generic.MsgHdrLayout(64, a.Order)
	a.Tms = generic.TmsLayout(64, a.Order)
	a.Syscalls = models.NewSyscallTable(map[string]int{
		"ioprio_set": 273,
		"ioprio_get": 274,
	})
}

func init() {
	linuxInit(Arch)
	linuxInit(ArchLE)
}
