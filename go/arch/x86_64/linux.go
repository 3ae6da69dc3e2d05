package x86_64

import (
	"encoding/binary"

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
	Pad0      []byte `struc:"[4]pad"`
	Rdev      struc.Size_t
	Size      struc.Off_t
	Blksize   struc.Off_t
	Blocks    struc.Off_t
	Atime     struc.Size_t
	AtimeNsec struc.Size_t
	Mtime     struc.Size_t
	MtimeNsec struc.Size_t
	Ctime     struc.Size_t
	CtimeNsec struc.Size_t
	Unused    []byte `struc:"[24]pad"`
}

func init() {
	Arch.Stat = models.MustLayout("x86_64.stat", &LinuxStat{}, binary.LittleEndian, 64)
	Arch.MsgHdr = generic.MsgHdrLayout(64, binary.LittleEndian)
	Arch.Tms = generic.TmsLayout(64, binary.LittleEndian)
	// asm/unistd_64.h
	Arch.Syscalls = models.NewSyscallTable(map[string]int{
		"ioprio_set": 251,
		"ioprio_get": 252,
	})
}
