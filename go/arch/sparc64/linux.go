package sparc64

import (
	"encoding/binary"

	"github.com/lunixbochs/struc"

	"github.com/lunixbochs/goposix/go/arch/generic"
	"github.com/lunixbochs/goposix/go/models"
)

// LinuxStat64 is the sparc64 struct stat64, the record behind the
// version 3 stat calls this architecture is pinned to.
type LinuxStat64 struct {
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
	Arch.Stat = models.MustLayout("sparc64.stat64", &LinuxStat64{}, binary.BigEndian, 64)
	Arch.MsgHdr = generic.MsgHdrLayout(64, binary.BigEndian)
	Arch.Tms = generic.TmsLayout(64, binary.BigEndian)
	Arch.Syscalls = models.NewSyscallTable(map[string]int{
		"ioprio_set": 196,
		"ioprio_get": 218,
	})
	Arch.PinnedStatVersion = 3
	Arch.HasPinned = true
}
