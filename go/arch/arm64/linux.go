package arm64

import (
	"encoding/binary"

	"github.com/lunixbochs/goposix/go/arch/generic"
	"github.com/lunixbochs/goposix/go/models"
)

func init() {
	Arch.Stat = models.MustLayout("arm64.stat", &generic.Stat{}, binary.LittleEndian, 64)
	Arch.MsgHdr = generic.MsgHdrLayout(64, binary.LittleEndian)
	Arch.Tms = generic.TmsLayout(64, binary.LittleEndian)
	Arch.Syscalls = models.NewSyscallTable(generic.IoprioNumbers)
}
