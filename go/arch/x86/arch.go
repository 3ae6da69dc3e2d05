package x86

import (
	"encoding/binary"

	"github.com/lunixbochs/goposix/go/models"
)

var Arch = &models.Arch{
	Name:    "x86",
	Aliases: []string{"386", "i386", "i486", "i586", "i686"},
	Bits:    32,
	Order:   binary.LittleEndian,
}
