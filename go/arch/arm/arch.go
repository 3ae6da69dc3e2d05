package arm

import (
	"encoding/binary"

	"github.com/lunixbochs/goposix/go/models"
)

var Arch = &models.Arch{
	Name:    "arm",
	Aliases: []string{"armv7", "armv7l", "armhf", "armel"},
	Bits:    32,
	Order:   binary.LittleEndian,
}
