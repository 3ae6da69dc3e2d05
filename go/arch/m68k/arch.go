package m68k

import (
	"encoding/binary"

	"github.com/lunixbochs/goposix/go/models"
)

var Arch = &models.Arch{
	Name:  "m68k",
	Bits:  32,
	Order: binary.BigEndian,
}
