package sparc64

import (
	"encoding/binary"

	"github.com/lunixbochs/goposix/go/models"
)

var Arch = &models.Arch{
	Name:    "sparc64",
	Aliases: []string{"sparcv9"},
	Bits:    64,
	Order:   binary.BigEndian,
}
