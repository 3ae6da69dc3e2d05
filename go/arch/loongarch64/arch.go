package loongarch64

import (
	"encoding/binary"

	"github.com/lunixbochs/goposix/go/models"
)

var Arch = &models.Arch{
	Name:    "loongarch64",
	Aliases: []string{"loong64", "la64"},
	Bits:    64,
	Order:   binary.LittleEndian,
}
