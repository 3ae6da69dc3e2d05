package riscv64

import (
	"encoding/binary"

	"github.com/lunixbochs/goposix/go/models"
)

var Arch = &models.Arch{
	Name:    "riscv64",
	Aliases: []string{"riscv"},
	Bits:    64,
	Order:   binary.LittleEndian,
}
