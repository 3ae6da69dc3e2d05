package x86_64

import (
	"encoding/binary"

	"github.com/lunixbochs/goposix/go/models"
)

var Arch = &models.Arch{
	Name:     "x86_64",
	Aliases:  []string{"amd64", "x64"},
	Bits:     64,
	Order:    binary.LittleEndian,
	Compat32: "x86",
}
