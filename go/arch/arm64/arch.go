package arm64

import (
	"encoding/binary"

	"github.com/lunixbochs/goposix/go/models"
)

var Arch = &models.Arch{
	Name:     "arm64",
	Aliases:  []string{"aarch64", "armv8"},
	Bits:     64,
	Order:    binary.LittleEndian,
	Compat32: "arm",
}
