package ppc64

import (
	"encoding/binary"

	"github.com/lunixbochs/goposix/go/models"
)

var Arch = &models.Arch{
	Name:    "ppc64",
	Aliases: []string{"powerpc64"},
	Bits:    64,
	Order:   binary.BigEndian,
}

var ArchLE = &models.Arch{
	Name:    "ppc64le",
	Aliases: []string{"powerpc64le", "ppc64el"},
	Bits:    64,
	Order:   binary.LittleEndian,
}
