package mips64

import (
	"encoding/binary"

	"github.com/lunixbochs/goposix/go/models"
)

var Arch = &models.Arch{
	Name:    "mips64",
	Aliases: []string{"mips64eb"},
	Bits:    64,
	Order:   binary.BigEndian,
}

var ArchLE = &models.Arch{
	Name:    "mips64le",
	Aliases: []string{"mips64el"},
	Bits:    64,
	Order:   binary.LittleEndian,
}
