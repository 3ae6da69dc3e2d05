package main

import (
	"github.com/lunixbochs/goposix/go/cmd"

	_ "github.com/lunixbochs/goposix/go/cmd/stat"

	_ "github.com/lunixbochs/goposix/go/cmd/layout"
	_ "github.com/lunixbochs/goposix/go/cmd/sys"
)

func main() { cmd.Main() }
