package main

import (
	"github.com/bstardust/pptx-media-audit/pkg/cli"
)

func main() {
	cli.Execute()
}
