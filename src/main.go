package main

import (
	"os"

	jfsutils "github.com/juicedata/juicefs/pkg/utils"

	"sortdemo/src/cmd"
)

var logger = jfsutils.GetLogger("sortdemo")

func main() {
	if err := cmd.Main(os.Args); err != nil {
		logger.Fatal(err)
	}
}
