package main

import (
	"github.com/liserjrqlxue/version"
)

func main() {
	version.LogVersion()
	Execute()
}
