package core

import "os"

var osExit = os.Exit
