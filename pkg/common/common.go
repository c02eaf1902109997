// Copyright 2024 The SafeCalc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// InitLogger initializes the logger. The prefix identifies the binary and
// the process instance (hostname:pid:ppid) so that log lines from several
// SafeCalc processes on one host can be told apart.
func InitLogger(appName string) {
	log.SetOutput(os.Stdout)

	pid := os.Getpid()
	ppid := os.Getppid()
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	processName := hostname + ":" + strconv.Itoa(pid) + ":" + strconv.Itoa(ppid)
	loggerPrefix = appName + " [" + processName + "]: "

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

// SetDebugLevel allows to set the current debug level
func SetDebugLevel(dbgLvl DbgLevel) {
	debugLevel = dbgLvl
	if debugLevel > DbgLvlNone && debugLevel <= DbgLvlDebug3 {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}
}

// GetDebugLevel returns the value of the current debug level
func GetDebugLevel() DbgLevel {
	return debugLevel
}

// SetDebugLevelFromString sets the debug level from its textual form, e.g.
// "info", "debug", "debug2", "debug3". Unknown strings leave the level at
// none.
func SetDebugLevelFromString(lvl string) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "info":
		SetDebugLevel(DbgLvlNone)
	case "debug", "debug1":
		SetDebugLevel(DbgLvlDebug)
	case "debug2":
		SetDebugLevel(DbgLvlDebug2)
	case "debug3":
		SetDebugLevel(DbgLvlDebug3)
	default:
		SetDebugLevel(DbgLvlNone)
	}
}

// DebugMsg logs a message at the given level. Info, Error and Fatal
// messages are always logged; Debug messages are logged only when the
// configured debug level is at least as verbose. DbgLvlFatal also
// terminates the process.
func DebugMsg(dbgLvl DbgLevel, msg string, args ...interface{}) {
	if dbgLvl == DbgLvlInfo || dbgLvl >= DbgLvlError {
		log.Printf(loggerPrefix+msg, args...)
		if dbgLvl == DbgLvlFatal {
			os.Exit(1)
		}
		return
	}
	if debugLevel >= dbgLvl {
		log.Printf(loggerPrefix+msg, args...)
	}
}
