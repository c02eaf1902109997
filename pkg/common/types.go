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

// Package common holds the shared logging facilities used by the SafeCalc
// daemons and tools.
package common

// DbgLevel is an enum to represent the debug level type
type DbgLevel int

const (
	// DbgLvlNone disables debug output
	DbgLvlNone DbgLevel = iota
	// DbgLvlInfo is for messages that are always logged
	DbgLvlInfo
	// DbgLvlDebug is the first debug level
	DbgLvlDebug
	// DbgLvlDebug2 is the second (more verbose) debug level
	DbgLvlDebug2
	// DbgLvlDebug3 is the most verbose debug level
	DbgLvlDebug3
	// DbgLvlError is the error level, always logged
	DbgLvlError
	// DbgLvlFatal is the fatal level (this will also exit the program!)
	DbgLvlFatal
)

var (
	// debugLevel is the current debug level for logging
	debugLevel DbgLevel

	// loggerPrefix is prepended to every log line
	loggerPrefix string
)
