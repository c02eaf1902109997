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

// Package main (calc) implements the SafeCalc command line tool: a one-shot
// expression evaluator and an interactive REPL.
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	cal "github.com/safecalc/safecalc/pkg/calculator"

	"github.com/peterh/liner"
)

const (
	historyFile = ".safecalc_history"
	prompt      = "calc> "

	banner = `SafeCalc - safe arithmetic expression evaluator
Type an expression, :h for help, :q to quit.`

	helpText = `Enter an arithmetic expression to evaluate it, e.g. 2 + 3 * 4.

Operators:  +  -  *  /  %  **  (parentheses for grouping)
Constants:  pi, e, tau
Functions:  abs, round, sqrt, sin, cos, tan, asin, acos, atan,
            log, log10, ln, exp, floor, ceil

Special:
  _          the last successful result (0 when there is none)
  :h ? help  show this help
  :c clear   forget the last result
  :q q quit exit   leave the calculator`
)

func main() {
	if len(os.Args) > 1 {
		os.Exit(cmdEval(strings.Join(os.Args[1:], " ")))
	}
	os.Exit(cmdRepl())
}

// cmdEval evaluates a single expression and prints the result, for use in
// scripts and shell pipelines.
func cmdEval(expr string) int {
	result, err := cal.Evaluate(expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	fmt.Println(formatResult(result))
	return 0
}

func cmdRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	var last float64
	var hasLast bool

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl-C clears the current line, it does not kill the session.
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch strings.ToLower(trimmed) {
		case ":q", "q", "quit", "exit":
			return 0
		case ":h", "help", "?":
			fmt.Println(helpText)
			continue
		case ":c", "clear":
			last, hasLast = 0, false
			fmt.Println("cleared")
			continue
		}

		expr := substituteLast(trimmed, last, hasLast)
		result, err := cal.Evaluate(expr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			ln.AppendHistory(trimmed)
			continue
		}

		last, hasLast = result, true
		fmt.Println(formatResult(result))
		ln.AppendHistory(trimmed)
	}
}

// substituteLast replaces every "_" in the line with the decimal text of the
// last successful result, or "0" when there is none yet.
func substituteLast(line string, last float64, hasLast bool) string {
	if !strings.Contains(line, "_") {
		return line
	}
	text := "0"
	if hasLast {
		text = strconv.FormatFloat(last, 'g', -1, 64)
	}
	return strings.ReplaceAll(line, "_", "("+text+")")
}

// formatResult renders an integral result without a decimal part and
// everything else in the shortest round-trip form.
func formatResult(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
