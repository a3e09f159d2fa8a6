/*
 * mix370 - MIX virtual machine emulator.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Command mix runs the MIX virtual machine: load a memory image, execute it
// to HLT or a trap, optionally through an interactive debugger. Grounded on
// the teacher's main.go: getopt flags, a slog logger built through the
// shared logging wrapper, and a clean os.Exit on fatal conditions.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/mix370/console"
	"github.com/rcornwell/mix370/demo"
	"github.com/rcornwell/mix370/mix/device"
	"github.com/rcornwell/mix370/mix/devices"
	"github.com/rcornwell/mix370/mix/image"
	"github.com/rcornwell/mix370/mix/machine"
	"github.com/rcornwell/mix370/mix/memory"
	"github.com/rcornwell/mix370/util/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	optImage := getopt.StringLong("image", 'i', "", "Memory image to load (default: built-in demonstration image)")
	optLog := getopt.StringLong("log", 'l', "", "Structured log destination (default: stderr)")
	optDebug := getopt.BoolLong("debug", 'd', "Enable the line-oriented interactive debugger")
	optTUI := getopt.BoolLong("tui", 't', "Enable the full-screen inspector")
	optVerbose := getopt.BoolLong("verbose", 'v', "Raise the log level to debug")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		return 0
	}

	var logOut *os.File
	if *optLog != "" {
		f, err := os.Create(*optLog)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mix: creating log file:", err)
			return 1
		}
		logOut = f
		defer f.Close()
	}
	log := logger.New(logOut, *optVerbose)
	slog.SetDefault(log)

	mem, start, err := loadImage(*optImage)
	if err != nil {
		log.Error("image load failed", "error", err.Error())
		return 1
	}

	devs := device.NewTable()
	devs.Add(18, devices.NewTypewriter(os.Stdout))
	devs.Add(19, devices.NewPaperTape(os.Stdin))

	m := machine.New(mem, devs, start, log)

	var failed error
	switch {
	case *optTUI:
		if _, err := console.NewTUI(m).Run(); err != nil {
			failed = err
		}
	case *optDebug:
		if tr := console.NewREPL(m, os.Stdout).Run(); tr != nil {
			failed = tr
		}
	default:
		if tr := m.Run(); tr != nil {
			failed = tr
		}
	}

	if failed != nil {
		log.Error("run failed", "error", failed.Error())
		return 1
	}
	return 0
}

func loadImage(path string) (*memory.Memory, int, error) {
	if path == "" {
		return image.Load(bytes.NewReader(demo.Bytes()))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return image.Load(f)
}
