// Copyright (c) 2025 A Bit of Help, Inc.

// Command phonenumber-demo is an interactive REPL over the AsYouType
// formatter (§4.8): each keystroke is fed straight to the terminal in raw
// mode, and the redrawn line is colored green/yellow/red depending on
// whether the digits typed so far parse to a valid, merely possible, or
// unparseable number.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/abitofhelp/phonenumber/asyoutype"
	"github.com/abitofhelp/phonenumber/classify"
	"github.com/abitofhelp/phonenumber/env"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/parse"
	"github.com/abitofhelp/phonenumber/regexcache"
	"github.com/abitofhelp/phonenumber/valueobject/contact"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	ctrlC     = 3
	ctrlD     = 4
	backspace = 127
	enter     = '\r'
)

func main() {
	defaultRegion := env.GetEnv("PHONENUMBER_DEFAULT_REGION", "US")

	store := metadata.NewDefaultStore(nil)
	regexes := regexcache.New(nil)
	parser := parse.New(store, regexes)
	classifier := classify.New(store, regexes)
	formatter := asyoutype.New(store, regexes, defaultRegion)

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		runLineMode(os.Stdin, formatter, parser, classifier, defaultRegion, green, yellow, red)
		return
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "phonenumber-demo: failed to enter raw mode:", err)
		os.Exit(1)
	}
	defer term.Restore(fd, oldState)

	fmt.Print("Type a phone number for region ", defaultRegion, "; Enter to reset, Ctrl-C to quit.\r\n")

	buf := make([]byte, 1)
	var digitsTyped string
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}
		c := buf[0]
		switch c {
		case ctrlC, ctrlD:
			fmt.Print("\r\n")
			return
		case enter, '\n':
			fmt.Print("\r\n")
			printSummary(digitsTyped, defaultRegion)
			formatter.Clear()
			digitsTyped = ""
			continue
		case backspace:
			continue // AsYouType has no editing API; backspace is a no-op here.
		}

		digitsTyped += string(c)
		out := formatter.InputDigit(rune(c))
		n2, err := parser.Parse(digitsTyped, defaultRegion, parse.Options{})
		painted := paint(out, err == nil && classifier.IsValid(n2), err == nil && classifier.IsPossible(n2), green, yellow, red)
		fmt.Print("\r", clearLine, painted)
	}
}

const clearLine = "\x1b[K"

// printSummary builds the finalized Phone for digitsTyped and reports its
// canonical form, validity, type, and region — the one-line recap a user
// gets after committing a number, as distinct from the live per-keystroke
// AsYouType coloring above.
func printSummary(digitsTyped, defaultRegion string) {
	if digitsTyped == "" {
		return
	}
	ph, err := contact.NewPhone(digitsTyped, defaultRegion)
	if err != nil {
		fmt.Print(digitsTyped, ": ", err, "\r\n")
		return
	}
	region, _ := ph.Region()
	fmt.Printf("%s  valid=%v  type=%s  region=%s\r\n",
		ph.Normalized(), ph.Validate() == nil, ph.Type(), region)
}

func paint(text string, valid, possible bool, green, yellow, red *color.Color) string {
	switch {
	case valid:
		return green.Sprint(text)
	case possible:
		return yellow.Sprint(text)
	default:
		return red.Sprint(text)
	}
}

// runLineMode is the non-terminal fallback (piped stdin, CI, tests): read
// one line at a time, feed its characters to the formatter, and print the
// final colored result — raw per-keystroke echo has no meaning without a
// real terminal.
func runLineMode(in *os.File, formatter *asyoutype.AsYouType, parser *parse.Parser, classifier *classify.Classifier, defaultRegion string, green, yellow, red *color.Color) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		formatter.Clear()
		var out string
		for _, c := range line {
			out = formatter.InputDigit(c)
		}
		n, err := parser.Parse(line, defaultRegion, parse.Options{})
		valid := err == nil && classifier.IsValid(n)
		possible := err == nil && classifier.IsPossible(n)
		fmt.Println(paint(out, valid, possible, green, yellow, red))
		printSummary(line, defaultRegion)
	}
}
