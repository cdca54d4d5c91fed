package ruledsl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/cnf/structhash"

	"github.com/brunellolabs/revta"
	"github.com/brunellolabs/revta/tm"
)

// Parse reads one transition per non-blank, non-comment line from r and
// returns them in source order — the order tm.NewRuleTable and its derived
// reverse index both need to stay deterministic.
func Parse(r io.Reader) ([]tm.Transition[string, string, string], error) {
	scan := bufio.NewScanner(r)
	var out []tm.Transition[string, string, string]
	lineNo := 0
	for scan.Scan() {
		lineNo++
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("ruledsl: line %d: %w", lineNo, err)
		}
		tracer().Debugf("parsed rule %q (fingerprint %s)", line, fingerprint(t))
		out = append(out, t)
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("ruledsl: %w", err)
	}
	return out, nil
}

// tokenize wraps text/scanner the way lr/scanner wraps it for the lr
// parsers: idents and digit runs each pass through whole (so a purely
// numeric state or symbol name, such as the "10" in a binary alphabet,
// scans as one token rather than one rune at a time), every other rune is
// its own token (so "->" arrives as "-" and ">"). A rule line is short and
// never ambiguous positionally, so no grammar beyond this token split is
// needed here.
func tokenize(line string) []string {
	var s scanner.Scanner
	s.Init(strings.NewReader(line))
	s.Mode = scanner.ScanIdents | scanner.ScanInts
	s.Whitespace = 1<<'\t' | 1<<' '
	var toks []string
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		toks = append(toks, s.TokenText())
	}
	return toks
}

// parseLine parses "state read -> write move next".
func parseLine(line string) (tm.Transition[string, string, string], error) {
	var zero tm.Transition[string, string, string]
	toks := tokenize(line)
	if len(toks) != 7 || toks[2] != "-" || toks[3] != ">" {
		return zero, fmt.Errorf("expected 'state read -> write move next', got %q", line)
	}
	state, readTok, writeTok, moveTok, nextTok := toks[0], toks[1], toks[4], toks[5], toks[6]

	read := parseSymbol(readTok)

	move, err := parseMove(moveTok)
	if err != nil {
		return zero, err
	}

	var write *string
	if writeTok != "-" {
		w := writeTok
		write = &w
	}

	changeState := parseNext(nextTok)

	return tm.Transition[string, string, string]{
		From:        state,
		Read:        read,
		Write:       write,
		Move:        move,
		ChangeState: changeState,
	}, nil
}

func parseSymbol(tok string) revta.TapeSymbol[string, string] {
	switch tok {
	case "⊢":
		return revta.LeftEndMarker[string, string]()
	case "⊣":
		return revta.RightEndMarker[string, string]()
	default:
		return revta.Input[string, string](tok)
	}
}

func parseMove(tok string) (revta.Move, error) {
	switch tok {
	case "L":
		return revta.Left, nil
	case "R":
		return revta.Right, nil
	case "H":
		return revta.Hold, nil
	default:
		return 0, fmt.Errorf("unknown move %q (want L, R, or H)", tok)
	}
}

func parseNext(tok string) *revta.MachineState[string] {
	var s revta.MachineState[string]
	switch tok {
	case "-":
		return nil
	case "Accept":
		s = revta.Accept[string]()
	case "Reject":
		s = revta.Reject[string]()
	default:
		s = revta.NonTerminal(tok)
	}
	return &s
}

// fingerprintShape is a flat, fully-exported shadow of the fields of a
// parsed transition, suitable for structhash: TapeSymbol and MachineState
// carry unexported fields, so they are rendered through String() first
// rather than hashed directly.
type fingerprintShape struct {
	From  string
	Read  string
	Write string
	Move  string
	Next  string
}

// fingerprint computes a short, stable id for a parsed rule, attached to
// trace-log lines so a rule can be correlated across multiple log
// statements. It plays no role in equality, caching, or construction.
func fingerprint(t tm.Transition[string, string, string]) string {
	shape := fingerprintShape{
		From: t.From,
		Read: t.Read.String(),
		Move: t.Move.String(),
		Next: "-",
	}
	if t.Write != nil {
		shape.Write = *t.Write
	}
	if t.ChangeState != nil {
		shape.Next = t.ChangeState.String()
	}
	h, err := structhash.Hash(shape, 1)
	if err != nil {
		return "?"
	}
	if len(h) > 16 {
		h = h[:16]
	}
	return h
}
