package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = "map:"
	mapInfix    = "-to-"
)

// ParseString parses an almanac held in memory.
func ParseString(s string) (*Almanac, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads an almanac from r.
func Parse(r io.Reader) (*Almanac, error) {
	a := &Almanac{}
	sc := bufio.NewScanner(r)
	sawSeeds := false
	line, headerLine := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		switch {
		case strings.HasPrefix(text, seedsPrefix):
			if sawSeeds {
				return nil, &ParseError{Line: line, Msg: "duplicate seeds line"}
			}
			sawSeeds = true
			vals, err := parseUints(strings.Fields(strings.TrimPrefix(text, seedsPrefix)))
			if err != nil {
				return nil, &ParseError{Line: line, Msg: err.Error()}
			}
			a.Seeds = append(a.Seeds, vals...)

		case strings.HasSuffix(text, mapSuffix):
			if !sawSeeds {
				return nil, &ParseError{Line: line, Msg: "map header before seeds line"}
			}
			if err := checkLastMap(a, headerLine); err != nil {
				return nil, err
			}
			m, err := parseHeader(text)
			if err != nil {
				return nil, &ParseError{Line: line, Msg: err.Error()}
			}
			a.Maps = append(a.Maps, m)
			headerLine = line

		default:
			if !sawSeeds {
				return nil, &ParseError{Line: line, Msg: fmt.Sprintf("unexpected %q before seeds line", text)}
			}
			vals, err := parseUints(strings.Fields(text))
			if err != nil {
				return nil, &ParseError{Line: line, Msg: err.Error()}
			}
			if len(a.Maps) == 0 {
				// seeds wrapped onto another line
				a.Seeds = append(a.Seeds, vals...)
				continue
			}
			if len(vals) != 3 {
				return nil, &ParseError{Line: line, Msg: fmt.Sprintf("want 3 values (dest source length), got %d", len(vals))}
			}
			cur := &a.Maps[len(a.Maps)-1]
			cur.Rules.Add(vals[0], vals[1], vals[2])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("almanac: read input: %w", err)
	}
	if err := checkLastMap(a, headerLine); err != nil {
		return nil, err
	}
	if len(a.Seeds) == 0 {
		return nil, ErrNoSeeds
	}

	return a, nil
}

// checkLastMap rejects a map block that closed without any rule line.
func checkLastMap(a *Almanac, headerLine int) error {
	if len(a.Maps) == 0 {
		return nil
	}
	last := a.Maps[len(a.Maps)-1]
	if len(last.Rules) == 0 {
		return &ParseError{Line: headerLine, Msg: fmt.Sprintf("map %s-to-%s has no rules", last.From, last.To)}
	}

	return nil
}

// parseHeader splits "<from>-to-<to> map:" into an empty Map.
func parseHeader(text string) (Map, error) {
	name := strings.TrimSpace(strings.TrimSuffix(text, mapSuffix))
	from, to, ok := strings.Cut(name, mapInfix)
	if !ok || from == "" || to == "" || strings.ContainsAny(name, " \t") {
		return Map{}, fmt.Errorf("malformed map header %q", text)
	}

	return Map{From: from, To: to}, nil
}

// parseUints converts every field to a non-negative integer.
func parseUints(fields []string) ([]uint64, error) {
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out = append(out, v)
	}

	return out, nil
}
