// Package sdl parses the Spreadsheet Description Language: a tiny,
// tab-separated, line-oriented directive language for describing the
// shape of a spreadsheet.
//
// Each line is tokenised into a directive name and its arguments.
// Arguments are deserialised in two passes: first every token is run
// through an unescape pass (transport-decoding), then the directive's
// own typed deserialisers are applied to the decoded tokens. This
// mirrors the reference implementation's deserialise()/parse() split
// (decode-from-transport first, then apply the directive's semantic
// types).
package sdl

import (
	"bufio"
	"io"
	"strings"

	"sdlrecon/internal/celltype"
	"sdlrecon/internal/metadata"
	"sdlrecon/internal/ref"
)

// Deserialiser converts one decoded token into a typed argument value.
type Deserialiser func(token string) (any, error)

// ArgSpec describes how a directive's arguments are deserialised.
// Fixed holds one deserialiser per leading positional argument. Rest,
// when non-nil, is applied to every trailing argument beyond len(Fixed),
// covering directives whose argument count is open-ended.
type ArgSpec struct {
	Fixed []Deserialiser
	Rest  Deserialiser
}

func (spec ArgSpec) deserialise(directive string, tokens []string) ([]any, error) {
	if spec.Rest == nil && len(tokens) != len(spec.Fixed) {
		return nil, &ArgCountError{Directive: directive, Got: len(tokens), Want: len(spec.Fixed)}
	}

	result := make([]any, 0, len(tokens))
	for i, token := range tokens {
		var d Deserialiser
		if i < len(spec.Fixed) {
			d = spec.Fixed[i]
		} else {
			d = spec.Rest
		}
		v, err := d(token)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// Directive binds a directive name to its argument deserialisers and
// the handler that applies the deserialised arguments to a
// metadata.State.
type Directive struct {
	Args   ArgSpec
	Handle func(s *metadata.State, args []any) error
}

// directiveTable is the statically-built table of known directives,
// owned by the package rather than held as mutable process-global
// state: every entry is installed once at init and never mutated.
var directiveTable = map[string]Directive{
	"declare-type": {
		Args: ArgSpec{Fixed: []Deserialiser{stringArg, typeArg}},
		Handle: func(s *metadata.State, args []any) error {
			return s.DeclareType(args[0].(string), args[1].(celltype.Tag))
		},
	},
	"declare-header": {
		Args: ArgSpec{Fixed: []Deserialiser{rangeArg}},
		Handle: func(s *metadata.State, args []any) error {
			return s.DeclareHeader(args[0].(ref.Range))
		},
	},
	"declare-data": {
		Args: ArgSpec{Fixed: []Deserialiser{rangeArg}},
		Handle: func(s *metadata.State, args []any) error {
			return s.DeclareData(args[0].(ref.Range))
		},
	},
	"#": {
		Args:   ArgSpec{Rest: anythingArg},
		Handle: func(s *metadata.State, args []any) error { return nil },
	},
}

// --- Argument deserialisers ---

// stringArg requires the token to start and end with '"'; the middle
// may contain escaped double quotes as \". Any unescaped '"' inside is
// an error. The wrapper is stripped and \" is unescaped.
func stringArg(token string) (any, error) {
	if len(token) < 2 || token[0] != '"' || token[len(token)-1] != '"' {
		return nil, &BadStringError{Token: token}
	}
	inner := token[1 : len(token)-1]

	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '"' {
			// An unescaped quote inside the body is only legal as part
			// of a \" escape, which the loop below already consumed.
			return nil, &BadStringError{Token: token}
		}
		if c == '\\' && i+1 < len(inner) && inner[i+1] == '"' {
			b.WriteByte('"')
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// typeArg looks the token up in the type registry.
func typeArg(token string) (any, error) {
	return celltype.Lookup(token)
}

// rangeArg parses a range specifier.
func rangeArg(token string) (any, error) {
	return ref.ParseRange(token)
}

// cellArg parses a single cell specifier. No current directive uses
// it standalone, but it is kept as a reusable deserialiser for
// directives added later.
func cellArg(token string) (any, error) {
	return ref.ParseCell(token)
}

// anythingArg is the identity deserialiser.
func anythingArg(token string) (any, error) {
	return token, nil
}

// unescape decodes \t, \\, \n and \r two-character escapes. Any other
// backslash sequence is passed through unchanged — decode the escapes
// a directive's own deserialisers cannot see past (a literal tab or
// newline inside a token), leave everything else alone so future
// escapes remain forward-compatible.
func unescape(token string) string {
	if !strings.ContainsRune(token, '\\') {
		return token
	}

	var b strings.Builder
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c == '\\' && i+1 < len(token) {
			switch token[i+1] {
			case 't':
				b.WriteByte('\t')
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 'r':
				b.WriteByte('\r')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Parser reads an SDL document and internalises it into a
// metadata.State. A Parser may be used for at most one call to Parse.
type Parser struct {
	r      io.Reader
	parsed bool
}

// New returns a Parser reading SDL source from r.
func New(r io.Reader) *Parser {
	return &Parser{r: r}
}

// Parse tokenises the SDL source line by line, dispatches each
// directive, and applies its deserialised arguments to a fresh
// metadata.State. It may be called at most once per Parser.
func (p *Parser) Parse() (*metadata.State, error) {
	if p.parsed {
		return nil, &AlreadyParsedError{}
	}
	p.parsed = true

	state := metadata.New()
	scanner := bufio.NewScanner(p.r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		original := scanner.Text()
		fields := strings.Split(original, "\t")
		if len(fields) == 1 && fields[0] == "" {
			continue
		}

		name := unescape(fields[0])
		// A comment line may carry its text in the directive field
		// itself ("# a comment") as well as in tab-separated arguments.
		if strings.HasPrefix(name, "#") {
			name = "#"
		}
		rawArgs := fields[1:]
		decoded := make([]string, len(rawArgs))
		for i, a := range rawArgs {
			decoded[i] = unescape(a)
		}

		directive, ok := directiveTable[name]
		if !ok {
			return nil, &LineError{Line: lineNo, Text: original, Err: &UnknownDirectiveError{Line: lineNo, Name: name}}
		}

		args, err := directive.Args.deserialise(name, decoded)
		if err != nil {
			return nil, &LineError{Line: lineNo, Text: original, Err: err}
		}

		if err := directive.Handle(state, args); err != nil {
			return nil, &LineError{Line: lineNo, Text: original, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return state, nil
}
