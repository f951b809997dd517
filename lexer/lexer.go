package lexer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	plexer "github.com/alecthomas/participle/lexer"

	"github.com/pontaoski/chic/errors"
	"github.com/pontaoski/chic/types"
)

// Alternatives are tried in order, so compound operators must come before
// their single character prefixes. Anonymous groups are dropped by the
// participle lexer, which is how comments and whitespace disappear.
var definition = plexer.Must(plexer.Regexp(
	`(#.*)` +
		`|(\s+)` +
		`|(?P<String>"(?:[^"\\]|\\.)*")` +
		`|(?P<Compound>\*\*|//|->|&&|\|\||[-+*/=!<>]=)` +
		`|(?P<Punct>[-+*/=<>!:,()])` +
		`|(?P<Word>[A-Za-z0-9_]+(?:\.[0-9]+)?)`,
))

var (
	symString   = definition.Symbols()["String"]
	symCompound = definition.Symbols()["Compound"]
	symPunct    = definition.Symbols()["Punct"]
	symWord     = definition.Symbols()["Word"]
)

var operators = map[string]types.TokenKind{
	"**": types.POW,
	"//": types.FLOORDIV,
	"->": types.ARROW,
	"&&": types.ANDAND,
	"||": types.OROR,
	"+=": types.PLUSEQ,
	"-=": types.MINUSEQ,
	"*=": types.STAREQ,
	"/=": types.SLASHEQ,
	"==": types.EQEQ,
	"!=": types.NOTEQ,
	"<=": types.LTEQ,
	">=": types.GTEQ,
	"+":  types.PLUS,
	"-":  types.MINUS,
	"*":  types.STAR,
	"/":  types.SLASH,
	"=":  types.ASSIGN,
	"<":  types.LT,
	">":  types.GT,
	"!":  types.BANG,
	":":  types.COLON,
	",":  types.COMMA,
	"(":  types.LPAREN,
	")":  types.RPAREN,
}

var (
	integerRe = regexp.MustCompile(`^-?[0-9]+$`)
	decimalRe = regexp.MustCompile(`^-?[0-9]+\.[0-9]+$`)
)

const maxFloat32 = 3.40282347e+38

// Tokenize splits source into lines and lexes each one, appending an EOL
// token to every line including blank ones.
func Tokenize(source, filename string) ([]types.Token, error) {
	var ret []types.Token

	for idx, line := range strings.Split(source, "\n") {
		toks, err := lexLine(line, idx+1, filename)
		if err != nil {
			return nil, err
		}
		ret = append(ret, toks...)

		pos := types.Position{Line: idx + 1, Column: len(line) + 1, Filename: filename}
		ret = append(ret, types.Token{
			Kind:     types.EOL,
			Lit:      "\n",
			Location: types.SingleCharSpan(pos),
		})
	}

	return ret, nil
}

func lexLine(line string, lineNo int, filename string) (ret []types.Token, err error) {
	l, err := definition.Lex(strings.NewReader(line))
	if err != nil {
		return nil, err
	}

	for {
		tok, err := l.Next()
		if err != nil {
			pos := types.Position{Line: lineNo, Column: 1, Filename: filename}
			return nil, errors.LexError{
				Text:     line,
				Reason:   err.Error(),
				Location: types.SingleCharSpan(pos),
			}
		}
		if tok.Type == plexer.EOF {
			return ret, nil
		}

		from := types.Position{Line: lineNo, Column: tok.Pos.Column, Filename: filename}
		to := from
		to.Column += len(tok.Value) - 1
		loc := types.Span{From: from, To: to}

		var t types.Token
		switch tok.Type {
		case symString:
			t = types.Token{Kind: types.STRING, Lit: tok.Value, Location: loc}
		case symCompound, symPunct:
			t = types.Token{Kind: operators[tok.Value], Lit: tok.Value, Location: loc}
		case symWord:
			t, err = Classify(tok.Value, loc)
			if err != nil {
				return nil, err
			}
		default:
			return nil, errors.LexError{Text: tok.Value, Reason: "unrecognised token", Location: loc}
		}

		if t.IsNumber() && len(ret) > 0 && foldsSign(ret) {
			minus := ret[len(ret)-1]
			signed, err := Classify("-"+t.Lit, types.Span{From: minus.Location.From, To: loc.To})
			if err != nil {
				return nil, err
			}
			ret[len(ret)-1] = signed
			continue
		}

		ret = append(ret, t)
	}
}

// foldsSign reports whether the trailing MINUS in toks is a sign rather than
// a subtraction, i.e. it does not follow something that produces a value.
func foldsSign(toks []types.Token) bool {
	last := toks[len(toks)-1]
	if last.Kind != types.MINUS {
		return false
	}
	if len(toks) == 1 {
		return true
	}
	prev := toks[len(toks)-2]
	return !prev.IsOperand() && prev.Kind != types.RPAREN
}

// Classify turns the text matched by the word pattern into an integer,
// float, keyword or identifier token. Integers are narrowed to the smallest
// unsigned type when non-negative and the smallest signed type otherwise.
func Classify(text string, loc types.Span) (types.Token, error) {
	switch {
	case integerRe.MatchString(text):
		if strings.HasPrefix(text, "-") {
			val, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return types.Token{}, errors.LexError{Text: text, Reason: err.Error(), Location: loc}
			}
			if val < 0 {
				return types.Token{Kind: NarrowInt(val), Lit: text, Int: val, Location: loc}, nil
			}
			text = "0"
		}
		val, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return types.Token{}, errors.LexError{Text: text, Reason: err.Error(), Location: loc}
		}
		return types.Token{Kind: NarrowUint(val), Lit: text, Uint: val, Location: loc}, nil
	case decimalRe.MatchString(text):
		val, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return types.Token{}, errors.LexError{Text: text, Reason: err.Error(), Location: loc}
		}
		kind := types.FLOAT64
		if math.Abs(val) <= maxFloat32 {
			kind = types.FLOAT32
		}
		return types.Token{Kind: kind, Lit: text, Float: val, Location: loc}, nil
	case text[0] >= '0' && text[0] <= '9', strings.Contains(text, "."):
		return types.Token{}, errors.LexError{Text: text, Reason: "malformed numeric literal", Location: loc}
	}

	if kw, ok := types.Keywords[text]; ok {
		return types.Token{Kind: types.KEYWORD, Keyword: kw, Lit: text, Location: loc}, nil
	}
	return types.Token{Kind: types.IDENT, Lit: text, Location: loc}, nil
}

func NarrowInt(val int64) types.TokenKind {
	switch {
	case val >= math.MinInt8:
		return types.INT8
	case val >= math.MinInt16:
		return types.INT16
	case val >= math.MinInt32:
		return types.INT32
	}
	return types.INT64
}

func NarrowUint(val uint64) types.TokenKind {
	switch {
	case val <= math.MaxUint8:
		return types.UINT8
	case val <= math.MaxUint16:
		return types.UINT16
	case val <= math.MaxUint32:
		return types.UINT32
	}
	return types.UINT64
}
