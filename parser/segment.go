package parser

import (
	"github.com/pontaoski/chic/errors"
	"github.com/pontaoski/chic/types"
)

// Segment groups a token stream into statement slices. A slice ends at an
// EOL once every block opened inside it has seen its `end`, so a whole
// if/while/for/fn construct comes back as one slice. The separating EOLs
// are not part of any slice; blank lines produce nothing.
func Segment(tokens []types.Token) ([][]types.Token, error) {
	var (
		ret     [][]types.Token
		openers []types.Token
		start   = -1
	)

	for i, tok := range tokens {
		if tok.Kind == types.EOL && len(openers) == 0 {
			if start >= 0 {
				ret = append(ret, tokens[start:i:i])
				start = -1
			}
			continue
		}

		if start < 0 {
			start = i
		}

		if tok.Kind != types.KEYWORD {
			continue
		}
		switch {
		case tok.Keyword.OpensBlock():
			openers = append(openers, tok)
		case tok.Keyword == types.KwEnd:
			if len(openers) == 0 {
				return nil, errors.SegmentationError{
					Reason:   "`end` without a matching if, while, for or fn",
					Location: tok.Location,
				}
			}
			openers = openers[:len(openers)-1]
		}
	}

	if len(openers) > 0 {
		opener := openers[len(openers)-1]
		return nil, errors.SegmentationError{
			Reason:   "`" + opener.Lit + "` block is never closed with `end`",
			Location: opener.Location,
		}
	}

	if start >= 0 {
		ret = append(ret, tokens[start:])
	}

	return ret, nil
}
