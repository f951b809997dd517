package errors

import (
	"fmt"

	"github.com/pontaoski/chic/types"
)

type LexError struct {
	Text     string
	Reason   string
	Location types.Span
}

func (e LexError) Error() string {
	return fmt.Sprintf("%s: cannot lex %q: %s", e.Location, e.Text, e.Reason)
}

type SegmentationError struct {
	Reason   string
	Location types.Span
}

func (e SegmentationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Reason)
}

type ParseError struct {
	Reason   string
	Tokens   []types.Token
	Location types.Span
}

func (e ParseError) Error() string {
	if len(e.Tokens) == 0 {
		return fmt.Sprintf("%s: %s", e.Location, e.Reason)
	}
	return fmt.Sprintf("%s: %s near %v", e.Location, e.Reason, e.Tokens)
}

type ExpectedKindGotKind struct {
	Expected types.TokenKind
	Got      types.Token
	Location types.Span
}

func (e ExpectedKindGotKind) Error() string {
	return fmt.Sprintf("got a %s, expected a %s. %s", e.Got, e.Expected, e.Location)
}

type TypeError struct {
	Name     string
	Reason   string
	Location types.Span
}

func (e TypeError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Location, e.Name, e.Reason)
}

type RenderError struct {
	Node   string
	Reason string
}

func (e RenderError) Error() string {
	return fmt.Sprintf("cannot render %s: %s", e.Node, e.Reason)
}

type CollaboratorError struct {
	Op   string
	Path string
	Err  error
}

func (e CollaboratorError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

func (e CollaboratorError) Unwrap() error {
	return e.Err
}
