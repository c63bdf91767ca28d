package quantity

import "fmt"

// UnknownUnitError reports a unit name absent from the registry.
type UnknownUnitError struct {
	Name string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Name)
}

// IncompatibleUnitError reports an attempted conversion between quantities of
// different physical dimension.
type IncompatibleUnitError struct {
	From string
	To   string
}

func (e *IncompatibleUnitError) Error() string {
	return fmt.Sprintf("cannot convert %q to %q: incompatible dimensions", e.From, e.To)
}

// SyntaxError reports a malformed quantity or unit expression.
type SyntaxError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("cannot parse %q at offset %d: %s", e.Input, e.Pos, e.Msg)
}
