package encode

import "github.com/fatih/color"

type colorRole int

const (
	parenColor colorRole = iota
	tokenColor
	stringColor
	binaryColor
)

// Colors maps syntactic roles to terminal colors for advanced output.
type Colors struct {
	Paren  *color.Color
	Token  *color.Color
	String *color.Color
	Binary *color.Color
}

func DefaultColors() *Colors {
	return &Colors{
		Paren:  color.New(color.FgHiBlack),
		Token:  color.New(color.FgCyan),
		String: color.New(color.FgGreen),
		Binary: color.New(color.FgMagenta),
	}
}

func (es *EncState) paint(role colorRole, s string) string {
	if es.colors == nil {
		return s
	}
	var c *color.Color
	switch role {
	case parenColor:
		c = es.colors.Paren
	case tokenColor:
		c = es.colors.Token
	case stringColor:
		c = es.colors.String
	case binaryColor:
		c = es.colors.Binary
	}
	if c == nil {
		return s
	}
	return c.Sprint(s)
}
