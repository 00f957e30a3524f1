package presenter

import "strings"

const (
	UnknownPresenter Option = iota
	JSONPresenter
	TablePresenter
	TemplatePresenter
)

var Options = []Option{
	JSONPresenter,
	TablePresenter,
	TemplatePresenter,
}

// Option is a dedicated type to represent a specific kind of presenter output format.
type Option int

func ParseOption(userStr string) Option {
	switch strings.ToLower(userStr) {
	case "json":
		return JSONPresenter
	case "table":
		return TablePresenter
	case "template":
		return TemplatePresenter
	default:
		return UnknownPresenter
	}
}

func (o Option) String() string {
	switch o {
	case JSONPresenter:
		return "json"
	case TablePresenter:
		return "table"
	case TemplatePresenter:
		return "template"
	default:
		return "UnknownPresenter"
	}
}
