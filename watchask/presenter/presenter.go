package presenter

import (
	"io"

	"github.com/watchask/watchask/watchask/presenter/json"
	"github.com/watchask/watchask/watchask/presenter/models"
	"github.com/watchask/watchask/watchask/presenter/table"
	"github.com/watchask/watchask/watchask/presenter/template"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer) error
}

// GetPresenter retrieves a Presenter that matches a CLI option.
func GetPresenter(option Option, templateFilePath string, doc models.Document) Presenter {
	switch option {
	case JSONPresenter:
		return json.NewPresenter(doc)
	case TablePresenter:
		return table.NewPresenter(doc)
	case TemplatePresenter:
		return template.NewPresenter(doc, templateFilePath)
	default:
		return nil
	}
}
