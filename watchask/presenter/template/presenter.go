package template

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/watchask/watchask/watchask/presenter/models"
)

// Presenter renders the document through a user-supplied Go template.
type Presenter struct {
	document         models.Document
	templateFilePath string
}

func NewPresenter(doc models.Document, templateFilePath string) *Presenter {
	return &Presenter{
		document:         doc,
		templateFilePath: templateFilePath,
	}
}

func (p *Presenter) Present(output io.Writer) error {
	templateContents, err := os.ReadFile(p.templateFilePath)
	if err != nil {
		return fmt.Errorf("unable to get output template: %w", err)
	}

	tmpl, err := template.New(p.templateFilePath).Funcs(funcMap()).Parse(string(templateContents))
	if err != nil {
		return fmt.Errorf("unable to parse template: %w", err)
	}

	if err := tmpl.Execute(output, p.document); err != nil {
		return fmt.Errorf("unable to execute supplied template: %w", err)
	}

	return nil
}

func funcMap() template.FuncMap {
	f := sprig.HermeticTxtFuncMap()
	f["getLastIndex"] = func(collection interface{}) int {
		if questions, ok := collection.([]models.Question); ok {
			return len(questions) - 1
		}
		return 0
	}
	return f
}
