package mailtpl

import (
	"bytes"
	ttemplate "text/template"
)

var summaryTextTpl = ttemplate.Must(ttemplate.New("summaryText").Parse(summaryTextTemplate))

// RenderText builds the plain-text alternative part.
func RenderText(data SummaryEmailData) (string, error) {
	var buf bytes.Buffer
	if err := summaryTextTpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const summaryTextTemplate = `Podsumowanie wykonanych prac

{{.Greeting}},

Informujemy, że w dniu {{.Date}} wykonaliśmy usługę sprzątania grobu.
{{if .Description}}
Opis wykonanych prac:
{{.Description}}
{{end}}{{if .PhotosBefore}}
Zdjęcia przed wykonaniem usługi:
{{range .PhotosBefore}}{{.}}
{{end}}{{end}}{{if .PhotosAfter}}
Zdjęcia po wykonaniu usługi:
{{range .PhotosAfter}}{{.}}
{{end}}{{end}}
Dziękujemy za skorzystanie z naszych usług!

-- CzystePomniki.pl | ul. Majowa 59, 05-462 Dziechciniec | +48 799 820 556
`
