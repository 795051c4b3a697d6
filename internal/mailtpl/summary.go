// Package mailtpl renders the work-summary email. Render is a pure
// function of its input; all free text goes through html/template
// escaping.
package mailtpl

import (
	"bytes"
	"html/template"
	"strings"
)

type SummaryEmailData struct {
	Greeting          string
	ContactName       string
	Description       string
	Date              string
	CemeteryName      string
	GraveLocation     string
	ServicesPerformed []string
	PhotosBefore      []string
	PhotosAfter       []string
}

var summaryTpl = template.Must(template.New("summaryHTML").Funcs(template.FuncMap{
	"nl2br": nl2br,
}).Parse(summaryHTMLTemplate))

// Render builds the HTML body. Photo URLs render in slice order;
// sections with no backing data are omitted.
func Render(data SummaryEmailData) (string, error) {
	var buf bytes.Buffer
	if err := summaryTpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// nl2br escapes the text first, then turns newlines into <br> so the
// returned HTML is safe to inline.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

const summaryHTMLTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #333; text-align: center;">Podsumowanie wykonanych prac</h1>

  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2 style="color: #666; margin-top: 0;">{{.Greeting}}</h2>
    <p>Informujemy, że w dniu <strong>{{.Date}}</strong> wykonaliśmy usługę sprzątania grobu.</p>
  </div>

  {{if or .CemeteryName .GraveLocation}}
  <div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2 style="color: #666; margin-top: 0;">Informacje o usłudze</h2>
    {{if .CemeteryName}}<p style="margin: 4px 0;"><strong>Cmentarz:</strong> {{.CemeteryName}}</p>{{end}}
    {{if .GraveLocation}}<p style="margin: 4px 0;"><strong>Lokalizacja grobu:</strong> {{.GraveLocation}}</p>{{end}}
  </div>
  {{end}}

  {{if .Description}}
  <div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2 style="color: #666; margin-top: 0;">Opis wykonanych prac</h2>
    <p style="line-height: 1.6;">{{nl2br .Description}}</p>
  </div>
  {{end}}

  {{if .ServicesPerformed}}
  <div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2 style="color: #666; margin-top: 0;">Wykonane usługi</h2>
    <ul style="line-height: 1.8; margin: 0; padding-left: 20px;">
      {{range .ServicesPerformed}}<li>{{.}}</li>{{end}}
    </ul>
  </div>
  {{end}}

  {{if .PhotosBefore}}
  <div style="margin: 20px 0;">
    <h3 style="color: #666; border-bottom: 2px solid #ddd; padding-bottom: 10px;">Przed wykonaniem usługi</h3>
    <div style="margin-top: 15px;">
      {{range .PhotosBefore}}
      <img src="{{.}}" alt="Przed wykonaniem usługi" style="max-width: 280px; height: auto; border-radius: 8px; margin: 5px; box-shadow: 0 2px 4px rgba(0,0,0,0.1);" />
      {{end}}
    </div>
  </div>
  {{end}}

  {{if .PhotosAfter}}
  <div style="margin: 20px 0;">
    <h3 style="color: #666; border-bottom: 2px solid #ddd; padding-bottom: 10px;">Po wykonaniu usługi</h3>
    <div style="margin-top: 15px;">
      {{range .PhotosAfter}}
      <img src="{{.}}" alt="Po wykonaniu usługi" style="max-width: 280px; height: auto; border-radius: 8px; margin: 5px; box-shadow: 0 2px 4px rgba(0,0,0,0.1);" />
      {{end}}
    </div>
  </div>
  {{end}}

  <div style="background: #e8f5e8; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #4caf50;">
    <p style="margin: 0; color: #2e7d32; text-align: center; font-weight: bold;">
      Dziękujemy za skorzystanie z naszych usług!
    </p>
  </div>

  <table style="width: 100%; background-color: #1a1a1a; font-family: 'Book Antiqua', serif; color: #f2f2f2; padding: 20px 10px;">
    <tbody>
      <tr>
        <td align="center">
          <table style="width: 100%; max-width: 900px; padding: 0 10px; color: #f2f2f2;" cellspacing="0" cellpadding="0">
            <tbody>
              <tr>
                <td style="width: 60%; text-align: left; vertical-align: top; line-height: 1.6;">
                  <strong style="font-size: 18px; color: inherit;">CzystePomniki.pl</strong><br />
                  ul. Majowa 59<br />
                  05-462 Dziechciniec<br />
                  Tel: <a style="color: inherit; text-decoration: none;" href="tel:+48799820556">+48 799 820 556</a><br />
                  Email: <a style="color: inherit; text-decoration: none;" href="mailto:biuro@czystepomniki.pl">biuro@czystepomniki.pl</a>
                </td>
                <td style="width: 40%; text-align: center; vertical-align: middle;">
                  <div style="display: inline-block; text-align: center;">
                    <img style="max-width: 30%; height: auto;" src="https://www.czystepomniki.pl/wp-content/uploads/2022/09/cropped-logo_red.webp" alt="Czyste Pomniki" />
                    <div style="font-size: 13px; color: #dddddd; margin-top: 8px;">Profesjonalne usługi sprzątania grob&oacute;w</div>
                  </div>
                </td>
              </tr>
              <tr>
                <td style="text-align: center; padding-top: 40px; border-top: 1px solid #333333;" colspan="2">
                  <a style="margin: 0 15px; color: #f2f2f2; font-weight: bold; font-size: 16px; text-decoration: none; font-family: Arial, sans-serif;" href="https://www.facebook.com/people/Czystepomnikipl/" rel="noopener">FB</a>
                  <a style="margin: 0 15px; color: #f2f2f2; font-weight: bold; font-size: 16px; text-decoration: none; font-family: Arial, sans-serif;" href="https://x.com/czystepomnikipl/" rel="noopener">X</a>
                </td>
              </tr>
            </tbody>
          </table>
        </td>
      </tr>
    </tbody>
  </table>
  <p style="text-align: center;"><span style="font-family: 'book antiqua', palatino, serif; font-size: 12pt;">CzystePomniki 2025</span></p>
</div>`
