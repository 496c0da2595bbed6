package result

import (
	"html/template"
	"strings"
)

// CertificateData is everything the renderer needs. It is a pure function of
// this struct: no database access, no state.
type CertificateData struct {
	StudentName string
	TeamName    string
	Category    string
	Position    *int
}

var positionText = map[int]string{
	1: "First Place",
	2: "Second Place",
	3: "Third Place",
}

type certificateView struct {
	CertificateData
	Kind          string
	PositionLabel string
}

var certificateTmpl = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Certificate - {{.StudentName}}</title>
<style>
  body { font-family: Georgia, serif; background: #f5f5f0; margin: 0; }
  .certificate { max-width: 760px; margin: 40px auto; padding: 60px 50px; background: #fff;
    border: 3px solid #1d4ed8; text-align: center; }
  .inner { border: 1px solid #93c5fd; padding: 40px 30px; }
  .event { text-transform: uppercase; letter-spacing: .3em; font-size: 13px; color: #1d4ed8; }
  h1 { font-size: 42px; margin: 18px 0 2px; }
  .kind { font-size: 20px; color: #555; margin-bottom: 28px; }
  .student { font-size: 34px; color: #1d4ed8; margin: 10px 0; }
  .detail { max-width: 480px; margin: 18px auto; font-size: 15px; line-height: 1.6; color: #444; }
  .position { display: inline-block; margin-top: 14px; padding: 8px 24px; border: 2px solid #b45309;
    border-radius: 999px; color: #b45309; font-weight: bold; }
  @media print { body { background: #fff; } .certificate { margin: 0; border-width: 2px; } }
</style>
</head>
<body>
<div class="certificate">
  <div class="inner">
    <p class="event">Aptech Johar Coding Competition</p>
    <h1>Certificate</h1>
    <p class="kind">of {{.Kind}}</p>
    <p>This is proudly presented to</p>
    <p class="student">{{.StudentName}}</p>
    <p class="detail">For participating in the <strong>Aptech Johar Coding Competition</strong>
      as a member of team <strong>{{.TeamName}}</strong> in the
      <strong>{{.Category}}</strong> category.</p>
    {{if .PositionLabel}}<p class="position">{{.PositionLabel}}</p>{{end}}
  </div>
</div>
</body>
</html>
`))

// RenderCertificate produces the printable certificate document. Positions
// 1-3 yield an achievement certificate with the place label; anything else
// is a participation certificate.
func RenderCertificate(data CertificateData) (string, error) {
	view := certificateView{
		CertificateData: data,
		Kind:            "Participation",
	}
	if data.Position != nil {
		if label, ok := positionText[*data.Position]; ok {
			view.Kind = "Achievement"
			view.PositionLabel = label
		}
	}

	var sb strings.Builder
	if err := certificateTmpl.Execute(&sb, view); err != nil {
		return "", err
	}
	return sb.String(), nil
}
