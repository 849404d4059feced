package server

import (
	"fmt"
	"html/template"
)

const homeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Exoplanet detectability</title>
</head>
<body>
<h1>Exoplanet detectability</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="get" action="/">
  <label>Telescope diameter (m) <input name="telescope_diameter" value="{{num .Query.TelescopeDiameter}}"></label>
  <label>Min SNR <input name="min_snr" value="{{num .Query.MinSNR}}"></label>
  <label>Max distance (pc) <input name="max_distance" value="{{num .Query.MaxDistance}}"></label>
  <label>Habitable only <input type="checkbox" name="habitable_only"{{if .Query.HabitableOnly}} checked{{end}}></label>
  <button type="submit">Filter</button>
</form>
{{with .Result}}
<p>{{.Total}} planets match.</p>
<h2>Statistics (SNR)</h2>
{{with .Summary}}
<ul>
  <li>mean {{num .Mean}}</li>
  <li>median {{num .Median}}</li>
  <li>std {{num .StdDev}}</li>
  <li>min {{num .Min}}</li>
  <li>max {{num .Max}}</li>
</ul>
{{else}}
<p>Statistics undefined: no planets left after filtering.</p>
{{end}}
<h2>Closest systems</h2>
<table>
<tr><th>Planet</th><th>Host</th><th>Distance (pc)</th><th>SNR</th><th>Star</th><th>In HZ</th></tr>
{{range .Closest}}<tr><td>{{.Name}}</td><td>{{.Host}}</td><td>{{num .Distance}}</td><td>{{num .SNR}}</td><td>{{.StarType}}</td><td>{{.InHabitableZone}}</td></tr>
{{end}}</table>
{{end}}
{{if not .ChatbotDisabled}}<div id="chatbot"></div>{{end}}
</body>
</html>`

var templateFuncs = template.FuncMap{
	"num": formatNumber,
}

func formatNumber(v interface{}) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", x)
	case *float64:
		if x == nil {
			return "undefined"
		}
		return fmt.Sprintf("%.2f", *x)
	default:
		return fmt.Sprint(v)
	}
}

func loadTemplates() *template.Template {
	return template.Must(template.New("home.html").Funcs(templateFuncs).Parse(homeTemplate))
}
