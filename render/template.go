package render

import (
	"html"
	"text/template"
)

var funcs = template.FuncMap{
	"esc": html.EscapeString,
}

var svgTpl = template.Must(template.New("slide").Funcs(funcs).Parse(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 {{.Width}} {{.Height}}" width="{{.Width}}" height="{{.Height}}" font-family="{{esc .Font}}, monospace">
<rect x="0" y="0" width="{{.Width}}" height="{{.Height}}" fill="{{.Background}}"/>
{{- range .Elements}}
{{- if eq .Kind "rect"}}
<rect id="{{.ID}}" x="{{printf "%.2f" .X}}" y="{{printf "%.2f" .Y}}" width="{{printf "%.2f" .W}}" height="{{printf "%.2f" .H}}" fill="none" stroke="{{.Stroke}}" stroke-width="{{.StrokeWidth}}"/>
{{- else if eq .Kind "background_rect"}}
<rect id="{{.ID}}" x="{{printf "%.2f" .X}}" y="{{printf "%.2f" .Y}}" width="{{printf "%.2f" .W}}" height="{{printf "%.2f" .H}}" fill="{{.Fill}}" fill-opacity="{{.FillOpacity}}"/>
{{- else if eq .Kind "line"}}
<polyline id="{{.ID}}" points="{{.Points}}" fill="none" stroke="{{.Stroke}}" stroke-width="{{.StrokeWidth}}"/>
{{- else if eq .Kind "polygon"}}
<polygon id="{{.ID}}" points="{{.Points}}" fill="{{.Fill}}" fill-opacity="{{.FillOpacity}}" stroke="{{.Stroke}}" stroke-width="{{.StrokeWidth}}"/>
{{- else if or (eq .Kind "arrow") (eq .Kind "curved_arrow")}}
<g id="{{.ID}}">
<path d="{{.Path}}" fill="none" stroke="{{.Stroke}}" stroke-width="{{.StrokeWidth}}"/>
<polygon points="{{.Head}}" fill="{{.Stroke}}"/>
</g>
{{- else if eq .Kind "image"}}
<image id="{{.ID}}" x="{{printf "%.2f" .X}}" y="{{printf "%.2f" .Y}}" width="{{printf "%.2f" .W}}" height="{{printf "%.2f" .H}}" href="{{esc .Href}}" preserveAspectRatio="none"/>
{{- else if eq .Kind "text"}}
<text id="{{.ID}}" font-size="{{printf "%.2f" .FontSize}}" xml:space="preserve">
{{- range .Lines}}<tspan x="{{printf "%.2f" .X}}" y="{{printf "%.2f" .Y}}">{{range .Spans}}<tspan fill="{{.Fill}}"{{if .Bold}} font-weight="bold"{{end}}{{if .Italic}} font-style="italic"{{end}}>{{esc .Text}}</tspan>{{end}}</tspan>{{end -}}
</text>
{{- else if eq .Kind "code"}}
<g id="{{.ID}}">
<rect x="{{printf "%.2f" .X}}" y="{{printf "%.2f" .Y}}" width="{{printf "%.2f" .W}}" height="{{printf "%.2f" .H}}" rx="{{printf "%.2f" .Radius}}" fill="{{.Fill}}"/>
{{- range .Buttons}}
<circle cx="{{printf "%.2f" .X}}" cy="{{printf "%.2f" .Y}}" r="{{printf "%.2f" .R}}" fill="{{.Fill}}"/>
{{- end}}
<text font-size="{{printf "%.2f" .FontSize}}" xml:space="preserve">
{{- range .Lines}}<tspan x="{{printf "%.2f" .X}}" y="{{printf "%.2f" .Y}}">{{range .Spans}}<tspan fill="{{.Fill}}"{{if .Bold}} font-weight="bold"{{end}}{{if .Italic}} font-style="italic"{{end}}>{{esc .Text}}</tspan>{{end}}</tspan>{{end -}}
</text>
</g>
{{- end}}
{{- end}}
</svg>
`))
