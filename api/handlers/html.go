// ABOUTME: HTML card-grid view of the aggregated sports news
// ABOUTME: Rendered with html/template so every feed value is escaped

package handlers

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/danielgtaylor/huma/v2"

	"sports-news-api/core/domain"
	"sports-news-api/pkg/featureflags"
	htmlutil "sports-news-api/pkg/utils/html"
)

// summaryLimit is the number of characters of a summary shown on a card
const summaryLimit = 320

// SportsHTMLInput defines the input for the GetSportsHTML operation
type SportsHTMLInput struct {
	SportsQuery
}

// SportsHTMLOutput is a rendered page
type SportsHTMLOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// GetSportsHTML handles the GET /sports/html endpoint
func (h *SportsHandler) GetSportsHTML(ctx context.Context, input *SportsHTMLInput) (*SportsHTMLOutput, error) {
	if !featureflags.IsEnabled(ctx, featureflags.HTMLView) {
		return nil, huma.Error404NotFound("HTML view is disabled")
	}

	label, result, _, err := h.aggregate(ctx, &input.SportsQuery)
	if err != nil {
		return nil, err
	}

	body, err := renderPage(label, result.Articles)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SportsHTMLOutput{
		ContentType: "text/html; charset=utf-8",
		Body:        body,
	}, nil
}

type page struct {
	Title    string
	JSONHref string
	Count    int
	Cards    []card
}

type card struct {
	Title     string
	Link      string
	Sport     string
	Source    string
	Published string
	Summary   string
}

func renderPage(sport string, articles []domain.Article) ([]byte, error) {
	p := page{
		Title:    ServiceName + " – All Sports",
		JSONHref: "/sports",
		Count:    len(articles),
		Cards:    make([]card, 0, len(articles)),
	}
	if sport != AllSports {
		p.Title = ServiceName + " – " + capitalize(sport)
		p.JSONHref = "/sports?sport=" + sport
	}

	for _, a := range articles {
		link := a.Link
		if link == "" {
			link = "#"
		}
		p.Cards = append(p.Cards, card{
			Title:     a.Title,
			Link:      link,
			Sport:     a.Topic,
			Source:    a.Source,
			Published: a.PublishedISO(),
			Summary:   htmlutil.Truncate(a.Summary, summaryLimit),
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

var pageTemplate = template.Must(template.New("sports").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<style>
  :root { --bg:#0b0f14; --card:#121821; --text:#e8eef6; --muted:#9fb0c3; --accent:#3aa7ff; --chip:#1a2230; }
  * { box-sizing:border-box; }
  body { margin:0; background:var(--bg); color:var(--text); font-family:ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial,sans-serif; }
  header { padding:24px 16px; border-bottom:1px solid #1e2733; position:sticky; top:0; background:rgba(11,15,20,.96); backdrop-filter:blur(6px); z-index:10; }
  .wrap { max-width:1100px; margin:0 auto; }
  h1 { margin:0 0 6px; font-size:22px; }
  .sub { color:var(--muted); font-size:14px; }
  .grid { display:grid; grid-template-columns:repeat(auto-fill,minmax(280px,1fr)); gap:14px; padding:16px; }
  .card { background:var(--card); border:1px solid #1e2733; border-radius:14px; padding:14px; display:flex; flex-direction:column; gap:10px; transition:transform .12s ease, border-color .12s ease; }
  .card:hover { transform:translateY(-2px); border-color:#2a3749; }
  .title { font-weight:600; line-height:1.25; font-size:16px; }
  .meta { display:flex; gap:8px; flex-wrap:wrap; color:var(--muted); font-size:12px; }
  .chip { background:var(--chip); padding:2px 8px; border-radius:999px; border:1px solid #202a38; }
  .summary { color:#cfd9e6; font-size:14px; line-height:1.35; }
  a.link { color:var(--accent); text-decoration:none; }
  a.link:hover { text-decoration:underline; }
  .toolbar { margin-top:8px; display:flex; gap:12px; align-items:center; flex-wrap:wrap; }
  .pill { display:inline-flex; align-items:center; gap:8px; background:var(--chip); border:1px solid #223044; padding:6px 10px; border-radius:999px; color:var(--text); text-decoration:none; font-size:13px; }
  .pill:hover { border-color:#2f415a; }
  footer { color:var(--muted); font-size:12px; padding:18px 16px 36px; text-align:center; }
</style>
</head>
<body>
<header>
  <div class="wrap">
    <h1>{{.Title}}</h1>
    <div class="sub">De-duplicated headlines from multiple sources. Showing {{.Count}} items.</div>
    <div class="toolbar">
      <a class="pill" href="{{.JSONHref}}">JSON</a>
      <a class="pill" href="/sources">Sources</a>
      <a class="pill" href="/health">Health</a>
    </div>
  </div>
</header>
<main class="wrap">
  <section class="grid">
{{- range .Cards}}
    <article class="card">
      <div class="title"><a class="link" href="{{.Link}}" target="_blank" rel="noopener noreferrer">{{.Title}}</a></div>
      <div class="meta">
        {{- if .Sport}}<span class="chip">{{.Sport}}</span>{{end}}
        {{- if .Source}}<span class="chip">{{.Source}}</span>{{end}}
        {{- if .Published}}<span class="chip">{{.Published}}</span>{{end}}
      </div>
      <div class="summary">{{.Summary}}</div>
      <div><a class="pill" href="{{.Link}}" target="_blank" rel="noopener noreferrer">Open article ↗</a></div>
    </article>
{{- end}}
  </section>
</main>
<footer>
  Switch to <a class="link" href="/sports">JSON</a> or browse the <a class="link" href="/docs">API docs</a>.
</footer>
</body>
</html>
`))
