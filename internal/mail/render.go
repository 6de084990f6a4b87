// Package mail renders the ranked digest as an HTML email and delivers it
// over SMTP. It consumes the pipeline result as-is and applies only
// presentation decisions.
package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"insightbot/internal/news"
)

// MillionaireMinScore promotes the highest-value fresh items into the
// spotlight section at the top of the digest.
const MillionaireMinScore = 10

const maxMillionaire = 5
const maxPerSection = 20
const maxReview = 30

var beijing = time.FixedZone("CST", 8*60*60)

// Digest is a rendered email ready for transport.
type Digest struct {
	Subject string
	HTML    string
}

type section struct {
	Name  string
	Items []news.Item
}

type digestData struct {
	Trending    []news.Trend
	Millionaire []news.Item
	Sections    []section
	Review      []news.Item
	FreshCount  int
	ReviewCount int
}

// Source substring match drives section membership; anything unmatched
// lands in the catch-all section.
var sectionDefs = []struct {
	name    string
	sources []string
}{
	{"🚨 AI 产品首发 (Consumer Tech)", []string{"36Kr", "TechCrunch·AI", "ProductHunt"}},
	{"⚡ AI 基础设施 (Chips/Energy/Mining)", []string{"基建"}},
	{"🧠 核心技术 (Tech & Research)", []string{"GitHub", "HuggingFace", "HackerNews", "掘金"}},
	{"🚗 智能驾驶与汽车 (Auto/EV)", []string{"汽车"}},
	{"📈 财经宏观 (Finance & Macro)", []string{"财联社", "华尔街"}},
}

// Render builds the digest email from the pipeline result.
func Render(result news.Result, now time.Time) Digest {
	millionaire := make([]news.Item, 0, maxMillionaire)
	others := make([]news.Item, 0, len(result.Fresh))
	for _, it := range result.Fresh {
		if it.Score >= MillionaireMinScore && len(millionaire) < maxMillionaire {
			millionaire = append(millionaire, it)
		} else {
			others = append(others, it)
		}
	}

	sections := groupBySource(others)

	review := result.Review
	if len(review) > maxReview {
		review = review[:maxReview]
	}

	data := digestData{
		Trending:    news.TrendingKeywords(result.Fresh, 5),
		Millionaire: millionaire,
		Sections:    sections,
		Review:      review,
		FreshCount:  len(result.Fresh),
		ReviewCount: len(result.Review),
	}

	var buf bytes.Buffer
	// The template is compile-time constant; an execution error would be a
	// programming bug, and an empty body is preferable to losing the run.
	_ = digestTemplate.Execute(&buf, data)

	return Digest{
		Subject: subject(millionaire, now),
		HTML:    buf.String(),
	}
}

func groupBySource(items []news.Item) []section {
	grouped := make(map[int]bool, len(items))
	sections := make([]section, 0, len(sectionDefs)+1)

	for _, def := range sectionDefs {
		var members []news.Item
		for i, it := range items {
			if grouped[i] {
				continue
			}
			for _, src := range def.sources {
				if strings.Contains(it.Source, src) {
					members = append(members, it)
					grouped[i] = true
					break
				}
			}
		}
		if len(members) > maxPerSection {
			members = members[:maxPerSection]
		}
		if len(members) > 0 {
			sections = append(sections, section{Name: def.name, Items: members})
		}
	}

	var rest []news.Item
	for i, it := range items {
		if !grouped[i] {
			rest = append(rest, it)
		}
	}
	if len(rest) > maxPerSection {
		rest = rest[:maxPerSection]
	}
	if len(rest) > 0 {
		sections = append(sections, section{Name: "📌 其他资讯", Items: rest})
	}
	return sections
}

func subject(millionaire []news.Item, now time.Time) string {
	if len(millionaire) > 0 {
		title := []rune(millionaire[0].Title)
		if len(title) > 30 {
			title = title[:30]
		}
		return fmt.Sprintf("🔥 [Urgent] %s...", string(title))
	}

	t := now.In(beijing)
	hour := t.Hour()
	// A run triggered at :45 or later belongs to the next hour's slot.
	if t.Minute() >= 45 {
		hour = (hour + 1) % 24
	}
	if hour == 6 {
		return "🌅 [Morning Digest] 早报聚合 (夜间汇总)"
	}
	return fmt.Sprintf("Daily Insight - %d点档", hour)
}

var digestTemplate = template.Must(template.New("digest").Funcs(template.FuncMap{
	"region": func(it news.Item) string {
		if it.Region != "" {
			return it.Region
		}
		return news.RegionForSource(it.Source)
	},
	"badgeColor": func(score int) string {
		switch {
		case score >= 10:
			return "#d4af37"
		case score >= 5:
			return "#b8860b"
		default:
			return "#999"
		}
	},
}).Parse(digestTemplateText))

const digestTemplateText = `<div style="font-family:'Helvetica Neue', Arial, sans-serif; max-width:700px; margin:0 auto; color:#333; line-height:1.6; background-color:#FAFAFA; padding:20px; border-radius:10px;">
  <div style="text-align:center; padding-bottom:15px; margin-bottom:20px;">
    <h1 style="margin:0; font-size:22px; color:#111; letter-spacing:1px;">DAILY INSIGHT</h1>
    <p style="margin:5px 0 0; color:#666; font-size:12px; text-transform:uppercase;">Millionaire Edition</p>
  </div>
{{- if .Trending}}
  <div style="background:#f0f8ff;border:1px solid #cceeff;border-radius:6px;padding:8px 12px;margin-bottom:20px;font-size:13px;color:#0066cc;text-align:center;">
    🔥 <strong>Trending:</strong> {{range $i, $t := .Trending}}{{if $i}} · {{end}}{{$t.Capitalize}} ({{$t.Count}}){{end}}
  </div>
{{- end}}
{{- if .Millionaire}}
  <div style="margin-bottom:25px;background:#ffffff;border:2px solid #d4af37;border-radius:8px;padding:15px;box-shadow:0 4px 12px rgba(212,175,55,0.2);">
    <h2 style="color:#d4af37;margin:0 0 15px 0;font-size:18px;text-align:center;border-bottom:1px solid #f0e6d2;padding-bottom:10px;">🚨 财富机会 (Millionaire Signals)</h2>
    <ul style="padding-left:20px;margin:0;">
{{- range .Millionaire}}
      <li style="margin-bottom:12px;">
        <div style="font-size:16px;font-weight:bold;">
          <a href="{{.URL}}" style="text-decoration:none;color:#333;">{{.Title}}</a>
          <span style="background:#d4af37;color:#fff;font-size:10px;padding:2px 6px;border-radius:4px;margin-left:8px;">{{.Score}}分</span>
        </div>
{{- if .Summary}}
        <div style="font-size:13px;color:#666;margin:3px 0 0 0;line-height:1.3;">{{.Summary}}</div>
{{- end}}
        <div style="font-size:12px;color:#888;margin-top:4px;">{{region .}} {{.Source}} • {{.Time}}</div>
      </li>
{{- end}}
    </ul>
  </div>
{{- end}}
{{- range .Sections}}
  <div style="margin-bottom:30px;border-left:4px solid #d4af37;background:#fffcf5;padding:10px;border-radius:0 8px 8px 0;">
    <h3 style="color:#bfa15f;margin:0 0 10px 0;font-size:16px;">{{.Name}}</h3>
    <ul style="padding-left:0;list-style:none;margin:0;">
{{- range .Items}}
      <li style="margin-bottom:12px; border-bottom:1px dashed #e0d0b0; padding-bottom:8px;">
        <div style="font-size:15px;font-weight:bold;line-height:1.4;margin-bottom:4px;">
          <a href="{{.URL}}" style="text-decoration:none;color:#333;">{{.Title}}</a>
          <span style="display:inline-block;background:{{badgeColor .Score}};color:#fff;font-size:10px;padding:1px 5px;border-radius:4px;margin-left:6px;vertical-align:text-bottom;">{{.Score}}分</span>
        </div>
{{- if .Summary}}
        <div style="font-size:13px;color:#666;margin:2px 0 0 0;line-height:1.3;">{{.Summary}}</div>
{{- end}}
        <div style="font-size:12px;color:#888;">{{region .}} {{.Source}} • {{.Time}}</div>
      </li>
{{- end}}
    </ul>
  </div>
{{- end}}
{{- if .Review}}
  <div style="margin-top:40px;padding-top:20px;border-top:2px dashed #ddd;">
    <h3 style="color:#999;margin:0 0 15px 0;font-size:16px;text-align:center;">📉 今日已读 (Review)</h3>
    <ul style="padding-left:0;list-style:none;margin:0;">
{{- range .Review}}
      <li style="margin-bottom:12px; border-bottom:1px dashed #eee; padding-bottom:8px; opacity:0.8;">
        <div style="font-size:15px;font-weight:bold;line-height:1.4;margin-bottom:4px;">
          <a href="{{.URL}}" style="text-decoration:none;color:#666;">{{.Title}}</a>
          <span style="display:inline-block;background:#999;color:#fff;font-size:10px;padding:1px 5px;border-radius:4px;margin-left:6px;vertical-align:text-bottom;">{{.Score}}分</span>
        </div>
{{- if .Summary}}
        <div style="font-size:13px;color:#999;margin:2px 0 0 0;line-height:1.3;">{{.Summary}}</div>
{{- end}}
        <div style="font-size:12px;color:#ccc;">{{region .}} {{.Source}} • {{.Time}}</div>
      </li>
{{- end}}
    </ul>
  </div>
{{- end}}
  <div style="margin-top:40px; text-align:center; color:#ccc; font-size:12px;">
    Powered by Intelligent Analysis Engine • 新鲜 {{.FreshCount}} 条 / 回顾 {{.ReviewCount}} 条
  </div>
</div>`
