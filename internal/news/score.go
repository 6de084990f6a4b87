package news

import (
	"regexp"
	"strings"
)

// KeywordTier is one weighted keyword list.
type KeywordTier struct {
	Weight   int      `yaml:"weight"`
	Keywords []string `yaml:"keywords"`
}

// KeywordConfig holds the five additive tiers plus the signature bonus list.
// It is data, not code: tiers and weights can be swapped without touching
// the scorer.
type KeywordConfig struct {
	Critical KeywordTier `yaml:"critical"`
	High     KeywordTier `yaml:"high"`
	Medium   KeywordTier `yaml:"medium"`
	Auto     KeywordTier `yaml:"auto"`
	Low      KeywordTier `yaml:"low"`
	// Signature terms add their weight once, flat, if any of them appears.
	Signature KeywordTier `yaml:"signature"`
}

// DefaultKeywords returns the built-in tier tables, used when no keywords
// config file is present.
func DefaultKeywords() KeywordConfig {
	return KeywordConfig{
		Critical: KeywordTier{Weight: 100, Keywords: []string{
			"seedance", "open ai", "openai", "sora", "gpt-5", "gpt5", "gemini",
			"deepseek", "anthropic", "claude", "blackwell", "nvidia", "rtx 50",
		}},
		High: KeywordTier{Weight: 10, Keywords: []string{
			"融资", "ipo", "上市", "暴涨", "首发", "launch", "funding", "surge",
			"breakthrough", "acquisition", "merger",
		}},
		Medium: KeywordTier{Weight: 5, Keywords: []string{
			"chip", "semiconductor", "tsmc", "amd", "intel", "nuclear", "energy",
			"mining", "copper", "lithium", "电力", "芯片", "矿产", "能源", "算力",
		}},
		Auto: KeywordTier{Weight: 5, Keywords: []string{
			"tesla", "waymo", "autopilot", "fsd", "ev", "electric vehicle",
			"xiaopeng", "nio", "byd", "robotaxi", "自动驾驶", "新能源汽车", "特斯拉",
			"智驾", "rivian", "lucid", "理想", "蔚来", "小鹏", "比亚迪",
		}},
		Low: KeywordTier{Weight: 1, Keywords: []string{
			"update", "release", "new", "report", "trend", "ai", "model", "模型", "发布",
		}},
		Signature: KeywordTier{Weight: 200, Keywords: []string{
			"seedance", "即梦", "jimeng",
		}},
	}
}

// keywordMatcher tests one keyword against lowercase text. Phrases and
// longer keywords match by substring containment (so "gpt-5" fires inside
// "gpt-5o"); very short single words match on word boundaries, which keeps
// "ai" from firing inside "said" or "openai".
type keywordMatcher struct {
	keyword string
	re      *regexp.Regexp // set only for the short-word case
}

func newKeywordMatcher(k string) keywordMatcher {
	if !strings.Contains(k, " ") && len(k) <= 3 {
		return keywordMatcher{keyword: k, re: regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`)}
	}
	return keywordMatcher{keyword: k}
}

func (km keywordMatcher) matches(lower string) bool {
	if km.re != nil {
		return km.re.MatchString(lower)
	}
	return strings.Contains(lower, km.keyword)
}

// Scorer assigns a relevance score to free text. It is a pure function of
// the text and the configured tables: no time, no history, no other items.
type Scorer struct {
	tiers     []scoredTier
	signature scoredTier
}

type scoredTier struct {
	weight   int
	matchers []keywordMatcher
}

func compileTier(t KeywordTier) scoredTier {
	st := scoredTier{weight: t.Weight, matchers: make([]keywordMatcher, 0, len(t.Keywords))}
	for _, k := range t.Keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		st.matchers = append(st.matchers, newKeywordMatcher(k))
	}
	return st
}

func NewScorer(cfg KeywordConfig) *Scorer {
	s := &Scorer{signature: compileTier(cfg.Signature)}
	for _, tier := range []KeywordTier{cfg.Critical, cfg.High, cfg.Medium, cfg.Auto, cfg.Low} {
		s.tiers = append(s.tiers, compileTier(tier))
	}
	return s
}

// Score sums the weight of every tier keyword found in the text, plus the
// flat signature bonus if any signature term appears.
func (s *Scorer) Score(text string) int {
	lower := strings.ToLower(text)

	score := 0
	for _, tier := range s.tiers {
		for _, m := range tier.matchers {
			if m.matches(lower) {
				score += tier.weight
			}
		}
	}
	for _, m := range s.signature.matchers {
		if m.matches(lower) {
			score += s.signature.weight
			break
		}
	}
	return score
}
