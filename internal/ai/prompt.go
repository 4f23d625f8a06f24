package ai

import (
	"fmt"
	"strings"

	"github.com/HarshDhiman001/site-plus/internal/report"
)

// maxSnippetLen bounds the code snippet embedded in a CODE prompt so the
// request stays within provider limits.
const maxSnippetLen = 20000

const urlPromptTmpl = `Analyze this URL: %s.
TARGET REGION: %s.

Context: Act as a senior website auditor for the %s market.
1. Adjust Compliance checks (e.g., if Region is California check CCPA, if UK check GDPR/Cookie Laws).
2. Adjust SEO Keyword estimation for %s Google Search results.
3. Adjust Competitor analysis for local %s businesses if applicable.
4. CRITICAL: Mimic the extraction of the real page title, meta description, and a snippet of content to prove to the user you actually analyzed the site.
5. STYLE: Provide a direct and factual research brief. Be punchy and use bullet points to convey complex insights quickly.
6. PERFORMANCE: Estimate 6 Core Web Vital metrics (LCP, CLS, INP, FCP, TTFB, Speed Index).

Return a JSON object following this schema:
{
  overallScore: number,
  summary: string,
  pageDetails: { title: string, description: string, previewText: string },
  researchBrief: { title: string, bullets: string[] },
  conversionAdvice: string[],
  seoRankings: { keyword: string, position: number, volume: string, intent: 'Informational' | 'Transactional' | 'Navigational' | 'Commercial' }[],
  competitors: { name: string, strength: string, estimatedScore: number }[],
  campaigns: { name: string, description: string, platforms: string[], targetAudience: string, adHook: string, adType: string, reasoning: string }[],
  adIntelligence: { status: "High Ad Potential" | "Organic Focus" | "Missed Opportunity", analysis: string },
  categories: { name: string, score: number, description: string, metrics: { name: string, value: string, status: string }[], issues: { severity: string, message: string, recommendation: string }[] }[]
}`

const codePromptTmpl = `Analyze this code snippet:
%s

Target Region: %s.

Return a JSON object with a website audit including a research brief and Performance metrics. Follow the standard audit JSON schema.`

// BuildPrompt constructs the analysis instruction for the given input.
// pageContext, when non-empty, is real fetched page content appended to a
// URL prompt so the model's page details rest on actual text rather than
// guesswork. CODE snippets are hard-truncated to maxSnippetLen characters.
func BuildPrompt(content string, kind report.AnalysisKind, region string, pageContext string) string {
	if kind == report.KindCode {
		return fmt.Sprintf(codePromptTmpl, truncate(content, maxSnippetLen), region)
	}

	prompt := fmt.Sprintf(urlPromptTmpl, content, region, region, region, region)
	if pageContext != "" {
		var b strings.Builder
		b.WriteString(prompt)
		b.WriteString("\n\nFETCHED PAGE CONTENT (use this as ground truth for pageDetails and previewText):\n")
		b.WriteString(pageContext)
		return b.String()
	}
	return prompt
}

// truncate returns the first n characters of s, never splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
