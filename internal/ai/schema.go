package ai

// Schema is the subset of the OpenAPI schema language accepted by the
// generateContent structured-output API. It exists so the report schema
// can be declared once, in Go, and serialized into the request.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

const (
	typeObject = "OBJECT"
	typeArray  = "ARRAY"
	typeString = "STRING"
	typeNumber = "NUMBER"
)

func str(desc string) *Schema { return &Schema{Type: typeString, Description: desc} }
func num(desc string) *Schema { return &Schema{Type: typeNumber, Description: desc} }
func strEnum(vals ...string) *Schema {
	return &Schema{Type: typeString, Enum: vals}
}

// ReportSchema returns the declared structure of an audit report, passed to
// the fallback provider as a structured-output constraint. Field names and
// enum literals must stay in lock-step with the report package.
func ReportSchema() *Schema {
	return &Schema{
		Type: typeObject,
		Properties: map[string]*Schema{
			"overallScore": num("Overall score from 0 to 100."),
			"summary":      str("Executive summary."),
			"pageDetails": {
				Type: typeObject,
				Properties: map[string]*Schema{
					"title":       str("The detected <title> of the page. If not found, infer a likely title."),
					"description": str("The meta description or first major paragraph found."),
					"previewText": str("A short, representative snippet of visible text from the page content (approx 15-20 words) to prove we scanned it."),
				},
				Required: []string{"title", "description", "previewText"},
			},
			"researchBrief": {
				Type: typeObject,
				Properties: map[string]*Schema{
					"title": str("A punchy, intelligence-style header (e.g., 'Intelligence Brief', 'Recon Report')."),
					"bullets": {
						Type:        typeArray,
						Items:       str(""),
						Description: "3-4 punchy, direct, and slightly witty observations about the site's niche, vibe, or obvious flaws. Be direct.",
					},
				},
				Required: []string{"title", "bullets"},
			},
			"conversionAdvice": {
				Type:  typeArray,
				Items: str(""),
			},
			"seoRankings": {
				Type: typeArray,
				Items: &Schema{
					Type: typeObject,
					Properties: map[string]*Schema{
						"keyword":  str("The search term"),
						"position": num("Estimated Google Rank (1-100)"),
						"volume":   str("Monthly search volume (e.g. '2.4k')"),
						"intent":   strEnum("Informational", "Transactional", "Navigational", "Commercial"),
					},
				},
				Description: "Estimated top 5 keywords this site ranks for.",
			},
			"competitors": {
				Type: typeArray,
				Items: &Schema{
					Type: typeObject,
					Properties: map[string]*Schema{
						"name":           str(""),
						"strength":       str(""),
						"estimatedScore": num(""),
					},
				},
			},
			"campaigns": {
				Type: typeArray,
				Items: &Schema{
					Type: typeObject,
					Properties: map[string]*Schema{
						"name":        str("Catchy name for the campaign"),
						"description": str("What is the campaign about?"),
						"platforms": {
							Type:        typeArray,
							Items:       str(""),
							Description: "Where to launch (e.g. LinkedIn, Instagram, Google Ads)",
						},
						"targetAudience": str("Specific persona targeting"),
						"adHook":         str("A catchy ad headline or copy snippet"),
						"adType":         str("The format of the ad (e.g. 'User Generated Video', 'Carousel', 'Search Text', 'Retargeting Display')"),
						"reasoning":      str("Why this ad type and platform works for this specific business context."),
					},
				},
			},
			"adIntelligence": {
				Type: typeObject,
				Properties: map[string]*Schema{
					"status":   strEnum("High Ad Potential", "Organic Focus", "Missed Opportunity"),
					"analysis": str("Analysis of their current ad posture or recommended ad strategy."),
				},
			},
			"categories": {
				Type: typeArray,
				Items: &Schema{
					Type: typeObject,
					Properties: map[string]*Schema{
						"name":        str(""),
						"score":       num(""),
						"description": str(""),
						"metrics": {
							Type: typeArray,
							Items: &Schema{
								Type: typeObject,
								Properties: map[string]*Schema{
									"name":   str(""),
									"value":  str(""),
									"status": str(""),
								},
							},
							Description: "Include exactly 6 metrics: Largest Contentful Paint (LCP), Cumulative Layout Shift (CLS), Interaction to Next Paint (INP), First Contentful Paint (FCP), Time to First Byte (TTFB), and Speed Index. Status must be 'Good', 'Needs Improvement', or 'Poor'.",
						},
						"issues": {
							Type: typeArray,
							Items: &Schema{
								Type: typeObject,
								Properties: map[string]*Schema{
									"severity":       str(""),
									"message":        str(""),
									"recommendation": str(""),
								},
							},
						},
					},
					Required: []string{"name", "score", "description", "issues"},
				},
			},
		},
		Required: []string{
			"overallScore", "summary", "pageDetails", "researchBrief", "categories",
			"conversionAdvice", "competitors", "campaigns", "adIntelligence", "seoRankings",
		},
	}
}
