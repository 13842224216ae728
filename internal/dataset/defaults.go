package dataset

// Default returns the toilet paper consumption story: rolls per capita
// per year for the nine largest consumers, with lifetime miles as the
// hover metric.
func Default() *Story {
	return &Story{
		Title: "Toilet paper consumption per capita",
		Categories: []CategoryCount{
			{Name: "US", Count: 141},
			{Name: "Germany", Count: 134},
			{Name: "UK", Count: 127},
			{Name: "Japan", Count: 91},
			{Name: "Australia", Count: 88},
			{Name: "Spain", Count: 81},
			{Name: "France", Count: 71},
			{Name: "Italy", Count: 70},
			{Name: "China", Count: 49},
		},
		Colors: map[string]string{
			"US":        "#ef3f5d",
			"Germany":   "#00aaa9",
			"UK":        "#fcf001",
			"Japan":     "#75d1f3",
			"Australia": "#ed0477",
			"Spain":     "#84bc41",
			"France":    "#01954e",
			"Italy":     "#ffc60e",
			"China":     "#ec6aa0",
		},
		Metrics: map[string]float64{
			"US":        633.78,
			"Germany":   623.4,
			"UK":        590.04,
			"Japan":     439.64,
			"Australia": 419.7,
			"Spain":     386.54,
			"France":    335.35,
			"Italy":     334.13,
			"China":     215.68,
		},
		MetricUnit: "miles",
		Unit:       DefaultUnit,
		Highlight:  "US",
		Neutral:    DefaultNeutral,
		Symbol:     DefaultSymbol,
		Captions: map[string][]string{
			"slide1": {
				"The {{.Highlight}} is taking a lead on toilet paper consumption per capita",
				"(The num of square represents the relative rankings between countries)",
			},
			"slide2": {
				"If each square represents a roll, the {{.Highlight}} uses {{.HighlightCount}} {{.Unit}} per capita per year",
				"(Hover over to see miles of toilet paper usage per capita in lifetime)",
			},
			"slide3": {
				"And the {{.Highlight}} represents {{.Percent}}% of the top {{.Categories}} countries",
				"(Hover over to see num of toilet paper usage per capita per year)",
			},
			"slide4": {
				"If 1 square represents 250k trees",
			},
			"slide5": {
				"Then the {{.Highlight}} needs 31,114,249 trees per year for toilet papers",
			},
		},
	}
}
