// events.go holds the static event/company table the pipeline starts
// from. Row order here fixes row order everywhere downstream.
package pipeline

// EventCompany is one target company spotted at an industry event.
type EventCompany struct {
	Event     string
	Company   string
	Industry  string
	Website   string
	Rationale string
}

// EventData returns the curated event/company list.
func EventData() []EventCompany {
	return []EventCompany{
		{
			Event:     "FESPA",
			Company:   "3M",
			Industry:  "Commercial Graphics & Films",
			Website:   "https://www.3m.com",
			Rationale: "Global leader in advanced vinyls and protective films with alignment to Tedlar signage use cases.",
		},
		{
			Event:     "ISASign Expo",
			Company:   "Avery Dennison",
			Industry:  "Graphics & Signage",
			Website:   "https://graphics.averydennison.com",
			Rationale: "Dominant player in pressure-sensitive materials and architectural signage, with direct Tedlar overlap.",
		},
		{
			Event:     "Tape Week",
			Company:   "Flexcon",
			Industry:  "Adhesive Films & Industrial Graphics",
			Website:   "https://www.flexcon.com",
			Rationale: "Specializes in durable, printable films with clear synergy to protective signage applications.",
		},
		{
			Event:     "FESPA",
			Company:   "Arlon Graphics",
			Industry:  "Vehicle Wraps & Signage",
			Website:   "https://www.arlon.com",
			Rationale: "Focus on high-end performance wraps and flexible signage products overlaps with Tedlar value props.",
		},
		{
			Event:     "ISASign Expo",
			Company:   "Orafol",
			Industry:  "Adhesive Vinyls & Signage",
			Website:   "https://www.orafol.com",
			Rationale: "Known for weather-resistant graphic solutions across automotive and architectural signage.",
		},
		{
			Event:     "Printing United",
			Company:   "Nekoosa",
			Industry:  "Print Media & Sign Materials",
			Website:   "https://www.nekoosa.com",
			Rationale: "Offers specialty print substrates and signage products with shared use cases as Tedlar.",
		},
		{
			Event:     "Craig-Hallum Alpha Select Conference",
			Company:   "LSI Industries",
			Industry:  "Lighting & Signage Solutions",
			Website:   "https://www.lsicorp.com",
			Rationale: "Manufacturer of illuminated signage systems in commercial, retail and petroleum markets.",
		},
	}
}
