// seeds.go maps each target company to its hand-researched contacts.
package pipeline

// Seed is one hand-researched person at a target company.
type Seed struct {
	Name        string
	Title       string
	LinkedInURL string
}

var companyContacts = map[string][]Seed{
	"Avery Dennison": {
		{
			Name:        "Joshua Yelverton",
			Title:       "Regional Manager at Avery Dennison Graphics Solutions",
			LinkedInURL: "https://www.linkedin.com/in/joshua-yelverton-48158b92/",
		},
		{
			Name:        "Grant Bertoson",
			Title:       "Regional Manager at Avery Dennison Graphics Solutions",
			LinkedInURL: "https://www.linkedin.com/in/grantbertoson/",
		},
	},
	"3M Commercial Graphics": {
		{
			Name:        "Christine Neutgens",
			Title:       "Creative Lead - Graphics at 3M",
			LinkedInURL: "https://www.linkedin.com/in/christine-neutgens-3713198/",
		},
		{
			Name:        "Eric Malmberg",
			Title:       "Senior Account Executive Commercial Graphics",
			LinkedInURL: "https://www.linkedin.com/in/ericvmalmberg/",
		},
		{
			Name:        "Jon Mansheim",
			Title:       "3M Global Portfolio Director - Graphics",
			LinkedInURL: "https://www.linkedin.com/in/jon-mansheim-2017911/",
		},
	},
	"Orafol": {
		{
			Name:        "Tim Bennett",
			Title:       "Managing Director - ORAFOL Canada Inc.",
			LinkedInURL: "https://www.linkedin.com/in/tim-bennett-59b54a17/",
		},
		{
			Name:        "Dr. Sefan Pfirrmann",
			Title:       "R&D Director Graphic Innovations bei ORAFOL Europe GmbH",
			LinkedInURL: "https://www.linkedin.com/in/dr-stefan-pfirrmann-ab875567/",
		},
		{
			Name:        "Stephen Kampa",
			Title:       "Executive Leadership | Business Development | Growing Sales in Asia",
			LinkedInURL: "https://www.linkedin.com/in/stephenkampa/",
		},
	},
	"Arlon Graphics": {
		{
			Name:        "Michelle Gunning",
			Title:       "Vice President - EMEA and Global Growth",
			LinkedInURL: "https://www.linkedin.com/in/michellegunning/",
		},
		{
			Name:        "Rebecca Chen",
			Title:       "Global Product Management, Director",
			LinkedInURL: "https://www.linkedin.com/in/rebecca-chen-2b84a6126/",
		},
		{
			Name:        "Jeff Goh",
			Title:       "President Asia Pacific Arlon Graphics",
			LinkedInURL: "https://www.linkedin.com/in/jeffgohceo/",
		},
	},
	"Flexcon": {
		{
			Name:        "Michael Romanelli",
			Title:       "Vice President, Innovation & Technology",
			LinkedInURL: "https://www.linkedin.com/in/mdromanelli/",
		},
		{
			Name:        "Kevin Haughey",
			Title:       "Sales Director, Central and West at Flexcon",
			LinkedInURL: "https://www.linkedin.com/in/kevin-haughey-1b972a6/",
		},
		{
			Name:        "Jordan Smith",
			Title:       "Growth Strategy, Sr. Manager",
			LinkedInURL: "https://www.linkedin.com/in/jordansmithflexcon/",
		},
	},
	"Nekoosa": {
		{
			Name:        "Scott Bell",
			Title:       "Business Development Manager at Nekoosa",
			LinkedInURL: "https://www.linkedin.com/in/scott-bell-1334807/",
		},
		{
			Name:        "Mike Bluell",
			Title:       "Director Of Operations at Nekoosa",
			LinkedInURL: "https://www.linkedin.com/in/mike-bluell-70628517/",
		},
		{
			Name:        "Bryan Baab",
			Title:       "Product Development Manager - Wide Format Graphics at Nekoosa",
			LinkedInURL: "https://www.linkedin.com/in/bryan-baab-74487a10/",
		},
	},
	"LSI Industries": {
		{
			Name:        "Michael Prachar",
			Title:       "Chief Marketing Officer",
			LinkedInURL: "https://www.linkedin.com/in/michaelapracharexecutive/",
		},
		{
			Name:        "Nicole Stella",
			Title:       "Vice President of Sales, National Accounts at LSI",
			LinkedInURL: "https://www.linkedin.com/in/nicole-stella-27a6656/",
		},
	},
}
