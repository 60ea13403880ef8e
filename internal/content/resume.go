package content

// Entry is one row of the work or education timeline.
type Entry struct {
	Title        string
	Organization string
	Start        string
	End          string
	Highlights   []string
}

var Experience = []Entry{
	{
		Title:        "Presentation Expert",
		Organization: "Target",
		Start:        "Aug 2023",
		End:          "Present",
		Highlights: []string{
			"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
			"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
			"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally",
		},
	},
	{
		Title:        "Manager",
		Organization: "Jasons Catered Events",
		Start:        "Aug 2016",
		End:          "Present",
		Highlights: []string{
			"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met",
			"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems, reducing technical delays and improving communication",
			"Maintained supply inventory and coordinated timely delivery between venues, optimizing resource allocation and minimizing downtime.",
		},
	},
}

var Education = []Entry{
	{
		Title:        "Bachelor of Computer Science",
		Organization: "Western Governors University",
		Start:        "Sept 2019",
		End:          "May 2023",
		Highlights: []string{
			"Graduated Magna Cum Laude with 3.8 GPA",
			"Relevant coursework: Data Structures, Algorithms, Web Development",
			"Senior project: Machine Learning recommendation system",
		},
	},
	{
		Title:        "Project Management",
		Organization: "Comptia",
		Start:        "July 2022",
		End:          "Present",
		Highlights: []string{
			"Certified in agile project management methodology",
			"Verification code: SRRRPGBSWBRQCCDJ",
		},
	},
}
