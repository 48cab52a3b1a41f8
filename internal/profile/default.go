package profile

// Default returns the built-in profile served when no profile file is
// configured.
func Default() *Profile {
	return &Profile{
		Name: "Zach Kordas-Potter",
		Links: Links{
			Email:  "zachkordaspotter@gmail.com",
			GitHub: "https://github.com/Zachkp",
		},
		Education: Education{
			School: "Western Governors University",
			Degree: "Bachelor of Computer Science",
			Years:  "Sept 2019 – May 2023",
		},
		HeroChips: []string{
			"<strong>Go</strong> · Gin · HTMX",
			"<strong>TUI</strong> tools for the terminal",
			"<strong>ML</strong> recommendations",
		},
		Focus: []string{
			"Building software that is both useful and fun.",
			"Learning how things work behind the scenes, one side project at a time.",
			"Exploring new languages and tools by shipping small, complete apps.",
		},
		LikesBuilding: []string{
			"Terminal apps with fuzzy finding and keyboard-first navigation.",
			"Server-rendered sites that stay fast without a heavy frontend framework.",
			"Data-driven tools that turn reviews and ratings into recommendations.",
		},
		Experience: []Experience{
			{
				Title:   "Presentation Expert · Target",
				Years:   "Aug 2023 – Present",
				Tagline: "Merchandising transitions on tight timelines",
				Bullets: []string{
					"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities.",
					"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams.",
					"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally.",
				},
			},
			{
				Title:   "Manager · Jason's Catered Events",
				Years:   "Aug 2016 – Present",
				Tagline: "Events, menus and the tech that keeps them running",
				Bullets: []string{
					"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met.",
					"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems, reducing technical delays.",
					"Maintained supply inventory and coordinated timely delivery between venues, optimizing resource allocation and minimizing downtime.",
				},
			},
		},
		Projects: []Project{
			{
				ID:      "mail-tui",
				Name:    "Terminal Email Client",
				Tag:     "Go · TUI",
				Summary: "A terminal-based email client with fuzzy finding, built on the Charmbracelet TUI framework and go-imap.",
				Tech:    []string{"Go", "Bubble Tea", "go-imap", "Fuzzy finder"},
				Bullets: []string{
					"Browses and reads IMAP mailboxes without leaving the terminal.",
					"Fuzzy search across folders and messages.",
					"Keyboard-first layout built from composable TUI components.",
				},
			},
			{
				ID:      "music-tui",
				Name:    "Terminal Music Streamer",
				Tag:     "Go · TUI",
				Summary: "A terminal music streaming app that drives yt-dlp and mpv for YouTube Music playback from the command line.",
				Tech:    []string{"Go", "yt-dlp", "mpv", "TUI"},
				Bullets: []string{
					"Searches YouTube Music and queues tracks from a TUI.",
					"Streams audio through mpv with playback controls.",
					"Keeps the interface responsive while external processes run.",
				},
			},
			{
				ID:      "game-recs",
				Name:    "Game Recommender",
				Tag:     "Python · ML",
				Summary: "A web app that recommends games using TF-IDF vectorization and cosine similarity over game content.",
				Tech:    []string{"Python", "scikit-learn", "TF-IDF", "Data viz"},
				Bullets: []string{
					"Content-based recommendations from TF-IDF vectors and cosine similarity.",
					"Interactive visualizations of the recommendation space.",
					"Real-time filtering by user reviews and ratings.",
				},
			},
			{
				ID:      "portfolio",
				Name:    "This Portfolio",
				Tag:     "Go · Gin · WebAssembly",
				Summary: "A responsive portfolio served by Go and Gin, with its interactions compiled from Go to WebAssembly.",
				Tech:    []string{"Go", "Gin", "WebAssembly", "ebiten", "CSS"},
				Bullets: []string{
					"Server-rendered page built from a single profile file.",
					"Particle background and scroll effects written in Go.",
					"Honors the reduced-motion preference everywhere.",
				},
			},
		},
		Skills: []SkillGroup{
			{Label: "Languages", Hint: "core", Items: []string{"Go", "Python", "JavaScript", "SQL", "HTML", "CSS"}},
			{Label: "Web", Hint: "server", Items: []string{"Gin", "HTMX", "Tailwind CSS", "Alpine.js"}},
			{Label: "Terminal", Hint: "tui", Items: []string{"Bubble Tea", "Lip Gloss", "Cobra"}},
			{Label: "Data", Hint: "ml", Items: []string{"scikit-learn", "pandas", "SQLite"}},
			{Label: "Tools", Hint: "workflow", Items: []string{"Git", "GitHub", "Docker", "Linux"}},
		},
		Achievements: []string{
			"Graduated Magna Cum Laude with a 3.8 GPA.",
			"CompTIA Project+ certified in agile project management.",
			"Senior project: machine learning recommendation system.",
		},
	}
}
