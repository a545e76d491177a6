package services

// skillCatalogEntry pairs a normalized transaction key with its radar
// axis label.
type skillCatalogEntry struct {
	key   string
	label string
}

// The two hand-curated skill catalogs. Their order fixes the radar axis
// order; it is a product decision, not something inferred from data.

var technicalSkills = []skillCatalogEntry{
	{"prog", "Elementary programming"},
	{"front-end", "Front-end"},
	{"algo", "Elementary algorithms"},
	{"back-end", "Back-end"},
	{"tcp", "TCP/IP"},
	{"stats", "Statistics"},
	{"ai", "AI"},
	{"game", "Game programming"},
	{"sys-admin", "System administration"},
	{"blockchain", "Blockchain"},
	{"mobile-dev", "Mobile development"},
	{"cybersecurity", "Cybersecurity"},
	{"cloud", "Cloud"},
}

var technologySkills = []skillCatalogEntry{
	{"go", "Go"},
	{"js", "JS"},
	{"html", "HTML"},
	{"c", "C"},
	{"sql", "SQL"},
	{"css", "CSS"},
	{"unix", "Unix"},
	{"docker", "Docker"},
	{"rust", "Rust"},
	{"java", "Java"},
	{"shell", "Shell"},
	{"php", "PHP"},
	{"python", "Python"},
	{"ruby", "Ruby"},
	{"c++", "C++"},
	{"graphql", "GraphQL"},
	{"ruby-on-rails", "Ruby on Rails"},
	{"laravel", "Laravel"},
	{"django", "Django"},
	{"electron", "Electron"},
	{"git", "Git"},
}
