package skill

// DefaultCategories is the catalog installed on first run when no category exists.
// Keyword lists favor multi-letter terms; short keywords would be swallowed by the
// substring rule (e.g. "ux" inside "linux").
func DefaultCategories() []Category {
	return []Category{
		{
			Name:     "Frontend",
			Icon:     "web",
			Color:    "#42A5F5",
			Order:    1,
			Keywords: []string{"frontend", "html", "css", "javascript", "typescript", "react", "vue", "angular", "svelte", "next.js", "tailwind", "sass", "jquery", "webpack"},
		},
		{
			Name:     "Backend",
			Icon:     "dns",
			Color:    "#66BB6A",
			Order:    2,
			Keywords: []string{"backend", "node", "express", "java", "spring", "python", "django", "flask", "fastapi", "golang", "rust", "php", "laravel", "ruby", "rails", "c#", ".net", "rest api", "graphql", "microservices"},
		},
		{
			Name:     "Databases",
			Icon:     "storage",
			Color:    "#FFA726",
			Order:    3,
			Keywords: []string{"database", "sql", "mysql", "postgresql", "postgres", "mongodb", "redis", "sqlite", "oracle", "firebase", "firestore", "elasticsearch", "nosql", "dynamodb", "cassandra"},
		},
		{
			Name:     "DevOps & Cloud",
			Icon:     "cloud",
			Color:    "#26C6DA",
			Order:    4,
			Keywords: []string{"devops", "docker", "kubernetes", "k8s", "aws", "azure", "gcp", "google cloud", "terraform", "ansible", "jenkins", "ci/cd", "github actions", "linux", "helm", "cloud"},
		},
		{
			Name:     "Data Science & AI",
			Icon:     "psychology",
			Color:    "#AB47BC",
			Order:    5,
			Keywords: []string{"data science", "machine learning", "deep learning", "artificial intelligence", "tensorflow", "pytorch", "pandas", "numpy", "scikit-learn", "nlp", "computer vision", "data analysis", "statistics", "llm"},
		},
		{
			Name:     "Mobile",
			Icon:     "smartphone",
			Color:    "#EC407A",
			Order:    6,
			Keywords: []string{"mobile", "flutter", "dart", "swift", "swiftui", "kotlin", "android", "ios", "react native", "xamarin", "ionic", "jetpack compose"},
		},
		{
			Name:     "Design & UX",
			Icon:     "palette",
			Color:    "#FF7043",
			Order:    7,
			Keywords: []string{"design", "ux design", "ui design", "user experience", "user research", "figma", "sketch", "adobe xd", "photoshop", "illustrator", "prototyping", "wireframing"},
		},
	}
}
