package src

// demo is one ready-made project idea shown in the demo picker.
type demo struct {
	title      string
	desc       string
	complexity string
	prompt     string
}

func (d demo) Title() string       { return d.title }
func (d demo) Description() string { return d.complexity + " · " + d.desc }
func (d demo) FilterValue() string { return d.title }

// Demos returns the built-in project catalog, simple first.
func Demos() []demo {
	return []demo{
		{
			title:      "Calculator",
			desc:       "Command line calculator with the four basic operations",
			complexity: "Simple",
			prompt:     "Create a simple command line calculator that supports addition, subtraction, multiplication and division with input validation",
		},
		{
			title:      "Todo List",
			desc:       "Task manager with add, complete and list commands",
			complexity: "Simple",
			prompt:     "Create a todo list manager where users can add tasks, mark them complete, list pending tasks and delete tasks, persisting to a JSON file",
		},
		{
			title:      "Password Generator",
			desc:       "Configurable secure password generator",
			complexity: "Simple",
			prompt:     "Create a password generator that produces secure random passwords with configurable length and character classes, plus a strength estimate",
		},
		{
			title:      "Unit Converter",
			desc:       "Converts length, weight and temperature units",
			complexity: "Medium",
			prompt:     "Create a unit converter supporting length, weight and temperature conversions with an interactive menu and input validation",
		},
		{
			title:      "Expense Tracker",
			desc:       "Personal expense log with category summaries",
			complexity: "Medium",
			prompt:     "Create an expense tracker where users record expenses with amount, category and date, and view monthly summaries per category, persisting to a JSON file",
		},
		{
			title:      "Quiz Game",
			desc:       "Multiple choice quiz with scoring",
			complexity: "Medium",
			prompt:     "Create a multiple choice quiz game that loads questions, shuffles answers, tracks the score and shows a final result with percentage",
		},
		{
			title:      "Weather CLI",
			desc:       "Fetches and formats weather data from an HTTP API",
			complexity: "Advanced",
			prompt:     "Create a weather client that fetches current conditions for a city from an HTTP JSON API, caches recent lookups and prints a formatted report",
		},
		{
			title:      "URL Shortener",
			desc:       "HTTP service mapping short codes to URLs",
			complexity: "Advanced",
			prompt:     "Create a URL shortener HTTP service that issues short codes for submitted URLs, redirects on lookup and keeps hit counts, persisting mappings to disk",
		},
	}
}
