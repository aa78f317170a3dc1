package main

// CLI defines the command-line interface.
type CLI struct {
	Input       string `arg:"" help:"Path to the input JSON file containing search results."`
	Output      string `short:"o" help:"Path to the output JSON file (default: <input>_cleaned.json)."`
	MaxChars    int    `default:"10000" help:"Maximum characters to keep per result."`
	MaxTokens   int    `default:"5000" help:"Approximate maximum tokens to keep per result."`
	Concurrency int    `default:"4" help:"Number of results processed concurrently."`
	DB          string `help:"Optional SQLite database path for archiving the run."`
	Verbose     bool   `short:"v" help:"Enable debug logging."`
}
