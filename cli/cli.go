package cli

import (
	"fmt"
	"strings"

	"showcase/version"

	"github.com/chzyer/readline"
)

// CLI is the interactive HTTP-client shell for a running Showcase server.
type CLI struct {
	rl      *readline.Instance
	running bool
	client  *Client
}

// New creates a CLI instance connected to serverURL.
func New(serverURL string) (*CLI, error) {
	client := NewClient(serverURL)

	// Test connectivity
	if err := client.HealthCheck(); err != nil {
		return nil, fmt.Errorf("cannot connect to server: %v", err)
	}

	// Create readline instance; ignore Ctrl+C
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %v", err)
	}

	return &CLI{
		rl:      rl,
		running: true,
		client:  client,
	}, nil
}

// Start runs the CLI loop
func (c *CLI) Start() {
	defer c.rl.Close()
	c.printWelcome()

	for c.running {
		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println("\nCtrl+C detected. Use 'exit' or 'quit' to leave.")
				continue
			}
			// EOF or other error; exit
			break
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		c.handleCommand(input)
	}
}

// printWelcome prints initial banner
func (c *CLI) printWelcome() {
	PrintBanner("Showcase - CLI Mode (HTTP Client)")
	fmt.Printf("\nConnected to: %s\n", c.client.baseURL)
	fmt.Println("Type 'help' for available commands")
}

// handleCommand routes user commands
func (c *CLI) handleCommand(input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "h", "?":
		c.showHelp()
	case "settings", "set":
		c.handleSettingsCommand(args)
	case "health":
		c.handleHealthCommand()
	case "errors":
		c.handleErrorsCommand()
	case "version":
		fmt.Println(version.GetFullVersion())
	case "clear":
		fmt.Print("\033[2J\033[H")
	case "exit", "quit", "q":
		c.running = false
	default:
		fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}
}

// showHelp prints available commands
func (c *CLI) showHelp() {
	fmt.Println()
	PrintBanner("Available Commands")
	fmt.Println()

	commands := [][]string{
		{"help, h, ?", "Show this help message"},
		{"", ""},
		{"SETTINGS:", ""},
		{"settings show", "Show the current checkbox value and table rows"},
		{"settings set <true|false>", "Persist a new checkbox value"},
		{"", ""},
		{"SYSTEM:", ""},
		{"health", "Show server health"},
		{"errors", "Show recent server error logs"},
		{"version", "Show CLI version"},
		{"clear", "Clear screen"},
		{"exit, quit, q", "Exit the program"},
	}

	for _, cmd := range commands {
		if len(cmd) == 2 && cmd[0] != "" {
			fmt.Printf("  %-30s %s\n", cmd[0], cmd[1])
		} else {
			fmt.Println()
		}
	}
}

// handleSettingsCommand handles settings-related commands
func (c *CLI) handleSettingsCommand(args []string) {
	if len(args) == 0 {
		args = []string{"show"}
	}

	switch args[0] {
	case "show", "get", "list", "ls":
		page, err := c.client.GetSettings()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Table:        %s\n", page.SettingsTableName)
		fmt.Printf("DB available: %v\n", page.DBAvailable)
		fmt.Printf("Checkbox:     %v\n", page.IsChecked)
		if page.Error != "" {
			fmt.Printf("Error:        %s\n", page.Error)
		}

		if len(page.AllSettings) == 0 {
			fmt.Println("(no rows)")
			return
		}

		fmt.Printf("\n  %-24s %-10s %s\n", "KEY", "VALUE", "UPDATED_AT")
		for _, row := range page.AllSettings {
			fmt.Printf("  %-24s %-10s %d\n", row.Key, row.Value, row.UpdatedAt)
		}
	case "set":
		if len(args) < 2 || (args[1] != "true" && args[1] != "false") {
			fmt.Println("Usage: settings set <true|false>")
			return
		}

		result, err := c.client.UpdateSettings(args[1] == "true")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Saved. Checkbox is now %v (%d row(s) in table)\n", result.IsChecked, len(result.AllSettings))
	default:
		fmt.Println("Usage: settings <show|set> [args]")
	}
}

// handleHealthCommand prints server health
func (c *CLI) handleHealthCommand() {
	health, err := c.client.GetHealth()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	for _, key := range []string{"status", "db_healthy", "gallery_sessions"} {
		if value, ok := health[key]; ok {
			fmt.Printf("  %-18s %v\n", key+":", value)
		}
	}
}

// handleErrorsCommand prints recent server error logs
func (c *CLI) handleErrorsCommand() {
	logs, err := c.client.GetErrorLogs()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if len(logs) == 0 {
		fmt.Println("No error logs")
		return
	}

	for _, entry := range logs {
		fmt.Printf("  [%s] %s %s: %s\n", entry.Timestamp.Format("15:04:05"), entry.Level, entry.Source, entry.Message)
		if entry.Detail != "" {
			fmt.Printf("      %s\n", entry.Detail)
		}
	}
}
