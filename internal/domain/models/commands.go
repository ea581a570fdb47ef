package models

import "strings"

// CommandType enumerates supported console command categories.
type CommandType string

const (
	CommandDashboard   CommandType = "dashboard"
	CommandAnalytics   CommandType = "analytics"
	CommandReport      CommandType = "report"
	CommandSales       CommandType = "sales"
	CommandSupply      CommandType = "supply"
	CommandReturns     CommandType = "returns"
	CommandVarieties   CommandType = "varieties"
	CommandExpenses    CommandType = "expenses"
	CommandSalesperson CommandType = "salesperson"
	CommandSuppliers   CommandType = "suppliers"
	CommandStats       CommandType = "stats"
	CommandChat        CommandType = "chat"
	CommandHelp        CommandType = "help"
	CommandExit        CommandType = "exit"
	CommandUnknown     CommandType = "unknown"
)

// Command represents a parsed console instruction.
type Command struct {
	Type CommandType
	Raw  string
	Args []string
}

// ParseCommand derives a Command instance from one console input line. The
// head token is case-insensitive and may carry a leading slash; the
// remaining tokens keep their original casing (chat messages depend on it).
func ParseCommand(line string) Command {
	cmd := Command{Raw: line}

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		cmd.Type = CommandUnknown
		return cmd
	}

	head := strings.ToLower(strings.TrimPrefix(tokens[0], "/"))
	switch head {
	case string(CommandDashboard):
		cmd.Type = CommandDashboard
	case string(CommandAnalytics):
		cmd.Type = CommandAnalytics
	case string(CommandReport):
		cmd.Type = CommandReport
	case string(CommandSales):
		cmd.Type = CommandSales
	case string(CommandSupply):
		cmd.Type = CommandSupply
	case string(CommandReturns):
		cmd.Type = CommandReturns
	case string(CommandVarieties):
		cmd.Type = CommandVarieties
	case string(CommandExpenses):
		cmd.Type = CommandExpenses
	case string(CommandSalesperson):
		cmd.Type = CommandSalesperson
	case string(CommandSuppliers):
		cmd.Type = CommandSuppliers
	case string(CommandStats):
		cmd.Type = CommandStats
	case string(CommandChat):
		cmd.Type = CommandChat
	case string(CommandHelp):
		cmd.Type = CommandHelp
	case "exit", "quit":
		cmd.Type = CommandExit
	default:
		cmd.Type = CommandUnknown
	}

	if len(tokens) > 1 {
		cmd.Args = tokens[1:]
	}

	return cmd
}
