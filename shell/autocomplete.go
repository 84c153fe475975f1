package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/halma/config"
	"github.com/domino14/halma/equity"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"new":      {Options: []string{"-first"}},
	"load":     {Options: []string{"-first"}},
	"search":   {Options: []string{"-depth", "-strategy"}},
	"autoplay": {Options: []string{"-rounds", "-games", "-threads", "-file"}},
	"set": {
		Args: []string{
			config.ConfigMaxDepth, config.ConfigRoundLimit, config.ConfigSearch,
			config.ConfigEvaluator1, config.ConfigEvaluator2, config.ConfigEvalCache,
			config.ConfigTablesFile, config.ConfigSeed, config.ConfigThreads,
			config.ConfigLogLevel,
		},
	},
	"help": {Args: []string{"search", "autoplay", "set"}},
}

var commandNames = []string{
	"help", "new", "load", "show", "gen", "search", "step", "autoplay",
	"analyze", "set", "exit",
}

var sideValues = []string{"black", "white"}
var strategyValues = []string{string(config.Minimax), string(config.AlphaBeta)}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		switch lastCompleteField {
		case "-first":
			completions = sideValues
		case "-strategy":
			completions = strategyValues
		}
		if cmdName == "set" && len(fields) >= 2 && lastCompleteField == fields[1] {
			switch fields[1] {
			case config.ConfigSearch:
				completions = strategyValues
			case config.ConfigEvaluator1, config.ConfigEvaluator2:
				completions = equity.Names
			case config.ConfigEvalCache:
				completions = []string{"true", "false"}
			case config.ConfigLogLevel:
				completions = []string{"none", "round", "all"}
			}
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else if len(fields) == 1 || (len(fields) == 2 && !endsWithSpace) {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
