package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/otov4its/pysnake/game"
)

// Parents that keep their window open after we exit.
var shellParents = map[string]bool{
	"bash":                  true,
	"zsh":                   true,
	"sh":                    true,
	"fish":                  true,
	"gnome-terminal-server": true,
	"konsole":               true,
	"xterm":                 true,
	"tmux":                  true,
}

var windowsShellParents = map[string]bool{
	"powershell.exe": true,
	"pwsh.exe":       true,
	"cmd.exe":        true,
	"wt.exe":         true,
}

// launchedFromShell reports whether the parent process is a shell or
// terminal. Unknown parents count as not a shell.
func launchedFromShell() bool {
	parent, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return false
	}
	name, err := parent.Name()
	if err != nil {
		return false
	}
	name = strings.ToLower(name)
	if runtime.GOOS == "windows" {
		return windowsShellParents[name]
	}
	return shellParents[name]
}

// pauseBeforeExit keeps a double-clicked window open long enough to read
// the error.
func pauseBeforeExit() {
	if launchedFromShell() {
		return
	}
	fmt.Println()
	color.Yellow("Press Enter to exit...")
	_, _ = bufio.NewReader(os.Stdin).ReadBytes('\n')
}

var summaryBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("2")).
	Padding(0, 1)

func summary(s game.Stats) string {
	p := message.NewPrinter(language.English)
	return summaryBox.Render(p.Sprintf("Games:  %d\nWins:   %d\nLosses: %d\nBest:   %d",
		s.Games, s.Wins, s.Losses, s.BestScore))
}

func printSummary(s game.Stats) {
	fmt.Println(summary(s))
}
