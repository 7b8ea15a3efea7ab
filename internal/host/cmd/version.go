package cmd

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gamebot-io/gamebot/internal/buildinfo"
)

// Styles for host version output (matching CLI styles).
var (
	hStyleBrand   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#4752C4", Dark: "#5865F2"})
	hStyleVersion = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "40"})
	hStyleLabel   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "242", Dark: "240"})
	hStyleValue   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "15"})
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "  %s %s\n",
			hStyleBrand.Render("gamebotd"),
			hStyleVersion.Render(buildinfo.Version),
		)
		fmt.Fprintf(out, "    %s  %s\n", hStyleLabel.Render("Commit"), hStyleValue.Render(buildinfo.CommitHash))
		fmt.Fprintf(out, "    %s   %s\n", hStyleLabel.Render("Built"), hStyleValue.Render(buildinfo.BuildDate))
		fmt.Fprintf(out, "    %s %s\n", hStyleLabel.Render("OS/Arch"), hStyleValue.Render(runtime.GOOS+"/"+runtime.GOARCH))
		fmt.Fprintf(out, "    %s      %s\n", hStyleLabel.Render("Go"), hStyleValue.Render(runtime.Version()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
