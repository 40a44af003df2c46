package controllers

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
)

const columnGap = "  "

//nolint:gochecknoglobals // read-only styles
var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	upToDateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	outdatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
)

// writeTable aligns cells on their visible width, so styled cells line up.
func writeTable(out io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	styled := make([]string, len(headers))
	for i, header := range headers {
		styled[i] = headerStyle.Render(header)
	}
	writeRow(out, styled, widths)
	for _, row := range rows {
		writeRow(out, row, widths)
	}
}

func writeRow(out io.Writer, cells []string, widths []int) {
	var line strings.Builder
	for i, cell := range cells {
		if i > 0 {
			line.WriteString(columnGap)
		}
		line.WriteString(cell)
		if i < len(cells)-1 {
			line.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
		}
	}
	_, _ = fmt.Fprintln(out, line.String())
}

func renderRepositories(out io.Writer, repos []entities.Repository) {
	if len(repos) == 0 {
		_, _ = fmt.Fprintln(out, mutedStyle.Render("No repositories yet."))
		return
	}

	rows := make([][]string, 0, len(repos))
	for _, repo := range repos {
		rows = append(rows, []string{
			repo.ID.String(), repo.Name, repo.Branch, repo.Type, repo.LastCheck(), repo.DependencyRatio(),
		})
	}
	writeTable(out, []string{"ID", "NAME", "BRANCH", "TYPE", "LAST CHECK", "UP TO DATE"}, rows)
}

func renderReport(out io.Writer, report entities.RepositoryReport) {
	if repo := report.Repository; repo != nil {
		_, _ = fmt.Fprintln(out, titleStyle.Render(repo.Name))
		_, _ = fmt.Fprintf(out, "Branch:     %s\n", repo.Branch)
		_, _ = fmt.Fprintf(out, "Type:       %s\n", repo.Type)
		_, _ = fmt.Fprintf(out, "Username:   %s\n", repo.Username)
		_, _ = fmt.Fprintf(out, "Last check: %s\n", repo.LastCheck())
		if browse := repo.BrowseURL(); browse != "" {
			_, _ = fmt.Fprintf(out, "Github:     %s\n", browse)
		}
		_, _ = fmt.Fprintln(out)
	}

	if len(report.Dependencies) == 0 {
		_, _ = fmt.Fprintln(out, mutedStyle.Render("No dependencies reported."))
		return
	}

	rows := make([][]string, 0, len(report.Dependencies))
	for _, dep := range report.Dependencies {
		status := upToDateStyle.Render(dep.Status())
		if !dep.UpToDate() {
			status = outdatedStyle.Render(dep.Status())
		}
		rows = append(rows, []string{
			dep.Name, status, dep.CurrentVersion(), dep.LatestVersion(), dep.UpgradeKind(),
		})
	}
	writeTable(out, []string{"NAME", "STATUS", "CURRENT", "LATEST", "UPGRADE"}, rows)
	_, _ = fmt.Fprintf(out, "\n%d of %d dependencies outdated\n", report.OutdatedCount(), len(report.Dependencies))
}
