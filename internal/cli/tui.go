package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/latest-stack/pkg/catalog"
	"github.com/matzehuels/latest-stack/pkg/resolve"
	"github.com/matzehuels/latest-stack/pkg/versioncache"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listHeadingStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// =============================================================================
// Messages
// =============================================================================

// fetchedMsg carries the first versions of a load or a manual refresh.
type fetchedMsg struct {
	versions     resolve.VersionMap
	revalidating bool
}

// updatedMsg carries versions from a background revalidation that changed.
type updatedMsg struct {
	versions resolve.VersionMap
}

// revalidatedMsg reports that background revalidation finished.
type revalidatedMsg struct{}

type tickMsg time.Time

// =============================================================================
// DashboardModel - Live version table
// =============================================================================

// DashboardModel is the bubbletea model for the version dashboard.
type DashboardModel struct {
	Groups    []catalog.Group
	Versions  resolve.VersionMap
	Loading   bool
	Updating  bool
	UpdatedAt time.Time

	Cursor int
	Offset int
	Height int

	frame   int
	fetch   tea.Cmd
	refresh tea.Cmd
	updates <-chan resolve.VersionMap
}

// NewDashboardModel creates a dashboard for cat starting from state.
// fetch and refresh produce fetchedMsg; updates delivers background
// revalidation results and is closed when revalidation ends.
func NewDashboardModel(cat *catalog.Catalog, state versioncache.State, fetch, refresh tea.Cmd, updates <-chan resolve.VersionMap) DashboardModel {
	m := DashboardModel{
		Groups:   cat.Groups(),
		Versions: state.Versions,
		Loading:  state.IsLoading,
		Height:   20,
		fetch:    fetch,
		refresh:  refresh,
		updates:  updates,
	}
	if !state.IsLoading {
		m.UpdatedAt = time.Now()
	}
	return m
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.fetch, tick())
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < m.stackCount()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "r":
			if m.Loading || m.Updating || m.refresh == nil {
				return m, nil
			}
			m.Updating = true
			return m, tea.Batch(m.refresh, tick())
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	case fetchedMsg:
		m.Versions = msg.versions
		m.Loading = false
		m.Updating = msg.revalidating
		m.UpdatedAt = time.Now()
		if msg.revalidating {
			return m, waitForUpdate(m.updates)
		}
	case updatedMsg:
		m.Versions = msg.versions
		m.UpdatedAt = time.Now()
		return m, waitForUpdate(m.updates)
	case revalidatedMsg:
		m.Updating = false
	case tickMsg:
		if m.Loading || m.Updating {
			m.frame++
			return m, tick()
		}
	}
	return m, nil
}

func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Latest Stack"))
	b.WriteString("  ")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  r refresh  q quit"))
	b.WriteString("\n\n")

	rows := m.rows()
	end := m.Offset + m.Height
	if end > len(rows) {
		end = len(rows)
	}
	for _, line := range rows[min(m.Offset, end):end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if !m.Loading && !m.Versions.HasAny() {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render(advisory))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.stackCount())))
	return b.String()
}

func (m DashboardModel) status() string {
	spin := styleIconSpinner.Render(spinnerFrames[m.frame%len(spinnerFrames)])
	switch {
	case m.Loading:
		return spin + " " + listDimStyle.Render("Loading versions...")
	case m.Updating:
		return spin + " " + listDimStyle.Render("Checking for updates...")
	default:
		return listDimStyle.Render("Updated " + formatRelativeTime(m.UpdatedAt))
	}
}

// rows flattens groups into one line per stack, prefixing each group's
// first stack with its heading.
func (m DashboardModel) rows() []string {
	var lines []string
	i := 0
	for _, g := range m.Groups {
		for j, s := range g.Stacks {
			heading := ""
			if j == 0 {
				heading = g.Category.Title()
			}

			cursor := "  "
			style := listNormalStyle
			if i == m.Cursor {
				cursor = "▸ "
				style = listSelectedStyle
			}

			v := m.Versions[s.ID]
			version := styleVersion.Render(v)
			if v == "" {
				version = listDimStyle.Render(unknownVersion)
			}

			lines = append(lines, fmt.Sprintf("%s%s %s %s",
				listHeadingStyle.Render(fmt.Sprintf("%-10s", heading)),
				cursor,
				style.Render(fmt.Sprintf("%-24s", s.Name)),
				version))
			i++
		}
	}
	return lines
}

func (m DashboardModel) stackCount() int {
	n := 0
	for _, g := range m.Groups {
		n += len(g.Stacks)
	}
	return n
}

// =============================================================================
// Commands
// =============================================================================

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitForUpdate(updates <-chan resolve.VersionMap) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-updates
		if !ok {
			return revalidatedMsg{}
		}
		return updatedMsg{versions: v}
	}
}

// dashboardCommand creates the dashboard command.
func (c *CLI) dashboardCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive view of the latest versions",
		Long: `Show every stack in a live table. Cached versions appear immediately
and are replaced when a background check finds newer ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDashboard(cmd.Context(), noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "neither read nor write the version cache")

	return cmd
}

func (c *CLI) runDashboard(ctx context.Context, noCache bool) error {
	cat, err := c.loadCatalog()
	if err != nil {
		return err
	}

	m, closeCache := c.newManager(ctx, noCache)
	defer closeCache()

	updates := make(chan resolve.VersionMap, 1)
	state := m.Store().InitialState(ctx)
	fetch := dashboardFetch(ctx, m, cat.Stacks, state, updates)
	refresh := func() tea.Msg {
		return fetchedMsg{versions: m.Refresh(ctx, cat.Stacks)}
	}

	model := NewDashboardModel(cat, state, fetch, refresh, updates)
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// dashboardFetch runs the initial load. state is the snapshot the model
// started from; a warm one means Fetch revalidates in the background and
// updates is closed once that pass ends.
func dashboardFetch(ctx context.Context, m *versioncache.Manager, stacks []catalog.Stack, state versioncache.State, updates chan<- resolve.VersionMap) func() tea.Msg {
	return func() tea.Msg {
		v := m.Fetch(ctx, stacks, func(v resolve.VersionMap) { updates <- v })
		go func() {
			m.Wait()
			close(updates)
		}()
		return fetchedMsg{versions: v, revalidating: !state.IsLoading}
	}
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 15:04")
	}
}
