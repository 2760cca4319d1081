package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"fieldservice/internal/domain/entity"
	"fieldservice/internal/util"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

const timeLayout = "2006-01-02 15:04"

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		}).
		Headers(headers...)
}

func renderOrders(w io.Writer, orders []*entity.Order, now time.Time) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders")

		return
	}

	t := newTable("ID", "Technician", "Status", "Created", "Expires")
	for _, o := range orders {
		t.Row(
			o.IDString(),
			o.TechnicianName,
			string(o.Status),
			o.CreatedAt.Local().Format(timeLayout),
			util.FormatExpiry(o.ExpiresAt, now),
		)
	}
	fmt.Fprintln(w, t.String())
}

func renderOrder(w io.Writer, o *entity.Order, now time.Time) {
	fmt.Fprintln(w, titleStyle.Render("Order "+o.IDString()))
	fmt.Fprintf(w, "UUID:       %s\n", o.UUID)
	fmt.Fprintf(w, "Technician: %s (%d)\n", o.TechnicianName, o.TechnicianID)
	fmt.Fprintf(w, "Status:     %s\n", o.Status)
	fmt.Fprintf(w, "Created:    %s\n", o.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintf(w, "Expires:    %s\n", util.FormatExpiry(o.ExpiresAt, now))
	if o.ClosedAt != nil {
		fmt.Fprintf(w, "Closed:     %s\n", o.ClosedAt.Local().Format(timeLayout))
	}
	if o.ClosingReason != "" {
		fmt.Fprintf(w, "Reason:     %s\n", o.ClosingReason)
	}
	if o.ClosingNotes != "" {
		fmt.Fprintf(w, "Notes:      %s\n", o.ClosingNotes)
	}

	if len(o.Evidences) == 0 {
		return
	}
	t := newTable("Kind", "File", "SHA-256", "Created")
	for _, e := range o.Evidences {
		t.Row(string(e.Kind), e.File, e.FileHash, e.CreatedAt.Local().Format(timeLayout))
	}
	fmt.Fprintln(w, t.String())
}

// renderStats prints both aggregate counts and the status and technician
// breakdowns, each closed by its total.
func renderStats(w io.Writer, stats *entity.Stats) {
	fmt.Fprintf(w, "Total orders:    %d\n", stats.TotalOrders)
	fmt.Fprintf(w, "Total evidences: %d\n", stats.TotalEvidences)

	fmt.Fprintln(w, titleStyle.Render("By status"))
	fmt.Fprintln(w, breakdownTable("Status", stats.StatusBreakdown(), stats.StatusTotal()).String())

	fmt.Fprintln(w, titleStyle.Render("By technician"))
	fmt.Fprintln(w, breakdownTable("Technician", stats.TechnicianBreakdown(), stats.TechnicianTotal()).String())

	if total := stats.StatusTotal(); total != stats.TotalOrders {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("warning: status counts add up to %d, not %d", total, stats.TotalOrders)))
	}
}

func breakdownTable(label string, rows []entity.Count, total int) *table.Table {
	t := newTable(label, "Orders")
	for _, row := range rows {
		t.Row(row.Key, strconv.Itoa(row.Value))
	}
	t.Row("Total", strconv.Itoa(total))

	return t
}

func renderUsers(w io.Writer, users []*entity.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users")

		return
	}

	t := newTable("ID", "Username", "Name", "Email", "Role", "Active")
	for _, u := range users {
		t.Row(
			strconv.FormatInt(u.ID, 10),
			u.Username,
			u.DisplayName(),
			u.Email,
			u.Role.String(),
			yesNo(u.IsActive),
		)
	}
	fmt.Fprintln(w, t.String())
}

func renderAudits(w io.Writer, audits []*entity.AuditEntry) {
	if len(audits) == 0 {
		fmt.Fprintln(w, "No audit entries")

		return
	}

	t := newTable("ID", "Action", "Admin", "Created")
	for _, a := range audits {
		t.Row(
			strconv.FormatInt(a.ID, 10),
			a.Action,
			string(a.Admin),
			a.CreatedAt.Local().Format(timeLayout),
		)
	}
	fmt.Fprintln(w, t.String())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
