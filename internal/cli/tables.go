package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"

	"github.com/dshills/sheetdiff/internal/remote"
)

// writeListing renders a listing as a table in text or markdown, and rows
// itself in JSON.
func writeListing(w io.Writer, format string, rows any, header table.Row, body []table.Row) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshaling JSON")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "markdown", "md":
		tw := newTable(header, body)
		_, err := fmt.Fprintln(w, tw.RenderMarkdown())
		return err
	default:
		if len(body) == 0 {
			_, err := fmt.Fprintln(w, "Nothing to show.")
			return err
		}
		tw := newTable(header, body)
		tw.SetStyle(table.StyleLight)
		_, err := fmt.Fprintln(w, tw.Render())
		return err
	}
}

func newTable(header table.Row, body []table.Row) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(header)
	tw.AppendRows(body)
	return tw
}

func commitRows(commits []remote.Commit) []table.Row {
	rows := make([]table.Row, 0, len(commits))
	for _, c := range commits {
		rows = append(rows, table.Row{shortSHA(c.SHA), relativeTime(c.Date), c.Author, firstLine(c.Message)})
	}
	return rows
}

func pullRequestRows(prs []remote.PullRequest) []table.Row {
	rows := make([]table.Row, 0, len(prs))
	for _, pr := range prs {
		rows = append(rows, table.Row{fmt.Sprintf("#%d", pr.Number), pr.Title, pr.User, pr.State, relativeTime(pr.CreatedAt)})
	}
	return rows
}

func collaboratorRows(cs []remote.Collaborator) []table.Row {
	rows := make([]table.Row, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, table.Row{c.Login})
	}
	return rows
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

// relativeTime renders an RFC 3339 timestamp as "3 days ago". Anything else
// is returned unchanged.
func relativeTime(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return humanize.Time(t)
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
