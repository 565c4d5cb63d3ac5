package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dshills/sheetdiff/internal/cache"
	"github.com/dshills/sheetdiff/internal/config"
	"github.com/dshills/sheetdiff/internal/remote"
)

var (
	flagSearch    string
	flagComment   string
	flagMessage   string
	flagApprovers []string
)

// changeSource wraps api with the change cache when it is enabled.
func changeSource(cfg config.Config, api remote.Source, logger *slog.Logger) (remote.Source, error) {
	c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		return nil, errors.Wrap(err, "opening cache")
	}
	return remote.NewCachedSource(api, c, logger), nil
}

func parsePRNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.Wrapf(errUsage, "invalid PR number %q", s)
	}
	return n, nil
}

var commitsCmd = &cobra.Command{
	Use:   "commits",
	Short: "List the commit history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return fail(cmd, err)
		}
		commits, err := newAPI(cfg, logger).Commits(context.Background(), flagSearch)
		if err != nil {
			return fail(cmd, err)
		}
		header := table.Row{"SHA", "When", "Author", "Message"}
		if err := writeListing(cmd.OutOrStdout(), cfg.Format, commits, header, commitRows(commits)); err != nil {
			return fail(cmd, err)
		}
		return nil
	},
}

var commitCmd = &cobra.Command{
	Use:   "commit <sha>",
	Short: "Preview the changes of a commit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return fail(cmd, err)
		}
		ctx := context.Background()
		api := newAPI(cfg, logger)

		if cfg.Format == "text" {
			details, err := api.Commit(ctx, args[0])
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "commit %s\nAuthor: %s\nDate:   %s\n\n    %s\n\n",
				details.SHA, details.Author, relativeTime(details.Date), details.Message)
		}

		src, err := changeSource(cfg, api, logger)
		if err != nil {
			return fail(cmd, err)
		}
		raw, err := src.CommitChanges(ctx, args[0])
		if err != nil {
			return fail(cmd, err)
		}
		return renderChanges(cmd, cfg, logger, raw)
	},
}

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List pull requests awaiting your approval",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listPullRequests(cmd, remote.API.PendingApprovals)
	},
}

var sentCmd = &cobra.Command{
	Use:   "sent",
	Short: "List pull requests you sent for approval",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listPullRequests(cmd, remote.API.SentApprovals)
	},
}

func listPullRequests(cmd *cobra.Command, list func(remote.API, context.Context) ([]remote.PullRequest, error)) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return fail(cmd, err)
	}
	prs, err := list(newAPI(cfg, logger), context.Background())
	if err != nil {
		return fail(cmd, err)
	}
	header := table.Row{"PR", "Title", "Author", "State", "Opened"}
	if err := writeListing(cmd.OutOrStdout(), cfg.Format, prs, header, pullRequestRows(prs)); err != nil {
		return fail(cmd, err)
	}
	return nil
}

var prCmd = &cobra.Command{
	Use:   "pr <number>",
	Short: "Preview the changes proposed by a pull request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parsePRNumber(args[0])
		if err != nil {
			return fail(cmd, err)
		}
		cfg, logger, err := setup(cmd)
		if err != nil {
			return fail(cmd, err)
		}
		src, err := changeSource(cfg, newAPI(cfg, logger), logger)
		if err != nil {
			return fail(cmd, err)
		}
		raw, err := src.PRChanges(context.Background(), n)
		if err != nil {
			return fail(cmd, err)
		}
		return renderChanges(cmd, cfg, logger, raw)
	},
}

var approveCmd = &cobra.Command{
	Use:   "approve <number>",
	Short: "Approve and merge a pull request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decide(cmd, args[0], remote.API.Approve)
	},
}

var rejectCmd = &cobra.Command{
	Use:   "reject <number>",
	Short: "Reject and close a pull request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decide(cmd, args[0], remote.API.Reject)
	},
}

func decide(cmd *cobra.Command, arg string, call func(remote.API, context.Context, int, string) (*remote.Decision, error)) error {
	n, err := parsePRNumber(arg)
	if err != nil {
		return fail(cmd, err)
	}
	cfg, logger, err := setup(cmd)
	if err != nil {
		return fail(cmd, err)
	}
	d, err := call(newAPI(cfg, logger), context.Background(), n, flagComment)
	if err != nil {
		return fail(cmd, err)
	}
	if cfg.Format == "json" {
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return fail(cmd, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "PR #%d: %s\n", n, d.Status)
	if d.Message != "" {
		fmt.Fprintln(cmd.OutOrStdout(), d.Message)
	}
	return nil
}

var collaboratorsCmd = &cobra.Command{
	Use:   "collaborators",
	Short: "List users who can approve uploads",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return fail(cmd, err)
		}
		cs, err := newAPI(cfg, logger).Collaborators(context.Background())
		if err != nil {
			return fail(cmd, err)
		}
		if err := writeListing(cmd.OutOrStdout(), cfg.Format, cs, table.Row{"Login"}, collaboratorRows(cs)); err != nil {
			return fail(cmd, err)
		}
		return nil
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload <files...>",
	Short: "Upload workbooks and request approval",
	Long:  "Upload one or more workbooks with a commit message and approvers, then preview the changes the backend detected.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return fail(cmd, err)
		}
		raw, err := newAPI(cfg, logger).Upload(context.Background(), remote.UploadRequest{
			Files:         args,
			CommitMessage: flagMessage,
			Approvers:     splitApprovers(flagApprovers),
		})
		if err != nil {
			return fail(cmd, err)
		}
		return renderChanges(cmd, cfg, logger, raw)
	},
}

// splitApprovers accepts both repeated flags and comma-separated lists.
func splitApprovers(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, splitComma(v)...)
	}
	return out
}

func splitComma(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func init() {
	commitsCmd.Flags().StringVar(&flagSearch, "search", "", "Only commits whose message contains this text")
	commitsCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, markdown, json)")
	pendingCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, markdown, json)")
	sentCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, markdown, json)")
	collaboratorsCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, markdown, json)")

	addViewFlags(commitCmd)
	addCacheFlag(commitCmd)
	addViewFlags(prCmd)
	addCacheFlag(prCmd)
	addViewFlags(uploadCmd)

	approveCmd.Flags().StringVar(&flagComment, "comment", "", "Comment to attach to the approval")
	approveCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
	rejectCmd.Flags().StringVar(&flagComment, "comment", "", "Reason for the rejection (required)")
	rejectCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")

	uploadCmd.Flags().StringVar(&flagMessage, "message", "", "Commit message")
	uploadCmd.Flags().StringArrayVar(&flagApprovers, "approver", nil, "Approver login (repeatable or comma-separated)")
}
