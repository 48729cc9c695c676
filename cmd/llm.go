package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/miguel/internal/llm"
	"github.com/abhisek/miguel/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the story generation requests sent to the LLM",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		events, err := e.store.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		return printEvents(cmd.OutOrStdout(), events, purpose)
	},
}

func printEvents(w io.Writer, events []store.LLMEvent, purpose string) error {
	var rows [][]string
	for _, ev := range events {
		if purpose != "" && ev.Purpose != purpose {
			continue
		}
		ok := "✓"
		if !ev.Success {
			ok = "✗"
		}
		rows = append(rows, []string{
			strconv.Itoa(ev.ID),
			ev.Timestamp.Local().Format(timeLayout),
			ev.Purpose,
			truncate(ev.Model, 28),
			strconv.Itoa(ev.InputTokens),
			strconv.Itoa(ev.OutputTokens),
			strconv.FormatInt(ev.LatencyMs, 10),
			ok,
		})
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No LLM requests recorded.")
		return err
	}
	return printTable(w, []string{"ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK"}, rows)
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full prompt and answer of one request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		ev, err := e.store.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if ev == nil {
			return fmt.Errorf("request %d: %w", id, store.ErrNotFound)
		}
		printEvent(cmd.OutOrStdout(), ev)
		return nil
	},
}

func printEvent(w io.Writer, ev *store.LLMEvent) {
	fields := [][2]string{
		{"ID", strconv.Itoa(ev.ID)},
		{"Time", ev.Timestamp.Local().Format(timeLayout)},
		{"Provider", ev.Provider},
		{"Model", ev.Model},
		{"Purpose", ev.Purpose},
		{"Tokens", fmt.Sprintf("%d in / %d out", ev.InputTokens, ev.OutputTokens)},
		{"Latency", fmt.Sprintf("%dms", ev.LatencyMs)},
		{"Success", strconv.FormatBool(ev.Success)},
	}
	if ev.ErrorMessage != "" {
		fields = append(fields, [2]string{"Error", ev.ErrorMessage})
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%-9s %s\n", f[0]+":", f[1])
	}

	rule := strings.Repeat("─", 60)
	for _, sec := range [][2]string{{"REQUEST", ev.RequestBody}, {"RESPONSE", ev.ResponseBody}} {
		body := sec[1]
		if body == "" {
			body = "(not captured)"
		}
		fmt.Fprintf(w, "\n%s\n%s\n%s\n%s\n", rule, sec[0], rule, strings.TrimRight(body, "\n"))
	}
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		byPurpose, err := e.store.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		byModel, err := e.store.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		return printStats(cmd.OutOrStdout(), byPurpose, byModel)
	},
}

func printStats(w io.Writer, byPurpose []store.UsageByPurpose, byModel []store.UsageByModel) error {
	if len(byPurpose) == 0 {
		_, err := fmt.Fprintln(w, "No LLM usage recorded yet.")
		return err
	}

	var calls, in, out int
	rows := make([][]string, 0, len(byPurpose)+1)
	for _, u := range byPurpose {
		rows = append(rows, []string{u.Purpose, strconv.Itoa(u.Calls), strconv.Itoa(u.InputTokens),
			strconv.Itoa(u.OutputTokens), strconv.FormatInt(u.AvgLatencyMs, 10)})
		calls, in, out = calls+u.Calls, in+u.InputTokens, out+u.OutputTokens
	}
	rows = append(rows, []string{"TOTAL", strconv.Itoa(calls), strconv.Itoa(in), strconv.Itoa(out), ""})
	fmt.Fprintln(w, "Usage by purpose")
	if err := printTable(w, []string{"Purpose", "Calls", "Input", "Output", "Avg ms"}, rows); err != nil {
		return err
	}

	if len(byModel) == 0 {
		return nil
	}
	var total float64
	var unpriced []string
	rows = rows[:0]
	for _, u := range byModel {
		cost := "?"
		if c := llm.LookupCost(u.Model); c != nil {
			usd := c.Cost(u.InputTokens, u.OutputTokens)
			total += usd
			cost = formatCost(usd)
		} else {
			unpriced = append(unpriced, u.Model)
		}
		rows = append(rows, []string{truncate(u.Model, 32), strconv.Itoa(u.Calls),
			strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens), cost})
	}
	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	rows = append(rows, []string{label, "", "", "", formatCost(total)})

	fmt.Fprintln(w, "\nEstimated cost (USD)")
	if err := printTable(w, []string{"Model", "Calls", "Input", "Output", "Cost"}, rows); err != nil {
		return err
	}
	if len(unpriced) > 0 {
		fmt.Fprintf(w, "No pricing for: %s\n", strings.Join(unpriced, ", "))
	}
	return nil
}

func printTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose (story, devotional, image-prompt)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
