package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/loupe-ai/loupe/internal/agent"
	"github.com/loupe-ai/loupe/internal/provider"
	"github.com/loupe-ai/loupe/internal/search"
	"github.com/loupe-ai/loupe/internal/trace"
	"github.com/loupe-ai/loupe/tools"
)

type options struct {
	query    string
	model    string
	topN     int
	outfile  string
	maxTurns int
	debug    bool
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:           "loupe",
		Short:         "Research questions with a reasoning model and live web search.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "question to research")
	cmd.Flags().StringVarP(&opts.model, "model", "m", provider.DefaultOpenAIModel, "model to use (gpt-*, o*, or claude-*)")
	cmd.Flags().IntVarP(&opts.topN, "topn", "n", 10, "search results per query")
	cmd.Flags().StringVarP(&opts.outfile, "outfile", "o", "", "write the full JSON trace to this file")
	cmd.Flags().IntVar(&opts.maxTurns, "max-turns", 0, "cap on reasoning turns (0 = default)")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug output")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

// run resolves credentials from the environment and wires the agent.
// Nothing below this layer reads the environment for credentials.
func run(ctx context.Context, opts options) error {
	serpKey := os.Getenv("SERPAPI_API_KEY")
	if serpKey == "" {
		return errors.New("SERPAPI_API_KEY must be set")
	}

	reasoner, err := provider.FromModel(opts.model, os.Getenv("OPENAI_API_KEY"), os.Getenv("ANTHROPIC_API_KEY"))
	if err != nil {
		return err
	}

	defs := tools.Registry(search.New(serpKey), opts.topN)
	agentOpts := []agent.Option{agent.WithDebug(opts.debug)}
	if opts.maxTurns > 0 {
		agentOpts = append(agentOpts, agent.WithMaxTurns(opts.maxTurns))
	}
	a, err := agent.New(reasoner, defs, agentOpts...)
	if err != nil {
		return err
	}

	res, err := a.Run(ctx, opts.query)
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", 80)
	fmt.Println(rule)
	fmt.Println(res.Answer)
	fmt.Println(rule)

	if opts.outfile != "" {
		if err := trace.Save(opts.outfile, res); err != nil {
			return fmt.Errorf("save trace: %w", err)
		}
		fmt.Printf("Saved full trace -> %s\n", opts.outfile)
	}
	return nil
}

func main() {
	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM: cancel the run context.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		cancel()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
