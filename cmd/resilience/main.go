package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"resilience/internal/answers"
	"resilience/internal/assess"
	"resilience/internal/export"
	"resilience/internal/feedback"
	"resilience/internal/logs"
	"resilience/internal/report"
	"resilience/internal/server"
	"resilience/internal/session"
	"resilience/internal/settings"
	"resilience/internal/wizard"
)

// env carries what every command needs. Tests swap the writers.
type env struct {
	stdout io.Writer
	log    *slog.Logger
	cfg    *settings.Settings
	now    func() time.Time
	// interactive reports whether the wizard can take over the terminal.
	interactive func() bool
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// command describes a CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	long  string
	run   func(e *env, args []string) error
}

var commands = []command{
	{
		name:  "assess",
		short: "Run the interactive assessment wizard",
		usage: "resilience assess",
		long: `Walk through the four assessment phases in the terminal:
Governance & Scope, Logging & Monitoring, ICT Third-Party Risk and
Incident & Resilience. Each answer shows immediate feedback and each phase
shows a running score. The results screen can save the report bundle to
the configured output directory (output.dir, default "reports").
`,
		run: runAssess,
	},
	{
		name:  "score",
		short: "Score an answers file and print the report",
		usage: "resilience score <answers.yaml> [outdir]",
		long: `Read a YAML mapping of question id to answer, assess it and print the
text report. With [outdir], also write the report bundle there:
the .txt report, the .csv export, summary.md, per-domain pages and
answers.yaml.

Run 'resilience questions' for the question ids and options.
`,
		run: runScore,
	},
	{
		name:  "feedback",
		short: "Show the feedback for one answer",
		usage: "resilience feedback <question> <answer>",
		long: `Print the status, message and advice the wizard shows for answering
<question> with <answer>.
`,
		run: runFeedback,
	},
	{
		name:  "questions",
		short: "List the questionnaire",
		usage: "resilience questions [phase]",
		long: `List every question with its id and options. [phase] limits the list to
one of: governance, logging, third_party, incident.
`,
		run: runQuestions,
	},
	{
		name:  "serve",
		short: "Start the HTTP service",
		usage: "resilience serve",
		long: `Serve the assessment over HTTP on server.addr (default 127.0.0.1:8085,
override with RESILIENCE_ADDR). Sessions live in memory and are evicted
after server.session_ttl of inactivity. Metrics are exposed on /metrics.
`,
		run: runServe,
	},
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "resilience — EU NIS2 / DORA digital resilience self-assessment\n\n")
	fmt.Fprintf(w, "Usage:\n  resilience <command> [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'resilience help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s", cmd.usage, cmd.long)
			return
		}
	}
	fmt.Fprintf(w, "resilience: unknown command %q\n\nRun 'resilience help' for usage.\n", name)
}

func dispatch(e *env, args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		printUsage(e.stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			printCommandHelp(e.stdout, args[1])
		} else {
			printUsage(e.stdout)
		}
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(e, args[1:])
		}
	}
	return fmt.Errorf("unknown command %q\n\nRun 'resilience help' for usage.", args[0])
}

// ---------------------------------------------------------------------------
// assess
// ---------------------------------------------------------------------------

func runAssess(e *env, args []string) error {
	if e.interactive != nil && !e.interactive() {
		return fmt.Errorf("assess needs an interactive terminal\n\nUse 'resilience score <answers.yaml>' to assess an answers file.")
	}
	out, err := wizard.Run(wizard.Options{OutputDir: e.cfg.OutputDir(), Now: e.now})
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}
	if !out.Finished {
		e.log.Info("assessment not finished", "answered", out.Answers.Len())
		return nil
	}
	fmt.Fprintf(e.stdout, "Total score: %d/100, risk level %s\n", out.Result.Total, out.Result.Tier)
	for _, p := range out.Saved {
		fmt.Fprintf(e.stdout, "  wrote %s\n", p)
	}
	return nil
}

// ---------------------------------------------------------------------------
// score
// ---------------------------------------------------------------------------

func runScore(e *env, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: resilience score <answers.yaml> [outdir]")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read answers: %w", err)
	}
	a, err := answers.ParseYAML(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	res := assess.Assess(a)
	meta := report.MetaFrom(a, e.now())
	fmt.Fprint(e.stdout, report.Text(res, meta))

	if len(args) < 2 {
		return nil
	}
	bundle, err := export.Generate(res, a, meta)
	if err != nil {
		return err
	}
	written, err := export.Write(bundle, args[1])
	if err != nil {
		return err
	}
	e.log.Info("report bundle written", "dir", args[1], "files", len(written))
	return nil
}

// ---------------------------------------------------------------------------
// feedback
// ---------------------------------------------------------------------------

var statusStyles = map[feedback.SeverityKind]lipgloss.Style{
	feedback.Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	feedback.Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	feedback.Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	feedback.Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
}

func runFeedback(e *env, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: resilience feedback <question> <answer>")
	}
	q, ok := answers.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown question %q\n\nRun 'resilience questions' for the list.", args[0])
	}
	answer := strings.Join(args[1:], " ")
	rec := feedback.Lookup(q.ID, answer)

	style := statusStyles[rec.Status.Severity().Kind]
	fmt.Fprintf(e.stdout, "%s: %s\n", q.Label, answer)
	fmt.Fprintf(e.stdout, "%s %s\n", style.Render(strings.ToUpper(string(rec.Status))), rec.Message)
	if rec.Advice != "" {
		fmt.Fprintf(e.stdout, "\n%s\n", rec.Advice)
	}
	if level, text := feedback.Hint(q, answer); level != feedback.HintNone {
		fmt.Fprintf(e.stdout, "\n%s\n", text)
	}
	return nil
}

// ---------------------------------------------------------------------------
// questions
// ---------------------------------------------------------------------------

func runQuestions(e *env, args []string) error {
	phases := answers.Phases
	if len(args) >= 1 {
		var p answers.Phase
		if err := p.UnmarshalText([]byte(args[0])); err != nil || !p.IsInput() {
			return fmt.Errorf("usage: resilience questions [governance|logging|third_party|incident]")
		}
		phases = []answers.Phase{p}
	}

	for _, p := range phases {
		if !p.IsInput() {
			continue
		}
		fmt.Fprintf(e.stdout, "%s\n", p.Title())
		for _, q := range answers.Catalog() {
			if q.Phase != p {
				continue
			}
			var notes []string
			if q.Kind == answers.Multi {
				notes = append(notes, "multi-select")
			}
			if q.CloudOnly {
				notes = append(notes, "asked when cloud services are used")
			}
			fmt.Fprintf(e.stdout, "  %s — %s", q.ID, q.Label)
			if len(notes) > 0 {
				fmt.Fprintf(e.stdout, " (%s)", strings.Join(notes, ", "))
			}
			fmt.Fprintln(e.stdout)
			for i, o := range q.Options {
				mark := " "
				if q.Kind == answers.Single && i == q.DefaultIndex() {
					mark = "*"
				}
				fmt.Fprintf(e.stdout, "    %s %s\n", mark, o)
			}
		}
		fmt.Fprintln(e.stdout)
	}
	return nil
}

// ---------------------------------------------------------------------------
// serve
// ---------------------------------------------------------------------------

func runServe(e *env, args []string) error {
	srv, err := server.New(server.Options{
		Store:     session.NewStore(e.cfg.SessionTTL()),
		Logger:    e.log,
		Now:       e.now,
		RateLimit: e.cfg.RateLimit(),
		RateBurst: e.cfg.RateBurst(),
	})
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx, e.cfg)
}

// loadSettings reads .resilience/settings.yaml from the working directory
// and applies environment overrides.
func loadSettings() (*settings.Settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	s, err := settings.LoadSettings(wd)
	if err != nil {
		return nil, err
	}
	return s.WithEnv(os.LookupEnv), nil
}

func main() {
	cfg, cfgErr := loadSettings()
	level, levelErr := logs.ParseLevel(cfg.LogLevel())
	logger := logs.New(os.Stderr, level)
	if cfgErr != nil {
		logger.Error("load settings", "error", cfgErr)
		os.Exit(1)
	}
	if levelErr != nil {
		logger.Warn("falling back to info logging", "error", levelErr)
	}

	e := &env{
		stdout:      os.Stdout,
		log:         logger,
		cfg:         cfg,
		now:         time.Now,
		interactive: stdinIsTerminal,
	}
	if err := dispatch(e, os.Args[1:]); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
