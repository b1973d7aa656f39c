package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/runoshun/launchpad/internal/app"
	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/usecase"
	"github.com/spf13/cobra"
)

// newLaunchProcessCommand creates the launch-process command.
func newLaunchProcessCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Spec string
		Exe  string
		Cwd  string
		Args []string
	}

	cmd := &cobra.Command{
		Use:   "launch-process",
		Short: "Start a detached process",
		Long: `Start a process and return as soon as the OS has created it.

The child's stdin, stdout and stderr are connected to the null device.
launchpad does not wait for the child, keep a handle to it, or report its PID.

The process is described either by a JSON record or by flags:

  {"exe": "ping", "args": ["-c", "1", "127.0.0.1"], "cwd": null}

Examples:
  # Launch from a JSON record
  launchpad launch-process --spec '{"exe":"xdg-open","args":["https://example.com"]}'

  # Read the record from stdin
  echo '{"exe":"mgba-qt","args":["/roms/a.gba"]}' | launchpad launch-process --spec -

  # Launch with flags
  launchpad launch-process --exe ping --arg -c --arg 1 --arg 127.0.0.1 --cwd /tmp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var spec domain.LaunchSpec
			switch {
			case opts.Spec != "" && (opts.Exe != "" || len(opts.Args) > 0 || opts.Cwd != ""):
				return errors.New("--spec cannot be combined with --exe, --arg or --cwd")
			case opts.Spec == "-":
				s, err := decodeLaunchSpec(cmd.InOrStdin())
				if err != nil {
					return err
				}
				spec = s
			case opts.Spec != "":
				s, err := decodeLaunchSpec(strings.NewReader(opts.Spec))
				if err != nil {
					return err
				}
				spec = s
			case cmd.Flags().Changed("exe"):
				spec = domain.LaunchSpec{Exe: opts.Exe, Args: opts.Args, Cwd: opts.Cwd}
			default:
				return errors.New("either --spec or --exe is required")
			}

			return c.LaunchProcessUseCase().Execute(cmd.Context(), usecase.LaunchProcessInput{Spec: spec})
		},
	}

	cmd.Flags().StringVar(&opts.Spec, "spec", "", `Launch spec as JSON, or "-" to read it from stdin`)
	cmd.Flags().StringVar(&opts.Exe, "exe", "", "Executable path or name resolved via PATH")
	cmd.Flags().StringArrayVar(&opts.Args, "arg", nil, "Argument passed to the executable (repeatable)")
	cmd.Flags().StringVar(&opts.Cwd, "cwd", "", "Working directory of the child (default: inherit)")

	return cmd
}

// decodeLaunchSpec reads a single JSON launch spec.
func decodeLaunchSpec(r io.Reader) (domain.LaunchSpec, error) {
	var spec domain.LaunchSpec
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&spec); err != nil {
		return domain.LaunchSpec{}, fmt.Errorf("parse launch spec: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return domain.LaunchSpec{}, errors.New("parse launch spec: unexpected data after the JSON object")
	}
	return spec, nil
}

// newIsProcessRunningCommand creates the is-process-running command.
func newIsProcessRunningCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "is-process-running <pid>",
		Short: "Report whether a process is running",
		Long: `Report whether a process is running, printing true or false.

No process registry is kept, so this currently always prints false.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid pid %q: %w", args[0], err)
			}

			out, err := c.IsProcessRunningUseCase().Execute(cmd.Context(), usecase.IsProcessRunningInput{PID: pid})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(out.Running))
			return nil
		},
	}
}
