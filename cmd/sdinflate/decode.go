package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/flatecore/sdeflate/inflate"
	"github.com/flatecore/sdeflate/runconfig"
	"github.com/flatecore/sdeflate/stop"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func newDecodeCommand() *cobra.Command {
	var bufSize runconfig.SizeFlag
	_ = bufSize.Set("16Mi")
	var watch bool

	cmd := &cobra.Command{
		Use:   "decode [files...]",
		Short: "decode one or more raw DEFLATE files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandGlobs(args)
			if err != nil {
				return err
			}
			if watch {
				return watchAndDecode(paths, bufSize.Bytes())
			}
			return decodeAll(paths, bufSize.Bytes())
		},
	}

	cmd.Flags().Var(&bufSize, "out-size", "output buffer capacity, e.g. 16Mi")
	cmd.Flags().BoolVar(&watch, "watch", false, "keep running and re-decode files as they change")
	return cmd
}

func expandGlobs(args []string) ([]string, error) {
	var out []string
	for _, a := range args {
		if a == "-" || !strings.ContainsAny(a, "*?[") {
			out = append(out, a)
			continue
		}
		matches, err := doublestar.FilepathGlob(a)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", a, err)
		}
		out = append(out, matches...)
	}
	return out, nil
}

func decodeAll(paths []string, outCap int) error {
	var failed bool
	for _, p := range paths {
		if err := decodeOne(p, outCap); err != nil {
			fmt.Printf("%s  %s: %v\n", failStyle.Render("FAILED"), p, err)
			failed = true
			continue
		}
		fmt.Printf("%s  %s\n", okStyle.Render("OK"), p)
	}
	if failed {
		return fmt.Errorf("one or more files failed to decode")
	}
	return nil
}

func decodeOne(path string, outCap int) error {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	out := make([]byte, outCap)
	n, status := inflate.Decompress(in, out)
	if status != inflate.DecompressionFinished {
		log.Failure(status, n)
		return status.Err()
	}
	log.Infof("decoded %s: %d bytes", path, n)

	if path == "-" {
		_, err := os.Stdout.Write(out[:n])
		return err
	}
	return ioutil.WriteFile(path+".out", out[:n], 0o644)
}

// watchAndDecode polls the given paths for modification-time changes and
// re-decodes each one as it's touched, running every decode in its own
// goroutine registered in a stop.Group. SIGINT/SIGTERM trigger group.Stop,
// which tells every goroutine not yet started to skip its decode and waits
// for whatever is already in flight to finish before returning — the same
// Stoppable coordination pattern the teacher repo used for its long-running
// processes, now actually wired to a signal handler instead of a single
// decorative entry.
func watchAndDecode(paths []string, outCap int) error {
	group := stop.NewGroup()
	mtimes := make(map[string]time.Time)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-sigc:
			<-group.Stop()
			return nil
		case <-ticker.C:
			for _, p := range paths {
				fi, err := os.Stat(p)
				if err != nil {
					continue
				}
				if mtimes[p].Equal(fi.ModTime()) {
					continue
				}
				mtimes[p] = fi.ModTime()
				startDecodeWorker(group, p, outCap)
			}
		}
	}
}

// startDecodeWorker spawns one decode goroutine and registers it with group
// as a Stoppable: calling its StopperFunc asks the goroutine to bail out if
// it hasn't started its decode yet, and returns a channel that closes once
// the goroutine has actually exited, so group.Stop() can block until every
// in-flight decode is done.
func startDecodeWorker(group *stop.Group, path string, outCap int) {
	abort := make(chan struct{})
	done := make(chan struct{})

	group.AddFunc(func() <-chan struct{} {
		close(abort)
		return done
	})

	go func() {
		defer close(done)

		select {
		case <-abort:
			return
		default:
		}

		if err := decodeOne(path, outCap); err != nil {
			fmt.Printf("%s  %s: %v\n", failStyle.Render("FAILED"), path, err)
			return
		}
		fmt.Printf("%s  %s\n", okStyle.Render("OK"), path)
	}()
}
