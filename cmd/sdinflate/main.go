// Command sdinflate decodes raw DEFLATE streams using the stateless inflate
// package: read the whole compressed input into memory, size one output
// buffer, make exactly one call, write the result. It plays the role the
// zran/gzran pair played for the streaming decoder in the teacher repo, but
// matched to what a stateless, one-shot core actually allows.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flatecore/sdeflate/dlog"
)

var log = dlog.New("github.com/flatecore/sdeflate/cmd/sdinflate")

func main() {
	dlog.SetupSink(func() dlog.Formatter {
		return dlog.NewTextFormatter(os.Stderr, true)
	})

	root := &cobra.Command{
		Use:   "sdinflate",
		Short: "decode raw DEFLATE streams with a stateless, buffer-in/buffer-out decoder",
	}

	root.AddCommand(newDecodeCommand())
	root.AddCommand(newVerifyCommand())

	if err := root.Execute(); err != nil {
		log.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
