package main

import (
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"

	"github.com/flatecore/sdeflate/digest"
	"github.com/flatecore/sdeflate/inflate"
	"github.com/flatecore/sdeflate/runconfig"
)

func newVerifyCommand() *cobra.Command {
	var bufSize runconfig.SizeFlag
	_ = bufSize.Set("16Mi")
	var hashAlg runconfig.HashAlgFlag

	cmd := &cobra.Command{
		Use:   "verify [files...]",
		Short: "decode files and report their status and, optionally, a digest",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandGlobs(args)
			if err != nil {
				return err
			}

			var failed bool
			for _, p := range paths {
				if err := verifyOne(p, bufSize.Bytes(), hashAlg.Alg()); err != nil {
					fmt.Printf("%s  %s: %v\n", failStyle.Render("FAILED"), p, err)
					failed = true
					continue
				}
			}
			if failed {
				return fmt.Errorf("one or more files failed verification")
			}
			return nil
		},
	}

	cmd.Flags().Var(&bufSize, "out-size", "output buffer capacity, e.g. 16Mi")
	cmd.Flags().Var(&hashAlg, "hash", "digest algorithm to print (blake2b, xxhash)")
	return cmd
}

func verifyOne(path string, outCap int, alg string) error {
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

	if alg == "" || alg == "none" {
		fmt.Printf("%s  %s (%d bytes)\n", okStyle.Render("OK"), path, n)
		return nil
	}

	sum, err := digest.Sum(alg, out[:n])
	if err != nil {
		return err
	}
	fmt.Printf("%s  %s  %s:%s\n", okStyle.Render("OK"), path, alg, sum)
	return nil
}
