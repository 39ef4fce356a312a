package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/purelabio/calldata"
	"github.com/spf13/cobra"
)

func newSignatureCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "signature <function>",
		Short: "Print the canonical signature and selector of a function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			abi, err := opts.loadAbi()
			if err != nil {
				return err
			}

			fun, err := abi.FindFunction(args[0])
			if err != nil {
				return err
			}

			sig, err := fun.Signature()
			if err != nil {
				return err
			}

			selector := calldata.SignatureSelector(sig)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%v\t%v\n", sig, calldata.HexBytes(selector[:]))
			return errors.WithStack(err)
		},
	}
}
