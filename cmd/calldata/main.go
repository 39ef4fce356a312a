/*
A CLI tool for encoding contract calls from a JSON ABI definition.

Installation:

	go install github.com/purelabio/calldata/cmd/calldata@latest

Example usage:

	calldata encode --abi token.json transfer address:0x30E7d7FfF85C8d0E775140b1aD93C230D5595207 uint256:20000000000
	calldata encode --builtin erc20 balanceOf address:0x30E7d7FfF85C8d0E775140b1aD93C230D5595207
	calldata signature --abi token.json transfer
	calldata gen --abi token.json --out gen_abi.go --name Token

The ABI path may also be provided via the CALLDATA_ABI environment variable.
The "encode" command prints the calldata as "0x"-prefixed hex, suitable for the
"data" field of a transaction.
*/
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/purelabio/calldata"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const envAbiPath = "CALLDATA_ABI"

type options struct {
	abiPath string
	builtin string
	strict  bool
	verbose bool
	logger  *zap.Logger
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "calldata",
		Short:         "Encode contract calls from JSON ABI definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.abiPath == "" {
				opts.abiPath = os.Getenv(envAbiPath)
			}
			if !opts.verbose {
				return nil
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.abiPath, "abi", "", "path of the JSON ABI definition; defaults to $"+envAbiPath)
	flags.StringVar(&opts.builtin, "builtin", "", fmt.Sprintf("use a built-in ABI definition instead of a file; one of %q", calldata.BuiltinAbiIds()))
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		newEncodeCmd(opts),
		newSignatureCmd(opts),
		newGenCmd(opts),
	)
	return root
}

// Loads the ABI from "--builtin" or "--abi", in that order of preference.
func (self *options) loadAbi() (calldata.Abi, error) {
	if self.builtin != "" {
		abi, ok := calldata.BuiltinAbi(self.builtin)
		if !ok {
			return nil, errors.Errorf(`unknown built-in ABI %q; known: %q`, self.builtin, calldata.BuiltinAbiIds())
		}
		self.logger.Debug("using built-in ABI", zap.String("builtin", self.builtin), zap.Int("functions", len(abi)))
		return abi, nil
	}

	if self.abiPath == "" {
		return nil, errors.Errorf(`must specify "--abi", "--builtin", or $%v`, envAbiPath)
	}

	abi, err := calldata.LoadAbiFile(self.abiPath)
	if err != nil {
		return nil, err
	}
	self.logger.Debug("loaded ABI", zap.String("path", self.abiPath), zap.Int("functions", len(abi)))
	return abi, nil
}
