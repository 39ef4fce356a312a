package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/purelabio/calldata"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEncodeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <function> [<type>:<value> ...]",
		Short: "Print the calldata of a function call as hex",
		Long: `Encodes a call of the given function with the given arguments.

Arguments have the form "<type>:<value>", in declaration order:

	address:0x30E7d7FfF85C8d0E775140b1aD93C230D5595207
	uint256:20000000000
	uint256:0x4a817c800

Hex numbers must not have leading zeros.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, opts, args[0], args[1:])
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "require the argument count to match the declared parameter count")
	return cmd
}

func runEncode(cmd *cobra.Command, opts *options, name string, inputs []string) error {
	abi, err := opts.loadAbi()
	if err != nil {
		return err
	}

	args, err := parseArgs(inputs)
	if err != nil {
		return err
	}

	encode := calldata.EncodeCall
	if opts.strict {
		encode = calldata.EncodeCallStrict
	}

	out, err := encode(abi, name, args...)
	if err != nil {
		return errors.Wrapf(err, `failed to encode call of %q`, name)
	}

	opts.logger.Debug("encoded call",
		zap.String("function", name),
		zap.Int("args", len(args)),
		zap.Bool("strict", opts.strict),
		zap.String("selector", calldata.HexBytes(out[:calldata.SelectorLen]).String()),
		zap.Int("bytes", len(out)))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), calldata.HexBytes(out).String())
	return errors.WithStack(err)
}

func parseArgs(inputs []string) ([]calldata.Value, error) {
	out := make([]calldata.Value, 0, len(inputs))
	for i, input := range inputs {
		val, err := parseArg(input)
		if err != nil {
			return nil, errors.Wrapf(err, `invalid argument %v`, i)
		}
		out = append(out, val)
	}
	return out, nil
}

// Parses "<type>:<value>".
func parseArg(input string) (calldata.Value, error) {
	pair := strings.SplitN(input, ":", 2)
	if len(pair) < 2 {
		return nil, errors.Errorf(`arguments must have the form "<type>:<value>", got %q`, input)
	}
	return calldata.ParseValue(strings.TrimSpace(pair[0]), strings.TrimSpace(pair[1]))
}
