package main

import (
	"bytes"
	"encoding/json"
	"go/format"
	"os"
	"strings"
	"text/template"

	"github.com/Mitranim/repr"
	"github.com/pkg/errors"
	"github.com/purelabio/calldata"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const calldataImportPath = "github.com/purelabio/calldata"

type genOptions struct {
	out  string
	pkg  string
	name string
	self bool
}

/*
The generated file contains the ABI definition as a Go literal and as a JSON
string, plus one comment line per function with its signature and selector. It
doesn't contain any function calls and has no impact on program startup.
*/
var genTemplate = template.Must(template.New("").Parse(`
// Code generated by "calldata gen"; DO NOT EDIT.

package {{.Pkg}}
{{if not .Self}}
import "` + calldataImportPath + `"
{{end}}
/*
Functions:
{{range .Functions}}
	{{.}}{{end}}
*/
var {{.Name}}Abi = {{.AbiRepr}}

const {{.Name}}AbiJson = ` + "`" + `{{.AbiJson}}` + "`" + `
`))

type genData struct {
	Pkg       string
	Self      bool
	Name      string
	Functions []string
	AbiRepr   string
	AbiJson   string
}

func newGenCmd(opts *options) *cobra.Command {
	var gen genOptions

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a Go file declaring the ABI definition",
		Long: `Generates a Go file with the following declarations (values elided):

	var <name>Abi calldata.Abi
	const <name>AbiJson string

For frequent updates during development, use "go generate":

	//go:generate calldata gen --abi token.json --out gen_abi.go --name Token`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(opts, gen)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&gen.out, "out", "o", "", "output path for the generated Go file (required)")
	flags.StringVar(&gen.pkg, "pkg", "main", "package name for the generated code")
	flags.StringVar(&gen.name, "name", "Contract", "prefix of the generated declarations")
	flags.BoolVar(&gen.self, "self", false, "generate without imports or package prefixes")
	return cmd
}

func runGen(opts *options, gen genOptions) error {
	if gen.out == "" {
		return errors.New(`must specify "--out": output path for the generated Go file`)
	}

	abiJson, err := readAbiJson(opts)
	if err != nil {
		return err
	}

	abi, err := calldata.ParseAbiJson(abiJson)
	if err != nil {
		return err
	}

	source, err := genSource(gen, abi, abiJson)
	if err != nil {
		return err
	}

	const readWriteMode = os.FileMode(0600)
	err = os.WriteFile(gen.out, source, readWriteMode)
	if err != nil {
		return errors.Wrapf(err, "failed to write %q", gen.out)
	}

	opts.logger.Debug("generated ABI declarations",
		zap.String("out", gen.out),
		zap.String("name", gen.name),
		zap.Int("functions", len(abi)))
	return nil
}

func readAbiJson(opts *options) (string, error) {
	if opts.builtin != "" {
		out, ok := calldata.BuiltinAbiJson(opts.builtin)
		if !ok {
			return "", errors.Errorf(`unknown built-in ABI %q; known: %q`, opts.builtin, calldata.BuiltinAbiIds())
		}
		return out, nil
	}

	if opts.abiPath == "" {
		return "", errors.Errorf(`must specify "--abi", "--builtin", or $%v`, envAbiPath)
	}

	input, err := os.ReadFile(opts.abiPath)
	if err != nil {
		return "", errors.WithStack(calldata.ErrResourceUnavailable{Path: opts.abiPath, Cause: err})
	}
	return string(input), nil
}

func genSource(gen genOptions, abi calldata.Abi, abiJson string) ([]byte, error) {
	pretty, err := prettyJson(abiJson)
	if err != nil {
		return nil, err
	}
	if strings.Contains(pretty, "`") {
		return nil, errors.New("ABI JSON contains a backtick and can't be embedded as a raw string")
	}

	var functions []string
	for _, fun := range abi {
		sig, err := fun.Signature()
		if err != nil {
			return nil, errors.Wrapf(err, `can't generate declarations for function %v`, fun.Name)
		}
		functions = append(functions, calldata.HexBytes(fun.Selector[:]).String()+" "+sig)
	}

	var buf bytes.Buffer
	err = genTemplate.Execute(&buf, genData{
		Pkg:       gen.pkg,
		Self:      gen.self,
		Name:      gen.name,
		Functions: functions,
		AbiRepr:   reprString(gen, abi),
		AbiJson:   pretty,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	source, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "failed to format generated code")
	}
	return source, nil
}

func prettyJson(input string) (string, error) {
	var val interface{}
	err := json.Unmarshal([]byte(input), &val)
	if err != nil {
		return "", errors.WithStack(err)
	}
	pretty, err := json.MarshalIndent(val, "", "\t")
	return string(pretty), errors.WithStack(err)
}

func reprString(gen genOptions, val interface{}) string {
	if gen.self {
		return repr.StringC(val, repr.Config{
			PackageMap: map[string]string{
				calldataImportPath: "",
			},
		})
	}
	return repr.String(val)
}
