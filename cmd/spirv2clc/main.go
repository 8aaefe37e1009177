// Command spirv2clc translates a SPIR-V module into OpenCL C source.
//
// Usage:
//
//	spirv2clc [--asm] [--target <version>] <input>
//
// Examples:
//
//	spirv2clc kernel.spv              # Binary module to stdout
//	spirv2clc --asm kernel.spvasm     # Textual assembly input
//	spirv2clc --target 2.0 kernel.spv # Translate for OpenCL 2.0
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gogpu/spirv2clc/clc"
	"github.com/gogpu/spirv2clc/spirv"
	spirv2clc "github.com/gogpu/spirv2clc"
)

var (
	inputAsm bool
	target   string
)

// targetEnvs maps the --target flag to an environment.
var targetEnvs = map[string]clc.TargetEnv{
	"1.2": clc.OpenCL12,
	"2.0": clc.OpenCL20,
	"2.1": clc.OpenCL21,
	"2.2": clc.OpenCL22,
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "spirv2clc [--asm] <input>",
		Short:         "Translate a SPIR-V module into OpenCL C source",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	cmd.Flags().BoolVar(&inputAsm, "asm", false, "input is textual SPIR-V assembly")
	cmd.Flags().StringVar(&target, "target", "1.2", "OpenCL target environment (1.2, 2.0, 2.1, 2.2)")
	return cmd
}

// trace emits a diagnostic line on stderr when SPIRV2CLC_ENABLE_TRACE
// is 1.
func trace(format string, args ...any) {
	if os.Getenv("SPIRV2CLC_ENABLE_TRACE") != "1" {
		return
	}
	pterm.Debug.WithWriter(os.Stderr).WithDebugger(false).Printfln(format, args...)
}

func fail(err error) error {
	pterm.Error.WithWriter(os.Stderr).Println(err.Error())
	return err
}

func run(path string) error {
	env, ok := targetEnvs[target]
	if !ok {
		return fail(fmt.Errorf("unknown target environment %q", target))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fail(err)
	}
	trace("read %d bytes from %s", len(data), path)

	tr := spirv2clc.NewTranslator(env)

	var source string
	if inputAsm {
		source, err = tr.TranslateAssembly(string(data))
	} else {
		var words []uint32
		words, err = spirv.DecodeBytes(data)
		if err == nil {
			source, err = tr.TranslateBinary(words)
		}
	}
	if err != nil {
		return fail(err)
	}

	trace("translated %s for %s", path, env)
	fmt.Println(source)
	return nil
}
