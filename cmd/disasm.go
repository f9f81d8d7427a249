package cmd

import (
	"os"

	"github.com/beanboi7/chyp8/chyp"
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm `path/ROM`",
	Short: "print the instruction listing of a ROM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := uint16(viper.GetUint("entry"))
		if cmd.Flags().Changed("entry") {
			entry, _ = cmd.Flags().GetUint16("entry")
		}

		rom, err := chyp.LoadGame(args[0], entry)
		if err != nil {
			return err
		}
		return chyp.Disassemble(os.Stdout, rom, entry)
	},
}

func init() {
	disasmCmd.Flags().Uint16P("entry", "e", cpu.ProgramStart, "address the ROM is loaded at")
}
