// Command mmrverify checks Merkle Mountain Range inclusion proofs against a
// JSON proof bundle, and can emit fixture bundles from a deterministic
// in-memory MMR for manual testing.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "mmrverify",
		Short: "Verify Merkle Mountain Range inclusion proofs",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(newVerifyCmd(&configPath))
	root.AddCommand(newGenFixtureCmd(&configPath))
	return root
}
