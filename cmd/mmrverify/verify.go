package main

import (
	"fmt"

	"github.com/spf13/cobra"

	mmr "github.com/mmrforest/mmrverify"
)

func newVerifyCmd(configPath *string) *cobra.Command {
	var bundlePath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a proof bundle against its claimed root",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(*configPath, bundlePath)
		},
	}
	cmd.Flags().StringVar(&bundlePath, "bundle", "", "path to the JSON proof bundle")
	cmd.MarkFlagRequired("bundle")
	return cmd
}

func runVerify(configPath, bundlePath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	b, err := loadBundle(bundlePath)
	if err != nil {
		return err
	}
	root, personal, commands, leaves, err := b.decodeHex()
	if err != nil {
		return err
	}
	if len(personal) == 0 && cfg.Personal != "" {
		personal = []byte(cfg.Personal)
	}

	capacity := cfg.StackCapacity
	if capacity == 0 {
		capacity = mmr.DefaultStackCapacity
	}

	code, err := mmr.VerifyWithCapacity(
		root,
		b.MMRSize,
		mmr.NewProofReader(commands),
		mmr.NewLeafStreamReader(leaves),
		mmr.NewDefaultHasher(personal),
		capacity,
	)
	if err != nil {
		return fmt.Errorf("verification failed (code %d): %w", code, err)
	}
	fmt.Println("OK")
	return nil
}
