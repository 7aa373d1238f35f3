package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	mmr "github.com/mmrforest/mmrverify"
	"github.com/mmrforest/mmrverify/internal/mmrtesting"
)

func newGenFixtureCmd(configPath *string) *cobra.Command {
	var (
		outPath  string
		leaves   int
		provePos []int
	)

	cmd := &cobra.Command{
		Use:   "gen-fixture",
		Short: "Generate a deterministic proof bundle for manual testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenFixture(*configPath, outPath, leaves, provePos)
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "fixture.json", "output path for the generated proof bundle")
	cmd.Flags().IntVar(&leaves, "leaves", 8, "number of leaves in the deterministic MMR")
	cmd.Flags().IntSliceVar(&provePos, "prove", nil, "leaf positions to prove (default: every leaf)")
	return cmd
}

func runGenFixture(configPath, outPath string, numLeaves int, provePos []int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	var personal []byte
	if cfg.Personal != "" {
		personal = []byte(cfg.Personal)
	}
	hasher := mmr.NewDefaultHasher(personal)

	b := mmrtesting.NewBuilder(hasher)
	var allPositions []uint64
	for i := 0; i < numLeaves; i++ {
		var payload [8]byte
		binary.BigEndian.PutUint64(payload[:], uint64(i))
		allPositions = append(allPositions, b.AppendLeaf(payload[:]))
	}

	positions := allPositions
	if len(provePos) > 0 {
		positions = make([]uint64, len(provePos))
		for i, p := range provePos {
			positions[i] = uint64(p)
		}
	}

	proofBuf, leafBuf, err := mmrtesting.GenerateProof(b, positions)
	if err != nil {
		return err
	}
	root := b.Root()

	bundle := proofBundle{
		MMRSize:  b.Size(),
		Root:     hex.EncodeToString(root.Value()),
		Personal: hex.EncodeToString(personal),
		Commands: hex.EncodeToString(proofBuf),
		Leaves:   hex.EncodeToString(leafBuf),
	}
	if err := writeBundle(outPath, bundle); err != nil {
		return err
	}
	fmt.Printf("wrote %s (mmr_size=%d, proved=%v)\n", outPath, bundle.MMRSize, positions)
	return nil
}
