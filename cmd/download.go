package cmd

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"demget/config"
	"demget/download"
	"demget/gmted"
	"demget/srtm"
)

var (
	col int
	row int
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download elevation tiles",
}

var downloadSrtmCmd = &cobra.Command{
	Use:   "srtm",
	Short: "Download CGIAR SRTM 5x5 degree tiles",
	Long: `Download CGIAR SRTM 5x5 degree tiles. With no selectors, every tile
in the coverage grid is fetched; with --col and --row, just that tile.`,
	RunE: runDownloadSrtm,
}

var downloadGmtedCmd = &cobra.Command{
	Use:   "gmted",
	Short: "Download USGS GMTED 30x20 degree tiles",
	Long: `Download USGS GMTED 30x20 degree tiles. With no selectors, the full
12x8 grid is fetched; with --col and --row, just that tile.`,
	RunE: runDownloadGmted,
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	for _, c := range []*cobra.Command{downloadSrtmCmd, downloadGmtedCmd} {
		c.Flags().IntVar(&col, "col", -1, "tile column (longitude index)")
		c.Flags().IntVar(&row, "row", -1, "tile row (latitude index)")
		downloadCmd.AddCommand(c)
	}
}

// selection interprets the --col/--row flags. Both set means a single-tile
// fetch, neither means a full batch. Anything else is rejected.
func selection(col, row int) (single bool, err error) {
	switch {
	case col >= 0 && row >= 0:
		return true, nil
	case col < 0 && row < 0:
		return false, nil
	default:
		return false, errors.New("not implemented: pass both --col and --row, or neither")
	}
}

func runDownloadSrtm(cmd *cobra.Command, args []string) error {
	single, err := selection(col, row)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	store, err := srtm.NewStore(cfg)
	if err != nil {
		return err
	}

	var sum download.Summary
	if single {
		t := srtm.Tile{X: col, Y: row}
		if err := store.Fetch(cmd.Context(), t, &sum.Counters); err != nil {
			log.WithError(err).Errorf("failed to fetch %s", t.Name())
		}
	} else {
		sum = store.DownloadAll(cmd.Context())
	}

	fmt.Fprintln(cmd.OutOrStdout(), sum.String())
	return nil
}

func runDownloadGmted(cmd *cobra.Command, args []string) error {
	single, err := selection(col, row)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	store, err := gmted.NewStore(cfg)
	if err != nil {
		return err
	}

	var sum download.Summary
	if single {
		if !gmted.InRange(col, row) {
			return fmt.Errorf("gmted tile out of range: col=%d row=%d (grid is %dx%d)",
				col, row, gmted.LngBands, gmted.LatBands)
		}
		t := gmted.Tile{LngIndex: col, LatIndex: row}
		if err := store.Fetch(cmd.Context(), t, &sum.Counters); err != nil {
			log.WithError(err).Errorf("failed to fetch %s", t.Name())
		}
	} else {
		sum = store.DownloadAll(cmd.Context())
	}

	fmt.Fprintln(cmd.OutOrStdout(), sum.String())
	return nil
}
