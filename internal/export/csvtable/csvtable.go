package csvtable

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/liinajapson/budget-tool/internal/simulate"
)

const outputFile = "awards.csv"

var header = []string{"student_id", "requested", "base", "topup", "allocated", "status"}

// Write emits one row per award. With fundedOnly set, unfunded awards are
// left out, matching the allocation table.
func Write(result simulate.Result, outDir string, fundedOnly bool) (string, error) {
	if outDir == "" {
		outDir = filepath.Join("out", "csv")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(outDir, outputFile)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	awards := result.Awards
	if fundedOnly {
		awards = result.FundedAwards()
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, award := range awards {
		if err := w.Write(row(award)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return path, f.Close()
}

func row(award simulate.AwardResult) []string {
	return []string{
		award.ID,
		strconv.FormatInt(award.Requested, 10),
		strconv.FormatInt(award.Base, 10),
		strconv.FormatInt(award.Topup, 10),
		strconv.FormatInt(award.Allocated, 10),
		award.Status,
	}
}
