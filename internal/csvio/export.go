package csvio

import (
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"wallet-profiler/internal/types"
)

// ProfileExport is one wallet's flattened report for the typed export,
// which carries only the derived columns.
type ProfileExport struct {
	Wallet string `csv:"wallet"`
	types.UserFinancialProfile
	types.WalletScores
}

// WriteProfileExport writes the derived columns to their own CSV,
// for consumers that do not want the merged input carried along.
func WriteProfileExport(path string, exports []ProfileExport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&exports, f)
}

// ReadProfileExport loads a previously written typed export.
func ReadProfileExport(path string) ([]ProfileExport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var exports []ProfileExport
	if err := gocsv.UnmarshalFile(f, &exports); err != nil {
		return nil, err
	}
	return exports, nil
}
