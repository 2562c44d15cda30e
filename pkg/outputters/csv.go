package outputters

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/finopsforge/azcm/pkg/types"
)

// Headers is the fixed report column order. The CSV file and the console
// preview both use it; changing it is a report format change.
var Headers = []string{
	"recommendation",
	"vmName",
	"subscriptionName",
	"subscriptionID",
	"resourceId",
	"vmSKU",
	"recommendedSKU",
	"vmLocation",
	"marketTag",
	"applicationID",
	"cpuPercent",
	"memoryPercent",
	"networkPercent",
	"accelNetEnabled",
}

// FileName returns the timestamped report file name. The timestamp keeps
// repeated runs from overwriting each other.
func FileName(now time.Time) string {
	return fmt.Sprintf("AzCM_Recs_%s.csv", now.Format("20060102-150405"))
}

// WriteCSV writes all rows to a timestamped CSV file under outputPath and
// returns the full path of the file written.
func WriteCSV(rows []types.ReportRow, outputPath string) (string, error) {
	fullpath := filepath.Join(outputPath, FileName(time.Now()))

	file, err := os.Create(fullpath)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(Headers); err != nil {
		return "", fmt.Errorf("error writing report header: %w", err)
	}

	for _, row := range rows {
		if err := writer.Write(Record(row)); err != nil {
			return "", fmt.Errorf("error writing report row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing report file: %w", err)
	}

	return fullpath, nil
}

// Record renders one row in header order. Nil fields render as empty strings,
// keeping unknown distinct from false or empty in the source data but flat in
// the file.
func Record(row types.ReportRow) []string {
	return []string{
		row.Recommendation,
		deref(row.VMName),
		row.SubscriptionName,
		row.SubscriptionID,
		row.ResourceID,
		row.VMSKU,
		row.RecommendedSKU,
		deref(row.VMLocation),
		deref(row.MarketTag),
		deref(row.ApplicationID),
		row.CPUPercent,
		row.MemoryPercent,
		row.NetworkPercent,
		boolCell(row.AccelNetEnabled),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolCell(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
