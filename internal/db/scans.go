package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/stacklyzer/internal/types"
)

// SaveScan stores an analysis report and returns the scan ID.
func (db *DB) SaveScan(ctx context.Context, report *types.AnalysisReport) (uuid.UUID, error) {
	if report == nil {
		return uuid.Nil, fmt.Errorf("report is nil")
	}

	jsonBytes, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO scans (id, url, total_technologies, report)
		 VALUES ($1, $2, $3, $4)`,
		id, report.URL, report.Summary.TotalTechnologies, jsonBytes,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save scan for %s: %w", report.URL, err)
	}
	return id, nil
}

// ListScans retrieves the most recent scans of url, newest first. The stored
// report JSON is included in each row.
func (db *DB) ListScans(ctx context.Context, url string, limit int) ([]Scan, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, url, total_technologies, report, created_at
		 FROM scans WHERE url = $1 ORDER BY created_at DESC LIMIT $2`,
		url, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		var scan Scan
		if err := rows.Scan(&scan.ID, &scan.URL, &scan.TotalTechnologies, &scan.Report, &scan.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scans = append(scans, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scans: %w", err)
	}
	return scans, nil
}

// DecodeReport unmarshals the stored report JSON.
func (s *Scan) DecodeReport() (*types.AnalysisReport, error) {
	if len(s.Report) == 0 {
		return nil, fmt.Errorf("scan %s has no report", s.ID)
	}
	var report types.AnalysisReport
	if err := json.Unmarshal(s.Report, &report); err != nil {
		return nil, fmt.Errorf("failed to decode scan report: %w", err)
	}
	return &report, nil
}
