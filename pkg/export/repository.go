// Package export persists rendered subbranch profile reports as plain-text
// files under the bank data root.
package export

import (
	"fmt"
	"os"

	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/pathutil"
)

// Repository defines the interface for report file operations.
type Repository interface {
	// WriteReport writes a rendered report, returning the file path
	WriteReport(subbranchName, date, content string) (string, error)

	// ReadReport reads a previously exported report
	ReadReport(subbranchName, date string) (string, error)

	// ReportExists checks if a report file exists
	ReportExists(subbranchName, date string) bool
}

// FileSystemRepository is a file system implementation of Repository.
type FileSystemRepository struct {
	pathResolver *pathutil.PathResolver
}

// NewFileSystemRepository creates a new FileSystemRepository.
func NewFileSystemRepository(pathResolver *pathutil.PathResolver) *FileSystemRepository {
	return &FileSystemRepository{
		pathResolver: pathResolver,
	}
}

// WriteReport writes a rendered report for a subbranch on the given date,
// replacing any previous export for that day.
func (r *FileSystemRepository) WriteReport(subbranchName, date, content string) (string, error) {
	filePath, err := r.pathResolver.GetReportFilePath(subbranchName, date)
	if err != nil {
		return "", fmt.Errorf("failed to get report file path: %w", err)
	}

	if err := r.pathResolver.EnsureParentDir(filePath); err != nil {
		return "", fmt.Errorf("failed to ensure report directory: %w", err)
	}

	if len(content) > 0 && content[len(content)-1] != '\n' {
		content += "\n"
	}

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return filePath, nil
}

// ReadReport reads the content of an exported report.
func (r *FileSystemRepository) ReadReport(subbranchName, date string) (string, error) {
	filePath, err := r.pathResolver.GetReportFilePath(subbranchName, date)
	if err != nil {
		return "", fmt.Errorf("failed to get report file path: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read report file: %w", err)
	}

	return string(data), nil
}

// ReportExists checks if a report file exists for the subbranch and date.
func (r *FileSystemRepository) ReportExists(subbranchName, date string) bool {
	filePath, err := r.pathResolver.GetReportFilePath(subbranchName, date)
	if err != nil {
		return false
	}
	return r.pathResolver.FileExists(filePath)
}
