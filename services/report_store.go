package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrReportNotFound is the single user-visible failure of the store:
// it covers both a missing report and an unavailable backend.
var ErrReportNotFound = errors.New("report not found or unavailable")

type ReportStoreI interface {
	Save(content string) (string, error)
	Load(filename string) (string, error)
}

type reportStore struct {
	dir string
}

func NewReportStore(dir string) ReportStoreI {
	return &reportStore{dir: dir}
}

var ReportStore ReportStoreI = NewReportStore(reportsFolder())

func reportsFolder() string {
	dir := os.Getenv("REPORTS_FOLDER")
	if dir == "" {
		dir = "./reports"
	}
	return dir
}

// Save writes the report under a fresh filename and returns it. The
// uuid suffix keeps concurrent generations from ever colliding.
func (r *reportStore) Save(content string) (string, error) {
	if err := os.MkdirAll(r.dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("error creating reports directory: %w", err)
	}

	filename := fmt.Sprintf("valuation_report_%s_%s.txt",
		time.Now().Format("20060102_150405"), uuid.New().String())
	path := filepath.Join(r.dir, filename)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("error writing report: %w", err)
	}

	go archiveReport(path, filename)

	return filename, nil
}

// Load returns the content stored under filename. Path components are
// stripped so a crafted filename cannot escape the reports directory.
func (r *reportStore) Load(filename string) (string, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", ErrReportNotFound
	}

	content, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		zap.L().Warn("Report lookup failed", zap.String("filename", name), zap.Error(err))
		return "", ErrReportNotFound
	}
	return string(content), nil
}

// archiveReport pushes a copy of the report to Cloudinary when
// configured. Archival is best-effort and never affects the caller.
func archiveReport(path, filename string) {
	archiveToCloudinary(path, strings.TrimSuffix(filename, filepath.Ext(filename)), "valuation_reports")
}

// ArchiveUpload archives an uploaded document under a uuid public ID
// so repeated uploads of the same file never overwrite each other.
// Best-effort, same contract as report archival.
func ArchiveUpload(path, originalName string) {
	publicID := uuid.New().String() + "_" + strings.TrimSuffix(originalName, filepath.Ext(originalName))
	archiveToCloudinary(path, publicID, "valuation_uploads")
}

func archiveToCloudinary(path, publicID, folder string) {
	if os.Getenv("CLOUDINARY_URL") == "" {
		return
	}

	cld, err := cloudinary.NewFromURL(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		zap.L().Error("Error initializing Cloudinary", zap.Error(err))
		return
	}

	file, err := os.Open(path)
	if err != nil {
		zap.L().Error("Error opening file for archive", zap.String("path", path), zap.Error(err))
		return
	}
	defer file.Close()

	uploadResult, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   folder,
	})
	if err != nil {
		zap.L().Error("Error archiving file to Cloudinary", zap.String("publicID", publicID), zap.Error(err))
		return
	}
	zap.L().Info("File archived to Cloudinary", zap.String("url", uploadResult.SecureURL))
}
