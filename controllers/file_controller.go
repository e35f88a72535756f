package controllers

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	rabbitmq_client "valuationbackend/clients/rabbitmq"
	"valuationbackend/services"
	"valuationbackend/types"
	"valuationbackend/utils/helpers"
)

type FileControllerI interface {
	UploadDocument(ctx *gin.Context)
}

type fileController struct{}

var FileController FileControllerI = &fileController{}

var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
	".txt":  true,
}

func maxUploadBytes() int64 {
	maxMB, err := strconv.Atoi(os.Getenv("MAX_UPLOAD_MB"))
	if err != nil || maxMB <= 0 {
		maxMB = 16
	}
	return int64(maxMB) * 1024 * 1024
}

// UploadDocument accepts one financial document, extracts whatever
// fields it can find, and returns the (possibly partial) mapping. File
// type and size are the only rejections; extraction itself never fails.
func (f *fileController) UploadDocument(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(400, gin.H{"error": "No file provided"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		ctx.JSON(400, gin.H{"error": "File type not allowed. Please upload Excel, CSV, or text files."})
		return
	}

	if file.Size > maxUploadBytes() {
		ctx.JSON(413, gin.H{"error": "File too large. Maximum size is " + strconv.FormatInt(maxUploadBytes()/(1024*1024), 10) + "MB."})
		return
	}

	uploadDir := os.Getenv("UPLOAD_FOLDER")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		ctx.JSON(500, gin.H{"error": "Error creating upload directory"})
		return
	}

	savePath := filepath.Join(uploadDir, uuid.New().String()+"_"+filepath.Base(file.Filename))
	if err := ctx.SaveUploadedFile(file, savePath); err != nil {
		ctx.JSON(500, gin.H{"error": "Error saving file"})
		return
	}
	defer func() {
		if err := os.Remove(savePath); err != nil {
			zap.L().Error("Error removing file", zap.String("filePath", savePath), zap.Error(err))
		}
	}()

	extractedData := services.FileService.ParseDocument(savePath)
	record := helpers.NormalizeRecord(extractedData)
	validation := services.ValidationService.Validate(ctx, record)

	// Archive before the deferred removal deletes the local copy.
	services.ArchiveUpload(savePath, filepath.Base(file.Filename))

	rabbitmq_client.SendMessage(types.ValuationEvent{
		EventType: "upload_processed",
		Company:   record.CompanyName,
		Success:   true,
		Timestamp: time.Now(),
	})
	services.LogActivity("upload", record.CompanyName, true)

	ctx.JSON(200, gin.H{
		"status":         "success",
		"message":        "File uploaded and processed successfully",
		"filename":       filepath.Base(file.Filename),
		"extracted_data": extractedData,
		"ai_validation":  validation,
	})
}
