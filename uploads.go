package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/billing_backend/config"
)

const maxUploadSizeBytes int64 = 5 * 1024 * 1024

var signatureMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

func mimeTypeForExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return ""
	}
}

// uploadSignatureHandler accepts a signature image and returns it inline as a
// base64 data URI. Signatures travel with the document row itself, so there
// is no object storage behind this endpoint.
func uploadSignatureHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "file is required"})
			return
		}
		if fileHeader.Size > maxUploadSizeBytes {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "file size exceeds 5MB limit"})
			return
		}

		mimeType := fileHeader.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = mimeTypeForExtension(filepath.Ext(fileHeader.Filename))
		}
		if !signatureMimeTypes[mimeType] {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "unsupported image type"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			config.LogError(config.GetLogger(), "uploads.go", "uploadSignatureHandler", "open upload", fileHeader.Filename, err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to read file"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadSizeBytes+1))
		if err != nil {
			config.LogError(config.GetLogger(), "uploads.go", "uploadSignatureHandler", "read upload", fileHeader.Filename, err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to read file"})
			return
		}
		if int64(len(data)) > maxUploadSizeBytes {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "file size exceeds 5MB limit"})
			return
		}

		// Decoding proves the payload is a real image, not just a spoofed
		// content type.
		if _, err := imaging.Decode(bytes.NewReader(data)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid image file"})
			return
		}

		dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
		c.JSON(http.StatusOK, gin.H{"signature": dataURI})
	}
}
