package web

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pdfshrink/internal/domain/entities"
)

// handleHealth возвращает состояние сервиса
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pdfshrink",
	})
}

// handleCompress принимает PDF, прогоняет конвейер сжатия и
// отдает результат как attachment. Статистика размеров уходит
// в заголовках, чтобы страница могла показать ее до скачивания.
func (s *Server) handleCompress(c *gin.Context) {
	file, header, err := c.Request.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "файл не загружен"})
		return
	}
	defer file.Close()

	// Приемочная валидация до чтения содержимого: при отказе
	// байты в память не попадают
	if err := entities.ValidateIntake(header.Filename, header.Size); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Заголовок multipart может врать о размере, поэтому лимит
	// действует и на фактическое чтение
	data, err := io.ReadAll(io.LimitReader(file, entities.MaxDocumentSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось прочитать файл"})
		return
	}

	doc, err := entities.NewDocument(header.Filename, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome := s.useCase.Execute(doc)
	stats := outcome.Stats()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.CompressedName()))
	c.Header("X-Compression-Status", outcome.Kind.String())
	c.Header("X-Original-Size-MB", stats.FormatOriginalMB())
	c.Header("X-Compressed-Size-MB", stats.FormatCompressedMB())
	c.Header("X-Reduction-Percent", stats.FormatReduction())
	c.Header("X-Compression-Ratio", stats.FormatRatio())

	c.Data(http.StatusOK, "application/pdf", outcome.Data)
}
