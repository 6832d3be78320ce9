package handler

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/casinohub/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const thumbnailWidth = 320

// UploadMedia 处理媒体文件上传请求
func (a *API) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "no file uploaded")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "only image uploads are allowed")
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0755); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create upload directory")
		return
	}

	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	filePath := filepath.Join(a.uploadDir, newFilename)

	if err := c.SaveUploadedFile(file, filePath); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save file")
		return
	}

	media := db.Media{
		Name:        file.Filename,
		URL:         a.uploadURL + "/" + newFilename,
		ContentType: contentType,
		Size:        file.Size,
	}

	// 缩略图生成失败不阻塞上传
	if width, height, thumbName, err := a.makeThumbnail(filePath, newFilename); err == nil {
		media.Width = width
		media.Height = height
		media.ThumbnailURL = a.uploadURL + "/" + thumbName
	}

	if err := a.db.Create(&media).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to record upload")
		return
	}

	respondData(c, http.StatusCreated, media)
}

// GetMediaList 获取已上传媒体列表
func (a *API) GetMediaList(c *gin.Context) {
	page := parsePositiveInt(c.Query("page"), 1)
	pageSize := parsePositiveInt(c.Query("pageSize"), 20)

	var total int64
	if err := a.db.Model(&db.Media{}).Count(&total).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list media")
		return
	}

	var media []db.Media
	if err := a.db.Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&media).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list media")
		return
	}
	respondList(c, media, page, pageSize, total)
}

// DeleteMedia 删除媒体记录及其文件
func (a *API) DeleteMedia(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid media id")
		return
	}

	var media db.Media
	if err := a.db.First(&media, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "media not found")
		return
	}

	for _, url := range []string{media.URL, media.ThumbnailURL} {
		if url == "" {
			continue
		}
		name := filepath.Base(url)
		os.Remove(filepath.Join(a.uploadDir, name))
	}

	if err := a.db.Delete(&media).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete media")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id})
}

// makeThumbnail 读取已保存的原图并生成等比缩略图，返回原图尺寸与缩略图文件名。
func (a *API) makeThumbnail(srcPath, srcName string) (int, int, string, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return 0, 0, "", err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return 0, 0, "", err
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return 0, 0, "", fmt.Errorf("invalid image dimensions")
	}

	thumbW := thumbnailWidth
	if width < thumbW {
		thumbW = width
	}
	thumbH := height * thumbW / width
	if thumbH < 1 {
		thumbH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, thumbW, thumbH))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	ext := filepath.Ext(srcName)
	thumbName := strings.TrimSuffix(srcName, ext) + "-thumb.jpg"
	out, err := os.Create(filepath.Join(a.uploadDir, thumbName))
	if err != nil {
		return 0, 0, "", err
	}
	defer out.Close()

	if err := jpeg.Encode(out, dst, &jpeg.Options{Quality: 80}); err != nil {
		return 0, 0, "", err
	}
	return width, height, thumbName, nil
}
