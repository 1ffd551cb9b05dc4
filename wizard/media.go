package wizard

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"gigglesgo/structs"
	"gigglesgo/utils"
)

const maxImageBytes = 5 << 20 // 5MB per attachment

var uploadDir = "./uploads/submissions"

// processImageUpload decodes the attachment, writes the original plus a
// 300px-wide thumbnail and returns the stored reference. Files that do not
// decode as images are rejected.
func processImageUpload(file *multipart.FileHeader) (structs.ImageRef, error) {
	if file.Size > maxImageBytes {
		return structs.ImageRef{}, fmt.Errorf("image %s exceeds the 5MB limit", file.Filename)
	}

	src, err := file.Open()
	if err != nil {
		return structs.ImageRef{}, fmt.Errorf("failed to open image file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return structs.ImageRef{}, fmt.Errorf("failed to decode image: %w", err)
	}

	uniqueID := utils.GetUUID()
	fileName := uniqueID + ".jpg"
	originalPath := filepath.Join(uploadDir, fileName)
	thumbDir := filepath.Join(uploadDir, "thumb")
	thumbnailPath := filepath.Join(thumbDir, fileName)

	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return structs.ImageRef{}, fmt.Errorf("failed to create upload directory: %w", err)
	}

	if err := imaging.Save(img, originalPath); err != nil {
		return structs.ImageRef{}, fmt.Errorf("failed to save original image: %w", err)
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath); err != nil {
		return structs.ImageRef{}, fmt.Errorf("failed to save thumbnail: %w", err)
	}

	ct := file.Header.Get("Content-Type")
	if ct == "" {
		ct = "image/jpeg"
	}
	return structs.ImageRef{
		Name:        file.Filename,
		Size:        file.Size,
		ContentType: ct,
		Path:        "/submissionpic/" + fileName,
	}, nil
}
