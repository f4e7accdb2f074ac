package uploads

import (
	"fmt"
	"mime/multipart"

	"github.com/gin-gonic/gin"
)

// FormImages extracts the "images" files from a multipart request and
// enforces the per-request attachment ceiling. A non-multipart request
// simply has no images.
func FormImages(c *gin.Context, maxFiles int) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	files := form.File["images"]
	if len(files) > maxFiles {
		return nil, fmt.Errorf("too many files: at most %d images per request", maxFiles)
	}
	return files, nil
}
