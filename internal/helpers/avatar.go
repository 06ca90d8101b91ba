package helpers

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const AvatarFolder = "avatars"

// UploadAvatar pushes an image (file path, URL or data URI) to Cloudinary and
// returns its public HTTPS URL.
func UploadAvatar(ctx context.Context, cld *cloudinary.Cloudinary, image string) (string, error) {
	if strings.TrimSpace(image) == "" {
		return "", fmt.Errorf("image data is empty")
	}

	res, err := cld.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder: AvatarFolder,
		Tags:   []string{"gatherly-app"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %v", err)
	}
	return res.SecureURL, nil
}
