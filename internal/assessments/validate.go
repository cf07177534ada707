package assessments

import (
	"fmt"
	"mime/multipart"
	"strings"
)

// allowedExtensions are the accepted upload types.
var allowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"heic": {},
	"heif": {},
}

// validationError carries a user-facing 400 message.
type validationError string

func (e validationError) Error() string { return string(e) }

// validateImages filters the uploaded file set down to usable images,
// mirroring the collaborator's upload rules.
func validateImages(files []*multipart.FileHeader) ([]*multipart.FileHeader, error) {
	if len(files) == 0 {
		return nil, validationError("No images provided")
	}

	allEmpty := true
	for _, f := range files {
		if f.Filename != "" {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		return nil, validationError("No images selected")
	}

	valid := make([]*multipart.FileHeader, 0, len(files))
	for _, f := range files {
		if f.Filename != "" {
			valid = append(valid, f)
		}
	}
	if len(valid) == 0 {
		return nil, validationError("No valid images provided")
	}

	for _, f := range valid {
		ext := ""
		if idx := strings.LastIndex(f.Filename, "."); idx >= 0 {
			ext = strings.ToLower(f.Filename[idx+1:])
		}
		if _, ok := allowedExtensions[ext]; !ok {
			return nil, validationError(fmt.Sprintf("Invalid file type: %s. Allowed types: JPEG, PNG, HEIC", f.Filename))
		}
	}

	return valid, nil
}
