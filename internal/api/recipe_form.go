package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/meowsite/recipes-backend/internal/types"
)

// maxImageSize bounds a single uploaded image.
const maxImageSize = 10 << 20 // 10 MiB

// parseRecipeForm turns the multipart recipe form into a typed input.
// Ingredients, instructions and step images are repeated fields whose order
// is preserved; attributes arrive as one JSON-encoded array of name/value
// pairs. Absent fields stay nil so updates can stay partial.
func parseRecipeForm(c *gin.Context) (*types.RecipeInput, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("expected multipart form: %w", err)
	}

	input := &types.RecipeInput{}

	if v, ok := firstValue(form, "name"); ok {
		input.Name = &v
	}
	if v, ok := firstValue(form, "description"); ok {
		input.Description = &v
	}
	if values, ok := form.Value["ingredients"]; ok {
		input.Ingredients = values
	}
	if values, ok := form.Value["instructions"]; ok {
		input.Instructions = values
	}

	if v, ok := firstValue(form, "cooking_time"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("cooking_time must be an integer")
		}
		input.CookingTime = &n
	}
	if v, ok := firstValue(form, "calories"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("calories must be an integer")
		}
		input.Calories = &n
	}

	if v, ok := firstValue(form, "attributes"); ok && v != "" {
		var pairs []types.AttributePair
		if err := json.Unmarshal([]byte(v), &pairs); err != nil {
			return nil, fmt.Errorf("attributes must be a JSON array of name/value pairs")
		}
		input.Attributes = pairs
	}

	if files, ok := form.File["image"]; ok && len(files) > 0 {
		upload, err := readUpload(files[0])
		if err != nil {
			return nil, err
		}
		input.Image = upload
	}

	for _, fh := range form.File["step_images"] {
		upload, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		input.StepImages = append(input.StepImages, *upload)
	}

	return input, nil
}

func firstValue(form *multipart.Form, key string) (string, bool) {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func readUpload(fh *multipart.FileHeader) (*types.ImageUpload, error) {
	if fh.Size > maxImageSize {
		return nil, fmt.Errorf("image %s exceeds the %d byte limit", fh.Filename, maxImageSize)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("image %s exceeds the %d byte limit", fh.Filename, maxImageSize)
	}

	return &types.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
