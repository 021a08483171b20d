package backend

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"homeat/internal/domain/entity"
	"homeat/internal/domain/repository"
	"homeat/internal/errors"
)

var _ repository.ImageRepository = (*Client)(nil)

// ImageURL is the direct link to the stored image bytes.
func (c *Client) ImageURL(id int64) string {
	return c.apiURL("/images/%d", id)
}

// UploadImage posts content as the "file" part of a multipart form. The
// form is buffered so the request carries a Content-Length; the content
// type comes from the multipart writer so the boundary matches.
func (c *Client) UploadImage(ctx context.Context, filename string, content io.Reader, recipeID *int64) (*entity.ImageResponse, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := writeImageForm(form, filename, content, recipeID); err != nil {
		return nil, err
	}

	var image entity.ImageResponse
	decoded, err := c.do(ctx, http.MethodPost, c.apiURL("/images"), &body, form.FormDataContentType(), &image)
	if err != nil {
		return nil, err
	}
	if !decoded {
		return nil, nil
	}

	return &image, nil
}

func writeImageForm(form *multipart.Writer, filename string, content io.Reader, recipeID *int64) error {
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return errors.Wrap(err, "copy image content")
	}
	if recipeID != nil {
		if err := form.WriteField("recipeId", strconv.FormatInt(*recipeID, 10)); err != nil {
			return errors.WithStack(err)
		}
	}

	return errors.WithStack(form.Close())
}

// DeleteImage removes /api/images/{id}.
func (c *Client) DeleteImage(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, c.ImageURL(id), nil, "", nil)

	return err
}
