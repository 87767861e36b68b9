package handlers

import (
	"errors"
	"sort"
	"strings"

	"github.com/gorilla/schema"
	"github.com/thomiceli/gistapi/internal/validator"
	"github.com/thomiceli/gistapi/internal/web/context"
)

type PaginationParams struct {
	Page    int `schema:"page" validate:"gte=1"`
	Size    int `schema:"size" validate:"gte=1,ltefield=MaxSize"`
	MaxSize int `schema:"-"`
}

// Page is one page of a list served by the API.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// GetPaginationParams reads page and size from the query string, falling back
// to page 1 and defaultSize.
func GetPaginationParams(ctx *context.Context, defaultSize, maxSize int) (PaginationParams, error) {
	params := PaginationParams{Page: 1, Size: defaultSize, MaxSize: maxSize}

	if err := decoder.Decode(&params, ctx.QueryParams()); err != nil {
		return params, errors.New(decodeMessages(err))
	}
	params.MaxSize = maxSize

	if err := ctx.Validate(&params); err != nil {
		return params, errors.New(validator.ValidationMessages(err))
	}

	return params, nil
}

func decodeMessages(err error) string {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return err.Error()
	}

	keys := make([]string, 0, len(multi))
	for key := range multi {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	messages := make([]string, len(keys))
	for i, key := range keys {
		messages[i] = key + " should be an integer"
	}
	return strings.Join(messages, " ; ")
}

// Paginate cuts data into the page described by params. A page past the end has no items.
func Paginate[T any](data []T, params PaginationParams) Page[T] {
	total := len(data)
	page := Page[T]{
		Items: make([]T, 0),
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
	}
	if params.Size <= 0 {
		return page
	}

	page.Pages = (total + params.Size - 1) / params.Size

	start := (params.Page - 1) * params.Size
	if start < 0 || start >= total {
		return page
	}
	end := start + params.Size
	if end > total {
		end = total
	}
	page.Items = append(page.Items, data[start:end]...)

	return page
}
