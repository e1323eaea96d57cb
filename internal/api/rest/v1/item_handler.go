package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"items_service/internal/domain/items"

	"github.com/gin-gonic/gin"
)

// ItemHandler defines the interface for handling item-related operations
type ItemHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// itemHandler struct holds the item service
type itemHandler struct {
	itemService items.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService items.ItemService) ItemHandler {
	return &itemHandler{
		itemService: itemService,
	}
}

// Create handles the POST request to create an item
// @Summary Create an item
// @Description Validate and store a new item, returning the stored record with its assigned id.
// @Tags Item
// @Accept json
// @Produce json
// @Param requestBody body CreateItemRequest true "Item Data"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /items [post]
func (handler *itemHandler) Create(ctx *gin.Context) {
	var request CreateItemRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	if err := request.Validate(); err != nil {
		respondWithError(ctx, err)
		return
	}

	item, err := handler.itemService.Create(ctx, request.ToDomain())
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewItemResponse(item))
}

// List handles the GET request to list items with pagination
// @Summary List items page by page
// @Description Fetch one page of items ordered by id, together with the total count and page count.
// @Tags Item
// @Accept json
// @Produce json
// @Param page query int false "1-based page number (default 1)"
// @Param size query int false "Page size (default 10)"
// @Success 200 {object} ItemPageResponse
// @Failure 422 {object} ErrorResponse
// @Router /items [get]
func (handler *itemHandler) List(ctx *gin.Context) {
	query := items.NewItemQuery()

	if page := ctx.Query("page"); len(page) > 0 {
		parsed, err := strconv.Atoi(page)
		if err != nil {
			respondWithError(ctx, &items.FieldValidationError{Field: "page", Reason: "must be an integer"})
			return
		}
		query.Page = parsed
	}

	if size := ctx.Query("size"); len(size) > 0 {
		parsed, err := strconv.Atoi(size)
		if err != nil {
			respondWithError(ctx, &items.FieldValidationError{Field: "size", Reason: "must be an integer"})
			return
		}
		query.Size = parsed
	}

	if err := query.Validate(); err != nil {
		respondWithError(ctx, err)
		return
	}

	page, err := handler.itemService.List(ctx, query)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewItemPageResponse(page))
}

// GetByID handles the GET request to retrieve an item by ID
// @Summary Retrieve an item by ID
// @Description Fetch a single item record by its id.
// @Tags Item
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{id} [get]
func (handler *itemHandler) GetByID(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}

	item, err := handler.itemService.Get(ctx, id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewItemResponse(item))
}

// UpdateByID handles the PUT request to partially update an item by ID
// @Summary Update an item by ID
// @Description Apply the supplied subset of fields to an existing item and return the refreshed record.
// @Tags Item
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param requestBody body UpdateItemRequest true "Fields to update"
// @Success 200 {object} ItemResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /items/{id} [put]
func (handler *itemHandler) UpdateByID(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}

	var request UpdateItemRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	if err := request.Validate(); err != nil {
		respondWithError(ctx, err)
		return
	}

	item, err := handler.itemService.Update(ctx, id, request.ToDomain())
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewItemResponse(item))
}

// DeleteByID handles the DELETE request to delete an item by ID
// @Summary Delete an item by ID
// @Description Delete a single item record permanently.
// @Tags Item
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /items/{id} [delete]
func (handler *itemHandler) DeleteByID(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}

	if err := handler.itemService.Delete(ctx, id); err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseItemID reads the id path parameter. A non-numeric id can never name a
// stored row, so it is reported as not found.
func parseItemID(ctx *gin.Context) (uint, bool) {
	idParam := ctx.Param("id")

	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("item with id %s not found", idParam)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return 0, false
	}

	return uint(id), true
}

// respondWithBindError reports a rejected request body. A wrong JSON type on
// a known field is a rule violation on that field; anything else is a
// malformed payload.
func respondWithBindError(ctx *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		respondWithError(ctx, &items.FieldValidationError{
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("must be of type %s", typeErr.Type),
		})
		return
	}

	var errorResponse ErrorResponse
	errorResponse.Message = fmt.Sprintf("invalid item data: %v", err.Error())
	ctx.JSON(http.StatusBadRequest, errorResponse)
}

// respondWithError maps a domain error kind to its HTTP status.
func respondWithError(ctx *gin.Context, err error) {
	var errorResponse ErrorResponse
	errorResponse.Message = err.Error()

	var notFoundErr *items.NotFoundError
	var missingFieldErr *items.MissingFieldError
	var fieldErr *items.FieldValidationError

	switch {
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, errorResponse)
	case errors.As(err, &missingFieldErr):
		ctx.JSON(http.StatusBadRequest, errorResponse)
	case errors.As(err, &fieldErr):
		ctx.JSON(http.StatusUnprocessableEntity, errorResponse)
	default:
		ctx.JSON(http.StatusInternalServerError, errorResponse)
	}
}
