package commands

import (
	"fmt"

	"items_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ItemCommandHandler encapsulates logic for item operations via CLI.
type ItemCommandHandler struct {
	client *apiClient
	logger logger.Logger
}

// NewItemCommandHandler initializes and returns an ItemCommandHandler instance
// with a configured logger and HTTP client.
func NewItemCommandHandler() (*ItemCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &ItemCommandHandler{
		client: newAPIClient(),
		logger: loggerInstance,
	}, nil
}

// CreateItemCmd creates a new item from the supplied flags
func (commandHandler *ItemCommandHandler) CreateItemCmd(cmd *cobra.Command, _ []string) {
	baseURL, err := serverBaseURL(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	description, err := cmd.Flags().GetString("description")
	if err != nil {
		commandHandler.logger.Error("invalid description flag ", err)
		return
	}
	price, err := cmd.Flags().GetFloat64("price")
	if err != nil {
		commandHandler.logger.Error("invalid price flag ", err)
		return
	}
	available, err := cmd.Flags().GetBool("available")
	if err != nil {
		commandHandler.logger.Error("invalid available flag ", err)
		return
	}

	requestBody := map[string]interface{}{
		"name":        name,
		"description": description,
		"price":       price,
		"available":   available,
	}

	var item map[string]interface{}
	if err := commandHandler.client.doJSON("POST", baseURL+"/items", requestBody, &item); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := printJSON(item); err != nil {
		commandHandler.logger.Error(err)
	}
}

// GetItemCmd fetches a single item by id
func (commandHandler *ItemCommandHandler) GetItemCmd(cmd *cobra.Command, _ []string) {
	baseURL, err := serverBaseURL(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	id, err := cmd.Flags().GetUint("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	var item map[string]interface{}
	if err := commandHandler.client.doJSON("GET", fmt.Sprintf("%s/items/%d", baseURL, id), nil, &item); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := printJSON(item); err != nil {
		commandHandler.logger.Error(err)
	}
}

// ListItemsCmd fetches one page of items
func (commandHandler *ItemCommandHandler) ListItemsCmd(cmd *cobra.Command, _ []string) {
	baseURL, err := serverBaseURL(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	page, err := cmd.Flags().GetInt("page")
	if err != nil {
		commandHandler.logger.Error("invalid page flag ", err)
		return
	}
	size, err := cmd.Flags().GetInt("size")
	if err != nil {
		commandHandler.logger.Error("invalid size flag ", err)
		return
	}

	url := fmt.Sprintf("%s/items?page=%d&size=%d", baseURL, page, size)

	var itemPage map[string]interface{}
	if err := commandHandler.client.doJSON("GET", url, nil, &itemPage); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := printJSON(itemPage); err != nil {
		commandHandler.logger.Error(err)
	}
}

// UpdateItemCmd applies the supplied subset of fields to an existing item
func (commandHandler *ItemCommandHandler) UpdateItemCmd(cmd *cobra.Command, _ []string) {
	baseURL, err := serverBaseURL(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	id, err := cmd.Flags().GetUint("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	// Only flags the caller actually set are sent, so untouched
	// fields keep their stored values.
	requestBody := map[string]interface{}{}
	if cmd.Flags().Changed("name") {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			commandHandler.logger.Error("invalid name flag ", err)
			return
		}
		requestBody["name"] = name
	}
	if cmd.Flags().Changed("description") {
		description, err := cmd.Flags().GetString("description")
		if err != nil {
			commandHandler.logger.Error("invalid description flag ", err)
			return
		}
		requestBody["description"] = description
	}
	if cmd.Flags().Changed("price") {
		price, err := cmd.Flags().GetFloat64("price")
		if err != nil {
			commandHandler.logger.Error("invalid price flag ", err)
			return
		}
		requestBody["price"] = price
	}
	if cmd.Flags().Changed("available") {
		available, err := cmd.Flags().GetBool("available")
		if err != nil {
			commandHandler.logger.Error("invalid available flag ", err)
			return
		}
		requestBody["available"] = available
	}

	var item map[string]interface{}
	if err := commandHandler.client.doJSON("PUT", fmt.Sprintf("%s/items/%d", baseURL, id), requestBody, &item); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := printJSON(item); err != nil {
		commandHandler.logger.Error(err)
	}
}

// DeleteItemCmd deletes an item by id
func (commandHandler *ItemCommandHandler) DeleteItemCmd(cmd *cobra.Command, _ []string) {
	baseURL, err := serverBaseURL(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	id, err := cmd.Flags().GetUint("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	if err := commandHandler.client.doJSON("DELETE", fmt.Sprintf("%s/items/%d", baseURL, id), nil, nil); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("deleted item with id ", id)
}

// InitItemCommands registers item-related commands
func InitItemCommands(rootCmd *cobra.Command) error {
	handler, err := NewItemCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create item command handler %w", err)
	}

	var createItemCmd = &cobra.Command{
		Use:   "create-item",
		Short: "Create a new item",
		Run:   handler.CreateItemCmd,
	}
	createItemCmd.Flags().StringP("name", "", "", "Item name (max 100 characters)")
	createItemCmd.Flags().StringP("description", "", "", "Item description (max 300 characters)")
	createItemCmd.Flags().Float64P("price", "", 0, "Item price, must be greater than zero")
	createItemCmd.Flags().BoolP("available", "", true, "Whether the item is available")
	rootCmd.AddCommand(createItemCmd)

	var getItemCmd = &cobra.Command{
		Use:   "get-item",
		Short: "Retrieve an item by id",
		Run:   handler.GetItemCmd,
	}
	getItemCmd.Flags().UintP("id", "", 0, "Item id")
	rootCmd.AddCommand(getItemCmd)

	var listItemsCmd = &cobra.Command{
		Use:   "list-items",
		Short: "List items page by page",
		Run:   handler.ListItemsCmd,
	}
	listItemsCmd.Flags().IntP("page", "", 1, "1-based page number")
	listItemsCmd.Flags().IntP("size", "", 10, "Page size (max 100)")
	rootCmd.AddCommand(listItemsCmd)

	var updateItemCmd = &cobra.Command{
		Use:   "update-item",
		Short: "Update a subset of an item's fields",
		Run:   handler.UpdateItemCmd,
	}
	updateItemCmd.Flags().UintP("id", "", 0, "Item id")
	updateItemCmd.Flags().StringP("name", "", "", "New item name")
	updateItemCmd.Flags().StringP("description", "", "", "New item description")
	updateItemCmd.Flags().Float64P("price", "", 0, "New item price")
	updateItemCmd.Flags().BoolP("available", "", true, "New availability flag")
	rootCmd.AddCommand(updateItemCmd)

	var deleteItemCmd = &cobra.Command{
		Use:   "delete-item",
		Short: "Delete an item by id",
		Run:   handler.DeleteItemCmd,
	}
	deleteItemCmd.Flags().UintP("id", "", 0, "Item id")
	rootCmd.AddCommand(deleteItemCmd)

	return nil
}
