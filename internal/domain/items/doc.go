// Package items defines the item entity, its validation rules and the
// service and repository contracts for the item resource, including the
// pagination query and partial-update structures shared by all layers.
package items
