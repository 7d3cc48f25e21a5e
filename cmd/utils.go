package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"solview/internal/core/domain"
)

// galleryOptions are the shared browse/explore/artists flag values after
// validation.
type galleryOptions struct {
	View     domain.ViewType
	Sort     domain.SortKey
	Filter   domain.Category
	Quantity domain.QuantityFilter
}

// parseGalleryOptions validates the shared flags, substituting config
// defaults for flags the user did not set.
func parseGalleryOptions(cmd *cobra.Command, view, sortKey, filter, quantity string) (galleryOptions, error) {
	if !cmd.Flags().Changed("view") {
		view = appConfig.DefaultView
	}
	if !cmd.Flags().Changed("sort") {
		sortKey = appConfig.DefaultSort
	}
	if !cmd.Flags().Changed("filter") {
		filter = appConfig.DefaultFilter
	}
	if cmd.Flags().Lookup("quantity") != nil && !cmd.Flags().Changed("quantity") {
		quantity = appConfig.DefaultQuantity
	}

	var opts galleryOptions
	var err error
	if opts.View, err = domain.ParseViewType(view); err != nil {
		return opts, err
	}
	if opts.Sort, err = domain.ParseSortKey(sortKey); err != nil {
		return opts, err
	}
	if opts.Filter, err = domain.ParseCategory(filter); err != nil {
		return opts, err
	}
	if quantity == "" {
		quantity = "all"
	}
	if opts.Quantity, err = domain.ParseQuantityFilter(quantity); err != nil {
		return opts, err
	}
	return opts, nil
}

// pluralize returns "n word" or "n words".
func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
